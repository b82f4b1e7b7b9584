// Package main provides accuracy validation for the generated decoder.
// Ensures the checked-in generated files agree with the instruction
// set description files.
package main

import (
	"fmt"
	"os"

	"github.com/chiplet/nes/insts"
	"github.com/chiplet/nes/isa"
)

// testInstructionDecoding validates that every table record decodes to
// its own opcode, mnemonic, addressing mode, and size.
func testInstructionDecoding() bool {
	decoder := insts.NewDecoder()
	table := isa.MOS6502()

	fmt.Println("Testing instruction decoder accuracy...")

	for _, rec := range table.Records() {
		r := insts.NewReader([]byte{rec.Opcode, 0x00, 0x00})

		inst, err := decoder.Decode(r)
		if err != nil {
			fmt.Printf("❌ Opcode 0x%02x failed: %v\n", rec.Opcode, err)
			return false
		}

		// Compare against the table record
		if inst.Opcode != rec.Opcode ||
			inst.Mnemonic.String() != rec.Mnemonic ||
			inst.Mode.String() != rec.Mode.String() ||
			r.Pos() != rec.Size {

			fmt.Printf("❌ Opcode 0x%02x failed: decode mismatch\n", rec.Opcode)
			fmt.Printf("  Decoded: %s %s, %d bytes\n", inst.Mnemonic, inst.Mode, r.Pos())
			fmt.Printf("  Table:   %s %s, %d bytes\n", rec.Mnemonic, rec.Mode, rec.Size)
			return false
		}
	}

	fmt.Printf("✅ All %d table records decoded correctly\n", table.Len())
	return true
}

// testUnknownOpcodeRejection validates that exactly the opcodes the
// table leaves unassigned are rejected.
func testUnknownOpcodeRejection() bool {
	decoder := insts.NewDecoder()
	table := isa.MOS6502()

	fmt.Println("\nTesting unassigned opcode rejection...")

	rejected := 0
	for op := 0; op < 256; op++ {
		_, assigned := table.Lookup(uint8(op))
		_, err := decoder.DecodeBytes([]byte{uint8(op), 0x00, 0x00})

		if assigned && err != nil {
			fmt.Printf("❌ Opcode 0x%02x is assigned but was rejected: %v\n", op, err)
			return false
		}
		if !assigned {
			if err == nil {
				fmt.Printf("❌ Opcode 0x%02x is unassigned but was decoded\n", op)
				return false
			}
			rejected++
		}
	}

	fmt.Printf("✅ All %d unassigned opcodes rejected\n", rejected)
	return true
}

// testNameTable validates the generated name lookup against the
// description file.
func testNameTable() bool {
	table := isa.MOS6502()
	descs := isa.MOS6502Descriptions()

	fmt.Println("\nTesting opcode name table...")

	for _, rec := range table.Records() {
		name, ok := insts.LookupName(rec.Opcode)
		if !ok {
			fmt.Printf("❌ Opcode 0x%02x has no name entry\n", rec.Opcode)
			return false
		}

		if name.Mnemonic != rec.Mnemonic || name.Description != descs[rec.Mnemonic] {
			fmt.Printf("❌ Opcode 0x%02x name mismatch\n", rec.Opcode)
			fmt.Printf("  Name table:  %s / %s\n", name.Mnemonic, name.Description)
			fmt.Printf("  Description: %s / %s\n", rec.Mnemonic, descs[rec.Mnemonic])
			return false
		}
	}

	fmt.Printf("✅ All %d name entries match the descriptions\n", table.Len())
	return true
}

func main() {
	fmt.Println("Generated Decoder Accuracy Validation")
	fmt.Println("=======================================================")

	allPassed := true

	// Test decode agreement with the instruction table
	if !testInstructionDecoding() {
		allPassed = false
	}

	// Test rejection of unassigned opcodes
	if !testUnknownOpcodeRejection() {
		allPassed = false
	}

	// Test the name table against the descriptions
	if !testNameTable() {
		allPassed = false
	}

	fmt.Println("\n=======================================================")
	if allPassed {
		fmt.Println("🎉 ALL ACCURACY TESTS PASSED")
		fmt.Println("✅ Generated files agree with the description files")
		os.Exit(0)
	} else {
		fmt.Println("❌ ACCURACY TESTS FAILED")
		fmt.Println("🚨 Regenerate with 'go generate ./insts' and retry")
		os.Exit(1)
	}
}
