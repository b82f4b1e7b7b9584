// Package isa models the textual 6502 instruction set description that
// drives code generation.
//
// The description consists of two plain-text tables: the instruction
// table (one row per documented opcode, carrying addressing mode,
// mnemonic, assembler syntax, opcode byte, encoded size, and cycle
// count) and the description table (one line per mnemonic). Both parse
// into immutable values consumed by the gen package.
//
// Usage:
//
//	table, err := isa.LoadTable("isa/instructions.txt")
//	if err != nil {
//		return err
//	}
//	for _, rec := range table.Records() {
//		fmt.Printf("%02x %s %s\n", rec.Opcode, rec.Mnemonic, rec.Mode)
//	}
//
// The canonical table of the 151 documented opcodes ships embedded; see
// MOS6502 and MOS6502Descriptions.
package isa
