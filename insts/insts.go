// Package insts provides 6502 instruction definitions and decoding.
//
// This package implements decoding of 6502 machine code into structured
// instruction representations. The opcode dispatch and the name table
// are generated from the instruction set description in the isa package
// and checked in; regenerate them with the nesgen tool after changing
// the description files.
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst, err := decoder.DecodeBytes([]byte{0x69, 0x05}) // ADC #$05
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s %s operand=%#x\n", inst.Mnemonic, inst.Mode, inst.Operand)
package insts

//go:generate go run github.com/chiplet/nes/cmd/nesgen -instructions ../isa/instructions.txt -descriptions ../isa/instruction_descriptions.txt -decoder-out decoder_gen.go -names-out names_gen.go
