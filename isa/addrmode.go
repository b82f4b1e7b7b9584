package isa

import "fmt"

// AddressingMode is one of the thirteen addressing mode categories a
// 6502 instruction variant can use.
type AddressingMode uint8

// Addressing mode categories.
const (
	Accumulator AddressingMode = iota
	Absolute
	AbsoluteX
	AbsoluteY
	Immediate
	Implied
	Indirect
	IndexedIndirect // (indirect,X)
	IndirectIndexed // (indirect),Y
	Relative
	ZeroPage
	ZeroPageX
	ZeroPageY
	numAddressingModes // for counting
)

// addressingModeNames uses the vocabulary of the instruction table.
var addressingModeNames = [numAddressingModes]string{
	Accumulator:     "accumulator",
	Absolute:        "absolute",
	AbsoluteX:       "absolute,X",
	AbsoluteY:       "absolute,Y",
	Immediate:       "immediate",
	Implied:         "implied",
	Indirect:        "indirect",
	IndexedIndirect: "(indirect,X)",
	IndirectIndexed: "(indirect),Y",
	Relative:        "relative",
	ZeroPage:        "zeropage",
	ZeroPageX:       "zeropage,X",
	ZeroPageY:       "zeropage,Y",
}

// String returns the category name as written in the instruction table.
func (m AddressingMode) String() string {
	if m < numAddressingModes {
		return addressingModeNames[m]
	}
	return fmt.Sprintf("AddressingMode(%d)", m)
}

// ParseAddressingMode resolves a category name from the instruction
// table vocabulary. Names are matched case-sensitively.
func ParseAddressingMode(s string) (AddressingMode, error) {
	for m, name := range addressingModeNames {
		if name == s {
			return AddressingMode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown addressing mode %q", s)
}

// OperandPolicy describes how many operand bytes an addressing mode
// consumes and how they are interpreted.
type OperandPolicy uint8

// Operand policies.
const (
	// OperandNone consumes no operand bytes.
	OperandNone OperandPolicy = iota
	// OperandU8 consumes one byte as an unsigned value.
	OperandU8
	// OperandU16 consumes two bytes as an unsigned little-endian value.
	OperandU16
	// OperandI8 consumes one byte as a signed displacement.
	OperandI8
)

// Policy returns the operand policy for the addressing mode. The
// mapping is total over the closed category set.
func (m AddressingMode) Policy() OperandPolicy {
	switch m {
	case Accumulator, Implied:
		return OperandNone
	case Immediate, IndexedIndirect, IndirectIndexed, ZeroPage, ZeroPageX, ZeroPageY:
		return OperandU8
	case Absolute, AbsoluteX, AbsoluteY, Indirect:
		return OperandU16
	case Relative:
		return OperandI8
	}
	panic(fmt.Sprintf("no operand policy for addressing mode %d", m))
}

// Width returns the operand byte count the policy consumes.
func (p OperandPolicy) Width() int {
	switch p {
	case OperandU8, OperandI8:
		return 1
	case OperandU16:
		return 2
	default:
		return 0
	}
}

func (p OperandPolicy) String() string {
	switch p {
	case OperandNone:
		return "none"
	case OperandU8:
		return "u8"
	case OperandU16:
		return "u16le"
	case OperandI8:
		return "i8"
	default:
		return fmt.Sprintf("OperandPolicy(%d)", p)
	}
}
