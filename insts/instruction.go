package insts

// AddrMode identifies one of the thirteen 6502 addressing mode
// categories. The mode determines how many operand bytes follow the
// opcode and how they are interpreted.
type AddrMode uint8

// Addressing modes.
const (
	Accumulator AddrMode = iota
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
	numAddrModes // for counting
)

// addrModeNames uses the vocabulary of the instruction table the
// decoder was generated from.
var addrModeNames = [numAddrModes]string{
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

// String returns the addressing mode name as written in the
// instruction table.
func (m AddrMode) String() string {
	if m < numAddrModes {
		return addrModeNames[m]
	}
	return "???"
}

// Instruction represents one decoded 6502 instruction.
type Instruction struct {
	Mnemonic Mnemonic // instruction identity, shared across variants
	Opcode   uint8    // opcode byte as read from the stream
	Mode     AddrMode // addressing mode variant selected by the opcode

	// Operand holds the unsigned operand for modes that take one: the
	// immediate or zero page byte, or the 16-bit little-endian
	// address. It is zero for modes without an operand.
	Operand uint16

	// Offset holds the signed branch displacement for the relative
	// mode. It is zero for all other modes.
	Offset int8
}

// Name pairs an assembler mnemonic with its datasheet description.
type Name struct {
	Mnemonic    string
	Description string
}

// Name returns the name table entry for the instruction's opcode.
func (i *Instruction) Name() Name {
	n, _ := LookupName(i.Opcode)
	return n
}
