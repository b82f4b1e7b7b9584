package insts

import "fmt"

// UnknownOpcodeError reports an opcode byte the instruction set does
// not assign.
type UnknownOpcodeError struct {
	Opcode uint8
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02x", e.Opcode)
}

// Decoder decodes 6502 machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new 6502 instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads one instruction from r: the opcode byte, then the
// operand bytes its addressing mode requires. Failures are typed:
// *InsufficientBytesError when r runs out mid-instruction,
// *UnknownOpcodeError for opcodes outside the instruction set.
func (d *Decoder) Decode(r *Reader) (*Instruction, error) {
	opcode, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return decodeOpcode(opcode, r)
}

// DecodeBytes decodes the single instruction at the start of data.
func (d *Decoder) DecodeBytes(data []byte) (*Instruction, error) {
	return d.Decode(NewReader(data))
}
