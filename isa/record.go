package isa

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is one row of the instruction table.
type Record struct {
	// Mode is the addressing mode category of this variant.
	Mode AddressingMode
	// Mnemonic is the instruction name, shared across variants.
	Mnemonic string
	// Operand is the assembler operand syntax column. It is
	// informational and empty for rows that omit it.
	Operand string
	// Opcode is the machine code byte, unique across the table.
	Opcode uint8
	// Size is the encoded instruction length in bytes, opcode included.
	Size int
	// Cycles is the base cycle count, informational only.
	Cycles int
}

// MalformedRecordError reports an instruction table row that failed
// validation.
type MalformedRecordError struct {
	Line int   // 1-based line number in the table source
	Err  error // what was wrong with the row
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("instruction table line %d: %v", e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// parseRecord parses one whitespace-delimited table row. Rows carry
// five or six fields; the six-field form includes the operand syntax
// column.
func parseRecord(line string) (Record, error) {
	fields := strings.Fields(line)

	var rec Record
	switch len(fields) {
	case 5:
	case 6:
		rec.Operand = fields[2]
	default:
		return Record{}, fmt.Errorf("%d fields, want 5 or 6", len(fields))
	}

	mode, err := ParseAddressingMode(fields[0])
	if err != nil {
		return Record{}, err
	}
	rec.Mode = mode
	rec.Mnemonic = fields[1]

	// The last three fields are opcode, size, cycles in both forms.
	tail := fields[len(fields)-3:]

	opcode, err := strconv.ParseUint(tail[0], 16, 8)
	if err != nil {
		return Record{}, fmt.Errorf("bad opcode %q: %w", tail[0], err)
	}
	rec.Opcode = uint8(opcode)

	rec.Size, err = parsePositive("size", tail[1])
	if err != nil {
		return Record{}, err
	}
	rec.Cycles, err = parsePositive("cycles", tail[2])
	if err != nil {
		return Record{}, err
	}

	if want := 1 + rec.Mode.Policy().Width(); rec.Size != want {
		return Record{}, fmt.Errorf("size %d does not match addressing mode %s (want %d)",
			rec.Size, rec.Mode, want)
	}

	return rec, nil
}

func parsePositive(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", name, s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("bad %s %d: must be positive", name, n)
	}
	return n, nil
}
