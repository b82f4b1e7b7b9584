package isa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table is a validated instruction table. It is immutable after
// construction.
type Table struct {
	records  []Record
	byOpcode [256]int // index+1 into records, 0 means unassigned
}

// ParseTable reads an instruction table: a header line followed by one
// record per line. Blank lines are skipped. Every record must have a
// unique opcode and a size consistent with its addressing mode.
func ParseTable(r io.Reader) (*Table, error) {
	t := &Table{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			// Header row.
			continue
		}
		if strings.TrimSpace(sc.Text()) == "" {
			continue
		}

		rec, err := parseRecord(sc.Text())
		if err != nil {
			return nil, &MalformedRecordError{Line: line, Err: err}
		}
		if i := t.byOpcode[rec.Opcode]; i != 0 {
			first := t.records[i-1]
			return nil, &MalformedRecordError{
				Line: line,
				Err: fmt.Errorf("duplicate opcode 0x%02x (already assigned to %s %s)",
					rec.Opcode, first.Mnemonic, first.Mode),
			}
		}
		t.records = append(t.records, rec)
		t.byOpcode[rec.Opcode] = len(t.records)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instruction table: %w", err)
	}
	return t, nil
}

// LoadTable reads the instruction table at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open instruction table: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Records returns the table rows in source order. The returned slice
// must not be modified.
func (t *Table) Records() []Record {
	return t.records
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Lookup returns the record assigned to opcode.
func (t *Table) Lookup(opcode uint8) (Record, bool) {
	i := t.byOpcode[opcode]
	if i == 0 {
		return Record{}, false
	}
	return t.records[i-1], true
}

// Mnemonics returns the distinct mnemonics in order of first
// appearance.
func (t *Table) Mnemonics() []string {
	seen := make(map[string]bool, len(t.records))
	var names []string
	for _, rec := range t.records {
		if !seen[rec.Mnemonic] {
			seen[rec.Mnemonic] = true
			names = append(names, rec.Mnemonic)
		}
	}
	return names
}
