package isa

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Descriptions maps assembler mnemonics to their datasheet description
// lines. Descriptions are keyed per mnemonic, not per opcode: all
// addressing mode variants of an instruction share one entry.
type Descriptions map[string]string

// ParseDescriptions reads a description table: one line per mnemonic in
// the form "MNEMONIC  description" with a two-space separator. Blank
// lines are skipped.
func ParseDescriptions(r io.Reader) (Descriptions, error) {
	d := Descriptions{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		mnemonic, desc, ok := strings.Cut(text, "  ")
		if !ok {
			return nil, fmt.Errorf("description line %d: missing two-space separator", line)
		}
		desc = strings.TrimSpace(desc)
		if mnemonic == "" || desc == "" {
			return nil, fmt.Errorf("description line %d: empty mnemonic or description", line)
		}
		if _, dup := d[mnemonic]; dup {
			return nil, fmt.Errorf("description line %d: duplicate mnemonic %s", line, mnemonic)
		}
		d[mnemonic] = desc
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read description table: %w", err)
	}
	return d, nil
}

// LoadDescriptions reads the description table at path.
func LoadDescriptions(path string) (Descriptions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open description table: %w", err)
	}
	defer func() { _ = f.Close() }()

	d, err := ParseDescriptions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
