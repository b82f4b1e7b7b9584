package isa

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed instructions.txt
var mos6502Table string

//go:embed instruction_descriptions.txt
var mos6502Descriptions string

var (
	builtinTable        *Table
	builtinDescriptions Descriptions
)

func init() {
	var err error
	builtinTable, err = ParseTable(strings.NewReader(mos6502Table))
	if err != nil {
		panic(fmt.Sprintf("embedded instruction table: %v", err))
	}
	builtinDescriptions, err = ParseDescriptions(strings.NewReader(mos6502Descriptions))
	if err != nil {
		panic(fmt.Sprintf("embedded description table: %v", err))
	}
	for _, name := range builtinTable.Mnemonics() {
		if _, ok := builtinDescriptions[name]; !ok {
			panic(fmt.Sprintf("embedded description table: no entry for %s", name))
		}
	}
}

// MOS6502 returns the built-in table of the 151 documented 6502
// opcodes.
func MOS6502() *Table {
	return builtinTable
}

// MOS6502Descriptions returns the built-in description table covering
// every mnemonic in the MOS6502 table. The returned map must not be
// modified.
func MOS6502Descriptions() Descriptions {
	return builtinDescriptions
}
