package gen

import (
	"bytes"
	"fmt"

	"github.com/chiplet/nes/isa"
)

// modeIdents maps table categories to the insts package's AddrMode
// constant names.
var modeIdents = map[isa.AddressingMode]string{
	isa.Accumulator:     "Accumulator",
	isa.Absolute:        "Absolute",
	isa.AbsoluteX:       "AbsoluteX",
	isa.AbsoluteY:       "AbsoluteY",
	isa.Immediate:       "Immediate",
	isa.Implied:         "Implied",
	isa.Indirect:        "Indirect",
	isa.IndexedIndirect: "IndexedIndirect",
	isa.IndirectIndexed: "IndirectIndexed",
	isa.Relative:        "Relative",
	isa.ZeroPage:        "ZeroPage",
	isa.ZeroPageX:       "ZeroPageX",
	isa.ZeroPageY:       "ZeroPageY",
}

// Decoder generates the mnemonic declarations and the opcode dispatch
// for table. Every record becomes one case arm keyed by its opcode
// byte; an explicit default arm makes the dispatch total over all 256
// byte values.
func (g *Generator) Decoder(table *isa.Table) ([]byte, error) {
	mnemonics := table.Mnemonics()
	for _, name := range mnemonics {
		if err := checkIdent(name); err != nil {
			return nil, err
		}
	}

	var b bytes.Buffer
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)
	writeMnemonics(&b, mnemonics)
	writeDispatch(&b, table)
	return gofmt("decoder", b.Bytes())
}

func writeMnemonics(b *bytes.Buffer, mnemonics []string) {
	b.WriteString("// Mnemonic identifies an instruction independent of its addressing\n")
	b.WriteString("// mode variant.\n")
	b.WriteString("type Mnemonic uint8\n\n")

	b.WriteString("// Mnemonics, in instruction table order.\n")
	b.WriteString("const (\n")
	for i, name := range mnemonics {
		if i == 0 {
			fmt.Fprintf(b, "\t%s Mnemonic = iota\n", name)
		} else {
			fmt.Fprintf(b, "\t%s\n", name)
		}
	}
	b.WriteString(")\n\n")

	b.WriteString("// mnemonicNames lists assembler names in Mnemonic order.\n")
	b.WriteString("var mnemonicNames = [...]string{\n")
	for _, name := range mnemonics {
		fmt.Fprintf(b, "\t%q,\n", name)
	}
	b.WriteString("}\n\n")

	b.WriteString("// String returns the assembler name of the mnemonic.\n")
	b.WriteString("func (m Mnemonic) String() string {\n")
	b.WriteString("\tif int(m) < len(mnemonicNames) {\n")
	b.WriteString("\t\treturn mnemonicNames[m]\n")
	b.WriteString("\t}\n")
	b.WriteString("\treturn \"???\"\n")
	b.WriteString("}\n\n")
}

func writeDispatch(b *bytes.Buffer, table *isa.Table) {
	b.WriteString("// decodeOpcode decodes the instruction variant selected by opcode,\n")
	b.WriteString("// reading its operand bytes from r.\n")
	b.WriteString("func decodeOpcode(opcode uint8, r *Reader) (*Instruction, error) {\n")
	b.WriteString("\tswitch opcode {\n")
	for _, rec := range table.Records() {
		fmt.Fprintf(b, "\tcase 0x%02x:\n", rec.Opcode)
		mode := modeIdents[rec.Mode]
		switch rec.Mode.Policy() {
		case isa.OperandNone:
			fmt.Fprintf(b, "\t\treturn &Instruction{Mnemonic: %s, Opcode: opcode, Mode: %s}, nil\n",
				rec.Mnemonic, mode)
		case isa.OperandU8:
			writeOperandRead(b, "ReadU8")
			fmt.Fprintf(b, "\t\treturn &Instruction{Mnemonic: %s, Opcode: opcode, Mode: %s, Operand: uint16(arg)}, nil\n",
				rec.Mnemonic, mode)
		case isa.OperandU16:
			writeOperandRead(b, "ReadU16LE")
			fmt.Fprintf(b, "\t\treturn &Instruction{Mnemonic: %s, Opcode: opcode, Mode: %s, Operand: arg}, nil\n",
				rec.Mnemonic, mode)
		case isa.OperandI8:
			writeOperandRead(b, "ReadU8")
			fmt.Fprintf(b, "\t\treturn &Instruction{Mnemonic: %s, Opcode: opcode, Mode: %s, Offset: int8(arg)}, nil\n",
				rec.Mnemonic, mode)
		}
	}
	b.WriteString("\tdefault:\n")
	b.WriteString("\t\treturn nil, &UnknownOpcodeError{Opcode: opcode}\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n")
}

func writeOperandRead(b *bytes.Buffer, method string) {
	fmt.Fprintf(b, "\t\targ, err := r.%s()\n", method)
	b.WriteString("\t\tif err != nil {\n")
	b.WriteString("\t\t\treturn nil, err\n")
	b.WriteString("\t\t}\n")
}
