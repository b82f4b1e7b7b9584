package gen

import (
	"bytes"
	"fmt"

	"github.com/chiplet/nes/isa"
)

// MissingDescriptionError reports a table mnemonic that has no entry in
// the description table.
type MissingDescriptionError struct {
	Mnemonic string
}

func (e *MissingDescriptionError) Error() string {
	return fmt.Sprintf("no description for mnemonic %s", e.Mnemonic)
}

// Names generates the opcode name lookup for table, resolving each
// record's description from descs. Records sharing a mnemonic resolve
// to the same description text.
func (g *Generator) Names(table *isa.Table, descs isa.Descriptions) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(header)
	fmt.Fprintf(&b, "package %s\n\n", g.pkg)

	b.WriteString("// LookupName returns the name entry for opcode. The second return is\n")
	b.WriteString("// false for opcodes the instruction set does not assign.\n")
	b.WriteString("func LookupName(opcode uint8) (Name, bool) {\n")
	b.WriteString("\tswitch opcode {\n")
	for _, rec := range table.Records() {
		desc, ok := descs[rec.Mnemonic]
		if !ok {
			return nil, &MissingDescriptionError{Mnemonic: rec.Mnemonic}
		}
		fmt.Fprintf(&b, "\tcase 0x%02x:\n", rec.Opcode)
		fmt.Fprintf(&b, "\t\treturn Name{Mnemonic: %q, Description: %q}, true\n", rec.Mnemonic, desc)
	}
	b.WriteString("\tdefault:\n")
	b.WriteString("\t\treturn Name{}, false\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n")

	return gofmt("name table", b.Bytes())
}
