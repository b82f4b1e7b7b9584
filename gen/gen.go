// Package gen emits Go source for the insts package from an isa
// instruction table.
//
// Two generators cover the two generated artifacts: Decoder produces
// the mnemonic declarations and the exhaustive opcode dispatch, Names
// produces the opcode name lookup. Both write through go/format, so
// their output is gofmt clean, and both are deterministic: the same
// input produces byte-identical source.
package gen

import (
	"fmt"
	"go/format"
	"unicode"
)

// header marks generated files following the convention understood by
// go tooling.
const header = "// Code generated by nesgen. DO NOT EDIT.\n\n"

// Generator emits decoder and name table source files.
type Generator struct {
	pkg string
}

// Option configures a Generator.
type Option func(*Generator)

// WithPackageName overrides the package name declared in generated
// files.
func WithPackageName(name string) Option {
	return func(g *Generator) {
		g.pkg = name
	}
}

// NewGenerator creates a Generator targeting the insts package.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{pkg: "insts"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// gofmt runs assembled source through go/format.
func gofmt(what string, src []byte) ([]byte, error) {
	out, err := format.Source(src)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated %s: %w", what, err)
	}
	return out, nil
}

// checkIdent guards mnemonics destined to become Go identifiers.
func checkIdent(s string) error {
	if s == "" {
		return fmt.Errorf("mnemonic is empty")
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return fmt.Errorf("mnemonic %q is not a valid Go identifier", s)
	}
	return nil
}
