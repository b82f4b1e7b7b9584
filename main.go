// Package main provides the entry point for the nes module.
// The module decodes 6502 machine code with a decoder generated from a
// declarative instruction set description.
//
// For the generator CLI, use: go run ./cmd/nesgen
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("nes - 6502 instruction decoding toolkit")
	fmt.Println("Decoder and name table generated from isa/ description files")
	fmt.Println("")
	fmt.Println("Usage: nesgen [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -instructions  Path to the instruction table")
	fmt.Println("  -descriptions  Path to the instruction descriptions")
	fmt.Println("  -decoder-out   Output path for the generated decoder")
	fmt.Println("  -names-out     Output path for the generated name table")
	fmt.Println("  -check         Validate the description files without writing")
	fmt.Println("  -dump          Dump the parsed instruction table")
	fmt.Println("  -v             Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/nesgen' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/nesgen' instead.")
	}
}
