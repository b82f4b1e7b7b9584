// Package main provides the entry point for nesgen.
// nesgen generates the 6502 opcode dispatch and the opcode name table
// from the instruction set description files in the isa package.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/chiplet/nes/gen"
	"github.com/chiplet/nes/isa"
)

var (
	instructionsPath = flag.String("instructions", "isa/instructions.txt", "Path to the instruction table")
	descriptionsPath = flag.String("descriptions", "isa/instruction_descriptions.txt", "Path to the instruction descriptions")
	decoderOut       = flag.String("decoder-out", "insts/decoder_gen.go", "Output path for the generated decoder")
	namesOut         = flag.String("names-out", "insts/names_gen.go", "Output path for the generated name table")
	pkgName          = flag.String("pkg", "insts", "Package name for the generated files")
	check            = flag.Bool("check", false, "Validate the description files without writing anything")
	dump             = flag.Bool("dump", false, "Dump the parsed instruction table")
	verbose          = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Usage: nesgen [options]\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	table, err := isa.LoadTable(*instructionsPath)
	if err != nil {
		logrus.Fatalf("Error loading instruction table: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"path":    *instructionsPath,
		"records": table.Len(),
	}).Debug("Loaded instruction table")

	descs, err := isa.LoadDescriptions(*descriptionsPath)
	if err != nil {
		logrus.Fatalf("Error loading instruction descriptions: %v", err)
	}
	logrus.WithFields(logrus.Fields{
		"path":      *descriptionsPath,
		"mnemonics": len(descs),
	}).Debug("Loaded instruction descriptions")

	if *dump {
		spew.Dump(table.Records())
		return
	}

	g := gen.NewGenerator(gen.WithPackageName(*pkgName))

	// Generate both outputs before writing either so a failure cannot
	// leave one file regenerated and the other stale.
	decoderSrc, err := g.Decoder(table)
	if err != nil {
		logrus.Fatalf("Error generating decoder: %v", err)
	}
	namesSrc, err := g.Names(table, descs)
	if err != nil {
		logrus.Fatalf("Error generating name table: %v", err)
	}

	if *check {
		logrus.WithFields(logrus.Fields{
			"records":   table.Len(),
			"mnemonics": len(descs),
		}).Info("Description files are consistent")
		return
	}

	if err := os.WriteFile(*decoderOut, decoderSrc, 0644); err != nil {
		logrus.Fatalf("Error writing %s: %v", *decoderOut, err)
	}
	if err := os.WriteFile(*namesOut, namesSrc, 0644); err != nil {
		logrus.Fatalf("Error writing %s: %v", *namesOut, err)
	}
	logrus.WithFields(logrus.Fields{
		"decoder": *decoderOut,
		"names":   *namesOut,
	}).Debug("Wrote generated files")
}
