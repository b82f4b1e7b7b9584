package isa_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chiplet/nes/isa"
)

const tableHeader = "addressing    assembler    opc    bytes    cycles\n"

func parseTable(rows ...string) (*isa.Table, error) {
	return isa.ParseTable(strings.NewReader(tableHeader + strings.Join(rows, "\n")))
}

var _ = Describe("ParseTable", func() {
	It("should parse a six-field row", func() {
		table, err := parseTable("immediate     ADC #oper    69     2        2")
		Expect(err).NotTo(HaveOccurred())
		Expect(table.Len()).To(Equal(1))

		rec := table.Records()[0]
		Expect(rec.Mode).To(Equal(isa.Immediate))
		Expect(rec.Mnemonic).To(Equal("ADC"))
		Expect(rec.Operand).To(Equal("#oper"))
		Expect(rec.Opcode).To(Equal(uint8(0x69)))
		Expect(rec.Size).To(Equal(2))
		Expect(rec.Cycles).To(Equal(2))
	})

	It("should parse a five-field row without the operand column", func() {
		table, err := parseTable("implied       BRK          00     1        7")
		Expect(err).NotTo(HaveOccurred())

		rec := table.Records()[0]
		Expect(rec.Mode).To(Equal(isa.Implied))
		Expect(rec.Mnemonic).To(Equal("BRK"))
		Expect(rec.Operand).To(BeEmpty())
		Expect(rec.Opcode).To(Equal(uint8(0x00)))
		Expect(rec.Cycles).To(Equal(7))
	})

	It("should skip blank lines", func() {
		table, err := parseTable(
			"immediate     ADC #oper    69     2        2",
			"",
			"implied       NOP          ea     1        2",
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(table.Len()).To(Equal(2))
	})

	It("should reject a row with too few fields", func() {
		_, err := parseTable("implied BRK 00 1")

		var malformed *isa.MalformedRecordError
		Expect(errors.As(err, &malformed)).To(BeTrue())
		Expect(malformed.Line).To(Equal(2))
	})

	It("should reject a row with too many fields", func() {
		_, err := parseTable("immediate ADC # oper 69 2 2")

		var malformed *isa.MalformedRecordError
		Expect(errors.As(err, &malformed)).To(BeTrue())
	})

	It("should reject an unknown addressing mode", func() {
		_, err := parseTable("indexed       ADC #oper    69     2        2")

		var malformed *isa.MalformedRecordError
		Expect(errors.As(err, &malformed)).To(BeTrue())
		Expect(malformed.Error()).To(ContainSubstring("unknown addressing mode"))
	})

	It("should reject an opcode that is not a hex byte", func() {
		_, err := parseTable("immediate     ADC #oper    xy     2        2")
		Expect(err).To(HaveOccurred())

		_, err = parseTable("immediate     ADC #oper    169    2        2")
		Expect(err).To(HaveOccurred())
	})

	It("should reject a non-positive cycle count", func() {
		_, err := parseTable("immediate     ADC #oper    69     2        0")

		var malformed *isa.MalformedRecordError
		Expect(errors.As(err, &malformed)).To(BeTrue())
	})

	It("should reject a size inconsistent with the addressing mode", func() {
		// Immediate mode consumes one operand byte, so the size must be 2.
		_, err := parseTable("immediate     ADC #oper    69     3        2")

		var malformed *isa.MalformedRecordError
		Expect(errors.As(err, &malformed)).To(BeTrue())
		Expect(malformed.Error()).To(ContainSubstring("does not match addressing mode"))
	})

	It("should reject duplicate opcodes", func() {
		_, err := parseTable(
			"immediate     ADC #oper    69     2        2",
			"immediate     SBC #oper    69     2        2",
		)

		var malformed *isa.MalformedRecordError
		Expect(errors.As(err, &malformed)).To(BeTrue())
		Expect(malformed.Line).To(Equal(3))
		Expect(malformed.Error()).To(ContainSubstring("duplicate opcode 0x69"))
	})
})

var _ = Describe("LoadTable", func() {
	It("should load the embedded table source from disk", func() {
		table, err := isa.LoadTable("instructions.txt")
		Expect(err).NotTo(HaveOccurred())
		Expect(table.Len()).To(Equal(151))
	})

	It("should report a missing file", func() {
		_, err := isa.LoadTable("no_such_table.txt")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Table", func() {
	var table *isa.Table

	BeforeEach(func() {
		var err error
		table, err = parseTable(
			"immediate     ADC #oper    69     2        2",
			"zeropage      ADC oper     65     2        3",
			"implied       NOP          ea     1        2",
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should look up records by opcode", func() {
		rec, ok := table.Lookup(0x65)
		Expect(ok).To(BeTrue())
		Expect(rec.Mnemonic).To(Equal("ADC"))
		Expect(rec.Mode).To(Equal(isa.ZeroPage))
	})

	It("should report unassigned opcodes", func() {
		_, ok := table.Lookup(0x02)
		Expect(ok).To(BeFalse())
	})

	It("should list distinct mnemonics in first-appearance order", func() {
		Expect(table.Mnemonics()).To(Equal([]string{"ADC", "NOP"}))
	})
})
