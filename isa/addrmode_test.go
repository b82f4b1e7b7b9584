package isa_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chiplet/nes/isa"
)

var _ = Describe("AddressingMode", func() {
	It("should parse every category in the table vocabulary", func() {
		for _, name := range []string{
			"accumulator", "absolute", "absolute,X", "absolute,Y",
			"immediate", "implied", "indirect", "(indirect,X)",
			"(indirect),Y", "relative", "zeropage", "zeropage,X",
			"zeropage,Y",
		} {
			mode, err := isa.ParseAddressingMode(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(mode.String()).To(Equal(name))
		}
	})

	It("should reject names outside the vocabulary", func() {
		_, err := isa.ParseAddressingMode("zeropage,Z")
		Expect(err).To(HaveOccurred())
	})

	It("should match case-sensitively", func() {
		_, err := isa.ParseAddressingMode("Immediate")
		Expect(err).To(HaveOccurred())
	})

	Describe("operand policies", func() {
		It("should give accumulator and implied no operand", func() {
			Expect(isa.Accumulator.Policy()).To(Equal(isa.OperandNone))
			Expect(isa.Implied.Policy()).To(Equal(isa.OperandNone))
		})

		It("should give the one-byte modes an unsigned byte operand", func() {
			for _, mode := range []isa.AddressingMode{
				isa.Immediate, isa.IndexedIndirect, isa.IndirectIndexed,
				isa.ZeroPage, isa.ZeroPageX, isa.ZeroPageY,
			} {
				Expect(mode.Policy()).To(Equal(isa.OperandU8))
			}
		})

		It("should give the two-byte modes a little-endian operand", func() {
			for _, mode := range []isa.AddressingMode{
				isa.Absolute, isa.AbsoluteX, isa.AbsoluteY, isa.Indirect,
			} {
				Expect(mode.Policy()).To(Equal(isa.OperandU16))
			}
		})

		It("should give relative a signed displacement", func() {
			Expect(isa.Relative.Policy()).To(Equal(isa.OperandI8))
		})

		It("should report operand widths", func() {
			Expect(isa.OperandNone.Width()).To(Equal(0))
			Expect(isa.OperandU8.Width()).To(Equal(1))
			Expect(isa.OperandU16.Width()).To(Equal(2))
			Expect(isa.OperandI8.Width()).To(Equal(1))
		})
	})
})
