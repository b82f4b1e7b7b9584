package insts_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chiplet/nes/insts"
	"github.com/chiplet/nes/isa"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("immediate addressing", func() {
		// ADC #$05 -> 69 05
		It("should decode ADC #$05", func() {
			inst, err := decoder.DecodeBytes([]byte{0x69, 0x05})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.ADC))
			Expect(inst.Opcode).To(Equal(uint8(0x69)))
			Expect(inst.Mode).To(Equal(insts.Immediate))
			Expect(inst.Operand).To(Equal(uint16(0x05)))
			Expect(inst.Offset).To(Equal(int8(0)))
		})

		// LDX #$FF -> a2 ff
		It("should zero-extend the immediate byte", func() {
			inst, err := decoder.DecodeBytes([]byte{0xa2, 0xff})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.LDX))
			Expect(inst.Operand).To(Equal(uint16(0x00ff)))
		})
	})

	Describe("implied and accumulator addressing", func() {
		// DEX -> ca
		It("should decode DEX", func() {
			inst, err := decoder.DecodeBytes([]byte{0xca})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.DEX))
			Expect(inst.Mode).To(Equal(insts.Implied))
			Expect(inst.Operand).To(Equal(uint16(0)))
		})

		// ASL A -> 0a
		It("should decode ASL A", func() {
			inst, err := decoder.DecodeBytes([]byte{0x0a})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.ASL))
			Expect(inst.Mode).To(Equal(insts.Accumulator))
		})

		It("should consume only the opcode byte", func() {
			r := insts.NewReader([]byte{0xca, 0x69, 0x05})

			inst, err := decoder.Decode(r)

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.DEX))
			Expect(r.Pos()).To(Equal(1))
		})
	})

	Describe("absolute addressing", func() {
		// JMP $1234 -> 4c 34 12
		It("should read the address low byte first", func() {
			inst, err := decoder.DecodeBytes([]byte{0x4c, 0x34, 0x12})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.JMP))
			Expect(inst.Mode).To(Equal(insts.Absolute))
			Expect(inst.Operand).To(Equal(uint16(0x1234)))
		})

		// STA $0200,X -> 9d 00 02
		It("should decode STA $0200,X", func() {
			inst, err := decoder.DecodeBytes([]byte{0x9d, 0x00, 0x02})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.STA))
			Expect(inst.Mode).To(Equal(insts.AbsoluteX))
			Expect(inst.Operand).To(Equal(uint16(0x0200)))
		})

		// LDA $4000,Y -> b9 00 40
		It("should decode LDA $4000,Y", func() {
			inst, err := decoder.DecodeBytes([]byte{0xb9, 0x00, 0x40})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.LDA))
			Expect(inst.Mode).To(Equal(insts.AbsoluteY))
			Expect(inst.Operand).To(Equal(uint16(0x4000)))
		})

		// JMP ($FFFC) -> 6c fc ff
		It("should decode JMP ($FFFC)", func() {
			inst, err := decoder.DecodeBytes([]byte{0x6c, 0xfc, 0xff})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.JMP))
			Expect(inst.Mode).To(Equal(insts.Indirect))
			Expect(inst.Operand).To(Equal(uint16(0xfffc)))
		})
	})

	Describe("zero page addressing", func() {
		// ADC $42 -> 65 42
		It("should decode ADC $42", func() {
			inst, err := decoder.DecodeBytes([]byte{0x65, 0x42})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.ADC))
			Expect(inst.Mode).To(Equal(insts.ZeroPage))
			Expect(inst.Operand).To(Equal(uint16(0x42)))
		})

		// ADC $42,X -> 75 42
		It("should decode ADC $42,X", func() {
			inst, err := decoder.DecodeBytes([]byte{0x75, 0x42})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mode).To(Equal(insts.ZeroPageX))
			Expect(inst.Operand).To(Equal(uint16(0x42)))
		})

		// LDX $42,Y -> b6 42
		It("should decode LDX $42,Y", func() {
			inst, err := decoder.DecodeBytes([]byte{0xb6, 0x42})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.LDX))
			Expect(inst.Mode).To(Equal(insts.ZeroPageY))
		})
	})

	Describe("indirect addressing through the zero page", func() {
		// ADC ($40,X) -> 61 40
		It("should decode ADC ($40,X)", func() {
			inst, err := decoder.DecodeBytes([]byte{0x61, 0x40})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mode).To(Equal(insts.IndexedIndirect))
			Expect(inst.Operand).To(Equal(uint16(0x40)))
		})

		// ADC ($40),Y -> 71 40
		It("should decode ADC ($40),Y", func() {
			inst, err := decoder.DecodeBytes([]byte{0x71, 0x40})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mode).To(Equal(insts.IndirectIndexed))
			Expect(inst.Operand).To(Equal(uint16(0x40)))
		})
	})

	Describe("relative addressing", func() {
		// BCC -1 -> 90 ff
		It("should sign-extend a negative displacement", func() {
			inst, err := decoder.DecodeBytes([]byte{0x90, 0xff})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.BCC))
			Expect(inst.Mode).To(Equal(insts.Relative))
			Expect(inst.Offset).To(Equal(int8(-1)))
			Expect(inst.Operand).To(Equal(uint16(0)))
		})

		// BCC +127 -> 90 7f
		It("should keep the maximum positive displacement", func() {
			inst, err := decoder.DecodeBytes([]byte{0x90, 0x7f})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Offset).To(Equal(int8(127)))
		})

		// BEQ -128 -> f0 80
		It("should keep the minimum negative displacement", func() {
			inst, err := decoder.DecodeBytes([]byte{0xf0, 0x80})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.BEQ))
			Expect(inst.Offset).To(Equal(int8(-128)))
		})
	})

	Describe("error handling", func() {
		It("should report an unassigned opcode", func() {
			inst, err := decoder.DecodeBytes([]byte{0x02})

			Expect(inst).To(BeNil())
			var uoe *insts.UnknownOpcodeError
			Expect(errors.As(err, &uoe)).To(BeTrue())
			Expect(uoe.Opcode).To(Equal(uint8(0x02)))
			Expect(err.Error()).To(Equal("unknown opcode 0x02"))
		})

		It("should report an empty stream", func() {
			inst, err := decoder.DecodeBytes(nil)

			Expect(inst).To(BeNil())
			var ibe *insts.InsufficientBytesError
			Expect(errors.As(err, &ibe)).To(BeTrue())
			Expect(ibe.Need).To(Equal(1))
			Expect(ibe.Have).To(Equal(0))
		})

		It("should report a truncated one-byte operand", func() {
			inst, err := decoder.DecodeBytes([]byte{0x69})

			Expect(inst).To(BeNil())
			var ibe *insts.InsufficientBytesError
			Expect(errors.As(err, &ibe)).To(BeTrue())
			Expect(ibe.Need).To(Equal(1))
			Expect(ibe.Have).To(Equal(0))
		})

		It("should report a truncated address operand", func() {
			inst, err := decoder.DecodeBytes([]byte{0x4c, 0x34})

			Expect(inst).To(BeNil())
			var ibe *insts.InsufficientBytesError
			Expect(errors.As(err, &ibe)).To(BeTrue())
			Expect(ibe.Need).To(Equal(2))
			Expect(ibe.Have).To(Equal(1))
		})

		It("should return a typed result for every byte value", func() {
			for op := 0; op < 256; op++ {
				inst, err := decoder.DecodeBytes([]byte{uint8(op), 0x00, 0x00})
				if err != nil {
					var uoe *insts.UnknownOpcodeError
					Expect(errors.As(err, &uoe)).To(BeTrue(), "opcode 0x%02x", op)
					Expect(uoe.Opcode).To(Equal(uint8(op)))
				} else {
					Expect(inst.Opcode).To(Equal(uint8(op)))
				}
			}
		})
	})

	Describe("agreement with the instruction table", func() {
		It("should decode every table record to its opcode, mnemonic, and mode", func() {
			for _, rec := range isa.MOS6502().Records() {
				r := insts.NewReader([]byte{rec.Opcode, 0x00, 0x00})

				inst, err := decoder.Decode(r)

				Expect(err).ToNot(HaveOccurred(), "opcode 0x%02x", rec.Opcode)
				Expect(inst.Opcode).To(Equal(rec.Opcode))
				Expect(inst.Mnemonic.String()).To(Equal(rec.Mnemonic), "opcode 0x%02x", rec.Opcode)
				Expect(inst.Mode.String()).To(Equal(rec.Mode.String()), "opcode 0x%02x", rec.Opcode)
				Expect(r.Pos()).To(Equal(rec.Size), "opcode 0x%02x", rec.Opcode)
			}
		})

		It("should reject exactly the opcodes the table leaves unassigned", func() {
			table := isa.MOS6502()
			for op := 0; op < 256; op++ {
				_, assigned := table.Lookup(uint8(op))

				_, err := decoder.DecodeBytes([]byte{uint8(op), 0x00, 0x00})

				if assigned {
					Expect(err).ToNot(HaveOccurred(), "opcode 0x%02x", op)
				} else {
					var uoe *insts.UnknownOpcodeError
					Expect(errors.As(err, &uoe)).To(BeTrue(), "opcode 0x%02x", op)
				}
			}
		})
	})

	Describe("sequential decoding", func() {
		It("should decode a stream instruction by instruction", func() {
			// LDA #$01; ADC #$05; STA $0200; BRK
			r := insts.NewReader([]byte{0xa9, 0x01, 0x69, 0x05, 0x8d, 0x00, 0x02, 0x00})

			inst, err := decoder.Decode(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.LDA))
			Expect(inst.Operand).To(Equal(uint16(0x01)))

			inst, err = decoder.Decode(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.ADC))
			Expect(inst.Operand).To(Equal(uint16(0x05)))

			inst, err = decoder.Decode(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.STA))
			Expect(inst.Operand).To(Equal(uint16(0x0200)))

			inst, err = decoder.Decode(r)
			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.BRK))
			Expect(r.Remaining()).To(Equal(0))
		})

		It("should ignore bytes past the first instruction", func() {
			inst, err := decoder.DecodeBytes([]byte{0xca, 0xde, 0xad})

			Expect(err).ToNot(HaveOccurred())
			Expect(inst.Mnemonic).To(Equal(insts.DEX))
		})
	})
})
