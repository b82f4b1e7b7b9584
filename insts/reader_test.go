package insts_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chiplet/nes/insts"
)

var _ = Describe("Reader", func() {
	Describe("ReadU8", func() {
		It("should consume bytes in order", func() {
			r := insts.NewReader([]byte{0xa9, 0x01, 0xff})

			b, err := r.ReadU8()
			Expect(err).ToNot(HaveOccurred())
			Expect(b).To(Equal(uint8(0xa9)))

			b, err = r.ReadU8()
			Expect(err).ToNot(HaveOccurred())
			Expect(b).To(Equal(uint8(0x01)))

			Expect(r.Pos()).To(Equal(2))
			Expect(r.Remaining()).To(Equal(1))
		})

		It("should fail on an exhausted stream", func() {
			r := insts.NewReader(nil)

			_, err := r.ReadU8()

			var ibe *insts.InsufficientBytesError
			Expect(errors.As(err, &ibe)).To(BeTrue())
			Expect(ibe.Need).To(Equal(1))
			Expect(ibe.Have).To(Equal(0))
		})
	})

	Describe("ReadU16LE", func() {
		It("should read the low byte first", func() {
			r := insts.NewReader([]byte{0x34, 0x12})

			v, err := r.ReadU16LE()
			Expect(err).ToNot(HaveOccurred())
			Expect(v).To(Equal(uint16(0x1234)))
			Expect(r.Pos()).To(Equal(2))
		})

		It("should fail without consuming when one byte remains", func() {
			r := insts.NewReader([]byte{0x4c, 0x34})
			_, err := r.ReadU8()
			Expect(err).ToNot(HaveOccurred())

			_, err = r.ReadU16LE()

			var ibe *insts.InsufficientBytesError
			Expect(errors.As(err, &ibe)).To(BeTrue())
			Expect(ibe.Need).To(Equal(2))
			Expect(ibe.Have).To(Equal(1))
			Expect(r.Pos()).To(Equal(1))
		})
	})

	It("should support mixed reads", func() {
		// LDA #$01 followed by JMP $1234
		r := insts.NewReader([]byte{0xa9, 0x01, 0x4c, 0x34, 0x12})

		op, err := r.ReadU8()
		Expect(err).ToNot(HaveOccurred())
		Expect(op).To(Equal(uint8(0xa9)))

		imm, err := r.ReadU8()
		Expect(err).ToNot(HaveOccurred())
		Expect(imm).To(Equal(uint8(0x01)))

		op, err = r.ReadU8()
		Expect(err).ToNot(HaveOccurred())
		Expect(op).To(Equal(uint8(0x4c)))

		addr, err := r.ReadU16LE()
		Expect(err).ToNot(HaveOccurred())
		Expect(addr).To(Equal(uint16(0x1234)))

		Expect(r.Remaining()).To(Equal(0))
	})
})
