package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clktmr/neorv32/sim"
)

var _ = Describe("Memory", func() {
	var mem *sim.Memory

	BeforeEach(func() {
		mem = &sim.Memory{}
		mem.Map(0x1000, 16)
		mem.Map(0x8000_0000, 64)
	})

	It("should read back written words in little-endian", func() {
		Expect(mem.Store32(0x1004, 0x1122_3344)).To(Succeed())

		b, err := mem.Load8(0x1004)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(Equal(uint8(0x44)))

		v, err := mem.Load32(0x1004)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint32(0x1122_3344)))
	})

	It("should fault outside of regions", func() {
		_, err := mem.Load8(0x1010)
		Expect(err).To(MatchError(sim.ErrBusFault))
		Expect(mem.Store32(0x100c+4, 0)).To(MatchError(sim.ErrBusFault))
		Expect(mem.WriteAt(make([]byte, 8), 0x100c)).To(MatchError(sim.ErrBusFault))
		Expect(mem.WriteAt(make([]byte, 4), 0x100c)).To(Succeed())
	})

	It("should fault on misaligned words", func() {
		_, err := mem.Load32(0x1002)
		Expect(err).To(MatchError(sim.ErrBusFault))
		Expect(mem.Store32(0x1001, 0)).To(MatchError(sim.ErrBusFault))
	})

	It("should fill mapped ranges only", func() {
		Expect(mem.Fill(0x1004, 8, 0xa5)).To(Succeed())
		v, err := mem.Load32(0x1008)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(uint32(0xa5a5_a5a5)))

		Expect(mem.Fill(0x1000, 1<<31-1, 0xff)).To(MatchError(sim.ErrBusFault))
		b, err := mem.Load8(0x1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(BeZero())

		Expect(mem.Mapped(0x8000_0000, 64)).To(BeTrue())
		Expect(mem.Mapped(0x8000_0000, 65)).To(BeFalse())
	})

	It("should checksum regions", func() {
		data := []byte("123456789")
		Expect(mem.WriteAt(data, 0x8000_0010)).To(Succeed())

		sum, err := mem.CRC8(0x8000_0010, len(data))
		Expect(err).NotTo(HaveOccurred())
		Expect(sum).To(Equal(uint8(0xf4)))

		_, err = mem.CRC8(0x8000_0010, 128)
		Expect(err).To(MatchError(sim.ErrBusFault))
	})
})
