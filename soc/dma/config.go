package dma

// Config is the transfer type configuration. Only its top byte is written to
// the hardware, the remaining bits are dropped. The driver passes it on
// without interpretation, the constants below are provided for building it.
type Config uint32

// Data quantity: source and destination element size
const (
	B2B  Config = 0b00 << TTypeQSelShift // byte to byte
	B2UW Config = 0b01 << TTypeQSelShift // byte to zero-extended word
	B2SW Config = 0b10 << TTypeQSelShift // byte to sign-extended word
	W2W  Config = 0b11 << TTypeQSelShift // word to word
)

// Address increment
const (
	SrcConst Config = 0 << 29 // read from the same address for each element
	SrcInc   Config = 1 << 29 // increment source address after each element
	DstConst Config = 0 << 30
	DstInc   Config = 1 << 30
)

// Endian swaps the byte order of each element.
const Endian Config = 1 << 31

// Quantity returns the data quantity of c, one of B2B, B2UW, B2SW or W2W.
func (c Config) Quantity() Config {
	return c & W2W
}
