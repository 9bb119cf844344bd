package fee

import "strconv"

// Gas is the abstract unit of computational cost charged for executing a transaction
type Gas uint64

// NewGas converts a raw integer into Gas
func NewGas(value uint64) Gas {
	return Gas(value)
}

// Value returns the raw integer value
func (g Gas) Value() uint64 {
	return uint64(g)
}

// String returns the base 10 representation
func (g Gas) String() string {
	return strconv.FormatUint(uint64(g), 10)
}
