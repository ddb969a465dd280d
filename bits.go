package rmq

import "math/bits"

// log2Floor returns floor(log2(x)) for x > 0.
func log2Floor(x uint64) uint64 {
	return uint64(bits.Len64(x) - 1)
}
