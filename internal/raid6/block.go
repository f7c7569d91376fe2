package raid6

import "unsafe"

// wordsView reinterprets a disk's byte buffer as a slice of T without
// copying, mirroring the reference library's get_aligned_ptr pointer
// cast. It does not check alignment or length itself; callers must
// check that the buffer is non-empty and aligned to sizeof(T) before
// calling this (see CheckInput), this is just the cast itself.
func wordsView(buf []byte) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), len(buf)/wordSize)
}

func isWordAligned(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&buf[0]))%wordSize == 0
}

// runStripes drives a stripe operator over every stripe in a block,
// advancing a single logical stripe offset applied uniformly to every
// disk rather than selectively bumping per-disk pointers the way the
// reference implementation's template machinery does — spec.md §4.3
// and §9 both call this an equivalent, simpler design.
func runStripes(words [][]T, prime int, apply func(b stripe)) {
	stripeLen := prime - 1
	numStripes := len(words[0]) / stripeLen

	view := make(stripe, len(words))
	for s := 0; s < numStripes; s++ {
		off := s * stripeLen
		for x := range words {
			view[x] = words[x][off : off+stripeLen]
		}
		apply(view)
	}
}
