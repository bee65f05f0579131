package buffer

import "unsafe"

// Element lifecycle inside a block.
//
// A slot becomes live through construct and stops being live through destroy.
// Destruction always runs from the highest index down, so a block is torn down
// in the reverse order it was built.

func construct(block []byte, i int, v byte) {
	block[i] = v
}

// constructRange makes src live at block[at:] and returns the index after it.
func constructRange(block []byte, at int, src []byte) int {
	return at + copy(block[at:], src)
}

// constructFill makes n copies of v live at block[at:] and returns the index
// after them.
func constructFill(block []byte, at, n int, v byte) int {
	end := at + n
	for i := at; i < end; i++ {
		construct(block, i, v)
	}
	return end
}

// destroyRange scrubs block[from:to) from the top down.
func destroyRange(block []byte, from, to int) {
	for i := to - 1; i >= from; i-- {
		block[i] = 0
	}
}

// overlaps reports whether p points into any part of block, including the
// slots past its length.
func overlaps(block, p []byte) bool {
	if cap(block) == 0 || len(p) == 0 {
		return false
	}
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(block)))
	bEnd := bStart + uintptr(cap(block))
	pStart := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	pEnd := pStart + uintptr(len(p))
	return pStart < bEnd && bStart < pEnd
}
