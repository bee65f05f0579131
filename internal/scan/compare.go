package scan

import "github.com/dshills/bytestring/internal/buffer"

// Compare orders a and b lexicographically by unsigned byte value. When one is
// a prefix of the other the shorter one is less. The result is -1, 0 or 1.
func Compare(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Window returns p[pos:pos+n] with n clamped to the bytes available.
// pos == len(p) yields an empty window; pos > len(p) is a *buffer.RangeError.
func Window(op string, p []byte, pos, n int) ([]byte, error) {
	if pos < 0 || pos > len(p) {
		return nil, &buffer.RangeError{Op: op, Pos: pos, Size: len(p)}
	}
	avail := len(p) - pos
	if n < 0 {
		n = 0
	}
	return p[pos : pos+min(n, avail)], nil
}
