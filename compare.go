package bytestring

import "github.com/dshills/bytestring/internal/scan"

// Compare orders s against other lexicographically by unsigned byte value.
// A proper prefix orders first. The result is -1, 0 or 1.
func (s *String) Compare(other *String) int {
	return scan.Compare(s.Bytes(), other.Bytes())
}

// CompareBytes orders s against p.
func (s *String) CompareBytes(p []byte) int {
	return scan.Compare(s.Bytes(), p)
}

// CompareString orders s against str.
func (s *String) CompareString(str string) int {
	return scan.Compare(s.Bytes(), []byte(str))
}

// CompareRange orders up to n bytes of s starting at pos against other.
func (s *String) CompareRange(pos, n int, other *String) (int, error) {
	w, err := scan.Window("compare", s.Bytes(), pos, n)
	if err != nil {
		return 0, err
	}
	return scan.Compare(w, other.Bytes()), nil
}

// CompareSub orders up to n bytes of s at pos against up to subn bytes of
// other at subpos.
func (s *String) CompareSub(pos, n int, other *String, subpos, subn int) (int, error) {
	w, err := scan.Window("compare", s.Bytes(), pos, n)
	if err != nil {
		return 0, err
	}
	ow, err := scan.Window("compare", other.Bytes(), subpos, subn)
	if err != nil {
		return 0, err
	}
	return scan.Compare(w, ow), nil
}

// Compare orders a against b. It is suitable for slices.SortFunc.
func Compare(a, b *String) int {
	return a.Compare(b)
}

// Less reports whether a orders before b.
func Less(a, b *String) bool {
	return a.Compare(b) < 0
}
