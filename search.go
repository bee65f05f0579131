package bytestring

import "github.com/dshills/bytestring/internal/scan"

// Forward searches start at pos and return the index of the first match, or
// NotFound. Backward searches return the last match starting at or before
// pos; pass NPos to search the whole string.

// Find returns the index of the first occurrence of needle at or after pos.
// An empty needle matches at pos when pos <= Len().
func (s *String) Find(needle []byte, pos int) int {
	return scan.Find(s.Bytes(), needle, pos)
}

// FindString is Find for a Go string needle.
func (s *String) FindString(needle string, pos int) int {
	return scan.Find(s.Bytes(), []byte(needle), pos)
}

// FindByte returns the index of the first c at or after pos.
func (s *String) FindByte(c byte, pos int) int {
	return scan.FindByte(s.Bytes(), c, pos)
}

// RFind returns the index of the last occurrence of needle, scanning candidate
// end positions from the tail down to pos. Pass 0 to search the whole string.
func (s *String) RFind(needle []byte, pos int) int {
	return scan.RFind(s.Bytes(), needle, pos)
}

// RFindString is RFind for a Go string needle.
func (s *String) RFindString(needle string, pos int) int {
	return scan.RFind(s.Bytes(), []byte(needle), pos)
}

// RFindByte returns the index of the last c at or after pos.
func (s *String) RFindByte(c byte, pos int) int {
	return scan.RFindByte(s.Bytes(), c, pos)
}

// FindFirstOf returns the index of the first byte at or after pos that
// appears in set.
func (s *String) FindFirstOf(set []byte, pos int) int {
	return scan.FindFirstOf(s.Bytes(), set, pos)
}

// FindFirstNotOf returns the index of the first byte at or after pos that
// does not appear in set.
func (s *String) FindFirstNotOf(set []byte, pos int) int {
	return scan.FindFirstNotOf(s.Bytes(), set, pos)
}

// FindLastOf returns the index of the last byte at or after pos that
// appears in set.
func (s *String) FindLastOf(set []byte, pos int) int {
	return scan.FindLastOf(s.Bytes(), set, pos)
}

// FindLastNotOf returns the index of the last byte at or after pos that
// does not appear in set.
func (s *String) FindLastNotOf(set []byte, pos int) int {
	return scan.FindLastNotOf(s.Bytes(), set, pos)
}

// Contains reports whether needle occurs anywhere in s.
func (s *String) Contains(needle []byte) bool {
	return s.Find(needle, 0) != NotFound
}
