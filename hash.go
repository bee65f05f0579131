package bytestring

import "github.com/cespare/xxhash/v2"

// Hash returns the 64-bit xxHash of the content. Equal strings hash equally.
func (s *String) Hash() uint64 {
	return xxhash.Sum64(s.Bytes())
}

// HashWith feeds the content into d, for hashing several strings together.
func (s *String) HashWith(d *xxhash.Digest) {
	_, _ = d.Write(s.Bytes())
}
