package scan

import "math"

// NotFound is returned by every search that has no match. It is the largest
// representable position, so it never collides with a real index.
const NotFound = math.MaxInt

// Find returns the first index i >= pos at which needle occurs in hay.
// An empty needle matches at pos whenever pos <= len(hay).
func Find(hay, needle []byte, pos int) int {
	pos = max(pos, 0)
	if pos > len(hay) {
		return NotFound
	}
	last := len(hay) - len(needle)
	for i := pos; i <= last; i++ {
		if matchAt(hay, needle, i) {
			return i
		}
	}
	return NotFound
}

// RFind returns the start of the last occurrence of needle in hay whose final
// byte lies at or after pos. pos <= 0 searches the whole of hay; pos >=
// len(hay), including NotFound, leaves nothing to search. Candidate end
// positions are tried from the tail backward and compared right to left.
// An empty needle matches at len(hay).
func RFind(hay, needle []byte, pos int) int {
	pos = max(pos, 0)
	if len(needle) == 0 {
		if pos <= len(hay) {
			return len(hay)
		}
		return NotFound
	}
	for end := len(hay) - 1; end >= max(pos, len(needle)-1); end-- {
		if start := end - len(needle) + 1; matchBackward(hay, needle, start) {
			return start
		}
	}
	return NotFound
}

// FindByte returns the first index i >= pos holding c.
func FindByte(hay []byte, c byte, pos int) int {
	for i := max(pos, 0); i < len(hay); i++ {
		if hay[i] == c {
			return i
		}
	}
	return NotFound
}

// RFindByte returns the last index i >= pos holding c, scanning from the tail.
func RFindByte(hay []byte, c byte, pos int) int {
	for i := len(hay) - 1; i >= max(pos, 0); i-- {
		if hay[i] == c {
			return i
		}
	}
	return NotFound
}

// Set searches

// FindFirstOf returns the first index i >= pos whose byte is in set.
func FindFirstOf(hay, set []byte, pos int) int {
	return forward(hay, newByteSet(set), true, pos)
}

// FindFirstNotOf returns the first index i >= pos whose byte is not in set.
func FindFirstNotOf(hay, set []byte, pos int) int {
	return forward(hay, newByteSet(set), false, pos)
}

// FindLastOf returns the last index i >= pos whose byte is in set.
func FindLastOf(hay, set []byte, pos int) int {
	return backward(hay, newByteSet(set), true, pos)
}

// FindLastNotOf returns the last index i >= pos whose byte is not in set.
func FindLastNotOf(hay, set []byte, pos int) int {
	return backward(hay, newByteSet(set), false, pos)
}

// byteSet is a membership table over raw bytes. bytes.IndexAny decodes its
// argument as UTF-8, which would turn bytes >= 0x80 into U+FFFD.
type byteSet [256]bool

func newByteSet(set []byte) *byteSet {
	var s byteSet
	for _, c := range set {
		s[c] = true
	}
	return &s
}

func forward(hay []byte, set *byteSet, want bool, pos int) int {
	for i := max(pos, 0); i < len(hay); i++ {
		if set[hay[i]] == want {
			return i
		}
	}
	return NotFound
}

// backward scans from the tail down to pos, so pos is the lowest index that
// may match.
func backward(hay []byte, set *byteSet, want bool, pos int) int {
	for i := len(hay) - 1; i >= max(pos, 0); i-- {
		if set[hay[i]] == want {
			return i
		}
	}
	return NotFound
}

func matchAt(hay, needle []byte, i int) bool {
	for j := range needle {
		if hay[i+j] != needle[j] {
			return false
		}
	}
	return true
}

func matchBackward(hay, needle []byte, i int) bool {
	for j := len(needle) - 1; j >= 0; j-- {
		if hay[i+j] != needle[j] {
			return false
		}
	}
	return true
}
