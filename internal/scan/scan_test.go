package scan

import (
	"bytes"
	"errors"
	"testing"
	"testing/quick"

	"github.com/dshills/bytestring/internal/buffer"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name   string
		hay    string
		needle string
		pos    int
		want   int
	}{
		{"middle", "hello", "lo", 0, 3},
		{"first of two", "abcabc", "bc", 0, 1},
		{"from pos", "abcabc", "bc", 2, 4},
		{"at pos", "abcabc", "abc", 3, 3},
		{"missing", "hello", "xyz", 0, NotFound},
		{"needle longer", "hi", "high", 0, NotFound},
		{"empty needle", "hello", "", 2, 2},
		{"empty needle at end", "hello", "", 5, 5},
		{"empty needle past end", "hello", "", 6, NotFound},
		{"pos past end", "hello", "l", 9, NotFound},
		{"negative pos", "hello", "h", -3, 0},
		{"empty hay", "", "a", 0, NotFound},
		{"whole", "abc", "abc", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Find([]byte(tt.hay), []byte(tt.needle), tt.pos); got != tt.want {
				t.Errorf("Find(%q, %q, %d) = %d, want %d", tt.hay, tt.needle, tt.pos, got, tt.want)
			}
		})
	}
}

func TestRFind(t *testing.T) {
	tests := []struct {
		name   string
		hay    string
		needle string
		pos    int
		want   int
	}{
		// The last occurrence, not the first; pos is the lowest end index.
		{"last of two", "abcabc", "bc", 0, 4},
		{"whole from zero", "abcabc", "abc", 0, 3},
		{"pos below last match", "abcabc", "abc", 2, 3},
		{"match ending at pos", "abcabc", "bc", 5, 4},
		{"match ending before pos", "abcab", "abc", 3, NotFound},
		{"straddles pos", "xabc", "abc", 2, 1},
		{"single", "hello", "lo", 0, 3},
		{"missing", "hello", "xyz", 0, NotFound},
		{"needle longer", "hi", "high", 0, NotFound},
		{"empty needle", "hello", "", 0, 5},
		{"empty needle at end", "hello", "", 5, 5},
		{"empty needle past end", "hello", "", 6, NotFound},
		{"pos past end", "abcabc", "bc", 6, NotFound},
		{"npos", "abcabc", "bc", NotFound, NotFound},
		{"negative pos", "abc", "a", -1, 0},
		{"overlapping", "aaaa", "aa", 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RFind([]byte(tt.hay), []byte(tt.needle), tt.pos); got != tt.want {
				t.Errorf("RFind(%q, %q, %d) = %d, want %d", tt.hay, tt.needle, tt.pos, got, tt.want)
			}
		})
	}
}

func TestFindByte(t *testing.T) {
	hay := []byte("banana")
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"first", FindByte(hay, 'a', 0), 1},
		{"from pos", FindByte(hay, 'a', 2), 3},
		{"missing", FindByte(hay, 'z', 0), NotFound},
		{"pos past end", FindByte(hay, 'a', 10), NotFound},
		{"reverse whole", RFindByte(hay, 'a', 0), 5},
		{"reverse bounded", RFindByte(hay, 'n', 3), 4},
		{"reverse at pos", RFindByte(hay, 'a', 5), 5},
		{"reverse below pos", RFindByte(hay, 'b', 1), NotFound},
		{"reverse missing", RFindByte(hay, 'z', 0), NotFound},
		{"reverse empty", RFindByte(nil, 'a', 0), NotFound},
		{"reverse negative", RFindByte(hay, 'b', -1), 0},
		{"reverse npos", RFindByte(hay, 'a', NotFound), NotFound},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestFindSets(t *testing.T) {
	hay := []byte("hello, world")
	tests := []struct {
		name string
		got  int
		want int
	}{
		// The set is the argument, not the receiver's own bytes.
		{"first of", FindFirstOf(hay, []byte("ow"), 0), 4},
		{"first of from pos", FindFirstOf(hay, []byte("ow"), 5), 7},
		{"first of none", FindFirstOf(hay, []byte("xyz"), 0), NotFound},
		{"first of empty set", FindFirstOf(hay, nil, 0), NotFound},
		{"first not of", FindFirstNotOf(hay, []byte("hel"), 0), 4},
		{"first not of all", FindFirstNotOf([]byte("aaa"), []byte("a"), 0), NotFound},
		{"last of", FindLastOf(hay, []byte("lo"), 0), 10},
		{"last of bounded", FindLastOf(hay, []byte("h"), 1), NotFound},
		{"last of at pos", FindLastOf(hay, []byte("lo"), 10), 10},
		{"last of past pos", FindLastOf(hay, []byte("lo"), 11), NotFound},
		{"last of none", FindLastOf(hay, []byte("xyz"), 0), NotFound},
		{"last not of", FindLastNotOf(hay, []byte("dlr"), 0), 8},
		{"last not of bounded", FindLastNotOf(hay, []byte("dlr"), 9), NotFound},
		{"last not of empty set", FindLastNotOf(hay, nil, 0), 11},
		{"last not of negative", FindLastNotOf(hay, nil, -1), 11},
		{"last not of npos", FindLastNotOf(hay, nil, NotFound), NotFound},
		{"high bytes", FindFirstOf([]byte("a\xffb"), []byte("\xff"), 0), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"abc", "abd", -1},
		{"abd", "abc", 1},
		{"abc", "abc", 0},
		{"ab", "abc", -1},
		{"abc", "ab", 1},
		{"", "", 0},
		{"", "a", -1},
		{"\xff", "a", 1},
	}
	for _, tt := range tests {
		if got := Compare([]byte(tt.a), []byte(tt.b)); got != tt.want {
			t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCompareMatchesBytes(t *testing.T) {
	f := func(a, b []byte) bool {
		return Compare(a, b) == bytes.Compare(a, b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestFindMatchesBytesIndex(t *testing.T) {
	f := func(hay, needle []byte) bool {
		if len(needle) > 3 {
			needle = needle[:3]
		}
		want := bytes.Index(hay, needle)
		if want < 0 {
			want = NotFound
		}
		wantLast := bytes.LastIndex(hay, needle)
		if wantLast < 0 {
			wantLast = NotFound
		}
		return Find(hay, needle, 0) == want && RFind(hay, needle, 0) == wantLast
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestWindow(t *testing.T) {
	p := []byte("hello")
	tests := []struct {
		pos, n  int
		want    string
		wantErr bool
	}{
		{1, 3, "ell", false},
		{1, 100, "ello", false},
		{0, -2, "", false},
		{5, 1, "", false},
		{6, 1, "", true},
		{-1, 1, "", true},
	}
	for _, tt := range tests {
		got, err := Window("substr", p, tt.pos, tt.n)
		if tt.wantErr {
			var rerr *buffer.RangeError
			if !errors.As(err, &rerr) || !errors.Is(err, buffer.ErrOutOfRange) {
				t.Errorf("Window(%d, %d) error = %v, want RangeError", tt.pos, tt.n, err)
			}
			continue
		}
		if err != nil || string(got) != tt.want {
			t.Errorf("Window(%d, %d) = %q, %v, want %q", tt.pos, tt.n, got, err, tt.want)
		}
	}
}
