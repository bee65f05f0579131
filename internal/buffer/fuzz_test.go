package buffer

import (
	"bytes"
	"testing"
)

// FuzzInsert checks Insert against slice arithmetic on both strategies.
func FuzzInsert(f *testing.F) {
	f.Add([]byte("hello"), 0, []byte("x"), 0)
	f.Add([]byte("hello"), 5, []byte("x"), 16)
	f.Add([]byte("hello"), 3, []byte("world"), 8)
	f.Add([]byte(""), 0, []byte("test"), 0)
	f.Add([]byte("\x00\xff"), 1, []byte("\x00"), 4)

	f.Fuzz(func(t *testing.T, initial []byte, pos int, insert []byte, reserve int) {
		pos = int(uint(pos) % uint(len(initial)+1))
		reserve %= 4096

		b := New(nil)
		b.Append(initial)
		b.GrowTo(reserve)
		if err := b.Insert(pos, insert); err != nil {
			t.Fatalf("Insert(%d) error: %v", pos, err)
		}

		expected := append(append(append([]byte(nil), initial[:pos]...), insert...), initial[pos:]...)
		if !bytes.Equal(b.Bytes(), expected) {
			t.Errorf("insert mismatch at pos %d", pos)
		}
		if b.Cap() < b.Len() {
			t.Errorf("Cap() %d < Len() %d", b.Cap(), b.Len())
		}
	})
}

// FuzzEditSequence applies a byte-coded edit script and mirrors it on a plain slice.
func FuzzEditSequence(f *testing.F) {
	f.Add([]byte("abcdef"), []byte{0, 1, 2, 3, 4, 5, 6, 7})
	f.Add([]byte(""), []byte{1, 1, 1, 0, 5})

	f.Fuzz(func(t *testing.T, initial []byte, script []byte) {
		b := New(nil)
		b.Append(initial)
		mirror := append([]byte(nil), initial...)

		for i, op := range script {
			arg := int(op >> 3)
			switch op % 8 {
			case 0:
				b.PushBack(op)
				mirror = append(mirror, op)
			case 1:
				b.PopBack()
				if len(mirror) > 0 {
					mirror = mirror[:len(mirror)-1]
				}
			case 2:
				if len(mirror) > 1<<14 {
					continue
				}
				b.Append(b.Bytes())
				mirror = append(mirror, mirror...)
			case 3:
				if len(mirror) == 0 {
					continue
				}
				pos := arg % len(mirror)
				n := min(arg, len(mirror)-pos)
				_ = b.Erase(pos, arg)
				mirror = append(mirror[:pos], mirror[pos+n:]...)
			case 4:
				pos := arg % (len(mirror) + 1)
				_ = b.Insert(pos, []byte{op, op})
				mirror = append(mirror[:pos], append([]byte{op, op}, mirror[pos:]...)...)
			case 5:
				if len(mirror) == 0 {
					continue
				}
				pos := arg % len(mirror)
				n := min(1, len(mirror)-pos)
				_ = b.Replace(pos, 1, []byte{op})
				mirror = append(mirror[:pos], append([]byte{op}, mirror[pos+n:]...)...)
			case 6:
				b.ShrinkToFit()
			case 7:
				b.GrowTo(b.Len() + arg)
			}

			if !bytes.Equal(b.Bytes(), mirror) {
				t.Fatalf("step %d (op %d): got %q, want %q", i, op%8, b.Bytes(), mirror)
			}
		}
	})
}
