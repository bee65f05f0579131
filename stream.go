package bytestring

import (
	"errors"
	"io"
)

// WriteTo writes the content to w. It implements io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// ReadWord replaces the content with the next whitespace-delimited word from
// r. Leading whitespace is skipped and the delimiter after the word is left
// unread. io.EOF is returned only when no byte of a word was read.
func (s *String) ReadWord(r io.ByteScanner) error {
	s.truncate()

	for {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}
		if !isSpace(c) {
			s.PushBack(c)
			break
		}
	}

	for {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if isSpace(c) {
			return r.UnreadByte()
		}
		s.PushBack(c)
	}
}

// ReadLine replaces the content with the next line from r. The newline is
// consumed and not stored.
func (s *String) ReadLine(r io.ByteReader) error {
	return s.ReadLineDelim(r, '\n')
}

// ReadLineDelim replaces the content with the bytes of r up to delim. The
// delimiter is consumed and not stored. io.EOF is returned only when r was
// already exhausted.
func (s *String) ReadLineDelim(r io.ByteReader, delim byte) error {
	s.truncate()

	for read := false; ; read = true {
		c, err := r.ReadByte()
		if errors.Is(err, io.EOF) && read {
			return nil
		}
		if err != nil {
			return err
		}
		if c == delim {
			return nil
		}
		s.PushBack(c)
	}
}

// truncate drops the content but keeps the block for reuse.
func (s *String) truncate() {
	_ = s.b().Resize(0, 0)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
