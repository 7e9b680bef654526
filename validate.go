package richtext

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns ErrBinaryInput when src holds a NUL byte or, past a
// small sample, too many control bytes. Binary data is nearly always invalid
// UTF-8 too, so that check runs first; ErrInvalidUTF8 is left for text that
// is merely malformed.
func ValidateInput(src []byte) error {
	if looksBinary(src) {
		return ErrBinaryInput
	}
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	return nil
}

func looksBinary(src []byte) bool {
	if bytes.IndexByte(src, 0) >= 0 {
		return true
	}
	if len(src) < minBinarySample {
		return false
	}
	control := 0
	for _, b := range src {
		if isControlByte(b) {
			control++
		}
	}
	return control*100 >= len(src)*maxControlPct
}

// Tab through carriage return are whitespace, not control.
func isControlByte(b byte) bool {
	if b >= '\t' && b <= '\r' {
		return false
	}
	return b < 0x20 || b == 0x7f
}

func isControlRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	}
	return r < 0x20 || r == 0x7f
}

// sanitize drops invalid UTF-8 and every control rune except newline, carriage
// return and tab.
func sanitize(src []byte) string {
	return strings.Map(func(r rune) rune {
		if isControlRune(r) {
			return -1
		}
		return r
	}, strings.ToValidUTF8(string(src), ""))
}
