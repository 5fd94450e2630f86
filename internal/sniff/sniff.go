// Package sniff classifies files as text or binary by UTF-8 validity.
package sniff

import (
	"io"
	"os"
	"unicode/utf8"
)

// SniffLen is how many leading bytes are examined.
const SniffLen = 1024

// IsBinary reports whether the file's first SniffLen bytes fail to decode
// as UTF-8. An empty file is text. A multi-byte rune the window cuts off is
// tolerated when the file continues past it; a file that ends in a partial
// rune has nothing left to complete it and is binary. Open and read
// failures are returned to the caller; they do not classify the file.
func IsBinary(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	// One byte past the window tells a cut-off rune apart from a
	// truncated one.
	buf := make([]byte, SniffLen+1)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}

	if n > SniffLen {
		return !utf8.Valid(trimPartialRune(buf[:SniffLen])), nil
	}
	return !utf8.Valid(buf[:n]), nil
}

// trimPartialRune drops the start of a multi-byte rune cut off at the
// sniff boundary. Only a decodable prefix of an unfinished rune is
// removed; bytes that can no longer form a rune stay in place and fail
// validation.
func trimPartialRune(data []byte) []byte {
	end := len(data)
	lim := end - utf8.UTFMax
	if lim < 0 {
		lim = 0
	}
	for start := end - 1; start >= lim; start-- {
		if !utf8.RuneStart(data[start]) {
			continue
		}
		if !utf8.FullRune(data[start:end]) {
			return data[:start]
		}
		break
	}
	return data
}
