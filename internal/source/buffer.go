// Package source owns the raw bytes of a single compilation unit and the
// byte-offset locations that point into them.
package source

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Buffer owns the bytes of one source file. A Buffer is constructed once per
// compilation and outlives every pipeline stage that references it.
type Buffer struct {
	name  string
	bytes []byte

	// lineStarts[i] is the byte offset of the first byte of line i+1.
	// Built lazily on first use by LineCol.
	lineStarts []int
}

// bomDecoder strips a leading UTF-8/UTF-16 byte-order mark, if any, falling
// back to plain UTF-8 otherwise. Source files saved by editors on Windows
// commonly carry a BOM the lexer would otherwise see as an invalid byte.
var bomDecoder = unicode.BOMOverride(unicode.UTF8.NewDecoder())

// New wraps raw bytes already read into memory under the given display
// name, stripping any byte-order mark and verifying the result is valid
// UTF-8 (spec.md §3.1's source encoding requirement).
func New(name string, data []byte) (*Buffer, error) {
	stripped, _, err := transform.Bytes(bomDecoder, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if !utf8.Valid(stripped) {
		return nil, fmt.Errorf("%s: not valid UTF-8", name)
	}
	return &Buffer{name: name, bytes: stripped}, nil
}

// Load reads path off disk and wraps it as a Buffer.
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, data)
}

// Name returns the display name of the buffer (usually the file path, or
// "<stdin>"/"<eval>" for synthetic buffers).
func (b *Buffer) Name() string { return b.name }

// Bytes returns the full underlying byte slice. Callers must not mutate it.
func (b *Buffer) Bytes() []byte { return b.bytes }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.bytes) }

// Slice returns the bytes covered by r. r must be a valid range into b.
func (b *Buffer) Slice(r Range) []byte {
	return b.bytes[r.Start:r.End]
}

// Text is a convenience wrapper around Slice that returns a string.
func (b *Buffer) Text(r Range) string {
	return string(b.Slice(r))
}

func (b *Buffer) ensureLineStarts() {
	if b.lineStarts != nil {
		return
	}
	starts := make([]int, 1, 64)
	starts[0] = 0
	for i, c := range b.bytes {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	b.lineStarts = starts
}

// LineCol converts a byte offset into a 1-based line and column. Column is
// a rune count from the start of the line, matching the way the lexer
// reports positions.
func (b *Buffer) LineCol(loc Location) (line, col int) {
	b.ensureLineStarts()
	off := int(loc)
	if off > len(b.bytes) {
		off = len(b.bytes)
	}

	lo, hi := 0, len(b.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lineStarts[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	lineStart := b.lineStarts[lo]
	col = utf8.RuneCount(b.bytes[lineStart:off]) + 1
	return lo + 1, col
}

// LineText returns the text of the given 1-based line, without its
// terminating newline.
func (b *Buffer) LineText(line int) string {
	b.ensureLineStarts()
	if line < 1 || line > len(b.lineStarts) {
		return ""
	}
	start := b.lineStarts[line-1]
	end := len(b.bytes)
	if line < len(b.lineStarts) {
		end = b.lineStarts[line] - 1
	}
	return strings.TrimRight(string(b.bytes[start:end]), "\r")
}
