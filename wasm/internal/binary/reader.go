package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrOverflow is returned when a LEB128 value exceeds the maximum size.
var ErrOverflow = errors.New("leb128: overflow")

// Reader decodes WASM binary primitives from a byte slice with position
// tracking. It never copies: Take and Rest return subslices of the
// underlying buffer.
type Reader struct {
	data []byte
	pos  int
}

// NewReader creates a Reader over data. The Reader borrows data and never
// mutates it.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the current byte offset into the buffer.
func (r *Reader) Position() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// Take returns the next n bytes as a subslice of the underlying buffer
// and advances past them. It fails with io.ErrUnexpectedEOF when fewer
// than n bytes remain.
func (r *Reader) Take(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.pos {
		return nil, io.ErrUnexpectedEOF
	}
	s := r.data[r.pos : r.pos+n]
	r.pos += n
	return s, nil
}

// Rest returns all unread bytes as a subslice and advances to the end.
func (r *Reader) Rest() []byte {
	s := r.data[r.pos:]
	r.pos = len(r.data)
	return s
}

// ReadU32 reads an unsigned LEB128 encoded uint32.
func (r *Reader) ReadU32() (uint32, error) {
	var result uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && shift > 0 {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 35 {
			return 0, r.wrapError(ErrOverflow)
		}
	}
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, error) {
	buf, err := r.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadName reads a UTF-8 encoded name (length-prefixed byte sequence).
func (r *Reader) ReadName() (string, error) {
	length, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	data, err := r.Take(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", r.wrapError(errors.New("invalid UTF-8 in name"))
	}
	return string(data), nil
}

func (r *Reader) wrapError(err error) error {
	return fmt.Errorf("at offset %d: %w", r.pos, err)
}

// ParseError represents a structural decoding failure with positional context.
type ParseError struct {
	Err    error
	What   string
	Offset int
}

func (e *ParseError) Error() string {
	if e.What != "" {
		return fmt.Sprintf("wasm: %s at offset %d: %v", e.What, e.Offset, e.Err)
	}
	return fmt.Sprintf("wasm: at offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError at the current position.
func (r *Reader) WrapError(what string, err error) error {
	return &ParseError{
		Offset: r.pos,
		What:   what,
		Err:    err,
	}
}
