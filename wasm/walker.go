package wasm

import (
	"errors"
	"io"

	"github.com/wasmkit/wasm-strip/wasm/internal/binary"
)

// Preamble errors returned by NewWalker.
var (
	ErrInvalidMagic         = errors.New("invalid wasm magic number")
	ErrInvalidVersion       = errors.New("invalid wasm version")
	ErrUnsupportedComponent = errors.New("component model binaries are not supported")
)

// ParseError is the positional decoding failure produced during a walk.
// Callers can recover the byte offset with errors.As.
type ParseError = binary.ParseError

// Walker iterates over the sections of a core module binary. It borrows
// the input buffer for the duration of the walk and never copies section
// contents; each yielded Section aliases the buffer.
//
// Usage follows the bufio.Scanner shape:
//
//	w, err := wasm.NewWalker(data)
//	if err != nil { ... }
//	for w.Next() {
//		sec := w.Section()
//		...
//	}
//	if err := w.Err(); err != nil { ... }
type Walker struct {
	r   *binary.Reader
	sec Section
	err error
}

// NewWalker validates the module preamble and returns a walker positioned
// at the first section. A binary whose layer field declares the component
// encoding fails with ErrUnsupportedComponent; the walk never starts.
func NewWalker(data []byte) (*Walker, error) {
	r := binary.NewReader(data)

	magic, err := r.ReadU32LE()
	if err != nil {
		return nil, r.WrapError("preamble", err)
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}

	// The version word carries the version in the low half and the layer
	// in the high half. Core modules are (1, 0); components are (_, 1).
	word, err := r.ReadU32LE()
	if err != nil {
		return nil, r.WrapError("preamble", err)
	}
	version := uint16(word)
	layer := uint16(word >> 16)
	if layer == LayerComponent {
		return nil, ErrUnsupportedComponent
	}
	if version != Version || layer != LayerCore {
		return nil, ErrInvalidVersion
	}

	return &Walker{r: r}, nil
}

// Next advances to the next section. It returns false at the end of the
// module or on the first structural error; Err distinguishes the two.
func (w *Walker) Next() bool {
	if w.err != nil {
		return false
	}

	id, err := w.r.ReadByte()
	if err != nil {
		// Clean EOF on a section boundary ends the walk.
		if !errors.Is(err, io.EOF) {
			w.err = w.r.WrapError("section header", err)
		}
		return false
	}

	size, err := w.r.ReadU32()
	if err != nil {
		w.err = w.r.WrapError("section size", err)
		return false
	}

	contents, err := w.r.Take(int(size))
	if err != nil {
		w.err = w.r.WrapError("section contents", err)
		return false
	}

	w.sec = Section{ID: id, Contents: contents}
	if id == SectionCustom {
		cr := binary.NewReader(contents)
		name, err := cr.ReadName()
		if err != nil {
			w.err = w.r.WrapError("custom section name", err)
			return false
		}
		w.sec.Name = name
		w.sec.Payload = cr.Rest()
	}
	return true
}

// Section returns the section yielded by the last successful Next.
func (w *Walker) Section() Section {
	return w.sec
}

// Err returns the first structural error encountered, or nil if the walk
// ended at the module boundary.
func (w *Walker) Err() error {
	return w.err
}
