package wasm

import (
	"github.com/wasmkit/wasm-strip/wasm/internal/binary"
)

// Builder accumulates an output module. Sections are appended in the order
// given; framing (id byte + LEB128 length) is re-derived per section so the
// result stays structurally valid even when the set of sections differs
// from the source module. The builder owns its buffer exclusively and never
// mutates appended slices.
type Builder struct {
	w *binary.Writer
}

// NewBuilder returns a builder holding the core module preamble.
func NewBuilder() *Builder {
	w := binary.NewWriter()
	w.WriteU32LE(Magic)
	w.WriteU32LE(uint32(Version) | uint32(LayerCore)<<16)
	return &Builder{w: w}
}

// Section appends one section with contents copied verbatim.
func (b *Builder) Section(id byte, contents []byte) {
	b.w.Section(id, contents)
}

// CustomSection appends a custom section assembled from a name and payload.
func (b *Builder) CustomSection(name string, payload []byte) {
	sec := binary.NewWriter()
	sec.WriteName(name)
	sec.WriteBytes(payload)
	b.w.Section(SectionCustom, sec.Bytes())
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return b.w.Len()
}

// Bytes returns the assembled module.
func (b *Builder) Bytes() []byte {
	return b.w.Bytes()
}
