package strip_test

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wasmkit/wasm-strip/wasm"
)

// executableFixture builds a small but complete module: one nullary
// function with an empty body, plus the custom sections a toolchain
// typically emits around it.
func executableFixture() []byte {
	b := wasm.NewBuilder()
	b.Section(wasm.SectionType, []byte{0x01, 0x60, 0x00, 0x00}) // () -> ()
	b.Section(wasm.SectionFunction, []byte{0x01, 0x00})
	b.CustomSection(".debug_info", []byte{0xDE, 0xAD})
	b.Section(wasm.SectionCode, []byte{0x01, 0x02, 0x00, 0x0B}) // one empty body
	b.CustomSection("name", []byte{0x00, 0x01, 0x00})
	b.CustomSection("producers", []byte{0x00})
	return b.Bytes()
}

// The stripped output must still be a well-formed module, not just a
// byte-plausible one. Compile it with a real runtime to prove it.
func TestStrippedModuleCompiles(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name     string
		all      bool
		patterns []string
	}{
		{name: "default mode"},
		{name: "strip all", all: true},
		{name: "pattern mode", patterns: []string{`^\.debug_`, "producers"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out := mustStrip(t, executableFixture(), tc.all, tc.patterns)

			r := wazero.NewRuntime(ctx)
			defer r.Close(ctx)

			if _, err := r.CompileModule(ctx, out); err != nil {
				t.Fatalf("stripped module no longer compiles: %v", err)
			}
		})
	}
}
