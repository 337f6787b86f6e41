package wasmstrip

import (
	"github.com/wasmkit/wasm-strip/strip"
)

// Options configures a strip pass. The zero value selects the default
// behavior: drop every custom section except the "name" section.
type Options struct {
	// All drops every custom section regardless of name. Takes priority
	// over Delete.
	All bool

	// Delete drops custom sections whose name matches any of these
	// regular expressions.
	Delete []string
}

// Strip removes custom sections from a WebAssembly core module binary
// according to opts and returns the re-assembled module. Non-custom
// sections are always copied verbatim in their original order.
func Strip(data []byte, opts Options) ([]byte, error) {
	policy, err := strip.NewPolicy(opts.All, opts.Delete)
	if err != nil {
		return nil, err
	}
	return strip.Strip(data, policy)
}
