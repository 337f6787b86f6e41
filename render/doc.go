// Package render formats WebAssembly modules for human consumption.
//
// It sits outside the strip pipeline: the core only guarantees valid binary
// output, and this package provides the optional textual view of it.
package render
