// Package wasmstrip removes custom (metadata) sections from WebAssembly
// core module binaries, shrinking distributable modules while preserving
// everything relevant to execution.
//
// # Architecture Overview
//
// The library is organized into a few packages with distinct
// responsibilities:
//
//	wasmstrip/       Root package with the one-call Strip API
//	├── wasm/        Section walker and module builder over raw binaries
//	├── strip/       Retention policy and the single-pass strip pipeline
//	├── render/      Human-readable section listings
//	├── errors/      Structured error types
//	└── cmd/         The wasm-strip command line tool
//
// # Quick Start
//
// Strip with the default policy (every custom section except "name"):
//
//	stripped, err := wasmstrip.Strip(data, wasmstrip.Options{})
//
// Strip all custom sections, or only those matching patterns:
//
//	stripped, err := wasmstrip.Strip(data, wasmstrip.Options{All: true})
//	stripped, err := wasmstrip.Strip(data, wasmstrip.Options{
//	    Delete: []string{"^\\.debug_", "producers"},
//	})
//
// Every section the pass retains is copied byte-for-byte; the output keeps
// the input's section order with dropped sections removed. Binaries using
// the component-model encoding are rejected.
package wasmstrip
