// Package wasm provides section-level access to WebAssembly core module
// binaries.
//
// The Walker decodes a module into an ordered sequence of Section
// descriptors without copying section contents: every Section borrows the
// walked buffer. It understands the frame of every standard section kind,
// passes unrecognized ids through with their raw contents, and decodes the
// name of custom sections. It does not validate section contents; callers
// that re-emit sections copy bytes verbatim.
//
// Binaries using the component-model encoding (layer 1 in the version word)
// are rejected before the walk starts.
//
//	w, err := wasm.NewWalker(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for w.Next() {
//	    sec := w.Section()
//	    fmt.Println(wasm.SectionName(sec.ID), sec.Size())
//	}
//	if err := w.Err(); err != nil {
//	    log.Fatal(err)
//	}
package wasm
