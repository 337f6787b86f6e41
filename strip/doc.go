// Package strip removes custom sections from WebAssembly core modules.
//
// A Policy selects which custom sections to drop; Strip drives the section
// walker and the module builder in a single forward pass, copying every
// retained section verbatim. Section order is preserved exactly: the output
// is the input's section sequence with dropped custom sections removed.
//
//	policy, err := strip.NewPolicy(false, []string{"^\\.debug_"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stripped, err := strip.Strip(data, policy)
//
// The pass either yields a complete output module or an error; it never
// produces partial output. Component-model binaries are rejected.
package strip
