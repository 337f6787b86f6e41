package wasm

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the supported core module binary format version.
	Version uint16 = 0x01

	// LayerCore and LayerComponent are the values of the layer field (the
	// upper half of the version word). Component-model binaries carry
	// LayerComponent and are rejected by the walker.
	LayerCore      uint16 = 0x00
	LayerComponent uint16 = 0x01
)

// Section IDs define the binary identifiers for each module section.
// Ids above SectionTag are reserved for future section kinds and are
// passed through by the walker without interpretation.
const (
	SectionCustom    byte = 0  // Custom section (can appear anywhere)
	SectionType      byte = 1  // Type section (function signatures)
	SectionImport    byte = 2  // Import section
	SectionFunction  byte = 3  // Function section (type indices)
	SectionTable     byte = 4  // Table section
	SectionMemory    byte = 5  // Memory section
	SectionGlobal    byte = 6  // Global section
	SectionExport    byte = 7  // Export section
	SectionStart     byte = 8  // Start section
	SectionElement   byte = 9  // Element section
	SectionCode      byte = 10 // Code section (function bodies)
	SectionData      byte = 11 // Data section
	SectionDataCount byte = 12 // Data count section (bulk memory)
	SectionTag       byte = 13 // Tag section (exception handling)
)
