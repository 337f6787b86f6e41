package wasm

import "fmt"

// Section describes one framed section of a module. Contents is a subslice
// of the walked buffer covering the section contents after the id byte and
// the LEB128 size prefix; re-emission re-derives that framing.
type Section struct {
	// ID is the raw section id byte, including ids the walker does not
	// recognize.
	ID byte

	// Contents borrows the input buffer for the section contents.
	Contents []byte

	// Name is the decoded section name. Set only for custom sections.
	Name string

	// Payload borrows the custom section contents after the name field.
	// Set only for custom sections.
	Payload []byte
}

// IsCustom reports whether the section is a custom section.
func (s Section) IsCustom() bool {
	return s.ID == SectionCustom
}

// Size returns the size of the section contents in bytes.
func (s Section) Size() int {
	return len(s.Contents)
}

var sectionNames = map[byte]string{
	SectionCustom:    "custom",
	SectionType:      "type",
	SectionImport:    "import",
	SectionFunction:  "function",
	SectionTable:     "table",
	SectionMemory:    "memory",
	SectionGlobal:    "global",
	SectionExport:    "export",
	SectionStart:     "start",
	SectionElement:   "element",
	SectionCode:      "code",
	SectionData:      "data",
	SectionDataCount: "data count",
	SectionTag:       "tag",
}

// SectionName returns the display name for a section id. Unrecognized ids
// render with their raw value.
func SectionName(id byte) string {
	if name, ok := sectionNames[id]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02x)", id)
}
