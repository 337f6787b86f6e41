package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wasmkit/wasm-strip/wasm"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	customStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Listing renders a table of the module's sections: index, kind, contents
// size, and the name of custom sections. It walks the same binary the
// stripper consumes and fails on the same inputs.
func Listing(data []byte) (string, error) {
	w, err := wasm.NewWalker(data)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%3s  %-14s %10s  %s", "idx", "section", "size", "name")))
	b.WriteByte('\n')

	idx := 0
	for w.Next() {
		sec := w.Section()
		name := ""
		if sec.IsCustom() {
			name = customStyle.Render(sec.Name)
		}
		b.WriteString(fmt.Sprintf("%3d  %-14s %10d  %s", idx, wasm.SectionName(sec.ID), sec.Size(), name))
		b.WriteByte('\n')
		idx++
	}
	if err := w.Err(); err != nil {
		return "", err
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("%d sections, %d bytes", idx, len(data))))
	b.WriteByte('\n')
	return b.String(), nil
}
