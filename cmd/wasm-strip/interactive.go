package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wasmkit/wasm-strip/wasm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// customInfo is one custom section of the loaded module, identified by its
// occurrence order among custom sections (names may repeat).
type customInfo struct {
	name string
	size int
	drop bool
}

type modelState int

const (
	stateSelect modelState = iota
	stateOutput
	stateDone
)

type interactiveModel struct {
	err      error
	filename string
	data     []byte
	customs  []customInfo
	output   textinput.Model
	result   string
	cursor   int
	state    modelState
}

func newInteractiveModel(filename string, data []byte, defaultOut string) (*interactiveModel, error) {
	w, err := wasm.NewWalker(data)
	if err != nil {
		return nil, err
	}
	var customs []customInfo
	for w.Next() {
		sec := w.Section()
		if sec.IsCustom() {
			customs = append(customs, customInfo{name: sec.Name, size: sec.Size()})
		}
	}
	if err := w.Err(); err != nil {
		return nil, err
	}

	ti := textinput.New()
	ti.Prompt = "output: "
	ti.SetValue(defaultOut)
	ti.Width = 48

	return &interactiveModel{
		filename: filename,
		data:     data,
		customs:  customs,
		output:   ti,
		state:    stateSelect,
	}, nil
}

type writtenMsg struct {
	err  error
	path string
	size int
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateOutput {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelect && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == stateSelect && m.cursor < len(m.customs)-1 {
				m.cursor++
			}

		case " ":
			if m.state == stateSelect && len(m.customs) > 0 {
				m.customs[m.cursor].drop = !m.customs[m.cursor].drop
				return m, nil
			}

		case "a":
			if m.state == stateSelect {
				for i := range m.customs {
					m.customs[i].drop = true
				}
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSelect:
				m.state = stateOutput
				m.output.Focus()
			case stateOutput:
				return m, m.writeResult
			case stateDone:
				return m, tea.Quit
			}

		case "esc":
			if m.state == stateOutput {
				m.state = stateSelect
				m.output.Blur()
			}
		}

	case writtenMsg:
		m.err = msg.err
		if msg.err == nil {
			m.result = fmt.Sprintf("wrote %s (%d bytes)", msg.path, msg.size)
		}
		m.state = stateDone
	}

	if m.state == stateOutput {
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	return m, nil
}

// writeResult re-walks the module and drops exactly the custom sections the
// user marked, by occurrence order.
func (m *interactiveModel) writeResult() tea.Msg {
	w, err := wasm.NewWalker(m.data)
	if err != nil {
		return writtenMsg{err: err}
	}

	out := wasm.NewBuilder()
	custom := 0
	for w.Next() {
		sec := w.Section()
		if sec.IsCustom() {
			drop := custom < len(m.customs) && m.customs[custom].drop
			custom++
			if drop {
				continue
			}
		}
		out.Section(sec.ID, sec.Contents)
	}
	if err := w.Err(); err != nil {
		return writtenMsg{err: err}
	}

	path := m.output.Value()
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return writtenMsg{err: err}
	}
	return writtenMsg{path: path, size: out.Len()}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wasm-strip"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelect:
		if len(m.customs) == 0 {
			b.WriteString("No custom sections in this module.\n\n")
			b.WriteString(helpStyle.Render("enter write copy • q quit"))
			break
		}
		b.WriteString("Select custom sections to strip:\n\n")
		for i, c := range m.customs {
			mark := "[ ]"
			if c.drop {
				mark = "[x]"
			}
			line := fmt.Sprintf("%s %s %s", mark, nameStyle.Render(c.name),
				sizeStyle.Render(fmt.Sprintf("(%d bytes)", c.size)))
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> "))
				b.WriteString(line)
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ move • space toggle • a all • enter continue • q quit"))

	case stateOutput:
		b.WriteString("Write stripped module to:\n\n")
		b.WriteString(m.output.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter write • esc back"))

	case stateDone:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter quit"))
	}

	return b.String()
}

func runInteractive(filename string, data []byte, defaultOut string) error {
	model, err := newInteractiveModel(filename, data, defaultOut)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
