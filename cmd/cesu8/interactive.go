package main

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/cesu8"
	"github.com/wippyai/cesu8/errors"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	byteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	badByteStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#FF6B6B"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// inspectorModel is a live decoder: every keystroke re-decodes the hex
// bytes in the input field and the view renders either the decoded
// text or the classified error with the failing sequence highlighted.
type inspectorModel struct {
	input textinput.Model
	opts  cesu8.Options
}

func newInspectorModel(opts cesu8.Options) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = "ed a0 81 ed b0 80"
	ti.Prompt = "bytes> "
	ti.Focus()
	return &inspectorModel{input: ti, opts: opts}
}

func runInteractive(opts cesu8.Options) error {
	_, err := tea.NewProgram(newInspectorModel(opts)).Run()
	return err
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlJ:
			if m.opts.Variant == cesu8.Java {
				m.opts.Variant = cesu8.Standard
			} else {
				m.opts.Variant = cesu8.Java
			}
			return m, nil
		case tea.KeyCtrlL:
			if m.opts.Policy == cesu8.PreserveUnpaired {
				m.opts.Policy = cesu8.RejectUnpaired
			} else {
				m.opts.Policy = cesu8.PreserveUnpaired
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CESU-8 Inspector"))
	fmt.Fprintf(&b, "  %s\n\n", helpStyle.Render(
		fmt.Sprintf("variant=%s policy=%s", m.opts.Variant, m.opts.Policy)))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	data, err := parseHex([]byte(m.input.Value()))
	if err != nil {
		b.WriteString(errorStyle.Render("input is not valid hex"))
		b.WriteString("\n")
		return m.finish(&b)
	}

	if len(data) > 0 {
		decoded, decErr := cesu8.NewDecoder(m.opts).Decode(data)

		b.WriteString(labelStyle.Render("input  "))
		b.WriteString(renderBytes(data, decErr))
		b.WriteString("\n")

		if decErr != nil {
			b.WriteString(labelStyle.Render("error  "))
			b.WriteString(errorStyle.Render(decErr.Error()))
			b.WriteString("\n")
		} else {
			b.WriteString(labelStyle.Render("text   "))
			b.WriteString(resultStyle.Render(fmt.Sprintf("%q", decoded)))
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("runes  "))
			b.WriteString(byteStyle.Render(renderRunes(decoded)))
			b.WriteString("\n")
			b.WriteString(labelStyle.Render("cesu8  "))
			b.WriteString(byteStyle.Render(fmt.Sprintf("% X", cesu8.NewEncoder(m.opts).Encode(decoded))))
			b.WriteString("\n")
		}
	}

	return m.finish(&b)
}

func (m *inspectorModel) finish(b *strings.Builder) string {
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+j: toggle java variant • ctrl+l: toggle lenient surrogates • esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// renderBytes prints the input hex with the failing sequence's first
// byte highlighted when decoding failed.
func renderBytes(data []byte, decErr error) string {
	badOffset := -1
	var derr *errors.Error
	if stderrors.As(decErr, &derr) {
		badOffset = derr.Offset
	}

	parts := make([]string, len(data))
	for i, c := range data {
		s := fmt.Sprintf("%02X", c)
		if i == badOffset {
			parts[i] = badByteStyle.Render(s)
		} else {
			parts[i] = byteStyle.Render(s)
		}
	}
	return strings.Join(parts, " ")
}

func renderRunes(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, fmt.Sprintf("U+%04X", r))
	}
	return strings.Join(parts, " ")
}
