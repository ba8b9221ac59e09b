package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clbp/clbp/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for free-text answers.
type TextInput struct {
	Model    textinput.Model
	Prompt   string
	MaxWidth int
	editing  bool
}

// NewTextInput creates a new styled text input holding value.
func NewTextInput(prompt, placeholder, value string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return TextInput{
		Model:    ti,
		Prompt:   prompt,
		MaxWidth: maxWidth,
	}
}

// Editing reports whether keystrokes currently go to the input.
func (t TextInput) Editing() bool { return t.editing }

// Edit focuses the input.
func (t TextInput) Edit() (TextInput, tea.Cmd) {
	t.editing = true
	cmd := t.Model.Focus()
	return t, cmd
}

// Commit blurs the input and returns its trimmed value.
func (t TextInput) Commit() (TextInput, string) {
	t.editing = false
	t.Model.Blur()
	v := strings.TrimSpace(t.Model.Value())
	t.Model.SetValue(v)
	return t, v
}

// Update handles messages while editing.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if !t.editing {
		return t, nil
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the prompt and the input.
func (t TextInput) View(focused bool) string {
	marker := "  "
	if focused {
		marker = "▸ "
	}
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(focused).Render(marker + t.Prompt)
	field := t.Model.View()
	if !t.editing && t.Model.Value() == "" {
		field = theme.Hint.Render(t.Model.Placeholder)
	}
	return prompt + "\n    " + field + "\n"
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
