package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clbp/clbp/internal/ui/theme"
)

// Choice is a single-answer selector for scale and radio questions.
type Choice struct {
	Prompt  string
	Values  []string
	Labels  []string
	Value   string
	Focused bool
	// Vertical lists options one per line; scales render inline.
	Vertical bool
	MinLabel string
	MaxLabel string
}

// NewChoice creates a choice over values. labels may be nil, in which case
// the values are shown.
func NewChoice(prompt string, values, labels []string, current string) Choice {
	if labels == nil {
		labels = values
	}
	return Choice{
		Prompt: prompt,
		Values: values,
		Labels: labels,
		Value:  current,
	}
}

func (c Choice) index() int {
	for i, v := range c.Values {
		if v == c.Value {
			return i
		}
	}
	return -1
}

// Update moves the answer with the arrow keys or picks a value by typing
// it. It reports whether the answer changed.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	if !c.Focused || len(c.Values) == 0 {
		return c, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	prev := c.Value
	idx := c.index()
	switch key := kmsg.String(); key {
	case "left", "h":
		if idx < 0 {
			idx = 0
		} else if idx > 0 {
			idx--
		}
		c.Value = c.Values[idx]
	case "right", "l":
		if idx < len(c.Values)-1 {
			idx++
		}
		c.Value = c.Values[idx]
	default:
		for i, v := range c.Values {
			if v == key {
				c.Value = c.Values[i]
				break
			}
		}
	}
	return c, c.Value != prev
}

// View renders the prompt and the options, highlighting the current answer.
func (c Choice) View() string {
	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(c.Focused)
	marker := "  "
	if c.Focused {
		marker = "▸ "
	}
	var b strings.Builder
	b.WriteString(promptStyle.Render(marker+c.Prompt) + "\n")

	render := func(i int) string {
		label := c.Labels[i]
		switch {
		case c.Values[i] == c.Value:
			return theme.Selected.Render("[" + label + "]")
		case c.Focused:
			return theme.Unselected.Render(" " + label + " ")
		default:
			return theme.Pending.Render(" " + label + " ")
		}
	}

	if c.Vertical {
		for i := range c.Values {
			b.WriteString("    " + render(i) + "\n")
		}
		return b.String()
	}

	parts := make([]string, len(c.Values))
	for i := range c.Values {
		parts[i] = render(i)
	}
	line := "    "
	if c.MinLabel != "" {
		line += theme.Hint.Render(c.MinLabel) + " "
	}
	line += strings.Join(parts, "")
	if c.MaxLabel != "" {
		line += " " + theme.Hint.Render(c.MaxLabel)
	}
	b.WriteString(line + "\n")
	return b.String()
}

// Answered reports whether a value has been chosen.
func (c Choice) Answered() bool { return c.Value != "" }
