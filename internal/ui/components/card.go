package components

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/clbp/clbp/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked panels so
// they line up.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 4
	if w > 110 {
		w = 110
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border panel with an optional title.
func Card(title, content string, cw int) string {
	body := content
	if title != "" {
		body = theme.Title.Render(title) + "\n" + content
	}
	return theme.Card.
		Width(cw).
		Render(strings.TrimRight(body, "\n"))
}

// Tabs renders a tab strip with the active tab highlighted.
func Tabs(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = theme.TabActive.Render(l)
		} else {
			parts[i] = theme.TabInactive.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// KeyValue renders an aligned "label: value" line.
func KeyValue(label, value string, labelWidth int) string {
	l := theme.Label.Width(labelWidth).Render(label)
	return l + " " + theme.Value.Render(value)
}

// Badge renders a short colored tag.
func Badge(text string, fg color.Color) string {
	return lipgloss.NewStyle().Bold(true).Foreground(fg).Render("● " + text)
}
