package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	assess "github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/ui/theme"
)

// Block-letter title.
const titleFull = ` ██████╗██╗     ██████╗ ██████╗
██╔════╝██║     ██╔══██╗██╔══██╗
██║     ██║     ██████╔╝██████╔╝
██║     ██║     ██╔══██╗██╔═══╝
╚██████╗███████╗██████╔╝██║
 ╚═════╝╚══════╝╚═════╝ ╚═╝`

const titleCompact = "C · L · B · P"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for the frame border (2) and inner padding (4).
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool, lang i18n.Language) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return center.Render(style.Render(art)) + "\n" +
		center.Render(theme.Subtitle.Render(txtTagline.In(lang)))
}

// renderProgressBar summarizes the saved assessment in a bordered box.
func renderProgressBar(sess assess.Session, cw int, lang i18n.Language) string {
	var stats string
	if sess.IsFresh() {
		stats = theme.Hint.Render(txtNoProgress.In(lang))
	} else {
		stepStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		doneStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		dim := lipgloss.NewStyle().Foreground(theme.TextDim)
		stats = strings.Join([]string{
			stepStyle.Render(fmt.Sprintf(txtStep.In(lang), sess.CurrentStep, assess.TotalSteps)),
			doneStyle.Render(fmt.Sprintf(txtDone.In(lang), len(sess.CompletedList()))),
			dim.Render(fmt.Sprintf(txtAnswers.In(lang), sess.AnsweredCount())),
		}, "  ")
		if !sess.LastSavedAt.IsZero() {
			stats += "\n" + dim.Render(fmt.Sprintf("%s %s", txtSavedAt.In(lang), sess.LastSavedAt.Local().Format("2006-01-02 15:04")))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 30

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int, compact bool) string {
	if compact {
		return renderMenuCompact(items, selected, cw)
	}
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for short terminals
// where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderNotice(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Warning).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + text)
}

// renderFrame wraps content in a double-border frame, centered vertically
// and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
