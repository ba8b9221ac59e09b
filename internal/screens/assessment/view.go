package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	assess "github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/ui/components"
	"github.com/clbp/clbp/internal/ui/layout"
	"github.com/clbp/clbp/internal/ui/theme"
)

const sidebarWidth = 30

func (s *AssessmentScreen) View(width, height int) string {
	sess := s.store.Session()

	main := s.renderStep(sess)
	if s.confirming {
		main = s.renderConfirm()
	}

	if layout.IsCompactWidth(width) {
		status := s.renderStatusLine(sess)
		return status + "\n" + s.scroll.View(main, height-lipgloss.Height(status))
	}

	side := s.renderSidebar(sess)
	mainWidth := width - sidebarWidth - 4
	content := lipgloss.NewStyle().Width(mainWidth).Render(s.scroll.View(main, height))
	return lipgloss.JoinHorizontal(lipgloss.Top, side, "  ", content)
}

func (s *AssessmentScreen) renderSidebar(sess assess.Session) string {
	lang := s.lang
	var b strings.Builder

	b.WriteString(theme.Title.Render(txtSteps.In(lang)) + "\n")
	for _, step := range s.set.Questionnaires.Steps {
		mark, style := "  ", theme.Unselected
		switch {
		case step.Step == sess.CurrentStep:
			mark, style = "▸ ", theme.Selected
		case sess.IsStepCompleted(step.Step):
			mark, style = "✓ ", theme.Done
		}
		label := layout.Truncate(fmt.Sprintf("%d. %s", step.Step, step.Name.In(lang)), sidebarWidth-6)
		b.WriteString(style.Render(mark+label) + "\n")
	}

	bar := components.ProgressBar{
		Percent:     sess.Progress(),
		ShowPercent: true,
		Width:       sidebarWidth - 4,
	}
	b.WriteString("\n" + bar.View() + "\n\n")

	b.WriteString(components.KeyValue(txtAnswered.In(lang), fmt.Sprint(sess.AnsweredCount()), 14) + "\n")
	b.WriteString(components.KeyValue(txtCompleted.In(lang),
		fmt.Sprintf("%d/%d", len(sess.CompletedList()), assess.TotalSteps), 14) + "\n")
	b.WriteString(components.KeyValue(txtRemaining.In(lang),
		fmt.Sprintf("~%d %s", sess.EstimatedMinutesRemaining(), txtMinutes.In(lang)), 14) + "\n\n")
	b.WriteString(s.renderSaveStatus())

	return theme.Card.Width(sidebarWidth).Render(b.String())
}

func (s *AssessmentScreen) renderStatusLine(sess assess.Session) string {
	return theme.Label.Render(fmt.Sprintf(txtStepOf.In(s.lang), sess.CurrentStep, assess.TotalSteps)) +
		"  " + components.Meter(sess.Progress(), 10) + "  " + s.renderSaveStatus()
}

// renderSaveStatus is the auto-save indicator.
func (s *AssessmentScreen) renderSaveStatus() string {
	st := s.store.Status()
	lang := s.lang
	switch {
	case st.Saving:
		return theme.Hint.Render("⟳ " + txtSaving.In(lang))
	case st.LastError != nil:
		return theme.Alert.Render("⚠ " + txtSaveWarning.In(lang))
	case st.Unsaved:
		return lipgloss.NewStyle().Foreground(theme.Warning).Render("● " + txtUnsaved.In(lang))
	case !st.LastSavedAt.IsZero():
		return theme.Done.Render(fmt.Sprintf("✓ %s %s", txtSavedAt.In(lang), st.LastSavedAt.Local().Format("15:04:05")))
	}
	return theme.Hint.Render(txtNotSaved.In(lang))
}

func (s *AssessmentScreen) renderStep(sess assess.Session) string {
	lang := s.lang
	q, ok := s.set.Questionnaires.Step(sess.CurrentStep)
	if !ok {
		return ""
	}
	var b strings.Builder

	b.WriteString(theme.Hint.Render(fmt.Sprintf(txtStepOf.In(lang), sess.CurrentStep, assess.TotalSteps)) + "\n")
	b.WriteString(theme.Title.Render(q.Title.In(lang)) + "\n")
	if d := q.Description.In(lang); d != "" {
		b.WriteString(theme.Subtitle.Render(d) + "\n")
	}
	if in := q.Instructions.In(lang); in != "" {
		b.WriteString("\n" + theme.Body.Render(in) + "\n")
	}
	b.WriteString("\n")

	items := s.items()
	if len(items) == 0 {
		b.WriteString(theme.Hint.Render(txtNoQuestions.In(lang)) + "\n")
	}
	if sess.CurrentStep == assess.BodyMapStep {
		b.WriteString(theme.Label.Render(txtBodyMap.In(lang)) + "\n")
	}
	for i, it := range items {
		focused := i == s.focus
		switch {
		case it.region != nil:
			b.WriteString(s.renderRegion(*it.region, sess.HasRegion(it.region.ID), focused))
		case it.question != nil:
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(s.renderQuestion(*it.question, sess.Responses[it.question.Key], focused))
		}
	}

	b.WriteString("\n")
	prev := components.NewButton(txtPrevious.In(lang), false)
	nextLabel := txtNext
	if sess.IsLastStep() {
		nextLabel = txtFinish
	}
	next := components.NewButton(nextLabel.In(lang), true)
	if !sess.IsFirstStep() {
		b.WriteString(prev.View() + "  ")
	}
	b.WriteString(next.View() + "  " + components.NewButton(txtSaveExit.In(lang), false).View() + "\n")

	if s.notice.EN != "" {
		b.WriteString("\n" + theme.Alert.Render("⚠ "+s.notice.In(lang)) + "\n")
	}
	return b.String()
}

func (s *AssessmentScreen) renderRegion(r fixtures.BodyRegion, selected, focused bool) string {
	box := "[ ]"
	if selected {
		box = "[x]"
	}
	marker := "  "
	style := theme.Unselected
	if focused {
		marker = "▸ "
		style = theme.Selected
	}
	if selected && !focused {
		style = theme.Done
	}
	return style.Render(marker+box+" "+r.Label.In(s.lang)) + "\n"
}

func (s *AssessmentScreen) renderQuestion(q fixtures.Question, answer string, focused bool) string {
	lang := s.lang
	prompt := q.Prompt.In(lang)
	if q.Required {
		prompt += " *"
	}

	if q.Kind == fixtures.KindText {
		in, ok := s.inputs[q.Key]
		if !ok {
			in = components.NewTextInput(prompt, txtTypeHere.In(lang), answer, 200)
		}
		in.Prompt = prompt
		return in.View(focused)
	}

	values := q.Choices()
	var labels []string
	if q.Kind == fixtures.KindRadio {
		labels = make([]string, len(values))
		for i, v := range values {
			labels[i] = q.OptionLabel(v, lang)
		}
	}
	c := components.NewChoice(prompt, values, labels, answer)
	c.Focused = focused
	c.Vertical = q.Kind == fixtures.KindRadio
	c.MinLabel = q.MinLabel.In(lang)
	c.MaxLabel = q.MaxLabel.In(lang)
	return c.View()
}

func (s *AssessmentScreen) renderConfirm() string {
	lang := s.lang
	body := theme.Title.Render(txtConfirmTitle.In(lang)) + "\n\n" +
		theme.Body.Render(txtConfirmBody.In(lang)) + "\n\n" +
		components.NewButton(txtConfirmYes.In(lang)+" (y)", true).View() + "  " +
		components.NewButton(txtConfirmNo.In(lang)+" (n)", false).View()
	return theme.Dialog.Render(body)
}
