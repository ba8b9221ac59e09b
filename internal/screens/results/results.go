package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screen"
	"github.com/clbp/clbp/internal/ui/components"
	"github.com/clbp/clbp/internal/ui/layout"
	"github.com/clbp/clbp/internal/ui/theme"
)

var (
	txtTitle      = i18n.T("Assessment Results", "نتایج ارزیابی")
	txtHeading    = i18n.T("CLBP Assessment Results", "نتایج ارزیابی CLBP")
	txtSubheading = i18n.T("Comprehensive chronic low back pain risk analysis", "تحلیل جامع خطر مزمن شدن درد کمر")
	txtPatientID  = i18n.T("Patient ID", "شناسه بیمار")
	txtRisk       = i18n.T("Chronic pain risk", "خطر مزمن شدن درد")
	txtCI         = i18n.T("95% CI", "فاصله اطمینان ۹۵٪")
	txtFactors    = i18n.T("Contributing factors", "عوامل مؤثر")
	txtScores     = i18n.T("Questionnaire Results", "نتایج پرسشنامه‌ها")
	txtNormal     = i18n.T("Normal range", "محدوده طبیعی")
	txtBodyMap    = i18n.T("Nordic body map", "نقشه بدن نوردیک")
	txtMinutes    = i18n.T("min", "دقیقه")
	txtScroll     = i18n.T("Scroll", "پیمایش")
	txtBack       = i18n.T("Back", "بازگشت")
	txtRiskUp     = i18n.T("raises risk", "افزایش خطر")
	txtRiskDown   = i18n.T("lowers risk", "کاهش خطر")
)

// ResultsScreen shows the risk prediction and questionnaire scores.
type ResultsScreen struct {
	res     *fixtures.Results
	regions *fixtures.Questionnaires
	lang    i18n.Language
	scroll  components.Scroll
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen over the fixture set.
func New(set *fixtures.Set, lang i18n.Language) *ResultsScreen {
	return &ResultsScreen{res: set.Results, regions: set.Questionnaires, lang: lang}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return txtTitle.In(s.lang)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: txtScroll.In(s.lang)},
		{Key: "Esc", Description: txtBack.In(s.lang)},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageChangedMsg:
		s.lang = msg.Lang
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		s.scroll = s.scroll.Update(msg)
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.res == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	lang := s.lang

	var sections []string

	header := theme.Title.Render(txtHeading.In(lang)) + "\n" +
		theme.Subtitle.Render(txtSubheading.In(lang)) + "\n" +
		theme.Label.Render(fmt.Sprintf("%s: %s", txtPatientID.In(lang), s.res.PatientID))
	sections = append(sections, header)

	sections = append(sections, components.Card("", s.renderRisk(cw-4), cw))
	sections = append(sections, components.Card(txtFactors.In(lang), s.renderFactors(cw-4), cw))
	sections = append(sections, components.Card(txtScores.In(lang), s.renderScores(cw-4), cw))
	if len(s.res.PainRegions) > 0 {
		sections = append(sections, components.Card(txtBodyMap.In(lang), s.renderPainRegions(cw-4), cw))
	}

	return s.scroll.View(strings.Join(sections, "\n"), height)
}

func (s *ResultsScreen) renderRisk(w int) string {
	lang := s.lang
	level := s.res.RiskLevel()
	pct := fmt.Sprintf("%d%%", s.res.RiskPercentage)

	line := theme.Label.Render(txtRisk.In(lang)+"  ") +
		lipgloss.NewStyle().Bold(true).Foreground(theme.RiskColor(string(level))).Render(pct) +
		"  " + components.Badge(level.Label().In(lang), theme.RiskColor(string(level)))
	if ci := s.res.ConfidenceInterval; len(ci) == 2 {
		line += theme.Hint.Render(fmt.Sprintf("   %s %d–%d%%", txtCI.In(lang), ci[0], ci[1]))
	}

	bar := components.ProgressBar{
		Percent: float64(s.res.RiskPercentage) / 100,
		Width:   w,
		Fill:    theme.RiskColor(string(level)),
	}
	return line + "\n" + bar.View()
}

func (s *ResultsScreen) renderFactors(w int) string {
	lang := s.lang
	nameWidth := w / 2
	var b strings.Builder
	for _, f := range s.res.Factors {
		name := layout.Truncate(f.Name.In(lang), nameWidth)
		name = theme.Body.Width(nameWidth).Render(name)

		dir, style := txtRiskUp, lipgloss.NewStyle().Foreground(theme.Error)
		if f.Impact < 0 {
			dir, style = txtRiskDown, lipgloss.NewStyle().Foreground(theme.Success)
		}
		mag := f.Impact
		if mag < 0 {
			mag = -mag
		}
		// Impacts are fractions of the risk score; 0.2 fills the meter.
		meter := style.Render(components.Meter(mag/0.2, 10))
		b.WriteString(fmt.Sprintf("%s %s %s %s\n",
			name, meter, style.Render(fmt.Sprintf("%+.2f", f.Impact)), theme.Hint.Render(dir.In(lang))))
	}
	return b.String()
}

func (s *ResultsScreen) renderScores(w int) string {
	lang := s.lang
	var b strings.Builder
	for i, sc := range s.res.Scores {
		if i > 0 {
			b.WriteString("\n")
		}
		head := theme.Value.Render(sc.Type) + "  " + theme.Body.Render(sc.Name.In(lang))
		if sc.DurationMinutes > 0 {
			head += theme.Hint.Render(fmt.Sprintf("  %s · %d %s", sc.CompletedDate, sc.DurationMinutes, txtMinutes.In(lang)))
		}
		b.WriteString(head + "\n")

		bar := components.ProgressBar{
			Percent: sc.Percent() / 100,
			Width:   w,
			Suffix:  fmt.Sprintf("%s/%s", formatScore(sc.Score), formatScore(sc.MaxScore)),
		}
		b.WriteString(bar.View() + "\n")

		for _, sub := range sc.Subscales {
			pct := 0.0
			if sub.MaxScore > 0 {
				pct = sub.Score / sub.MaxScore
			}
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				theme.Label.Width(w/3).Render(sub.Name.In(lang)),
				components.Meter(pct, 12),
				theme.Hint.Render(fmt.Sprintf("%s/%s", formatScore(sub.Score), formatScore(sub.MaxScore)))))
		}
		if n := sc.NormalRange.In(lang); n != "" {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %s: %s", txtNormal.In(lang), n)) + "\n")
		}
		if n := sc.ClinicalNotes.In(lang); n != "" {
			b.WriteString(theme.Subtitle.Render("  "+n) + "\n")
		}
	}
	return b.String()
}

func (s *ResultsScreen) renderPainRegions(w int) string {
	lang := s.lang
	var b strings.Builder
	for _, pr := range s.res.PainRegions {
		label := pr.Region
		if s.regions != nil {
			if r, ok := s.regions.Region(pr.Region); ok {
				label = r.Label.In(lang)
			}
		}
		b.WriteString(components.SeverityRow(label, pr.Severity, w/3) + "\n")
	}
	return b.String()
}

func formatScore(v float64) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.1f", v)
}
