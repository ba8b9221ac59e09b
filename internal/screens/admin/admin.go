package admin

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/patients"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screen"
	"github.com/clbp/clbp/internal/screens/profile"
	"github.com/clbp/clbp/internal/ui/components"
	"github.com/clbp/clbp/internal/ui/layout"
	"github.com/clbp/clbp/internal/ui/theme"
)

// Tab is a dashboard section.
type Tab int

const (
	TabOverview Tab = iota
	TabPatients
	TabMonitoring
	tabCount
)

var tabLabels = [tabCount]i18n.Text{
	i18n.T("Overview", "نمای کلی"),
	i18n.T("Patients", "بیماران"),
	i18n.T("Model Monitoring", "پایش مدل"),
}

// AdminScreen is the clinician dashboard: headline metrics, the filterable
// patient roster and model monitoring.
type AdminScreen struct {
	set    *fixtures.Set
	lang   i18n.Language
	tab    Tab
	filter patients.Filter
	cursor int
	scroll components.Scroll
}

var _ screen.Screen = (*AdminScreen)(nil)
var _ screen.KeyHintProvider = (*AdminScreen)(nil)

// New creates an AdminScreen.
func New(set *fixtures.Set, lang i18n.Language) *AdminScreen {
	return &AdminScreen{set: set, lang: lang}
}

func (s *AdminScreen) Init() tea.Cmd {
	return nil
}

func (s *AdminScreen) Title() string {
	return txtTitle.In(s.lang)
}

func (s *AdminScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Tab", Description: txtTabs.In(s.lang)}}
	if s.tab == TabPatients {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: txtSelect.In(s.lang)},
			layout.KeyHint{Key: "r", Description: txtRiskFilter.In(s.lang)},
			layout.KeyHint{Key: "t", Description: txtStatusFilter.In(s.lang)},
			layout.KeyHint{Key: "Enter", Description: txtOpen.In(s.lang)},
		)
	} else {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: txtScroll.In(s.lang)})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: txtBack.In(s.lang)})
}

// ActiveTab returns the visible section.
func (s *AdminScreen) ActiveTab() Tab { return s.tab }

// Filter returns the roster filter.
func (s *AdminScreen) Filter() patients.Filter { return s.filter }

// Visible returns the roster rows passing the filter.
func (s *AdminScreen) Visible() []patients.Patient {
	if s.set == nil || s.set.Roster == nil {
		return nil
	}
	return s.filter.Apply(s.set.Roster.Patients)
}

// Selected returns the highlighted roster row.
func (s *AdminScreen) Selected() (patients.Patient, bool) {
	rows := s.Visible()
	if s.cursor < 0 || s.cursor >= len(rows) {
		return patients.Patient{}, false
	}
	return rows[s.cursor], true
}

func (s *AdminScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageChangedMsg:
		s.lang = msg.Lang
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			s.setTab((s.tab + 1) % tabCount)
			return s, nil
		case "shift+tab", "left", "h":
			s.setTab((s.tab + tabCount - 1) % tabCount)
			return s, nil
		case "1", "2", "3":
			s.setTab(Tab(msg.String()[0] - '1'))
			return s, nil
		}
		if s.tab == TabPatients {
			return s, s.updateRoster(msg)
		}
		s.scroll = s.scroll.Update(msg)
	}
	return s, nil
}

func (s *AdminScreen) setTab(t Tab) {
	s.tab = t
	s.scroll = components.Scroll{}
}

func (s *AdminScreen) updateRoster(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.Visible())-1 {
			s.cursor++
		}
	case "r":
		s.filter = s.filter.NextRiskLevel()
		s.cursor = 0
	case "t":
		s.filter = s.filter.NextStatus()
		s.cursor = 0
	case "c":
		s.filter = patients.Filter{}
		s.cursor = 0
	case "enter":
		p, ok := s.Selected()
		if !ok {
			return nil
		}
		next := profile.New(s.set.ProfileFor(p), s.set.Questionnaires, s.lang)
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
	return nil
}

func (s *AdminScreen) View(width, height int) string {
	if s.set == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	labels := make([]string, tabCount)
	for i, l := range tabLabels {
		labels[i] = l.In(s.lang)
	}
	head := theme.Title.Render(txtHeading.In(s.lang)) + "\n" +
		components.Tabs(labels, int(s.tab)) + "\n"
	bodyHeight := height - lipgloss.Height(head)

	switch s.tab {
	case TabPatients:
		return head + s.renderRoster(cw, bodyHeight)
	case TabMonitoring:
		return head + s.scroll.View(s.renderMonitoring(cw), bodyHeight)
	default:
		return head + s.scroll.View(s.renderOverview(cw), bodyHeight)
	}
}

func (s *AdminScreen) renderOverview(cw int) string {
	lang := s.lang
	if s.set.Monitoring == nil {
		return ""
	}
	m := s.set.Monitoring.Metrics

	stat := func(label, value string, fg lipgloss.Style) string {
		return theme.Label.Render(label) + "\n" + fg.Bold(true).Render(value)
	}
	quarter := cw / 4
	cards := []string{
		components.Card("", stat(txtTotalPatients.In(lang), fmt.Sprint(m.TotalPatients), theme.Value), quarter),
		components.Card("", stat(txtCompletion.In(lang), fmt.Sprintf("%.1f%%", m.CompletionRate), theme.Value), quarter),
		components.Card("", stat(txtHighRisk.In(lang), fmt.Sprintf("%.1f%%", m.RiskDistribution.High),
			lipgloss.NewStyle().Foreground(theme.RiskColor(string(patients.RiskHigh)))), quarter),
		components.Card("", stat(txtAccuracy.In(lang), fmt.Sprintf("%.1f%%", m.ModelAccuracy), theme.Value), cw-3*quarter),
	}
	var stats string
	if layout.IsCompactWidth(cw) {
		stats = lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]) + "\n" +
			lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3])
	} else {
		stats = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	inner := cw - 4
	shares := map[patients.RiskLevel]float64{
		patients.RiskLow:      m.RiskDistribution.Low,
		patients.RiskModerate: m.RiskDistribution.Moderate,
		patients.RiskHigh:     m.RiskDistribution.High,
	}
	var dist strings.Builder
	for _, r := range patients.RiskLevels {
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-10s", r.Label().In(lang)),
			Percent:     shares[r] / 100,
			ShowPercent: true,
			Width:       inner,
			Fill:        theme.RiskColor(string(r)),
		}
		dist.WriteString(bar.View() + "\n")
	}

	var roster string
	if s.set.Roster != nil {
		sum := patients.Summarize(s.set.Roster.Patients)
		lines := []string{
			components.KeyValue(txtInRoster.In(lang), fmt.Sprint(sum.Total), 20),
			components.KeyValue(txtMeanRisk.In(lang), fmt.Sprintf("%.0f", sum.MeanRiskScore), 20),
		}
		for _, st := range patients.Statuses {
			lines = append(lines, components.KeyValue(st.Label().In(lang), fmt.Sprint(sum.ByStatus[st]), 20))
		}
		for _, r := range patients.RiskLevels {
			lines = append(lines, components.KeyValue(r.Label().In(lang),
				fmt.Sprintf("%d (%.0f%%)", sum.ByRisk[r], sum.Share(r)), 20))
		}
		roster = components.Card(txtRosterSummary.In(lang), strings.Join(lines, "\n"), cw)
	}

	return stats + "\n" +
		components.Card(txtDistribution.In(lang), dist.String(), cw) + "\n" +
		roster
}

func (s *AdminScreen) renderRoster(cw, height int) string {
	lang := s.lang
	rows := s.Visible()

	filters := theme.Label.Render(txtRiskFilter.In(lang)+": ") + theme.Value.Render(s.filter.RiskLevel.Label().In(lang)) +
		"   " + theme.Label.Render(txtStatusFilter.In(lang)+": ") + theme.Value.Render(s.filter.Status.Label().In(lang)) +
		"   " + theme.Hint.Render(fmt.Sprintf(txtShowing.In(lang), len(rows)))

	header := fmt.Sprintf("  %-6s %-22s %-6s %-16s %-12s %-12s",
		txtID.In(lang), txtName.In(lang), txtPhase.In(lang), txtRiskScore.In(lang), txtStatus.In(lang), txtLastActivity.In(lang))

	var b strings.Builder
	b.WriteString(filters + "\n\n")
	b.WriteString(theme.Label.Render(layout.Truncate(header, cw)) + "\n")
	if len(rows) == 0 {
		b.WriteString(theme.Hint.Render("  " + txtNoMatch.In(lang)))
		return b.String()
	}

	// Keep the cursor row visible when the table is taller than the screen.
	visible := height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.cursor >= visible {
		start = s.cursor - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	for i := start; i < end; i++ {
		p := rows[i]
		level := p.RiskLevel()
		risk := lipgloss.NewStyle().Foreground(theme.RiskColor(string(level))).
			Render(fmt.Sprintf("%s %3d", components.Meter(float64(p.RiskScore)/100, 10), p.RiskScore))
		status := lipgloss.NewStyle().Foreground(theme.StatusColor(string(p.Status))).
			Render(fmt.Sprintf("%-12s", p.Status.Label().In(lang)))
		name := fmt.Sprintf("%-22s", layout.Truncate(p.Name.In(lang), 22))

		cursor := "  "
		style := theme.Unselected
		if i == s.cursor {
			cursor = "▸ "
			style = theme.Selected
		}
		b.WriteString(style.Render(cursor+fmt.Sprintf("%-6s %s %-6s ", p.ID, name, p.Phase)) +
			risk + "  " + status + " " + theme.Hint.Render(p.LastActivity) + "\n")
	}
	return b.String()
}

func (s *AdminScreen) renderMonitoring(cw int) string {
	lang := s.lang
	mon := s.set.Monitoring
	if mon == nil {
		return ""
	}
	inner := cw - 4
	var sections []string

	if len(mon.Alerts) > 0 {
		var b strings.Builder
		for _, a := range mon.Alerts {
			fg := theme.Secondary
			if a.Level == "warning" {
				fg = theme.Warning
			} else if a.Level == "error" {
				fg = theme.Error
			}
			b.WriteString(components.Badge(a.Title.In(lang), fg) + "\n")
			b.WriteString(theme.Hint.Render("  "+a.Message.In(lang)) + "\n")
		}
		sections = append(sections, components.Card(txtAlerts.In(lang), b.String(), cw))
	}

	if len(mon.Trends) > 0 {
		var b strings.Builder
		b.WriteString(theme.Label.Render(fmt.Sprintf("%-12s %9s %9s %9s %9s",
			txtDate.In(lang), txtAccuracyShort.In(lang), txtPrecision.In(lang), txtRecall.In(lang), "F1")) + "\n")
		for _, tr := range mon.Trends {
			b.WriteString(theme.Body.Render(fmt.Sprintf("%-12s %8.1f%% %8.1f%% %8.1f%% %8.1f%%",
				tr.Date, tr.Accuracy, tr.Precision, tr.Recall, tr.F1Score)) + "\n")
		}
		last := mon.Trends[len(mon.Trends)-1]
		b.WriteString("\n" + components.ProgressBar{
			Label:       txtAccuracy.In(lang),
			Percent:     last.Accuracy / 100,
			ShowPercent: true,
			Width:       inner,
			Fill:        theme.Success,
		}.View() + "\n")
		sections = append(sections, components.Card(txtTrends.In(lang), b.String(), cw))
	}

	if len(mon.ROC) > 0 {
		var b strings.Builder
		for _, pt := range mon.ROC {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				theme.Label.Render(fmt.Sprintf("FPR %.1f", pt.FPR)),
				lipgloss.NewStyle().Foreground(theme.Primary).Render(components.Meter(pt.TPR, 30)),
				theme.Hint.Render(fmt.Sprintf("TPR %.2f", pt.TPR))))
		}
		b.WriteString(theme.Value.Render(fmt.Sprintf("AUC %.2f", rocAUC(mon.ROC))))
		sections = append(sections, components.Card(txtROC.In(lang), b.String(), cw))
	}

	if len(mon.DataQuality) > 0 {
		var b strings.Builder
		for _, q := range mon.DataQuality {
			fg := theme.Success
			if q.Status != "excellent" {
				fg = theme.Warning
			}
			bar := components.ProgressBar{
				Label:       fmt.Sprintf("%-16s", q.Metric.In(lang)),
				Percent:     q.Score / 100,
				ShowPercent: true,
				Width:       inner,
				Fill:        fg,
			}
			b.WriteString(bar.View() + "\n")
		}
		sections = append(sections, components.Card(txtQuality.In(lang), b.String(), cw))
	}

	return strings.Join(sections, "\n")
}

// rocAUC integrates the curve with the trapezoid rule. Points are assumed
// sorted by FPR.
func rocAUC(pts []fixtures.ROCPoint) float64 {
	var area float64
	for i := 1; i < len(pts); i++ {
		area += (pts[i].FPR - pts[i-1].FPR) * (pts[i].TPR + pts[i-1].TPR) / 2
	}
	return area
}
