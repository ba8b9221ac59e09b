package profile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/patients"
	"github.com/clbp/clbp/internal/screen"
	"github.com/clbp/clbp/internal/ui/components"
	"github.com/clbp/clbp/internal/ui/layout"
	"github.com/clbp/clbp/internal/ui/theme"
)

// Tab is a section of the profile.
type Tab int

const (
	TabOverview Tab = iota
	TabAssessments
	TabBodyMap
	TabNotes
	tabCount
)

var tabLabels = [tabCount]i18n.Text{
	i18n.T("Overview", "نمای کلی"),
	i18n.T("Assessments", "ارزیابی‌ها"),
	i18n.T("Body Map", "نقشه بدن"),
	i18n.T("Notes", "یادداشت‌ها"),
}

var (
	txtTitle        = i18n.T("Patient Profile", "پروفایل بیمار")
	txtAge          = i18n.T("Age", "سن")
	txtGender       = i18n.T("Gender", "جنسیت")
	txtPhone        = i18n.T("Phone", "تلفن")
	txtEmail        = i18n.T("Email", "ایمیل")
	txtAddress      = i18n.T("Address", "آدرس")
	txtPain         = i18n.T("Pain level", "سطح درد")
	txtRisk         = i18n.T("Chronic risk", "خطر مزمن شدن")
	txtPhase        = i18n.T("Current phase", "مرحله فعلی")
	txtRegistered   = i18n.T("Registered", "تاریخ ثبت‌نام")
	txtLastAssess   = i18n.T("Last assessment", "آخرین ارزیابی")
	txtNext         = i18n.T("Next appointment", "نوبت بعدی")
	txtTimeline     = i18n.T("Assessment timeline", "جدول زمانی ارزیابی")
	txtQuestionnair = i18n.T("Questionnaire Results", "نتایج پرسشنامه")
	txtComplete     = i18n.T("Complete", "تکمیل")
	txtNoteCount    = i18n.T("clinical notes", "یادداشت بالینی")
	txtPainAreas    = i18n.T("Reported pain areas", "نواحی دردناک گزارش‌شده")
	txtNoPainAreas  = i18n.T("No pain areas recorded.", "ناحیه دردناکی ثبت نشده است.")
	txtTabs         = i18n.T("Tabs", "زبانه‌ها")
	txtScroll       = i18n.T("Scroll", "پیمایش")
	txtBack         = i18n.T("Back", "بازگشت")
)

// ProfileScreen shows one patient's details, timeline and clinical notes.
type ProfileScreen struct {
	profile *fixtures.Profile
	regions *fixtures.Questionnaires
	lang    i18n.Language
	tab     Tab
	scroll  components.Scroll
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen. regions supplies body-map labels and may be
// nil, in which case region ids are shown.
func New(p *fixtures.Profile, regions *fixtures.Questionnaires, lang i18n.Language) *ProfileScreen {
	return &ProfileScreen{profile: p, regions: regions, lang: lang}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return txtTitle.In(s.lang)
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: txtTabs.In(s.lang)},
		{Key: "↑↓", Description: txtScroll.In(s.lang)},
		{Key: "Esc", Description: txtBack.In(s.lang)},
	}
}

// ActiveTab returns the visible section.
func (s *ProfileScreen) ActiveTab() Tab { return s.tab }

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageChangedMsg:
		s.lang = msg.Lang
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			s.tab = (s.tab + 1) % tabCount
			s.scroll = components.Scroll{}
		case "left", "h", "shift+tab":
			s.tab = (s.tab + tabCount - 1) % tabCount
			s.scroll = components.Scroll{}
		default:
			s.scroll = s.scroll.Update(msg)
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	if s.profile == nil {
		return ""
	}
	cw := components.ContentWidth(width)

	labels := make([]string, tabCount)
	for i, l := range tabLabels {
		labels[i] = l.In(s.lang)
	}

	var body string
	switch s.tab {
	case TabOverview:
		body = s.renderOverview(cw)
	case TabAssessments:
		body = s.renderAssessments(cw)
	case TabBodyMap:
		body = s.renderBodyMap(cw)
	case TabNotes:
		body = s.renderNotes(cw)
	}

	head := s.renderHeader() + "\n" + components.Tabs(labels, int(s.tab)) + "\n"
	return head + s.scroll.View(body, height-lipgloss.Height(head))
}

func (s *ProfileScreen) renderHeader() string {
	p := s.profile.Patient
	return theme.Title.Render(fmt.Sprintf("%s  (%s)", p.Name.In(s.lang), p.ID)) + "  " +
		components.Badge(p.Status.Label().In(s.lang), theme.StatusColor(string(p.Status)))
}

func (s *ProfileScreen) renderOverview(cw int) string {
	lang := s.lang
	p := s.profile.Patient
	const lw = 18

	details := strings.Join([]string{
		components.KeyValue(txtAge.In(lang), fmt.Sprint(p.Age), lw),
		components.KeyValue(txtGender.In(lang), p.Gender.In(lang), lw),
		components.KeyValue(txtPhone.In(lang), p.Phone, lw),
		components.KeyValue(txtEmail.In(lang), p.Email, lw),
		components.KeyValue(txtAddress.In(lang), p.Address.In(lang), lw),
	}, "\n")

	risk := patients.RiskLevelFor(p.ChronicRisk)
	clinical := strings.Join([]string{
		components.KeyValue(txtPain.In(lang), fmt.Sprintf("%d/10", p.PainLevel), lw),
		components.KeyValue(txtRisk.In(lang), fmt.Sprintf("%d%%", p.ChronicRisk), lw) + "  " +
			components.Badge(risk.Label().In(lang), theme.RiskColor(string(risk))),
		components.KeyValue(txtPhase.In(lang), p.CurrentPhase, lw),
		components.KeyValue(txtRegistered.In(lang), p.RegistrationDate, lw),
		components.KeyValue(txtLastAssess.In(lang), p.LastAssessment, lw),
		components.KeyValue(txtNext.In(lang), p.NextAppointment, lw),
		components.KeyValue(txtNoteCount.In(lang), fmt.Sprint(len(s.profile.Notes)), lw),
	}, "\n")

	if layout.IsCompactWidth(cw) {
		return components.Card("", details, cw) + "\n" + components.Card("", clinical, cw)
	}
	half := cw / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		components.Card("", details, half),
		components.Card("", clinical, cw-half))
}

func (s *ProfileScreen) renderAssessments(cw int) string {
	lang := s.lang

	var tl strings.Builder
	for i, ph := range s.profile.Phases {
		mark := "○"
		switch ph.Status {
		case "completed":
			mark = "●"
		case "in-progress":
			mark = "◐"
		}
		line := lipgloss.NewStyle().Foreground(theme.StatusColor(ph.Status)).Render(mark) +
			" " + theme.Value.Render(ph.ID) + "  " + theme.Body.Render(ph.Name.In(lang)) +
			"  " + theme.Hint.Render(ph.Date)
		if ph.CompletionRate > 0 {
			line += theme.Label.Render(fmt.Sprintf("  %d%% %s", ph.CompletionRate, txtComplete.In(lang)))
		}
		tl.WriteString(line + "\n")
		if i < len(s.profile.Phases)-1 {
			tl.WriteString(theme.Pending.Render("│") + "\n")
		}
	}

	var qs strings.Builder
	inner := cw - 4
	for _, sc := range s.profile.PhaseScores {
		pct := 0.0
		if sc.MaxScore > 0 {
			pct = sc.Score / sc.MaxScore
		}
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("%-6s", sc.ID),
			Percent: pct,
			Width:   inner,
			Suffix:  fmt.Sprintf("%g/%g", sc.Score, sc.MaxScore),
		}
		qs.WriteString(bar.View() + "\n")
	}

	return components.Card(txtTimeline.In(lang), tl.String(), cw) + "\n" +
		components.Card(txtQuestionnair.In(lang), qs.String(), cw)
}

func (s *ProfileScreen) renderBodyMap(cw int) string {
	lang := s.lang
	if len(s.profile.PainRegions) == 0 {
		return components.Card(txtPainAreas.In(lang), theme.Hint.Render(txtNoPainAreas.In(lang)), cw)
	}
	var b strings.Builder
	for _, pr := range s.profile.PainRegions {
		label := pr.Region
		if s.regions != nil {
			if r, ok := s.regions.Region(pr.Region); ok {
				label = r.Label.In(lang)
			}
		}
		b.WriteString(components.SeverityRow(label, pr.Severity, (cw-4)/3) + "\n")
	}
	return components.Card(txtPainAreas.In(lang), b.String(), cw)
}

func (s *ProfileScreen) renderNotes(cw int) string {
	lang := s.lang
	var cards []string
	for _, n := range s.profile.Notes {
		title := n.Title.In(lang)
		if n.Priority == "high" || n.Priority == "urgent" {
			title += "  " + theme.Alert.Render("!")
		}
		meta := theme.Hint.Render(fmt.Sprintf("%s · %s %s · %s", n.Author.In(lang), n.Date, n.Time, n.Category))
		body := lipgloss.NewStyle().Width(cw - 4).Foreground(theme.Text).Render(n.Content.In(lang))
		cards = append(cards, components.Card(title, meta+"\n\n"+body, cw))
	}
	return strings.Join(cards, "\n")
}
