package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	assess "github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screen"
	"github.com/clbp/clbp/internal/screens/admin"
	assessscreen "github.com/clbp/clbp/internal/screens/assessment"
	"github.com/clbp/clbp/internal/screens/profile"
	"github.com/clbp/clbp/internal/screens/results"
	"github.com/clbp/clbp/internal/ui/components"
	"github.com/clbp/clbp/internal/ui/layout"
)

// langToggledMsg reports the outcome of a language toggle. The new language
// itself arrives as a screen.LanguageChangedMsg broadcast.
type langToggledMsg struct {
	Lang i18n.Language
	Err  error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	progress *assess.ProgressStore
	prefs    *i18n.Preference
	set      *fixtures.Set
	lang     i18n.Language

	menu   components.Menu
	labels []string
	notice i18n.Text
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(progress *assess.ProgressStore, prefs *i18n.Preference, set *fixtures.Set, lang i18n.Language) *HomeScreen {
	h := &HomeScreen{progress: progress, prefs: prefs, set: set, lang: lang}
	h.rebuildMenu()
	return h
}

// rebuildMenu refreshes the labels, which depend on the language and on
// whether saved progress exists.
func (h *HomeScreen) rebuildMenu() {
	lang := h.lang

	start := txtStart
	if !h.progress.Session().IsFresh() {
		start = txtResume
	}

	items := []components.MenuItem{
		{Label: start.In(lang), Action: func() tea.Cmd {
			return push(assessscreen.New(h.progress, h.set, h.lang))
		}},
		{Label: txtResults.In(lang), Action: func() tea.Cmd {
			return push(results.New(h.set, h.lang))
		}},
		{Label: txtProfile.In(lang), Action: func() tea.Cmd {
			return push(profile.New(h.set.Profile, h.set.Questionnaires, h.lang))
		}},
		{Label: txtAdmin.In(lang), Action: func() tea.Cmd {
			return push(admin.New(h.set, h.lang))
		}},
		{Label: txtToggleLang.In(lang) + " (" + lang.Other().Label() + ")", Action: h.toggleLanguage},
		{Label: txtExit.In(lang), Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.labels = make([]string, len(items))
	for i, it := range items {
		h.labels[i] = it.Label
	}
	h.menu = h.menu.WithItems(items)
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) toggleLanguage() tea.Cmd {
	prefs := h.prefs
	return func() tea.Msg {
		lang, err := prefs.Toggle(context.Background())
		return langToggledMsg{Lang: lang, Err: err}
	}
}

// Init refreshes the menu each time the screen becomes active, so
// Start turns into Resume after progress is saved.
func (h *HomeScreen) Init() tea.Cmd {
	h.rebuildMenu()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.LanguageChangedMsg:
		h.lang = msg.Lang
		h.rebuildMenu()
		return h, nil
	case langToggledMsg:
		if msg.Err != nil {
			log.Warn().Err(msg.Err).Str("component", "home").Msg("toggling language failed")
			h.notice = txtLangFailed
		}
		return h, nil
	case tea.KeyMsg:
		h.notice = i18n.Text{}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height by adding
	// back the header and footer.
	termHeight := height + layout.HeaderHeight + layout.FooterHeight + 2
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact, h.lang),
		renderProgressBar(h.progress.Session(), cw, h.lang),
		renderMenu(h.labels, h.menu.Selected, cw, compact),
	}
	if h.notice.EN != "" {
		sections = append(sections, renderNotice(h.notice.In(h.lang), cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return txtTitle.In(h.lang)
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: txtMove.In(h.lang)},
		{Key: "Enter", Description: txtSelect.In(h.lang)},
	}
}

// Selected returns the label of the highlighted menu item.
func (h *HomeScreen) Selected() string {
	return h.labels[h.menu.Selected]
}
