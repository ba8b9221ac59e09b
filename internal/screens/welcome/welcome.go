// Package welcome is the first-run splash. It plays a short intro and asks
// which language to use before handing over to the home screen.
package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screen"
	"github.com/clbp/clbp/internal/ui/components"
	"github.com/clbp/clbp/internal/ui/layout"
	"github.com/clbp/clbp/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

var languages = []i18n.Language{i18n.English, i18n.Persian}

var (
	txtTagline  = i18n.T("Chronic low back pain assessment", "ارزیابی کمردرد مزمن")
	txtChoose   = i18n.T("Choose your language", "زبان خود را انتخاب کنید")
	txtHint     = i18n.T("←/→ to choose, Enter to continue", "←/→ برای انتخاب، Enter برای ادامه")
	txtSaveFail = i18n.T("Could not save the language. Try again.", "ذخیره زبان انجام نشد. دوباره تلاش کنید.")
	txtChooseK  = i18n.T("Choose", "انتخاب")
	txtContinue = i18n.T("Continue", "ادامه")
)

type tickMsg time.Time

// WelcomeScreen shows the intro and the language chooser.
type WelcomeScreen struct {
	prefs        *i18n.Preference
	next         func(i18n.Language) screen.Screen
	choice       int
	elapsed      time.Duration
	transitioned bool
	notice       i18n.Text
}

var (
	_ screen.Screen          = (*WelcomeScreen)(nil)
	_ screen.KeyHintProvider = (*WelcomeScreen)(nil)
)

// New creates the screen. next builds the screen that replaces it once a
// language has been saved.
func New(prefs *i18n.Preference, next func(i18n.Language) screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{prefs: prefs, next: next}
	for i, l := range languages {
		if l == prefs.Current() {
			w.choice = i
		}
	}
	return w
}

func (w *WelcomeScreen) Title() string { return "" }

// Choice is the highlighted language.
func (w *WelcomeScreen) Choice() i18n.Language { return languages[w.choice] }

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// Any key during the intro jumps to the chooser.
		if w.elapsed < phase2End {
			w.elapsed = totalDur
			return w, nil
		}
		w.notice = i18n.Text{}
		switch msg.String() {
		case "left", "h", "right", "l", "tab", "shift+tab", "up", "down", "k", "j":
			w.choice = (w.choice + 1) % len(languages)
		case "enter", "space":
			return w, w.choose()
		}
	}
	return w, nil
}

func (w *WelcomeScreen) choose() tea.Cmd {
	if w.transitioned {
		return nil
	}
	lang := w.Choice()
	if err := w.prefs.Set(context.Background(), lang); err != nil {
		log.Warn().Err(err).Str("component", "welcome").Msg("save language failed")
		w.notice = txtSaveFail
		return nil
	}
	w.transitioned = true
	next := w.next(lang)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// KeyHints implements screen.KeyHintProvider.
func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	lang := w.Choice()
	return []layout.KeyHint{
		{Key: "←→", Description: txtChooseK.In(lang)},
		{Key: "Enter", Description: txtContinue.In(lang)},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	lang := w.Choice()
	sections := []string{RenderBanner(width)}

	if w.elapsed >= phase1End {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(txtTagline.In(lang))
		sections = append(sections, "", tagline)
	}

	if w.elapsed >= phase2End {
		sections = append(sections, "", theme.Label.Render(txtChoose.In(lang)), "")
		buttons := make([]string, len(languages))
		for i, l := range languages {
			buttons[i] = components.NewButton(l.Label(), i == w.choice).View()
		}
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, buttons[0], "  ", buttons[1]))

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render(txtHint.In(lang))
		sections = append(sections, "", hint)
	}

	if w.notice.EN != "" {
		sections = append(sections, "", theme.Alert.Render("⚠ "+w.notice.In(lang)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
