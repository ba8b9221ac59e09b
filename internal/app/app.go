package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog/log"

	assess "github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screen"
	assessscreen "github.com/clbp/clbp/internal/screens/assessment"
	"github.com/clbp/clbp/internal/screens/home"
	"github.com/clbp/clbp/internal/screens/welcome"
	"github.com/clbp/clbp/internal/ui/layout"
)

// Options wires the dashboard to its stores.
type Options struct {
	Progress *assess.ProgressStore
	Prefs    *i18n.Preference
	Fixtures *fixtures.Set

	// SaveErrors carries progress writes that failed in the background.
	SaveErrors <-chan error

	// StartAssessment opens the assessment directly, with home beneath it.
	StartAssessment bool
}

var (
	txtBack     = i18n.T("Back", "بازگشت")
	txtQuit     = i18n.T("Quit", "خروج")
	txtNavigate = i18n.T("Navigate", "حرکت")
	txtSelect   = i18n.T("Select", "انتخاب")
)

// languageMsg carries a preference change from the subscription.
type languageMsg struct {
	lang i18n.Language
}

// saveErrorMsg carries a failed background save.
type saveErrorMsg struct {
	err error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	lang   i18n.Language
	langCh <-chan i18n.Language
	saveCh <-chan error
	width  int
	height int
}

// newAppModel creates the model with the home screen at the bottom of the
// stack, or the welcome screen when no language has been chosen yet. ctx
// bounds the language subscription.
func newAppModel(ctx context.Context, opts Options) AppModel {
	lang := opts.Prefs.Current()
	newHome := func(l i18n.Language) screen.Screen {
		return home.New(opts.Progress, opts.Prefs, opts.Fixtures, l)
	}

	var first screen.Screen = newHome(lang)
	if !opts.Prefs.Stored() && !opts.StartAssessment {
		first = welcome.New(opts.Prefs, newHome)
	}
	r := router.New(first)
	if opts.StartAssessment {
		r.Push(assessscreen.New(opts.Progress, opts.Fixtures, lang))
	}

	ch, err := opts.Prefs.Subscribe(ctx)
	if err != nil {
		log.Warn().Err(err).Str("component", "app").Msg("language updates disabled")
	}
	return AppModel{router: r, lang: lang, langCh: ch, saveCh: opts.SaveErrors}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), waitForLanguage(m.langCh), waitForSaveError(m.saveCh))
}

// waitForSaveError blocks until the progress store reports a failed write.
func waitForSaveError(ch <-chan error) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}
		return saveErrorMsg{err: err}
	}
}

// waitForLanguage blocks until the next preference change. A closed or nil
// channel ends the loop.
func waitForLanguage(ch <-chan i18n.Language) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		lang, ok := <-ch
		if !ok {
			return nil
		}
		return languageMsg{lang: lang}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case languageMsg:
		m.lang = msg.lang
		cmd := m.router.Update(screen.LanguageChangedMsg{Lang: msg.lang})
		return m, tea.Batch(cmd, waitForLanguage(m.langCh))

	case saveErrorMsg:
		cmd := m.router.Update(screen.SaveFailedMsg{Err: msg.err})
		return m, tea.Batch(cmd, waitForSaveError(m.saveCh))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if c, ok := m.router.Active().(screen.InputCapturer); ok && c.CapturingInput() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height, m.lang))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.lang, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height, m.lang))
	return v
}

func (m AppModel) footerHints() []layout.KeyHint {
	quit := layout.KeyHint{Key: "Ctrl+C", Description: txtQuit.In(m.lang)}
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), quit)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: txtBack.In(m.lang)},
			quit,
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: txtNavigate.In(m.lang)},
		{Key: "Enter", Description: txtSelect.In(m.lang)},
		quit,
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
