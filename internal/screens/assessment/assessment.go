package assessment

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	assess "github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screen"
	"github.com/clbp/clbp/internal/screens/results"
	"github.com/clbp/clbp/internal/ui/components"
	"github.com/clbp/clbp/internal/ui/layout"
)

// statusRefresh is how often the auto-save indicator is redrawn.
const statusRefresh = 500 * time.Millisecond

// statusTickMsg redraws the auto-save indicator.
type statusTickMsg time.Time

// item is one focusable row of a step: a body region or a question.
type item struct {
	region   *fixtures.BodyRegion
	question *fixtures.Question
}

// AssessmentScreen walks the respondent through the questionnaire steps,
// recording answers in the progress store as they are given.
type AssessmentScreen struct {
	store *assess.ProgressStore
	set   *fixtures.Set
	lang  i18n.Language

	focus      int
	inputs     map[string]components.TextInput
	confirming bool
	notice     i18n.Text
	scroll     components.Scroll
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.InputCapturer = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen over a loaded progress store.
func New(store *assess.ProgressStore, set *fixtures.Set, lang i18n.Language) *AssessmentScreen {
	return &AssessmentScreen{
		store:  store,
		set:    set,
		lang:   lang,
		inputs: make(map[string]components.TextInput),
	}
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return statusTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(statusRefresh, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

func (s *AssessmentScreen) Title() string {
	return txtTitle.In(s.lang)
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	lang := s.lang
	switch {
	case s.confirming:
		return []layout.KeyHint{
			{Key: "y", Description: txtConfirmYes.In(lang)},
			{Key: "n", Description: txtConfirmNo.In(lang)},
		}
	case s.editing() != "":
		return []layout.KeyHint{
			{Key: "Enter", Description: txtDone.In(lang)},
			{Key: "Esc", Description: txtCancel.In(lang)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: txtMove.In(lang)},
		{Key: "←→", Description: txtAnswer.In(lang)},
		{Key: "Enter", Description: txtSelect.In(lang)},
		{Key: "n/p", Description: txtNextPrev.In(lang)},
		{Key: "s", Description: txtSaveExit.In(lang)},
		{Key: "Esc", Description: txtBack.In(lang)},
	}
}

// CapturingInput reports whether Esc belongs to this screen.
func (s *AssessmentScreen) CapturingInput() bool {
	return s.confirming || s.editing() != ""
}

// Confirming reports whether the completion dialog is open.
func (s *AssessmentScreen) Confirming() bool { return s.confirming }

// Focus returns the index of the focused row in the current step.
func (s *AssessmentScreen) Focus() int { return s.focus }

func (s *AssessmentScreen) editing() string {
	for key, in := range s.inputs {
		if in.Editing() {
			return key
		}
	}
	return ""
}

// items lists the focusable rows of the current step. The body-map step
// lists its regions before its questions.
func (s *AssessmentScreen) items() []item {
	sess := s.store.Session()
	q, ok := s.set.Questionnaires.Step(sess.CurrentStep)
	if !ok {
		return nil
	}
	var out []item
	if sess.CurrentStep == assess.BodyMapStep {
		for i := range s.set.Questionnaires.BodyRegions {
			out = append(out, item{region: &s.set.Questionnaires.BodyRegions[i]})
		}
	}
	for i := range q.Questions {
		out = append(out, item{question: &q.Questions[i]})
	}
	return out
}

func (s *AssessmentScreen) focused() (item, bool) {
	items := s.items()
	if s.focus < 0 || s.focus >= len(items) {
		return item{}, false
	}
	return items[s.focus], true
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusTickMsg:
		return s, statusTick()
	case screen.LanguageChangedMsg:
		s.lang = msg.Lang
		return s, nil
	case screen.SaveFailedMsg:
		s.notice = txtSaveFailed
		return s, nil
	case tea.KeyMsg:
		if s.confirming {
			return s.handleConfirm(msg)
		}
		if key := s.editing(); key != "" {
			return s, s.handleEdit(key, msg)
		}
		return s.handleKey(msg)
	}

	if key := s.editing(); key != "" {
		in, cmd := s.inputs[key].Update(msg)
		s.inputs[key] = in
		return s, cmd
	}
	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	s.notice = i18n.Text{}

	switch msg.String() {
	case "up", "k", "shift+tab":
		if s.focus > 0 {
			s.focus--
		}
		return s, nil
	case "down", "j", "tab":
		if s.focus < len(s.items())-1 {
			s.focus++
		}
		return s, nil
	case "pgup", "pgdown":
		s.scroll = s.scroll.Update(msg)
		return s, nil
	case "n":
		if s.store.Advance(ctx) {
			s.confirming = true
			return s, nil
		}
		s.resetStep()
		return s, nil
	case "p":
		s.store.Retreat()
		s.resetStep()
		return s, nil
	case "s":
		if err := s.store.SaveNow(ctx); err != nil {
			log.Warn().Err(err).Str("component", "assessment-screen").Msg("save & exit failed")
			s.notice = txtSaveFailed
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "enter", "space":
		return s, s.activate()
	}

	it, ok := s.focused()
	if !ok || it.question == nil {
		return s, nil
	}
	q := it.question
	if q.Kind == fixtures.KindText {
		return s, nil
	}
	c := components.NewChoice("", q.Choices(), nil, s.store.Session().Responses[q.Key])
	c.Focused = true
	if c, changed := c.Update(msg); changed {
		s.store.RecordResponse(q.Key, c.Value)
	}
	return s, nil
}

// activate toggles the focused region or opens the focused text answer.
func (s *AssessmentScreen) activate() tea.Cmd {
	it, ok := s.focused()
	if !ok {
		return nil
	}
	if it.region != nil {
		s.store.ToggleBodyRegion(it.region.ID)
		return nil
	}
	q := it.question
	if q.Kind != fixtures.KindText {
		return nil
	}
	in := components.NewTextInput(q.Prompt.In(s.lang), txtTypeHere.In(s.lang), s.store.Session().Responses[q.Key], 200)
	in, cmd := in.Edit()
	s.inputs[q.Key] = in
	return cmd
}

func (s *AssessmentScreen) handleEdit(key string, msg tea.KeyMsg) tea.Cmd {
	in := s.inputs[key]
	switch msg.String() {
	case "enter":
		in, v := in.Commit()
		s.inputs[key] = in
		if v != s.store.Session().Responses[key] {
			s.store.RecordResponse(key, v)
		}
		return nil
	case "esc":
		delete(s.inputs, key)
		return nil
	}
	in, cmd := in.Update(msg)
	s.inputs[key] = in
	return cmd
}

func (s *AssessmentScreen) handleConfirm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if err := s.store.CompleteAndClear(context.Background()); err != nil {
			log.Warn().Err(err).Str("component", "assessment-screen").Msg("completing assessment failed")
			s.confirming = false
			s.notice = txtCompleteFailed
			return s, nil
		}
		next := results.New(s.set, s.lang)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	default:
		s.confirming = false
	}
	return s, nil
}

func (s *AssessmentScreen) resetStep() {
	s.focus = 0
	s.scroll = components.Scroll{}
	s.inputs = make(map[string]components.TextInput)
}
