package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	assess "github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/router"
	"github.com/clbp/clbp/internal/screens/home"
	"github.com/clbp/clbp/internal/screens/welcome"
	"github.com/clbp/clbp/internal/store"
)

func testModel(t *testing.T, startAssessment bool) (AppModel, *i18n.Preference) {
	t.Helper()
	kv := store.NewMemoryKV()
	if err := kv.Put(context.Background(), store.LanguageKey, []byte("en")); err != nil {
		t.Fatal(err)
	}
	return newTestModel(t, kv, startAssessment)
}

func newTestModel(t *testing.T, kv store.KV, startAssessment bool) (AppModel, *i18n.Preference) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	ps := assess.NewProgressStore(store.NewRecord(kv, store.ProgressKey), assess.DefaultConfig())
	ps.Load(ctx)
	t.Cleanup(ps.Close)
	prefs := i18n.NewPreference(ctx, kv, i18n.English)
	t.Cleanup(func() { _ = prefs.Close() })

	m := newAppModel(ctx, Options{
		Progress:        ps,
		Prefs:           prefs,
		Fixtures:        fixtures.MustLoad(),
		StartAssessment: startAssessment,
	})
	return m, prefs
}

func TestFirstRunShowsWelcome(t *testing.T) {
	m, _ := newTestModel(t, store.NewMemoryKV(), false)
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected welcome screen, got %T", m.router.Active())
	}
}

func TestStoredLanguageSkipsWelcome(t *testing.T) {
	m, _ := testModel(t, false)
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home screen, got %T", m.router.Active())
	}
}

func TestEscPopsToHome(t *testing.T) {
	m, _ := testModel(t, true)
	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", m.router.Depth())
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscOnHomeDoesNothing(t *testing.T) {
	m, _ := testModel(t, false)
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("expected no command at the bottom of the stack")
	}
}

func TestEscGoesToCapturingScreen(t *testing.T) {
	m, _ := testModel(t, true)
	// Finish every step to open the completion dialog.
	for i := 0; i < assess.TotalSteps; i++ {
		m.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	}
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Error("esc must dismiss the dialog, not leave the screen")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", m.router.Depth())
	}
}

func TestLanguageChangeReachesScreens(t *testing.T) {
	m, prefs := testModel(t, true)
	if err := prefs.Set(context.Background(), i18n.Persian); err != nil {
		t.Fatal(err)
	}

	msg := waitForLanguage(m.langCh)()
	lm, ok := msg.(languageMsg)
	if !ok || lm.lang != i18n.Persian {
		t.Fatalf("unexpected message %#v", msg)
	}

	next, cmd := m.Update(lm)
	if cmd == nil {
		t.Error("expected the subscription to be re-armed")
	}
	am := next.(AppModel)
	if am.lang != i18n.Persian {
		t.Errorf("lang = %q, want fa", am.lang)
	}
	if am.router.Active().Title() != "ارزیابی" {
		t.Errorf("active title = %q, want Persian", am.router.Active().Title())
	}
}

func TestFooterUsesScreenHints(t *testing.T) {
	m, _ := testModel(t, true)
	hints := m.footerHints()
	var keys []string
	for _, h := range hints {
		keys = append(keys, h.Key)
	}
	joined := strings.Join(keys, " ")
	if !strings.Contains(joined, "n/p") || !strings.HasSuffix(joined, "Ctrl+C") {
		t.Errorf("unexpected footer keys %q", joined)
	}
}

func TestSaveErrorReachesAssessment(t *testing.T) {
	m, _ := testModel(t, true)
	ch := make(chan error, 1)
	m.saveCh = ch
	ch <- errors.New("disk full")

	msg := waitForSaveError(ch)()
	if _, ok := msg.(saveErrorMsg); !ok {
		t.Fatalf("unexpected message %#v", msg)
	}
	next, cmd := m.Update(msg)
	if cmd == nil {
		t.Error("expected the save error wait to be re-armed")
	}
	view := next.(AppModel).router.View(120, 60)
	if !strings.Contains(view, "Could not save") {
		t.Error("expected the assessment screen to show the save warning")
	}
}

func TestWaitForSaveErrorNilChannel(t *testing.T) {
	if waitForSaveError(nil) != nil {
		t.Error("expected no command without a channel")
	}
}
