package assessment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Storage is the durable backing for a single progress record.
type Storage interface {
	// Load returns the stored snapshot, or nil if none exists.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored snapshot. A reader observes either the old
	// or the new snapshot, never a partial write.
	Save(ctx context.Context, data []byte) error

	// Clear removes the stored snapshot.
	Clear(ctx context.Context) error
}

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SaveStatus describes the auto-save state for display.
type SaveStatus struct {
	Saving      bool
	LastSavedAt time.Time
	Unsaved     bool
	LastError   error
}

// Option configures a ProgressStore.
type Option func(*ProgressStore)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *ProgressStore) { s.now = now }
}

// WithAfterFunc overrides the debounce timer factory.
func WithAfterFunc(af AfterFunc) Option {
	return func(s *ProgressStore) { s.afterFunc = af }
}

// WithSaveErrorHandler registers a callback for writes that failed after retries.
func WithSaveErrorHandler(fn func(error)) Option {
	return func(s *ProgressStore) { s.onSaveError = fn }
}

// ProgressStore owns the in-progress assessment session and keeps a durable
// snapshot of it. Debounced mutations are written after a quiet period;
// step advances are written immediately. Safe for concurrent use.
type ProgressStore struct {
	storage     Storage
	cfg         Config
	now         func() time.Time
	afterFunc   AfterFunc
	onSaveError func(error)

	// saveMu serializes writes so snapshots land in order.
	saveMu sync.Mutex

	mu       sync.Mutex
	session  Session
	revision uint64
	pending  Timer
	timerGen uint64
	saving   bool
	lastErr  error
	closed   bool
}

// NewProgressStore creates a store over storage. Call Load before mutating.
func NewProgressStore(storage Storage, cfg Config, opts ...Option) *ProgressStore {
	s := &ProgressStore{
		storage:   storage,
		cfg:       cfg,
		now:       time.Now,
		afterFunc: realAfterFunc,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.session = NewSession(s.now())
	return s
}

// Load restores the durable snapshot, or starts a fresh session when none
// exists or the stored data is unreadable. It never fails.
func (s *ProgressStore) Load(ctx context.Context) Session {
	sess := s.restore(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopPendingLocked()
	s.session = sess
	s.revision++
	s.lastErr = nil
	return s.session.Clone()
}

func (s *ProgressStore) restore(ctx context.Context) Session {
	raw, err := s.storage.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("component", "assessment").Msg("failed to read saved progress, starting fresh")
		return NewSession(s.now())
	}
	if raw == nil {
		return NewSession(s.now())
	}
	sess, err := DecodeSnapshot(raw)
	if err != nil {
		log.Debug().Err(err).Str("component", "assessment").Msg("discarding unreadable saved progress")
		return NewSession(s.now())
	}
	if sess.ID == "" {
		sess.ID = NewSession(s.now()).ID
	}
	if sess.StartedAt.IsZero() {
		sess.StartedAt = s.now()
	}
	log.Debug().
		Str("component", "assessment").
		Str("session_id", sess.ID).
		Int("step", sess.CurrentStep).
		Int("answered", len(sess.Responses)).
		Msg("restored saved progress")
	return sess
}

// Session returns a copy of the current session.
func (s *ProgressStore) Session() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// Status returns the auto-save state.
func (s *ProgressStore) Status() SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SaveStatus{
		Saving:      s.saving,
		LastSavedAt: s.session.LastSavedAt,
		Unsaved:     s.session.HasUnsavedChanges,
		LastError:   s.lastErr,
	}
}

// RecordResponse stores the answer for a question and schedules a save.
func (s *ProgressStore) RecordResponse(questionKey, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Responses[questionKey] = value
	s.markDirtyLocked()
	s.scheduleLocked()
}

// ToggleBodyRegion flips the selection of a body-map region and schedules a save.
func (s *ProgressStore) ToggleBodyRegion(regionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.BodyRegions[regionID] {
		delete(s.session.BodyRegions, regionID)
	} else {
		s.session.BodyRegions[regionID] = true
	}
	s.markDirtyLocked()
	s.scheduleLocked()
}

// Advance marks the current step complete and moves to the next one. On the
// final step it stays put and reports completion instead. The session is
// saved immediately; a failed save is handled by the store's failure policy.
func (s *ProgressStore) Advance(ctx context.Context) (complete bool) {
	s.mu.Lock()
	step := s.session.CurrentStep
	if !s.session.CompletedSteps[step] {
		s.session.CompletedSteps[step] = true
		s.markDirtyLocked()
	}
	if step >= TotalSteps {
		complete = true
	} else {
		s.session.CurrentStep = step + 1
		s.markDirtyLocked()
	}
	s.mu.Unlock()

	_ = s.SaveNow(ctx)
	return complete
}

// Retreat moves back one step, stopping at step 1. It does not save.
func (s *ProgressStore) Retreat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session.CurrentStep > 1 {
		s.session.CurrentStep--
		s.markDirtyLocked()
	}
}

// SaveNow writes the full current session to storage.
func (s *ProgressStore) SaveNow(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	return s.saveLocked(ctx)
}

// CompleteAndClear writes a final snapshot and then removes it from storage,
// leaving the store holding a fresh session. If the final write fails the
// stored record is kept.
func (s *ProgressStore) CompleteAndClear(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	if err := s.saveLocked(ctx); err != nil {
		return fmt.Errorf("final save: %w", err)
	}
	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopPendingLocked()
	log.Info().Str("component", "assessment").Str("session_id", s.session.ID).Msg("assessment completed")
	s.session = NewSession(s.now())
	s.revision++
	return nil
}

// Close cancels any pending debounced save. Unsaved changes stay in memory.
func (s *ProgressStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopPendingLocked()
}

func (s *ProgressStore) markDirtyLocked() {
	s.session.HasUnsavedChanges = true
	s.revision++
}

// scheduleLocked (re)starts the quiet-period timer. Each call replaces the
// previous timer, so a burst of edits produces one write.
func (s *ProgressStore) scheduleLocked() {
	if s.closed {
		return
	}
	s.stopPendingLocked()
	gen := s.timerGen
	s.pending = s.afterFunc(s.cfg.QuietPeriod, func() { s.debouncedSave(gen) })
}

// stopPendingLocked cancels the pending timer. Bumping timerGen also voids a
// callback that already fired but has not started writing yet.
func (s *ProgressStore) stopPendingLocked() {
	s.timerGen++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

func (s *ProgressStore) debouncedSave(gen uint64) {
	ctx := context.Background()
	if s.cfg.SaveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SaveTimeout)
		defer cancel()
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	stale := s.closed || s.timerGen != gen
	s.mu.Unlock()
	if stale {
		return
	}
	_ = s.saveLocked(ctx)
}

// saveLocked requires saveMu.
func (s *ProgressStore) saveLocked(ctx context.Context) error {
	s.mu.Lock()
	s.stopPendingLocked()
	at := s.now()
	snap := s.session.Clone()
	snap.LastSavedAt = at
	rev := s.revision
	s.saving = true
	s.mu.Unlock()

	data, err := EncodeSnapshot(snap)
	if err == nil {
		err = s.write(ctx, data)
	}

	s.mu.Lock()
	s.saving = false
	if err != nil {
		s.lastErr = err
		hook := s.onSaveError
		s.mu.Unlock()

		log.Warn().Err(err).
			Str("component", "assessment").
			Str("session_id", snap.ID).
			Int("step", snap.CurrentStep).
			Msg("saving progress failed, keeping changes in memory")
		if hook != nil {
			hook(err)
		}
		return err
	}

	s.lastErr = nil
	s.session.LastSavedAt = at
	if s.revision == rev {
		s.session.HasUnsavedChanges = false
	}
	s.mu.Unlock()

	log.Debug().
		Str("component", "assessment").
		Str("session_id", snap.ID).
		Int("step", snap.CurrentStep).
		Msg("progress saved")
	return nil
}

func (s *ProgressStore) write(ctx context.Context, data []byte) error {
	var err error
	for attempt := 0; attempt <= s.cfg.WriteRetries; attempt++ {
		if err = s.storage.Save(ctx, data); err == nil {
			return nil
		}
		if ctx.Err() != nil {
			break
		}
	}
	return fmt.Errorf("write progress: %w", err)
}
