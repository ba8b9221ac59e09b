package assessment

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// TotalSteps is the fixed number of questionnaire steps in an assessment.
const TotalSteps = 10

// BodyMapStep is the step that shows the pain-location selector (Nordic questionnaire).
const BodyMapStep = 9

// minutesPerStep is the estimated time a respondent spends on one step.
const minutesPerStep = 3

// Session is one respondent's in-progress run through the questionnaire flow.
type Session struct {
	// ID identifies the session across saves and in logs.
	ID string

	// StartedAt is when the session was first created.
	StartedAt time.Time

	// CurrentStep is the 1-based index of the visible step, always in [1, TotalSteps].
	CurrentStep int

	// Responses maps question keys to answers (scale values and option ids are stored as strings).
	Responses map[string]string

	// CompletedSteps is the set of steps the respondent has moved past. It only grows.
	CompletedSteps map[int]bool

	// BodyRegions is the set of selected body-map region ids.
	BodyRegions map[string]bool

	// LastSavedAt is the time of the last successful durable write; zero if none.
	LastSavedAt time.Time

	// HasUnsavedChanges is true after any mutation since the last successful save.
	HasUnsavedChanges bool
}

// NewSession returns an empty session positioned at step 1.
func NewSession(now time.Time) Session {
	return Session{
		ID:             uuid.New().String(),
		StartedAt:      now,
		CurrentStep:    1,
		Responses:      make(map[string]string),
		CompletedSteps: make(map[int]bool),
		BodyRegions:    make(map[string]bool),
	}
}

// IsFresh reports whether the session carries no progress at all.
func (s Session) IsFresh() bool {
	return s.CurrentStep == 1 &&
		len(s.Responses) == 0 &&
		len(s.CompletedSteps) == 0 &&
		len(s.BodyRegions) == 0 &&
		s.LastSavedAt.IsZero()
}

// Clone returns a deep copy of the session.
func (s Session) Clone() Session {
	c := s
	c.Responses = make(map[string]string, len(s.Responses))
	for k, v := range s.Responses {
		c.Responses[k] = v
	}
	c.CompletedSteps = make(map[int]bool, len(s.CompletedSteps))
	for k, v := range s.CompletedSteps {
		if v {
			c.CompletedSteps[k] = true
		}
	}
	c.BodyRegions = make(map[string]bool, len(s.BodyRegions))
	for k, v := range s.BodyRegions {
		if v {
			c.BodyRegions[k] = true
		}
	}
	return c
}

// IsStepCompleted reports whether step has been marked complete.
func (s Session) IsStepCompleted(step int) bool {
	return s.CompletedSteps[step]
}

// HasRegion reports whether the body-map region is selected.
func (s Session) HasRegion(id string) bool {
	return s.BodyRegions[id]
}

// CompletedList returns the completed steps in ascending order.
func (s Session) CompletedList() []int {
	out := make([]int, 0, len(s.CompletedSteps))
	for step, ok := range s.CompletedSteps {
		if ok {
			out = append(out, step)
		}
	}
	sort.Ints(out)
	return out
}

// RegionList returns the selected body regions in lexical order.
func (s Session) RegionList() []string {
	out := make([]string, 0, len(s.BodyRegions))
	for id, ok := range s.BodyRegions {
		if ok {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// ResponseKeys returns the answered question keys in lexical order.
func (s Session) ResponseKeys() []string {
	keys := make([]string, 0, len(s.Responses))
	for k := range s.Responses {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AnsweredCount counts answered questions; a non-empty body map counts as one answer.
func (s Session) AnsweredCount() int {
	n := len(s.Responses)
	if len(s.BodyRegions) > 0 {
		n++
	}
	return n
}

// EstimatedMinutesRemaining estimates the time left assuming a fixed pace per step.
func (s Session) EstimatedMinutesRemaining() int {
	remaining := TotalSteps - s.CurrentStep + 1
	if remaining < 1 {
		remaining = 1
	}
	return remaining * minutesPerStep
}

// Progress returns the fraction of completed steps (0.0-1.0).
func (s Session) Progress() float64 {
	return float64(len(s.CompletedList())) / float64(TotalSteps)
}

// IsFirstStep reports whether the session is on step 1.
func (s Session) IsFirstStep() bool {
	return s.CurrentStep == 1
}

// IsLastStep reports whether the session is on the final step.
func (s Session) IsLastStep() bool {
	return s.CurrentStep == TotalSteps
}
