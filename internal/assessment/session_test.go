package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimatedMinutesRemaining(t *testing.T) {
	tests := []struct {
		name string
		step int
		want int
	}{
		{"first step", 1, 30},
		{"middle", 5, 18},
		{"last step", TotalSteps, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(time.Now())
			s.CurrentStep = tt.step
			assert.Equal(t, tt.want, s.EstimatedMinutesRemaining())
		})
	}
}

func TestAnsweredCountIncludesBodyMap(t *testing.T) {
	s := NewSession(time.Now())
	assert.Equal(t, 0, s.AnsweredCount())

	s.Responses["q1"] = "1"
	s.Responses["q2"] = "2"
	assert.Equal(t, 2, s.AnsweredCount())

	s.BodyRegions["neck"] = true
	s.BodyRegions["hips"] = true
	assert.Equal(t, 3, s.AnsweredCount(), "the body map counts once")
}

func TestCloneIsDeep(t *testing.T) {
	s := NewSession(time.Now())
	s.Responses["q1"] = "1"
	s.CompletedSteps[1] = true
	s.BodyRegions["neck"] = true

	c := s.Clone()
	c.Responses["q1"] = "changed"
	c.CompletedSteps[2] = true
	delete(c.BodyRegions, "neck")

	assert.Equal(t, "1", s.Responses["q1"])
	assert.False(t, s.CompletedSteps[2])
	assert.True(t, s.BodyRegions["neck"])
}

func TestProgressAndOrdering(t *testing.T) {
	s := NewSession(time.Now())
	s.CompletedSteps[3] = true
	s.CompletedSteps[1] = true
	s.BodyRegions["shoulders"] = true
	s.BodyRegions["hips"] = true
	s.Responses["b"] = "1"
	s.Responses["a"] = "2"

	assert.InDelta(t, 0.2, s.Progress(), 1e-9)
	assert.Equal(t, []int{1, 3}, s.CompletedList())
	assert.Equal(t, []string{"hips", "shoulders"}, s.RegionList())
	assert.Equal(t, []string{"a", "b"}, s.ResponseKeys())
	assert.False(t, s.IsFresh())
}

func TestEncodeSnapshotShape(t *testing.T) {
	s := NewSession(time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC))
	s.CurrentStep = 2
	s.Responses["q1"] = "3"
	s.CompletedSteps[1] = true

	raw, err := EncodeSnapshot(s)
	assert.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "`+s.ID+`",
		"startedAt": "2025-01-05T09:00:00Z",
		"currentStepIndex": 2,
		"responses": {"q1": "3"},
		"completedStepIndices": [1],
		"selectedBodyRegions": []
	}`, string(raw))
}
