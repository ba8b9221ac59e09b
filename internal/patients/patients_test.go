package patients

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster() []Patient {
	return []Patient{
		{ID: "P001", RiskScore: 72, Status: StatusActive},
		{ID: "P002", RiskScore: 45, Status: StatusCompleted},
		{ID: "P003", RiskScore: 88, Status: StatusPending},
		{ID: "P004", RiskScore: 61, Status: StatusActive},
		{ID: "P005", RiskScore: 29, Status: StatusCompleted},
	}
}

func ids(ps []Patient) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestRiskLevelFor(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLow},
		{39, RiskLow},
		{40, RiskModerate},
		{69, RiskModerate},
		{70, RiskHigh},
		{100, RiskHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevelFor(tt.score), "score %d", tt.score)
	}
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{}, []string{"P001", "P002", "P003", "P004", "P005"}},
		{"high", Filter{RiskLevel: RiskHigh}, []string{"P001", "P003"}},
		{"moderate", Filter{RiskLevel: RiskModerate}, []string{"P002", "P004"}},
		{"low", Filter{RiskLevel: RiskLow}, []string{"P005"}},
		{"active", Filter{Status: StatusActive}, []string{"P001", "P004"}},
		{"high and pending", Filter{RiskLevel: RiskHigh, Status: StatusPending}, []string{"P003"}},
		{"low and active", Filter{RiskLevel: RiskLow, Status: StatusActive}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(tt.filter.Apply(roster())))
		})
	}
}

func TestFilterCycling(t *testing.T) {
	var f Filter
	assert.True(t, f.IsZero())

	var seen []RiskLevel
	for i := 0; i < 4; i++ {
		f = f.NextRiskLevel()
		seen = append(seen, f.RiskLevel)
	}
	assert.Equal(t, []RiskLevel{RiskLow, RiskModerate, RiskHigh, ""}, seen)

	f = f.NextStatus().NextStatus()
	assert.Equal(t, StatusCompleted, f.Status)
	f = f.NextStatus().NextStatus()
	assert.Equal(t, Status(""), f.Status)
}

func TestSummarize(t *testing.T) {
	s := Summarize(roster())
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.ByRisk[RiskHigh])
	assert.Equal(t, 2, s.ByRisk[RiskModerate])
	assert.Equal(t, 1, s.ByRisk[RiskLow])
	assert.Equal(t, 2, s.ByStatus[StatusActive])
	assert.InDelta(t, 59.0, s.MeanRiskScore, 0.001)
	assert.InDelta(t, 40.0, s.Share(RiskHigh), 0.001)

	empty := Summarize(nil)
	assert.Zero(t, empty.MeanRiskScore)
	assert.Zero(t, empty.Share(RiskLow))
}

func TestParseFlags(t *testing.T) {
	r, err := ParseRiskLevel("High")
	require.NoError(t, err)
	assert.Equal(t, RiskHigh, r)

	r, err = ParseRiskLevel("all")
	require.NoError(t, err)
	assert.Equal(t, RiskLevel(""), r)

	_, err = ParseRiskLevel("severe")
	assert.True(t, errors.Is(err, ErrUnknownRiskLevel))

	s, err := ParseStatus(" pending ")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s)

	_, err = ParseStatus("archived")
	assert.True(t, errors.Is(err, ErrUnknownStatus))
}
