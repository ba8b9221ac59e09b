package patients

// Filter selects patients by risk bucket and status. A zero field matches
// everything.
type Filter struct {
	RiskLevel RiskLevel
	Status    Status
}

// Match reports whether p passes the filter.
func (f Filter) Match(p Patient) bool {
	if f.RiskLevel != "" && p.RiskLevel() != f.RiskLevel {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	return true
}

// Apply returns the matching patients in their original order.
func (f Filter) Apply(ps []Patient) []Patient {
	out := make([]Patient, 0, len(ps))
	for _, p := range ps {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool { return f.RiskLevel == "" && f.Status == "" }

// NextRiskLevel cycles all -> low -> moderate -> high -> all.
func (f Filter) NextRiskLevel() Filter {
	f.RiskLevel = cycle(f.RiskLevel, RiskLevels)
	return f
}

// NextStatus cycles all -> active -> completed -> pending -> all.
func (f Filter) NextStatus() Filter {
	f.Status = cycle(f.Status, Statuses)
	return f
}

func cycle[T comparable](cur T, order []T) T {
	var zero T
	if cur == zero {
		return order[0]
	}
	for i, v := range order {
		if v == cur && i+1 < len(order) {
			return order[i+1]
		}
	}
	return zero
}

// Summary aggregates the roster for the dashboard.
type Summary struct {
	Total         int
	ByRisk        map[RiskLevel]int
	ByStatus      map[Status]int
	MeanRiskScore float64
}

// Share returns the percentage of patients in risk bucket r.
func (s Summary) Share(r RiskLevel) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.ByRisk[r]) * 100 / float64(s.Total)
}

// Summarize counts patients by bucket and status.
func Summarize(ps []Patient) Summary {
	s := Summary{
		Total:    len(ps),
		ByRisk:   make(map[RiskLevel]int, len(RiskLevels)),
		ByStatus: make(map[Status]int, len(Statuses)),
	}
	var sum int
	for _, p := range ps {
		s.ByRisk[p.RiskLevel()]++
		s.ByStatus[p.Status]++
		sum += p.RiskScore
	}
	if len(ps) > 0 {
		s.MeanRiskScore = float64(sum) / float64(len(ps))
	}
	return s
}
