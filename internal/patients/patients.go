// Package patients holds the patient roster model with risk bucketing,
// filtering and the dashboard summary.
package patients

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/clbp/clbp/internal/i18n"
)

// RiskLevel buckets a chronicity risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Risk score thresholds. Scores below LowRiskBelow are low; below
// ModerateRiskBelow moderate; everything else high.
const (
	LowRiskBelow      = 40
	ModerateRiskBelow = 70
)

// RiskLevels lists the buckets in ascending order.
var RiskLevels = []RiskLevel{RiskLow, RiskModerate, RiskHigh}

// Status is a patient's assessment status.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

// Statuses lists every known status.
var Statuses = []Status{StatusActive, StatusCompleted, StatusPending}

// All is the filter wildcard.
const All = "all"

var (
	ErrUnknownRiskLevel = errors.New("unknown risk level")
	ErrUnknownStatus    = errors.New("unknown status")
)

// Patient is one row of the roster.
type Patient struct {
	ID           string    `yaml:"id" json:"id"`
	Name         i18n.Text `yaml:"name" json:"name"`
	Phase        string    `yaml:"phase" json:"phase"`
	RiskScore    int       `yaml:"riskScore" json:"riskScore"`
	LastActivity string    `yaml:"lastActivity" json:"lastActivity"`
	Status       Status    `yaml:"status" json:"status"`
	Age          int       `yaml:"age" json:"age"`
	Gender       i18n.Text `yaml:"gender" json:"gender"`
}

// RiskLevel returns the patient's bucket.
func (p Patient) RiskLevel() RiskLevel {
	return RiskLevelFor(p.RiskScore)
}

// RiskLevelFor buckets score: below 40 low, below 70 moderate, otherwise high.
func RiskLevelFor(score int) RiskLevel {
	switch {
	case score < LowRiskBelow:
		return RiskLow
	case score < ModerateRiskBelow:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// Label returns the bucket's display name.
func (r RiskLevel) Label() i18n.Text {
	switch r {
	case RiskLow:
		return i18n.T("Low", "کم")
	case RiskModerate:
		return i18n.T("Moderate", "متوسط")
	case RiskHigh:
		return i18n.T("High", "بالا")
	}
	return i18n.T("All", "همه")
}

// Label returns the status display name.
func (s Status) Label() i18n.Text {
	switch s {
	case StatusActive:
		return i18n.T("Active", "فعال")
	case StatusCompleted:
		return i18n.T("Completed", "تکمیل شده")
	case StatusPending:
		return i18n.T("Pending", "در انتظار")
	}
	return i18n.T("All", "همه")
}

// ParseRiskLevel accepts a bucket name or "all" (returned as "").
func ParseRiskLevel(s string) (RiskLevel, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == All {
		return "", nil
	}
	for _, r := range RiskLevels {
		if string(r) == v {
			return r, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownRiskLevel, "%q (want low, moderate, high or all)", s)
}

// ParseStatus accepts a status name or "all" (returned as "").
func ParseStatus(s string) (Status, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == All {
		return "", nil
	}
	for _, st := range Statuses {
		if string(st) == v {
			return st, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownStatus, "%q (want active, completed, pending or all)", s)
}
