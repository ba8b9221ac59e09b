package fixtures

import (
	"fmt"

	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/patients"
)

// QuestionKind selects how a question is answered.
type QuestionKind string

const (
	KindScale QuestionKind = "scale"
	KindRadio QuestionKind = "radio"
	KindText  QuestionKind = "text"
)

// Option is one choice of a radio question.
type Option struct {
	Value string    `yaml:"value"`
	Label i18n.Text `yaml:"label"`
	Score *int      `yaml:"score,omitempty"`
}

// Question is a single item of a questionnaire. Key is the response key
// stored in the assessment session, e.g. "FABQ_q1".
type Question struct {
	Key      string       `yaml:"key"`
	Prompt   i18n.Text    `yaml:"prompt"`
	Kind     QuestionKind `yaml:"kind"`
	Min      int          `yaml:"min"`
	Max      int          `yaml:"max"`
	MinLabel i18n.Text    `yaml:"minLabel"`
	MaxLabel i18n.Text    `yaml:"maxLabel"`
	Options  []Option     `yaml:"options"`
	Required bool         `yaml:"required"`
}

// Choices returns the values a question accepts, in display order. Text
// questions return nil.
func (q Question) Choices() []string {
	switch q.Kind {
	case KindScale:
		if q.Max < q.Min {
			return nil
		}
		out := make([]string, 0, q.Max-q.Min+1)
		for v := q.Min; v <= q.Max; v++ {
			out = append(out, fmt.Sprint(v))
		}
		return out
	case KindRadio:
		out := make([]string, len(q.Options))
		for i, o := range q.Options {
			out[i] = o.Value
		}
		return out
	}
	return nil
}

// OptionLabel returns the label for value, or value itself when it has none.
func (q Question) OptionLabel(value string, lang i18n.Language) string {
	for _, o := range q.Options {
		if o.Value == value {
			return o.Label.In(lang)
		}
	}
	return value
}

// Questionnaire is one step of the assessment.
type Questionnaire struct {
	Step         int        `yaml:"step"`
	Code         string     `yaml:"code"`
	Name         i18n.Text  `yaml:"name"`
	Title        i18n.Text  `yaml:"title"`
	Description  i18n.Text  `yaml:"description"`
	Instructions i18n.Text  `yaml:"instructions"`
	Questions    []Question `yaml:"questions"`
}

// BodyRegion is a selectable area of the Nordic body map.
type BodyRegion struct {
	ID    string    `yaml:"id"`
	Label i18n.Text `yaml:"label"`
}

// Questionnaires is the full assessment definition.
type Questionnaires struct {
	Steps       []Questionnaire `yaml:"steps"`
	BodyRegions []BodyRegion    `yaml:"bodyRegions"`
}

// Step returns the questionnaire for a 1-based step.
func (q *Questionnaires) Step(n int) (Questionnaire, bool) {
	for _, s := range q.Steps {
		if s.Step == n {
			return s, true
		}
	}
	return Questionnaire{}, false
}

// Region looks up a body region by id.
func (q *Questionnaires) Region(id string) (BodyRegion, bool) {
	for _, r := range q.BodyRegions {
		if r.ID == id {
			return r, true
		}
	}
	return BodyRegion{}, false
}

// Roster is the admin patient list.
type Roster struct {
	Patients []patients.Patient `yaml:"patients"`
}

// Factor is one explanatory contribution to the risk prediction.
type Factor struct {
	Name        i18n.Text `yaml:"name"`
	Impact      float64   `yaml:"impact"`
	Description i18n.Text `yaml:"description"`
}

// Subscale is a part score of a questionnaire.
type Subscale struct {
	Name     i18n.Text `yaml:"name"`
	Score    float64   `yaml:"score"`
	MaxScore float64   `yaml:"maxScore"`
}

// Score is a scored questionnaire in the results view.
type Score struct {
	ID              string     `yaml:"id"`
	Type            string     `yaml:"type"`
	Name            i18n.Text  `yaml:"name"`
	Description     i18n.Text  `yaml:"description"`
	Score           float64    `yaml:"score"`
	MaxScore        float64    `yaml:"maxScore"`
	CompletedDate   string     `yaml:"completedDate"`
	DurationMinutes int        `yaml:"durationMinutes"`
	Subscales       []Subscale `yaml:"subscales"`
	NormalRange     i18n.Text  `yaml:"normalRange"`
	ClinicalNotes   i18n.Text  `yaml:"clinicalNotes"`
}

// Percent returns the score as a share of its maximum.
func (s Score) Percent() float64 {
	if s.MaxScore == 0 {
		return 0
	}
	return s.Score * 100 / s.MaxScore
}

// PainRegion is a body-map region with a 0-10 severity.
type PainRegion struct {
	Region   string `yaml:"region"`
	Severity int    `yaml:"severity"`
}

// Results is the assessment results page.
type Results struct {
	PatientID          string       `yaml:"patientId"`
	RiskPercentage     int          `yaml:"riskPercentage"`
	ConfidenceInterval []int        `yaml:"confidenceInterval"`
	Factors            []Factor     `yaml:"factors"`
	Scores             []Score      `yaml:"scores"`
	PainRegions        []PainRegion `yaml:"painRegions"`
}

// RiskLevel buckets the predicted risk.
func (r *Results) RiskLevel() patients.RiskLevel {
	return patients.RiskLevelFor(r.RiskPercentage)
}

// PatientDetail is the header of the profile page.
type PatientDetail struct {
	ID               string          `yaml:"id"`
	Name             i18n.Text       `yaml:"name"`
	Age              int             `yaml:"age"`
	Gender           i18n.Text       `yaml:"gender"`
	Phone            string          `yaml:"phone"`
	Email            string          `yaml:"email"`
	Address          i18n.Text       `yaml:"address"`
	Status           patients.Status `yaml:"status"`
	PainLevel        int             `yaml:"painLevel"`
	ChronicRisk      int             `yaml:"chronicRisk"`
	CurrentPhase     string          `yaml:"currentPhase"`
	RegistrationDate string          `yaml:"registrationDate"`
	LastAssessment   string          `yaml:"lastAssessment"`
	NextAppointment  string          `yaml:"nextAppointment"`
}

// Phase is one timepoint of the patient timeline.
type Phase struct {
	ID             string    `yaml:"id"`
	Name           i18n.Text `yaml:"name"`
	Date           string    `yaml:"date"`
	Status         string    `yaml:"status"`
	CompletionRate int       `yaml:"completionRate"`
}

// PhaseScore is a questionnaire result within a phase.
type PhaseScore struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Score    float64 `yaml:"score"`
	MaxScore float64 `yaml:"maxScore"`
}

// Note is a clinical note on the profile page.
type Note struct {
	ID       int       `yaml:"id"`
	Date     string    `yaml:"date"`
	Time     string    `yaml:"time"`
	Author   i18n.Text `yaml:"author"`
	Category string    `yaml:"category"`
	Title    i18n.Text `yaml:"title"`
	Content  i18n.Text `yaml:"content"`
	Priority string    `yaml:"priority"`
}

// Profile is the patient profile page.
type Profile struct {
	Patient     PatientDetail `yaml:"patient"`
	Phases      []Phase       `yaml:"phases"`
	PhaseScores []PhaseScore  `yaml:"phaseScores"`
	PainRegions []PainRegion  `yaml:"painRegions"`
	Notes       []Note        `yaml:"notes"`
}

// RiskDistribution is the percentage of patients per bucket.
type RiskDistribution struct {
	Low      float64 `yaml:"low"`
	Moderate float64 `yaml:"moderate"`
	High     float64 `yaml:"high"`
}

// Metrics are the admin headline numbers.
type Metrics struct {
	TotalPatients    int              `yaml:"totalPatients"`
	CompletionRate   float64          `yaml:"completionRate"`
	RiskDistribution RiskDistribution `yaml:"riskDistribution"`
	ModelAccuracy    float64          `yaml:"modelAccuracy"`
}

// ROCPoint is one point of the ROC curve.
type ROCPoint struct {
	FPR float64 `yaml:"fpr"`
	TPR float64 `yaml:"tpr"`
	AUC float64 `yaml:"auc"`
}

// Trend is a weekly model quality sample.
type Trend struct {
	Date      string  `yaml:"date"`
	Accuracy  float64 `yaml:"accuracy"`
	Precision float64 `yaml:"precision"`
	Recall    float64 `yaml:"recall"`
	F1Score   float64 `yaml:"f1Score"`
}

// QualityMetric is a data quality indicator.
type QualityMetric struct {
	Metric i18n.Text `yaml:"metric"`
	Score  float64   `yaml:"score"`
	Status string    `yaml:"status"`
}

// Alert is a model monitoring notice.
type Alert struct {
	Level   string    `yaml:"level"`
	Title   i18n.Text `yaml:"title"`
	Message i18n.Text `yaml:"message"`
}

// Monitoring is the admin model monitoring view.
type Monitoring struct {
	Metrics     Metrics         `yaml:"metrics"`
	ROC         []ROCPoint      `yaml:"roc"`
	Trends      []Trend         `yaml:"trends"`
	DataQuality []QualityMetric `yaml:"dataQuality"`
	Alerts      []Alert         `yaml:"alerts"`
}

// ProfileFor returns the detailed profile when it belongs to p, otherwise a
// header-only profile built from the roster row.
func (s *Set) ProfileFor(p patients.Patient) *Profile {
	if s.Profile != nil && s.Profile.Patient.ID == p.ID {
		return s.Profile
	}
	return &Profile{Patient: PatientDetail{
		ID:             p.ID,
		Name:           p.Name,
		Age:            p.Age,
		Gender:         p.Gender,
		Status:         p.Status,
		ChronicRisk:    p.RiskScore,
		CurrentPhase:   p.Phase,
		LastAssessment: p.LastActivity,
	}}
}
