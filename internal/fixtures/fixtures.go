// Package fixtures loads the static dashboard content (questionnaires,
// patient roster, results, profile and monitoring data) from embedded YAML.
// Every document is checked against its JSON schema before decoding.
package fixtures

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

//go:embed schemas/*.json
var schemaFS embed.FS

// Document names.
const (
	QuestionnairesDoc = "questionnaires"
	PatientsDoc       = "patients"
	ResultsDoc        = "results"
	ProfileDoc        = "profile"
	MonitoringDoc     = "monitoring"
)

// Set is every fixture document, decoded.
type Set struct {
	Questionnaires *Questionnaires
	Roster         *Roster
	Results        *Results
	Profile        *Profile
	Monitoring     *Monitoring
}

// LoadAll decodes every embedded document concurrently.
func LoadAll(ctx context.Context) (*Set, error) {
	s := &Set{
		Questionnaires: &Questionnaires{},
		Roster:         &Roster{},
		Results:        &Results{},
		Profile:        &Profile{},
		Monitoring:     &Monitoring{},
	}
	docs := map[string]any{
		QuestionnairesDoc: s.Questionnaires,
		PatientsDoc:       s.Roster,
		ResultsDoc:        s.Results,
		ProfileDoc:        s.Profile,
		MonitoringDoc:     s.Monitoring,
	}

	g, ctx := errgroup.WithContext(ctx)
	for name, out := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := dataFS.ReadFile("data/" + name + ".yaml")
			if err != nil {
				return errors.Wrapf(err, "read fixture %s", name)
			}
			return Decode(name, raw, out)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.Questionnaires.checkScales(); err != nil {
		return nil, err
	}
	s.Questionnaires.assignKeys()
	return s, nil
}

// MustLoad is LoadAll for callers that cannot proceed without fixtures.
func MustLoad() *Set {
	s, err := LoadAll(context.Background())
	if err != nil {
		panic(err)
	}
	return s
}

// Decode validates raw YAML against the named document's schema and
// decodes it into out.
func Decode(name string, raw []byte, out any) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return errors.Wrapf(err, "parse fixture %s", name)
	}

	// The validator wants JSON values; yaml.v3 yields Go ints and
	// map[string]any, so normalise through encoding/json.
	js, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "normalise fixture %s", name)
	}
	var inst any
	if err := json.Unmarshal(js, &inst); err != nil {
		return errors.Wrapf(err, "normalise fixture %s", name)
	}

	schema, err := compiledSchema(name)
	if err != nil {
		return err
	}
	if err := schema.Validate(inst); err != nil {
		return errors.Wrapf(err, "fixture %s failed validation", name)
	}

	return errors.Wrapf(yaml.Unmarshal(raw, out), "decode fixture %s", name)
}

var (
	schemaMu    sync.Mutex
	schemaCache = map[string]*jsonschema.Schema{}
)

func compiledSchema(name string) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if s, ok := schemaCache[name]; ok {
		return s, nil
	}

	raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
	if err != nil {
		return nil, errors.Wrapf(err, "no schema for fixture %s", name)
	}
	var def any
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, errors.Wrapf(err, "parse schema %s", name)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://fixtures/%s.json", name)
	if err := c.AddResource(url, def); err != nil {
		return nil, errors.Wrapf(err, "add schema %s", name)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, errors.Wrapf(err, "compile schema %s", name)
	}
	schemaCache[name] = s
	return s, nil
}

// checkScales rejects scale questions whose range is empty. The schema
// cannot compare min against max.
func (q *Questionnaires) checkScales() error {
	for _, step := range q.Steps {
		for i, qu := range step.Questions {
			if qu.Kind == KindScale && qu.Max < qu.Min {
				return errors.Errorf("fixture %s: step %d question %d has max %d below min %d",
					QuestionnairesDoc, step.Step, i+1, qu.Max, qu.Min)
			}
		}
	}
	return nil
}

// assignKeys fills in response keys of the form CODE_qN for questions that
// don't name one.
func (q *Questionnaires) assignKeys() {
	for si := range q.Steps {
		step := &q.Steps[si]
		for qi := range step.Questions {
			if step.Questions[qi].Key == "" {
				step.Questions[qi].Key = fmt.Sprintf("%s_q%d", step.Code, qi+1)
			}
		}
	}
}
