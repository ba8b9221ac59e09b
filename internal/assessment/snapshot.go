package assessment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// snapshotRecord is the serialized form of a Session in durable storage.
type snapshotRecord struct {
	ID             string            `json:"id,omitempty"`
	StartedAt      *time.Time        `json:"startedAt,omitempty"`
	CurrentStep    int               `json:"currentStepIndex"`
	Responses      map[string]string `json:"responses"`
	CompletedSteps []int             `json:"completedStepIndices"`
	BodyRegions    []string          `json:"selectedBodyRegions"`
	LastSavedAt    *time.Time        `json:"lastSavedAt,omitempty"`
}

// decodedRecord accepts any scalar as a response value.
type decodedRecord struct {
	ID             string         `json:"id"`
	StartedAt      *time.Time     `json:"startedAt"`
	CurrentStep    int            `json:"currentStepIndex"`
	Responses      map[string]any `json:"responses"`
	CompletedSteps []int          `json:"completedStepIndices"`
	BodyRegions    []string       `json:"selectedBodyRegions"`
	LastSavedAt    *time.Time     `json:"lastSavedAt"`
}

const snapshotSchemaURL = "schema://assessment-progress.json"

var snapshotSchemaDoc = fmt.Sprintf(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["currentStepIndex"],
	"properties": {
		"id": {"type": "string"},
		"startedAt": {"type": ["string", "null"]},
		"currentStepIndex": {"type": "integer", "minimum": 1, "maximum": %[1]d},
		"responses": {
			"type": ["object", "null"],
			"additionalProperties": {"type": ["string", "number", "boolean"]}
		},
		"completedStepIndices": {
			"type": ["array", "null"],
			"items": {"type": "integer", "minimum": 1, "maximum": %[1]d}
		},
		"selectedBodyRegions": {
			"type": ["array", "null"],
			"items": {"type": "string"}
		},
		"lastSavedAt": {"type": ["string", "null"]}
	}
}`, TotalSteps)

var (
	snapshotSchemaOnce sync.Once
	snapshotSchema     *jsonschema.Schema
	snapshotSchemaErr  error
)

func compiledSnapshotSchema() (*jsonschema.Schema, error) {
	snapshotSchemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(snapshotSchemaDoc), &doc); err != nil {
			snapshotSchemaErr = fmt.Errorf("parse snapshot schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(snapshotSchemaURL, doc); err != nil {
			snapshotSchemaErr = fmt.Errorf("add snapshot schema: %w", err)
			return
		}
		snapshotSchema, snapshotSchemaErr = c.Compile(snapshotSchemaURL)
	})
	return snapshotSchema, snapshotSchemaErr
}

// EncodeSnapshot serializes a session for durable storage.
func EncodeSnapshot(s Session) ([]byte, error) {
	rec := snapshotRecord{
		ID:             s.ID,
		CurrentStep:    s.CurrentStep,
		Responses:      s.Responses,
		CompletedSteps: s.CompletedList(),
		BodyRegions:    s.RegionList(),
	}
	if rec.Responses == nil {
		rec.Responses = map[string]string{}
	}
	if !s.StartedAt.IsZero() {
		t := s.StartedAt.UTC()
		rec.StartedAt = &t
	}
	if !s.LastSavedAt.IsZero() {
		t := s.LastSavedAt.UTC()
		rec.LastSavedAt = &t
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses and structurally validates a durable snapshot.
// The returned session has no unsaved changes.
func DecodeSnapshot(raw []byte) (Session, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Session{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledSnapshotSchema()
	if err != nil {
		return Session{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return Session{}, fmt.Errorf("schema validation failed: %w", err)
	}

	var rec decodedRecord
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return Session{}, fmt.Errorf("decode snapshot: %w", err)
	}

	s := Session{
		ID:             rec.ID,
		CurrentStep:    rec.CurrentStep,
		Responses:      make(map[string]string, len(rec.Responses)),
		CompletedSteps: make(map[int]bool, len(rec.CompletedSteps)),
		BodyRegions:    make(map[string]bool, len(rec.BodyRegions)),
	}
	if rec.StartedAt != nil {
		s.StartedAt = *rec.StartedAt
	}
	if rec.LastSavedAt != nil {
		s.LastSavedAt = *rec.LastSavedAt
	}
	for k, v := range rec.Responses {
		s.Responses[k] = scalarString(v)
	}
	for _, step := range rec.CompletedSteps {
		s.CompletedSteps[step] = true
	}
	for _, id := range rec.BodyRegions {
		s.BodyRegions[id] = true
	}
	return s, nil
}

func scalarString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
