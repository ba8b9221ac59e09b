package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/patients"
	"github.com/clbp/clbp/internal/store"
)

// run executes the root command against a private database and returns
// its output.
func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("CLBP_BACKEND", "")
	t.Setenv("CLBP_DB", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", dbPath, "--log-file", filepath.Join(dir, "clbp.log")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPatientsJSONFilter(t *testing.T) {
	db := filepath.Join(t.TempDir(), "clbp.db")
	out, err := run(t, db, "patients", "--risk", "high", "--status", "all", "--json")
	require.NoError(t, err)

	var rows []struct {
		ID        string `json:"id"`
		RiskLevel string `json:"riskLevel"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "P001", rows[0].ID)
	assert.Equal(t, "P003", rows[1].ID)
	assert.Equal(t, "high", rows[1].RiskLevel)
}

func TestPatientsRejectsUnknownRisk(t *testing.T) {
	db := filepath.Join(t.TempDir(), "clbp.db")
	_, err := run(t, db, "patients", "--risk", "extreme", "--status", "all", "--json=false")
	assert.ErrorIs(t, err, patients.ErrUnknownRiskLevel)
}

func TestPatientsTable(t *testing.T) {
	var buf bytes.Buffer
	rows := []patients.Patient{
		{ID: "P001", Name: i18n.T("Ali Ahmadi", "علی احمدی"), Phase: "T2", RiskScore: 72, Status: patients.StatusActive},
	}
	writePatientsTable(&buf, rows, i18n.English)
	assert.Contains(t, buf.String(), "Ali Ahmadi")
	assert.Contains(t, buf.String(), "High")
	assert.Contains(t, buf.String(), "1 patients, mean risk 72")
}

func TestLangSetAndShow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "clbp.db")

	out, err := run(t, db, "lang", "fa")
	require.NoError(t, err)
	assert.Contains(t, out, "Language set to fa")

	out, err = run(t, db, "lang")
	require.NoError(t, err)
	assert.Contains(t, out, "fa (فارسی)")

	_, err = run(t, db, "lang", "de")
	assert.ErrorIs(t, err, i18n.ErrInvalidLanguage)
}

func TestProgressAndReset(t *testing.T) {
	db := filepath.Join(t.TempDir(), "clbp.db")

	out, err := run(t, db, "progress", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved progress.")

	// Seed a snapshot the way the dashboard would.
	st, err := store.Open(db)
	require.NoError(t, err)
	sess := assessment.NewSession(time.Now())
	sess.CurrentStep = 3
	sess.CompletedSteps[1] = true
	sess.CompletedSteps[2] = true
	sess.Responses["FABQ_q1"] = "4"
	sess.BodyRegions["neck"] = true
	raw, err := assessment.EncodeSnapshot(sess)
	require.NoError(t, err)
	require.NoError(t, store.NewRecord(st.KV(), store.ProgressKey).Save(context.Background(), raw))
	require.NoError(t, st.Close())

	out, err = run(t, db, "progress", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Current step: 3/10")
	assert.Contains(t, out, "Completed:    1, 2 (20%)")
	assert.Contains(t, out, "Answered:     2")
	assert.Contains(t, out, "Body regions: neck")

	out, err = run(t, db, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved progress discarded.")

	out, err = run(t, db, "progress", "--json=false")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved progress.")
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "none", joinInts(nil))
	assert.Equal(t, "1, 2, 10", joinInts([]int{1, 2, 10}))
}
