package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/patients"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "List patients (optionally filtered by risk level or status)",
	RunE: func(cmd *cobra.Command, args []string) error {
		riskFlag, _ := cmd.Flags().GetString("risk")
		statusFlag, _ := cmd.Flags().GetString("status")
		asJSON, _ := cmd.Flags().GetBool("json")

		risk, err := patients.ParseRiskLevel(riskFlag)
		if err != nil {
			return err
		}
		status, err := patients.ParseStatus(statusFlag)
		if err != nil {
			return err
		}

		set, err := fixtures.LoadAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("load fixtures: %w", err)
		}
		rows := patients.Filter{RiskLevel: risk, Status: status}.Apply(set.Roster.Patients)

		if asJSON {
			return writePatientsJSON(cmd.OutOrStdout(), rows)
		}
		writePatientsTable(cmd.OutOrStdout(), rows, i18n.Parse(cfg.Language))
		return nil
	},
}

func init() {
	patientsCmd.Flags().String("risk", patients.All, "Risk level: low, moderate, high or all")
	patientsCmd.Flags().String("status", patients.All, "Status: active, completed, pending or all")
	patientsCmd.Flags().Bool("json", false, "Print JSON instead of a table")
}

// patientJSON adds the derived risk level to a roster row.
type patientJSON struct {
	patients.Patient
	RiskLevel patients.RiskLevel `json:"riskLevel"`
}

func writePatientsJSON(w io.Writer, rows []patients.Patient) error {
	out := make([]patientJSON, len(rows))
	for i, p := range rows {
		out[i] = patientJSON{Patient: p, RiskLevel: p.RiskLevel()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writePatientsTable(w io.Writer, rows []patients.Patient, lang i18n.Language) {
	fmt.Fprintf(w, "%-6s  %-22s  %-5s  %5s  %-9s  %-10s  %s\n",
		"ID", "Name", "Phase", "Risk", "Level", "Status", "Last activity")
	fmt.Fprintln(w, strings.Repeat("─", 84))

	for _, p := range rows {
		name := p.Name.In(lang)
		if r := []rune(name); len(r) > 22 {
			name = string(r[:19]) + "..."
		}
		fmt.Fprintf(w, "%-6s  %-22s  %-5s  %5d  %-9s  %-10s  %s\n",
			p.ID, name, p.Phase, p.RiskScore,
			p.RiskLevel().Label().In(lang), p.Status.Label().In(lang), p.LastActivity)
	}

	sum := patients.Summarize(rows)
	fmt.Fprintf(w, "\n%d patients", sum.Total)
	if sum.Total > 0 {
		fmt.Fprintf(w, ", mean risk %.0f", sum.MeanRiskScore)
	}
	fmt.Fprintln(w)
}
