package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/clbp/clbp/internal/assessment"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the saved assessment progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		asJSON, _ := cmd.Flags().GetBool("json")

		kv, err := openBackend(ctx, cfg)
		if err != nil {
			return err
		}
		defer kv.Close()

		raw, err := progressRecord(kv).Load(ctx)
		if err != nil {
			return fmt.Errorf("read progress: %w", err)
		}
		if raw == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved progress.")
			return nil
		}
		if asJSON {
			_, err := cmd.OutOrStdout().Write(append(raw, '\n'))
			return err
		}

		sess, err := assessment.DecodeSnapshot(raw)
		if err != nil {
			return fmt.Errorf("saved progress is unreadable (run `clbp reset` to discard it): %w", err)
		}
		writeProgress(cmd.OutOrStdout(), sess)
		return nil
	},
}

func init() {
	progressCmd.Flags().Bool("json", false, "Print the stored snapshot as JSON")
}

func writeProgress(w io.Writer, s assessment.Session) {
	fmt.Fprintf(w, "Session:      %s\n", s.ID)
	if !s.StartedAt.IsZero() {
		fmt.Fprintf(w, "Started:      %s\n", s.StartedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintf(w, "Current step: %d/%d\n", s.CurrentStep, assessment.TotalSteps)
	fmt.Fprintf(w, "Completed:    %s (%.0f%%)\n", joinInts(s.CompletedList()), s.Progress()*100)
	fmt.Fprintf(w, "Answered:     %d\n", s.AnsweredCount())
	if regions := s.RegionList(); len(regions) > 0 {
		fmt.Fprintf(w, "Body regions: %s\n", strings.Join(regions, ", "))
	}
	if !s.LastSavedAt.IsZero() {
		fmt.Fprintf(w, "Last saved:   %s\n", s.LastSavedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintf(w, "Time left:    ~%d min\n", s.EstimatedMinutesRemaining())
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "none"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ", ")
}
