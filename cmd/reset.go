package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved assessment progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		kv, err := openBackend(ctx, cfg)
		if err != nil {
			return err
		}
		defer kv.Close()

		rec := progressRecord(kv)
		raw, err := rec.Load(ctx)
		if err != nil {
			return fmt.Errorf("read progress: %w", err)
		}
		if raw == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No saved progress.")
			return nil
		}
		if err := rec.Clear(ctx); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}
		log.Info().Str("component", "cmd").Msg("saved progress discarded")
		fmt.Fprintln(cmd.OutOrStdout(), "Saved progress discarded.")
		return nil
	},
}
