package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clbp/clbp/internal/i18n"
)

var langCmd = &cobra.Command{
	Use:       "lang [en|fa]",
	Short:     "Show or set the display language",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(i18n.English), string(i18n.Persian)},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		kv, err := openBackend(ctx, cfg)
		if err != nil {
			return err
		}
		defer kv.Close()

		prefs := i18n.NewPreference(ctx, kv, i18n.Parse(cfg.Language))
		defer prefs.Close()

		if len(args) == 0 {
			cur := prefs.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", cur, cur.Label())
			return nil
		}

		lang, err := i18n.ParseLanguage(args[0])
		if err != nil {
			return err
		}
		if err := prefs.Set(ctx, lang); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Language set to %s (%s)\n", lang, lang.Label())
		return nil
	},
}
