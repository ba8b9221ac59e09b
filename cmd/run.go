package cmd

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/clbp/clbp/internal/app"
	"github.com/clbp/clbp/internal/assessment"
	"github.com/clbp/clbp/internal/config"
	"github.com/clbp/clbp/internal/fixtures"
	"github.com/clbp/clbp/internal/i18n"
	"github.com/clbp/clbp/internal/store"
)

// openBackend opens the configured storage backend. Closing the returned
// KV releases it.
func openBackend(ctx context.Context, c config.Config) (store.KV, error) {
	switch c.Backend {
	case config.BackendRedis:
		r, err := store.OpenRedis(ctx, c.RedisAddr, c.RedisPrefix)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		log.Info().Str("component", "cmd").Str("backend", "redis").Str("addr", c.RedisAddr).Msg("storage opened")
		return r, nil
	default:
		dbPath, err := c.ResolveDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		log.Info().Str("component", "cmd").Str("backend", "sqlite").Str("path", dbPath).Msg("storage opened")
		return st.KV(), nil
	}
}

// progressRecord is the durable record holding the in-progress assessment.
func progressRecord(kv store.KV) *store.Record {
	return store.NewRecord(kv, store.ProgressKey)
}

// runApp opens the storage backend, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, startAssessment bool) error {
	ctx := cmd.Context()

	set, err := fixtures.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	kv, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer kv.Close()

	saveErrs := make(chan error, 1)
	progress := assessment.NewProgressStore(progressRecord(kv), cfg.Assessment(),
		assessment.WithSaveErrorHandler(func(err error) {
			select {
			case saveErrs <- err:
			default:
			}
		}))
	progress.Load(ctx)
	defer flushProgress(progress)

	prefs := i18n.NewPreference(ctx, kv, i18n.Parse(cfg.Language))
	defer prefs.Close()

	return app.Run(ctx, app.Options{
		Progress:        progress,
		Prefs:           prefs,
		Fixtures:        set,
		SaveErrors:      saveErrs,
		StartAssessment: startAssessment,
	})
}

// flushProgress writes changes still waiting for the debounce timer, then
// stops the timer.
func flushProgress(p *assessment.ProgressStore) {
	if p.Status().Unsaved {
		if err := p.SaveNow(context.Background()); err != nil {
			log.Warn().Err(err).Str("component", "cmd").Msg("final save on exit failed")
		}
	}
	p.Close()
}
