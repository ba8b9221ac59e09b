package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/clbp/clbp/internal/config"
	"github.com/clbp/clbp/internal/logging"
)

var (
	// cfg is resolved once per invocation by the root pre-run hook.
	cfg config.Config
	// logCloser releases the log file after the command finishes.
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "clbp",
	Short: "Chronic low back pain risk assessment dashboard",
	Long: "clbp is a terminal dashboard for chronic low back pain risk assessment: a ten-step\n" +
		"questionnaire with auto-saved progress, results, patient profiles and an admin view.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCloser != nil {
			return logCloser.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/clbp/config.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides CLBP_DB env var)")
	pf.String("backend", "", "Progress storage backend: sqlite or redis (overrides CLBP_BACKEND)")
	pf.String("redis-addr", "", "Redis address for the redis backend (overrides CLBP_REDIS_ADDR)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides CLBP_LOG_LEVEL)")
	pf.String("log-file", "", "Log file path (default $XDG_STATE_HOME/clbp/clbp.log)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(patientsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(langCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup resolves the configuration (defaults, file, env, then flags) and
// starts logging.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	applyFlags(cmd, &c)
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c

	file := cfg.LogFile
	if file == "" {
		file = logging.DefaultLogFile()
	}
	logCloser, err = logging.Setup(logging.Config{Level: cfg.LogLevel, File: file})
	return err
}

func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if v, _ := flags.GetString("db"); v != "" {
		c.DBPath = v
	}
	if v, _ := flags.GetString("backend"); v != "" {
		c.Backend = config.Backend(v)
	}
	if v, _ := flags.GetString("redis-addr"); v != "" {
		c.RedisAddr = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		c.LogLevel = v
	}
	if v, _ := flags.GetString("log-file"); v != "" {
		c.LogFile = v
	}
}
