package cmd

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/numerado/internal/app"
	"github.com/abhisek/numerado/internal/clipboard"
	"github.com/abhisek/numerado/internal/config"
	"github.com/abhisek/numerado/internal/logging"
	"github.com/abhisek/numerado/internal/session"
)

const appName = "numerado"

var rootCmd = &cobra.Command{
	Use:          appName,
	Short:        "Random number generator for the terminal",
	Long:         "Numerado generates random integers, decimals and roman numerals with parity filters and a short history.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/numerado/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the splash screen")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(romanCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges the embedded defaults with the --config file (or the
// default path) and applies --log-level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg, err := config.Get(config.Path(path))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newSession builds the generator and session described by cfg.
func newSession(cfg *config.Config, log zerolog.Logger) (*session.Session, error) {
	gen, err := cfg.Generator.NewGenerator()
	if err != nil {
		return nil, err
	}
	start, err := cfg.Generator.RandConfig()
	if err != nil {
		return nil, err
	}
	return session.New(gen, start, session.Options{Logger: log}), nil
}

func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal; logs only go to a file.
	log, closeLog, err := logging.New(cfg.Log, io.Discard, appName)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := newSession(cfg, log)
	if err != nil {
		return err
	}

	skipSplash, _ := cmd.Flags().GetBool("no-splash")
	log.Info().Str(logging.Format, string(sess.Config().Format)).Msg("starting")

	return app.Run(app.Options{
		Session:     sess,
		Clipboard:   clipboard.System{},
		RevealDelay: cfg.UI.RevealDelay,
		SkipSplash:  skipSplash,
		Logger:      log,
	})
}
