// Package cli wires config, storage and stores into cobra commands.
package cli

import (
	"fmt"

	"tutorstate/backend/config"
	"tutorstate/backend/prefers"
	"tutorstate/backend/storage"
	"tutorstate/backend/stores"
	"tutorstate/backend/utils"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// deps is the explicit creation point for both stores.
type deps struct {
	cfg      *config.Config
	log      zerolog.Logger
	progress *stores.ProgressStore
	theme    *stores.ThemeStore
}

func buildDeps(cmd *cobra.Command) (*deps, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := utils.InitLogger(utils.LoggerConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
		Dir:    cfg.LogDir,
	})

	kv, err := storage.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	if kv == nil {
		logger.Warn().Msg("storage disabled, state lives in memory only")
	}

	signal := prefers.First(prefers.FromValue(cfg.ColorScheme), prefers.Terminal())

	return &deps{
		cfg:      cfg,
		log:      logger,
		progress: stores.NewProgressStore(kv, logger),
		theme:    stores.NewThemeStore(kv, signal, logger),
	}, nil
}

// NewRootCommand builds the tutorstate command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tutorstate",
		Short: "Tutorial progress and display theme state",
		Long: `tutorstate keeps per-module tutorial progress and the light/dark theme
preference in durable storage. Use the subcommands directly or run "serve"
to expose them over HTTP.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newModulesCommand(),
		newProgressCommand(),
		newThemeCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version number",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "tutorstate version %s\n", version)
			},
		},
	)

	return rootCmd
}
