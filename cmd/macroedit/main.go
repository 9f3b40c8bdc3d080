package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/macroedit/internal/config"
	"github.com/jask/macroedit/internal/logging"
	"github.com/jask/macroedit/internal/tui"
)

var (
	// Global flags
	configPath  string
	catalogPath string
	editing     bool
	verbose     bool

	logger = zap.NewNop()
	cfg    config.Config
)

var rootCmd = &cobra.Command{
	Use:   "macroedit",
	Short: "Terminal editor for macro sequences",
	Long: `macroedit arranges a palette of system events, the macro sequence and an
edit panel in one terminal screen. Pick an element on the left to append it
to the sequence, then adjust its fields on the right.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if catalogPath != "" {
			cfg.Catalog.File = catalogPath
		}
		if cmd.Flags().Changed("edit") {
			cfg.UI.Editing = editing
		}
		logger, err = logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level, Verbose: verbose})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEditor(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $MACROEDIT_CONFIG or ~/.config/macroedit/config.toml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "TOML catalog file that replaces the stored catalog")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&editing, "edit", "e", false, "Open in edit mode")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogCheckCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogAddCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description shown on the tile")
	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogRemoveCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runEditor(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	entries, err := st.entries(ctx, cfg.Catalog.File)
	if err != nil {
		return err
	}
	logger.Info("starting editor", zap.Int("entries", len(entries)), zap.Bool("editing", cfg.UI.Editing))

	app := tui.New(tui.Options{IsEditing: cfg.UI.Editing, Catalog: entries, Logger: logger})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	return nil
}
