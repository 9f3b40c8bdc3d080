package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/macroedit/internal/catalog"
	"github.com/jask/macroedit/internal/database"
	"github.com/jask/macroedit/internal/database/repository"
)

var addDescription string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and manage the system event catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog the editor would show",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		entries, err := st.entries(cmd.Context(), cfg.Catalog.File)
		if err != nil {
			return err
		}
		out, err := renderCatalog(entries)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a TOML catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d entries ok\n", args[0], len(entries))
		return nil
	},
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the stored catalog with a TOML catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalog.LoadFile(args[0])
		if err != nil {
			return err
		}
		st, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := database.ReplaceCatalog(cmd.Context(), st.db, entries); err != nil {
			return fmt.Errorf("import catalog: %w", err)
		}
		logger.Info("catalog imported", zap.String("path", args[0]), zap.Int("entries", len(entries)))
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries\n", len(entries))
		return nil
	},
}

var catalogAddCmd = &cobra.Command{
	Use:   "add [name] [json]",
	Short: "Add or replace one stored catalog entry",
	Long: `Add stores a system event under name. The default data is the event's JSON,
for example '{"type":"Open","path":"/usr/bin/top"}'. An existing entry with the
same name keeps its position in the palette.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		var data catalog.SystemEvent
		if err := json.Unmarshal([]byte(args[1]), &data); err != nil {
			return fmt.Errorf("parse default data: %w", err)
		}
		if err := data.Validate(); err != nil {
			return fmt.Errorf("entry %q: %w", name, err)
		}
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}

		st, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		order, err := st.repo.Count(ctx)
		if err != nil {
			return err
		}
		existing, err := st.repo.ByDisplayString(ctx, name)
		switch {
		case err == nil:
			order = existing.SortOrder
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}
		entry := repository.CatalogEntry{
			ID:            database.EntryID(name),
			DisplayString: name,
			Description:   addDescription,
			DefaultData:   string(raw),
			SortOrder:     order,
		}
		if err := st.repo.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("store %q: %w", name, err)
		}
		logger.Info("catalog entry stored", zap.String("name", name), zap.Int("sort_order", order))
		fmt.Fprintf(cmd.OutOrStdout(), "stored %s\n", name)
		return nil
	},
}

var catalogRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove one stored catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		e, err := st.repo.ByDisplayString(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := st.repo.Delete(cmd.Context(), e.ID); err != nil {
			return fmt.Errorf("remove %q: %w", args[0], err)
		}
		logger.Info("catalog entry removed", zap.String("name", args[0]))
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
		return nil
	},
}

func renderCatalog(entries []catalog.Entry[catalog.SystemEvent]) (string, error) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "DESCRIPTION", "DEFAULT DATA")
	for _, e := range entries {
		data, err := json.Marshal(e.DefaultData)
		if err != nil {
			return "", fmt.Errorf("encode %q: %w", e.DisplayString, err)
		}
		t.Row(e.DisplayString, e.Description, string(data))
	}
	return t.Render(), nil
}
