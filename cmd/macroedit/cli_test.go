package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jask/macroedit/internal/database/repository"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	path := filepath.Join(dir, "config.toml")
	body := fmt.Sprintf("[database]\npath = %q\n\n[log]\npath = %q\n", filepath.Join(dir, "data", "m.db"), filepath.Join(dir, "m.log"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const smallCatalog = `
[[entry]]
display_string = "Paste Twice"
description = "Pastes"
default_data = { type = "Clipboard", action = { type = "Paste" } }
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger = zap.NewNop()
	catalogPath = ""
	addDescription = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCatalogCheck(t *testing.T) {
	cfgPath := writeConfig(t)
	file := writeCatalog(t, smallCatalog)

	out, err := execute(t, "catalog", "check", file, "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "1 entries ok")

	bad := writeCatalog(t, "[[entry]]\ndisplay_string = \"x\"\ndefault_data = { type = \"Wifi\" }\n")
	_, err = execute(t, "catalog", "check", bad, "--config", cfgPath)
	require.Error(t, err)
}

func TestCatalogListSeedsDefaults(t *testing.T) {
	cfgPath := writeConfig(t)
	out, err := execute(t, "catalog", "list", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Toggle Mute")
	require.Contains(t, out, "Set Clipboard")
}

func TestCatalogImportReplacesStoredCatalog(t *testing.T) {
	cfgPath := writeConfig(t)
	file := writeCatalog(t, smallCatalog)

	out, err := execute(t, "catalog", "import", file, "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "imported 1 entries")

	out, err = execute(t, "catalog", "list", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Paste Twice")
	require.NotContains(t, out, "Toggle Mute")
}

func TestCatalogFlagOverridesStore(t *testing.T) {
	cfgPath := writeConfig(t)
	file := writeCatalog(t, smallCatalog)

	out, err := execute(t, "catalog", "list", "--config", cfgPath, "--catalog", file)
	require.NoError(t, err)
	require.Contains(t, out, "Paste Twice")
	require.NotContains(t, out, "Toggle Mute")
}

func TestCatalogAddAndRemove(t *testing.T) {
	cfgPath := writeConfig(t)

	out, err := execute(t, "catalog", "add", "Open Top", `{"type":"Open","path":"/usr/bin/top"}`, "-d", "Process viewer", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "stored Open Top")

	out, err = execute(t, "catalog", "list", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "Open Top")
	require.Contains(t, out, "Process viewer")
	require.Contains(t, out, "Toggle Mute")

	// replacing keeps the entry in place
	_, err = execute(t, "catalog", "add", "Toggle Mute", `{"type":"Volume","action":{"type":"LowerVolume"}}`, "--config", cfgPath)
	require.NoError(t, err)
	out, err = execute(t, "catalog", "list", "--config", cfgPath)
	require.NoError(t, err)
	require.Less(t, strings.Index(out, "Toggle Mute"), strings.Index(out, "Open Top"))
	require.Contains(t, out, "LowerVolume")

	out, err = execute(t, "catalog", "remove", "Open Top", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "removed Open Top")
	out, err = execute(t, "catalog", "list", "--config", cfgPath)
	require.NoError(t, err)
	require.NotContains(t, out, "Open Top")

	_, err = execute(t, "catalog", "remove", "Open Top", "--config", cfgPath)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogAddRejectsInvalidData(t *testing.T) {
	cfgPath := writeConfig(t)
	_, err := execute(t, "catalog", "add", "Wifi", `{"type":"Wifi"}`, "--config", cfgPath)
	require.Error(t, err)
	_, err = execute(t, "catalog", "add", "Broken", `{not json`, "--config", cfgPath)
	require.Error(t, err)
}
