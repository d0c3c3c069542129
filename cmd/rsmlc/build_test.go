package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rsmlang/rojo-rsml/internal/rlog"
)

func TestBuildOneCompilesSourceFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "app.rsml")
	writeFile(t, srcPath, "TextButton { Size = udim2(50%, 100px); }")

	// Point configPath at a file that doesn't exist: a missing config is
	// treated as empty, so buildOne neither warns nor fails.
	oldConfigPath := configPath
	configPath = filepath.Join(dir, "missing.config.yaml")
	defer func() { configPath = oldConfigPath }()

	log := rlog.NewLog()
	sheet, err := buildOne(srcPath, log)
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	require.Equal(t, "TextButton", sheet.Rules[0].Selector)
}

func TestWriteSheetWritesToFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "app.rsml")
	writeFile(t, srcPath, "A { X = 1; }")
	outPath := filepath.Join(dir, "out.json")

	log := rlog.NewLog()
	sheet, err := buildOne(srcPath, log)
	require.NoError(t, err)
	require.NoError(t, writeSheet(sheet, outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"Selector": "A"`)
}
