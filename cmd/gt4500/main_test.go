package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeShipConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "ship.yaml")
	content := "class: gt4500\nprimary:\n  torpedoes: 1\nsecondary:\n  torpedoes: 1\nfailure_rate: 0\nseed: 7\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestFireAndLogCommands(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeShipConfig(t, dir)
	dbPath := filepath.Join(dir, "salvos.db")

	out, err := runCLI(t, "fire", "single", "--times", "3", "--config", cfgPath, "--db", dbPath)
	if err != nil {
		t.Fatalf("fire failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "3 orders, 2 hits, 1 failed") {
		t.Errorf("Unexpected fire summary:\n%s", out)
	}

	// A fresh session starts loaded: the first salvo empties both stores
	out, err = runCLI(t, "fire", "all", "--times", "2", "--strict", "--config", cfgPath, "--db", dbPath)
	if err == nil {
		t.Errorf("Expected --strict to fail on the dry salvo, got output:\n%s", out)
	}

	out, err = runCLI(t, "log", "--limit", "10", "--db", dbPath)
	if err != nil {
		t.Fatalf("log failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "GT4500 Starship: 5 salvos over 2 sessions, 3 hits, 2 misses") {
		t.Errorf("Unexpected log output:\n%s", out)
	}
}

func TestFireRejectsUnknownMode(t *testing.T) {
	if _, err := runCLI(t, "fire", "broadside", "--times", "1"); err == nil {
		t.Error("Expected error for unknown firing mode")
	}
}

func TestListCommand(t *testing.T) {
	if _, err := runCLI(t, "list"); err != nil {
		t.Errorf("list failed: %v", err)
	}
}
