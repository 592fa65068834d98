package conf

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// TestMissingKeysInDropin tests what happens when a drop-in file
// doesn't specify certain keys - they should NOT overwrite the base config
func TestMissingKeysInDropin(t *testing.T) {
	tmpDir := t.TempDir()
	mainConfigPath := filepath.Join(tmpDir, "config.toml")
	dropinDir := filepath.Join(tmpDir, "config.toml.d")
	os.Mkdir(dropinDir, 0755)

	// Main config has all values set
	mainConfig := `
archive-dir = "/var/cache/insights-core/archives"
host-root = "/"
log-level = "INFO"
`
	os.WriteFile(mainConfigPath, []byte(mainConfig), 0644)

	// Drop-in file only sets log-level, nothing else
	// The other fields should be preserved from main config
	dropinConfig := `
log-level = "DEBUG"
`
	os.WriteFile(filepath.Join(dropinDir, "10-debug.toml"), []byte(dropinConfig), 0644)

	cs := &ConfigSource{Path: mainConfigPath, DropInDir: dropinDir}
	config, err := cs.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Expected: only log-level is overridden, everything else from main config
	if config.ArchiveDir != "/var/cache/insights-core/archives" {
		t.Errorf("expected ArchiveDir=/var/cache/insights-core/archives (preserved!), got %s", config.ArchiveDir)
	}
	if config.HostRoot != "/" {
		t.Errorf("expected HostRoot=/ (preserved!), got %s", config.HostRoot)
	}
	if config.LogLevel != slog.LevelDebug {
		t.Errorf("expected LogLevel=DEBUG (overridden), got %v", config.LogLevel)
	}
}

// TestEmptyStringOverwrite tests if we can actually set values to empty strings
func TestEmptyStringOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	mainConfigPath := filepath.Join(tmpDir, "config.toml")
	dropinDir := filepath.Join(tmpDir, "config.toml.d")
	os.Mkdir(dropinDir, 0755)

	// Main config has non-empty values
	mainConfig := `
archive-dir = "/var/cache/insights-core/archives"
host-root = "/sysroot"
`
	os.WriteFile(mainConfigPath, []byte(mainConfig), 0644)

	// Drop-in tries to set them to empty values
	dropinConfig := `
archive-dir = ""
host-root = ""
`
	os.WriteFile(filepath.Join(dropinDir, "10-override.toml"), []byte(dropinConfig), 0644)

	cs := &ConfigSource{Path: mainConfigPath, DropInDir: dropinDir}
	config, err := cs.Read()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// This test verifies that empty string values can be set
	t.Logf("ArchiveDir: got %q, want %q", config.ArchiveDir, "")
	t.Logf("HostRoot: got %q, want %q", config.HostRoot, "")

	// Check if empty values were applied
	if config.ArchiveDir != "" {
		t.Errorf("archive-dir was not overridden to empty: got %s", config.ArchiveDir)
	}
	if config.HostRoot != "" {
		t.Errorf("host-root was not overridden to empty: got %s", config.HostRoot)
	}
}
