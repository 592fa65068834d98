package collect

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/SH118415/insights-core/internal/conf"
	"github.com/SH118415/insights-core/internal/core"
	"github.com/SH118415/insights-core/internal/parsers"
)

// FileFact is one collected configuration file.
type FileFact struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Archive is the result of one collection run. It is self-contained:
// parsers can be replayed against its files without touching the host
// again.
type Archive struct {
	ID          string      `json:"id"`
	CollectedAt time.Time   `json:"collected_at"`
	Host        HostFacts   `json:"host"`
	Files       []FileFact  `json:"files"`
	Units       []UnitState `json:"units,omitempty"`
}

// Context returns the collected content of a canonical path as a
// parser input, or false when the file was not present on the host.
func (a *Archive) Context(path string) (core.Context, bool) {
	for _, file := range a.Files {
		if file.Path == path {
			return core.Context{Path: file.Path, Content: file.Content}, true
		}
	}
	return core.Context{}, false
}

// Write serializes the archive as JSON into dir, creating it if
// needed, and returns the path of the written file.
func (a *Archive) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create archive directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize archive: %w", err)
	}

	path := filepath.Join(dir, a.ID+".json")
	if err := os.WriteFile(path, data, 0640); err != nil {
		return "", fmt.Errorf("failed to write archive %s: %w", path, err)
	}
	return path, nil
}

// Collector gathers the registered configuration files plus host and
// service facts into an Archive.
type Collector struct {
	// HostRoot is the prefix canonical paths are resolved under.
	HostRoot string
	// Paths are the canonical paths to gather. Empty means every path
	// with a registered parser.
	Paths []string
}

// New builds a Collector from the loaded configuration.
func New(config conf.Config) *Collector {
	return &Collector{HostRoot: config.HostRoot}
}

// Run performs one collection pass. A file missing from the host is
// skipped, not an error; facts that need the system bus degrade to
// absent when the bus is unreachable. The only hard failures are
// therefore I/O errors other than non-existence.
func (c *Collector) Run(ctx context.Context) (*Archive, error) {
	paths := c.Paths
	if len(paths) == 0 {
		paths = parsers.Paths()
	}
	sort.Strings(paths)

	archive := &Archive{
		ID:          uuid.New().String(),
		CollectedAt: time.Now().UTC(),
		Host:        hostFacts(),
	}

	for _, path := range paths {
		resolved := filepath.Join(c.HostRoot, path)
		data, err := os.ReadFile(resolved)
		if err != nil {
			if os.IsNotExist(err) {
				slog.Debug("file not present, skipping", "path", resolved)
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", resolved, err)
		}
		archive.Files = append(archive.Files, FileFact{Path: path, Content: string(data)})
	}

	units, err := collectUnits(ctx)
	if err != nil {
		slog.Warn("systemd unit states unavailable", "error", err)
	} else {
		archive.Units = units
	}

	return archive, nil
}
