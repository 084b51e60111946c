package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/TeriyakiSecky/android-sdk/internal/model"
)

// Configuration resolves per-project issue enablement, severity and ignore
// state. The driver's reporting filter consults it before any finding
// reaches the embedding tool.
type Configuration interface {
	// IsEnabled reports whether the issue should be checked in this project.
	IsEnabled(issue *model.Issue) bool
	// IsIgnored reports whether a specific finding at the given location is
	// marked as intentionally ignored.
	IsIgnored(issue *model.Issue, location *model.Location, message string) bool
	// Severity returns the configured severity for the issue, falling back
	// to the issue's default.
	Severity(issue *model.Issue) model.Severity
}

// IgnoreRule suppresses findings of an issue, optionally restricted to a
// path prefix.
type IgnoreRule struct {
	Issue  string `json:"issue"`
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// FileConfig is the JSON-backed Configuration stored in a project tree.
type FileConfig struct {
	Disabled   []string          `json:"disabled"`
	Enabled    []string          `json:"enabled"`
	Severities map[string]string `json:"severities"`
	Ignore     []IgnoreRule      `json:"ignore"`
}

// Filename is searched upward from a project directory by Load.
const Filename = ".lint.json"

func Default() *FileConfig {
	return &FileConfig{Severities: map[string]string{}}
}

// Load searches upwards from startDir for a config file and returns the
// parsed configuration plus the path it came from ("" when defaulted).
func Load(startDir string) (*FileConfig, string, error) {
	cfg := Default()
	dir := startDir
	for {
		candidate := filepath.Join(dir, Filename)
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			if err := json.Unmarshal(b, cfg); err != nil {
				return cfg, candidate, err
			}
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}

func (c *FileConfig) IsEnabled(issue *model.Issue) bool {
	for _, id := range c.Enabled {
		if strings.EqualFold(id, issue.ID) {
			return true
		}
	}
	for _, id := range c.Disabled {
		if strings.EqualFold(id, issue.ID) {
			return false
		}
	}
	return c.Severity(issue) != model.SeverityIgnore
}

func (c *FileConfig) IsIgnored(issue *model.Issue, location *model.Location, _ string) bool {
	for _, ig := range c.Ignore {
		if ig.Issue != "" && !strings.EqualFold(ig.Issue, issue.ID) {
			continue
		}
		if ig.Path != "" {
			if location == nil {
				continue
			}
			if !strings.HasPrefix(filepath.ToSlash(location.File), filepath.ToSlash(ig.Path)) {
				continue
			}
		}
		return true
	}
	return false
}

func (c *FileConfig) Severity(issue *model.Issue) model.Severity {
	if s, ok := c.Severities[issue.ID]; ok {
		return model.ParseSeverity(s)
	}
	return issue.Severity
}
