package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ProjectConfig holds orchestration settings loaded from .appatch.yaml.
// Patch rules and stub contents are not configurable.
type ProjectConfig struct {
	BuildDir     string   `yaml:"build_dir"     json:"build_dir"`
	BuildScripts []string `yaml:"build_scripts" json:"build_scripts"`
	BackupSuffix string   `yaml:"backup_suffix" json:"backup_suffix"`
	History      *bool    `yaml:"history"       json:"history,omitempty"`
}

// DefaultBuildScripts lists the build scripts tried in priority order.
var DefaultBuildScripts = []string{
	"build_archipelago_minimal.bat",
	"build_selaco_archipelago.bat",
	"Build-SelacoArchipelago.ps1",
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		BuildDir:     "build_archipelago",
		BuildScripts: append([]string(nil), DefaultBuildScripts...),
		BackupSuffix: ".backup",
	}
}

// HistoryEnabled reports whether runs are recorded. Defaults to true.
func (c ProjectConfig) HistoryEnabled() bool {
	return c.History == nil || *c.History
}

// WithDefaults fills unset fields from DefaultConfig.
func (c ProjectConfig) WithDefaults() ProjectConfig {
	d := DefaultConfig()
	if c.BuildDir == "" {
		c.BuildDir = d.BuildDir
	}
	if len(c.BuildScripts) == 0 {
		c.BuildScripts = d.BuildScripts
	}
	if c.BackupSuffix == "" {
		c.BackupSuffix = d.BackupSuffix
	}
	return c
}

// Validate rejects values that would let the run touch paths outside the
// project root.
func (c ProjectConfig) Validate() error {
	if c.BuildDir != "" {
		if err := checkRelative("build_dir", c.BuildDir); err != nil {
			return err
		}
		if filepath.Clean(c.BuildDir) == "." {
			return fmt.Errorf("build_dir must not be the project root")
		}
	}
	for _, s := range c.BuildScripts {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("build_scripts contains an empty entry")
		}
		if err := checkRelative("build_scripts", s); err != nil {
			return err
		}
	}
	if c.BackupSuffix != "" && !strings.HasPrefix(c.BackupSuffix, ".") {
		return fmt.Errorf("backup_suffix %q must start with '.'", c.BackupSuffix)
	}
	if strings.ContainsAny(c.BackupSuffix, `/\`) {
		return fmt.Errorf("backup_suffix %q must not contain a path separator", c.BackupSuffix)
	}
	return nil
}

func checkRelative(field, p string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("%s %q must be relative to the project root", field, p)
	}
	clean := filepath.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%s %q escapes the project root", field, p)
	}
	return nil
}
