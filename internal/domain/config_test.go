package domain_test

import (
	"testing"

	"github.com/abdidvp/appatch/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_Values(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, "build_archipelago", cfg.BuildDir)
	assert.Equal(t, ".backup", cfg.BackupSuffix)
	assert.Equal(t, domain.DefaultBuildScripts, cfg.BuildScripts)
	assert.True(t, cfg.HistoryEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfig_ScriptsAreCopied(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.BuildScripts[0] = "other.bat"
	assert.Equal(t, "build_archipelago_minimal.bat", domain.DefaultBuildScripts[0])
}

func TestWithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := domain.ProjectConfig{BuildDir: "out"}.WithDefaults()
	assert.Equal(t, "out", cfg.BuildDir)
	assert.Equal(t, ".backup", cfg.BackupSuffix)
	assert.Len(t, cfg.BuildScripts, 3)
}

func TestHistoryEnabled_ExplicitFalse(t *testing.T) {
	off := false
	cfg := domain.ProjectConfig{History: &off}
	assert.False(t, cfg.HistoryEnabled())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.ProjectConfig
		msg  string
	}{
		{"absolute build dir", domain.ProjectConfig{BuildDir: "/tmp/build"}, "must be relative"},
		{"escaping build dir", domain.ProjectConfig{BuildDir: "../build"}, "escapes the project root"},
		{"root build dir", domain.ProjectConfig{BuildDir: "./"}, "must not be the project root"},
		{"empty script", domain.ProjectConfig{BuildScripts: []string{" "}}, "empty entry"},
		{"escaping script", domain.ProjectConfig{BuildScripts: []string{"../x.bat"}}, "escapes the project root"},
		{"suffix without dot", domain.ProjectConfig{BackupSuffix: "bak"}, "must start with '.'"},
		{"suffix with separator", domain.ProjectConfig{BackupSuffix: "./bak"}, "path separator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}
