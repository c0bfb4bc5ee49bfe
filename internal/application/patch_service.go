package application

import (
	"fmt"
	"path/filepath"

	"github.com/abdidvp/appatch/internal/domain"
)

// PatchService applies declarative include rules to files on disk.
type PatchService struct {
	store domain.TextStore
	log   domain.Logger
}

func NewPatchService(store domain.TextStore, log domain.Logger) *PatchService {
	return &PatchService{store: store, log: log}
}

// ApplyAll runs every target of rs relative to base. Missing targets are
// warnings; read and write failures abort.
func (s *PatchService) ApplyAll(base string, rs domain.RuleSet, report *domain.PatchReport) error {
	s.log.Log(domain.LevelStep, "Fixing source file includes...")
	for _, tr := range rs {
		abs := filepath.Join(base, filepath.FromSlash(tr.Target))
		if !s.store.Exists(abs) {
			s.log.Log(domain.LevelWarn, "Warning: %s not found", tr.Target)
			report.Warn(tr.Target + " not found")
			continue
		}
		changed, err := s.Apply(abs, tr.Rules)
		if err != nil {
			return fmt.Errorf("patching %s: %w", tr.Target, err)
		}
		if changed {
			s.log.Log(domain.LevelInfo, "Fixed includes in %s", tr.Target)
			report.AddFix("Fixed " + tr.Target)
		}
	}
	return nil
}

// Apply rewrites path with rules and reports whether it changed. The file
// is only written when its content differs.
func (s *PatchService) Apply(path string, rules []domain.PatchRule) (bool, error) {
	content, err := s.store.Read(path)
	if err != nil {
		return false, err
	}
	patched, changed := domain.ApplyRules(content, rules)
	if !changed {
		return false, nil
	}
	if err := s.store.Write(path, patched); err != nil {
		return false, err
	}
	return true, nil
}
