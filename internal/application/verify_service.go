package application

import (
	"path"
	"path/filepath"

	"github.com/abdidvp/appatch/internal/domain"
)

// VerifyService checks post-conditions. It never repairs anything.
type VerifyService struct {
	store domain.TextStore
	log   domain.Logger
}

func NewVerifyService(store domain.TextStore, log domain.Logger) *VerifyService {
	return &VerifyService{store: store, log: log}
}

// Verify checks that every file exists under base, records the result on
// report and returns whether all were present.
func (s *VerifyService) Verify(base string, files []string, report *domain.PatchReport) bool {
	s.log.Log(domain.LevelStep, "Verifying fixes...")

	entries := make([]domain.VerifyEntry, 0, len(files))
	for _, f := range files {
		exists := s.store.Exists(filepath.Join(base, filepath.FromSlash(f)))
		if exists {
			s.log.Log(domain.LevelInfo, "OK: %s exists", path.Base(f))
		} else {
			s.log.Log(domain.LevelError, "FAIL: %s missing", path.Base(f))
		}
		entries = append(entries, domain.VerifyEntry{Path: f, Exists: exists})
	}
	report.Verified = entries
	return report.AllVerified()
}
