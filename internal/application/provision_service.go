package application

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/abdidvp/appatch/internal/domain"
)

// ProvisionService creates required directories and stub files.
type ProvisionService struct {
	store domain.TextStore
	log   domain.Logger
}

func NewProvisionService(store domain.TextStore, log domain.Logger) *ProvisionService {
	return &ProvisionService{store: store, log: log}
}

// EnsureDirs creates each directory under base, recursively.
func (s *ProvisionService) EnsureDirs(base string, dirs []string, report *domain.PatchReport) error {
	s.log.Log(domain.LevelStep, "Creating required directories...")
	created := false
	for _, d := range dirs {
		abs := filepath.Join(base, filepath.FromSlash(d))
		if s.store.IsDir(abs) {
			continue
		}
		if err := s.store.MkdirAll(abs); err != nil {
			return fmt.Errorf("creating %s: %w", d, err)
		}
		created = true
	}
	if created {
		report.AddFix("Created dependency directories")
	}
	return nil
}

// WriteStubs writes each stub under base according to its policy.
func (s *ProvisionService) WriteStubs(base string, stubs []domain.StubFileSpec, report *domain.PatchReport) error {
	for _, stub := range stubs {
		if _, err := s.WriteStub(base, stub, report); err != nil {
			return err
		}
	}
	return nil
}

// WriteStub writes one stub and reports whether the file was written.
// A stub whose parent directory is missing is skipped with a warning.
func (s *ProvisionService) WriteStub(base string, stub domain.StubFileSpec, report *domain.PatchReport) (bool, error) {
	name := path.Base(stub.Path)
	abs := filepath.Join(base, filepath.FromSlash(stub.Path))

	if !s.store.IsDir(filepath.Dir(abs)) {
		msg := fmt.Sprintf("%s not created: %s does not exist", stub.Path, path.Dir(stub.Path))
		s.log.Log(domain.LevelWarn, "Warning: %s", msg)
		report.Warn(msg)
		return false, nil
	}

	if s.store.Exists(abs) {
		if stub.Policy == domain.CreateIfAbsent {
			return false, nil
		}
		current, err := s.store.Read(abs)
		if err != nil {
			return false, fmt.Errorf("reading %s: %w", stub.Path, err)
		}
		if current == stub.Content {
			return false, nil
		}
	}

	s.log.Log(domain.LevelStep, "Creating %s...", name)
	if err := s.store.Write(abs, stub.Content); err != nil {
		return false, fmt.Errorf("writing %s: %w", stub.Path, err)
	}
	report.AddFix("Created " + name)
	return true, nil
}
