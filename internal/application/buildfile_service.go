package application

import (
	"fmt"

	"github.com/abdidvp/appatch/internal/domain"
)

// BuildFileService edits the CMake build file through anchor insertions.
type BuildFileService struct {
	store        domain.TextStore
	log          domain.Logger
	backupSuffix string
}

func NewBuildFileService(store domain.TextStore, log domain.Logger, backupSuffix string) *BuildFileService {
	if backupSuffix == "" {
		backupSuffix = domain.DefaultConfig().BackupSuffix
	}
	return &BuildFileService{store: store, log: log, backupSuffix: backupSuffix}
}

// Patch applies insertions to path. A missing build file is recorded as an
// error in the report but does not stop the run.
func (s *BuildFileService) Patch(path string, insertions []domain.Insertion, report *domain.PatchReport) error {
	s.log.Log(domain.LevelStep, "Updating CMakeLists.txt...")

	if !s.store.Exists(path) {
		s.log.Log(domain.LevelError, "CMakeLists.txt not found!")
		report.AddError("CMakeLists.txt not found")
		return nil
	}

	backup, err := s.Backup(path)
	if err != nil {
		return err
	}
	report.Backup = backup

	content, err := s.store.Read(path)
	if err != nil {
		return fmt.Errorf("reading build file: %w", err)
	}

	patched := content
	for _, in := range insertions {
		patched, _ = in.Apply(patched)
	}
	if patched == content {
		return nil
	}

	if err := s.store.Write(path, patched); err != nil {
		return fmt.Errorf("writing build file: %w", err)
	}
	s.log.Log(domain.LevelInfo, "Updated CMakeLists.txt")
	report.AddFix("Updated CMakeLists.txt")
	return nil
}

// Backup copies path to its sibling backup once. An existing backup is
// never replaced, so it always holds the pre-patch original.
func (s *BuildFileService) Backup(path string) (*domain.BackupRecord, error) {
	rec := &domain.BackupRecord{Source: path, Backup: path + s.backupSuffix}
	if s.store.Exists(rec.Backup) {
		return rec, nil
	}
	if err := s.store.Copy(path, rec.Backup); err != nil {
		return nil, fmt.Errorf("backing up build file: %w", err)
	}
	rec.Created = true
	return rec, nil
}
