package application

import (
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/abdidvp/appatch/internal/domain"
	"github.com/abdidvp/appatch/internal/domain/archipelago"
)

const rebuildQuestion = "\nDelete build directory and rebuild now? (y/n): "

// StepError is returned when a run fails after the root check. Stack is set
// when the step panicked.
type StepError struct {
	State domain.RunState
	Err   error
	Stack []byte
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s failed: %v", strings.ToLower(e.State.Label()), e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Trace returns a multi-line diagnostic: the error chain, then the stack
// when one was captured.
func (e *StepError) Trace() string {
	var b strings.Builder
	fmt.Fprintf(&b, "state: %s\n", e.State)
	for err := error(e); err != nil; {
		fmt.Fprintf(&b, "  %T: %v\n", err, err)
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if len(e.Stack) > 0 {
		b.WriteString("\n")
		b.Write(e.Stack)
	}
	return b.String()
}

// RunService drives a patch run through
// CheckingRoot -> Provisioning -> Patching -> Verifying -> Done | Failed.
type RunService struct {
	store     domain.TextStore
	log       domain.Logger
	cfg       domain.ProjectConfig
	provision *ProvisionService
	patch     *PatchService
	buildFile *BuildFileService
	verify    *VerifyService
}

func NewRunService(store domain.TextStore, log domain.Logger, cfg domain.ProjectConfig) *RunService {
	cfg = cfg.WithDefaults()
	return &RunService{
		store:     store,
		log:       log,
		cfg:       cfg,
		provision: NewProvisionService(store, log),
		patch:     NewPatchService(store, log),
		buildFile: NewBuildFileService(store, log, cfg.BackupSuffix),
		verify:    NewVerifyService(store, log),
	}
}

// LoadRunService reads the configuration for root through loader and
// builds a RunService from it.
func LoadRunService(loader domain.ConfigLoader, store domain.TextStore, log domain.Logger, root string) (*RunService, error) {
	cfg, err := loader.Load(root)
	if err != nil {
		return nil, err
	}
	return NewRunService(store, log, cfg), nil
}

// Config returns the effective configuration, defaults applied.
func (s *RunService) Config() domain.ProjectConfig { return s.cfg }

// Run patches the project at root. The returned report is never nil. A
// verification shortfall still ends in Done; callers inspect
// report.AllVerified.
func (s *RunService) Run(root string) (*domain.PatchReport, error) {
	report := domain.NewPatchReport(root)
	layout := archipelago.NewLayout(root)

	if !s.store.IsDir(layout.Integration()) {
		s.log.Log(domain.LevelError, "Cannot find %s directory!", archipelago.IntegrationDir)
		s.log.Log(domain.LevelError, "Please run this from the Selaco root directory.")
		report.AddError(domain.ErrProjectRootMissing.Error())
		report.State = domain.StateFailed
		return report, domain.ErrProjectRootMissing
	}

	base := layout.Integration()

	if err := s.step(report, domain.StateProvisioning, func() error {
		if err := s.provision.EnsureDirs(base, archipelago.RequiredDirs(), report); err != nil {
			return err
		}
		return s.provision.WriteStubs(base, archipelago.DependencyStubs(), report)
	}); err != nil {
		return report, err
	}

	if err := s.step(report, domain.StatePatching, func() error {
		if err := s.patch.ApplyAll(base, archipelago.IncludeRules(), report); err != nil {
			return err
		}
		s.log.Log(domain.LevelStep, "Creating implementation stubs...")
		if err := s.provision.WriteStubs(base, archipelago.ImplementationStubs(), report); err != nil {
			return err
		}
		return s.buildFile.Patch(layout.BuildFile(), archipelago.BuildFileInsertions(), report)
	}); err != nil {
		return report, err
	}

	report.State = domain.StateVerifying
	if !s.verify.Verify(base, archipelago.RequiredFiles(), report) {
		s.log.Log(domain.LevelWarn, "Some files are missing. Please check the errors above.")
	}
	report.State = domain.StateDone
	return report, nil
}

// Verify runs only the verifier against the project at root.
func (s *RunService) Verify(root string) (*domain.PatchReport, error) {
	report := domain.NewPatchReport(root)
	layout := archipelago.NewLayout(root)
	if !s.store.IsDir(layout.Integration()) {
		report.State = domain.StateFailed
		report.AddError(domain.ErrProjectRootMissing.Error())
		return report, domain.ErrProjectRootMissing
	}
	report.State = domain.StateVerifying
	s.verify.Verify(layout.Integration(), archipelago.RequiredFiles(), report)
	report.State = domain.StateDone
	return report, nil
}

// step runs fn in state. Errors and panics move the report to Failed.
func (s *RunService) step(report *domain.PatchReport, state domain.RunState, fn func() error) (err error) {
	report.State = state
	defer func() {
		if r := recover(); r != nil {
			err = &StepError{State: state, Err: fmt.Errorf("panic: %v", r), Stack: debug.Stack()}
		}
		if err != nil {
			report.AddError(err.Error())
			report.State = domain.StateFailed
		}
	}()
	if err := fn(); err != nil {
		return &StepError{State: state, Err: err}
	}
	return nil
}

// Rebuild asks whether to clean and rebuild. On "y" it deletes the build
// directory and launches the first build script found.
func (s *RunService) Rebuild(root string, prompt domain.Prompter, runner domain.ScriptRunner) error {
	yes, err := prompt.Confirm(rebuildQuestion)
	if err != nil {
		return err
	}
	if !yes {
		return nil
	}

	if err := s.CleanBuildDir(root); err != nil {
		return err
	}

	script, ok := s.FindBuildScript(root)
	if !ok {
		s.log.Log(domain.LevelWarn, "No build script found. Please run your build script manually.")
		return nil
	}
	s.log.Log(domain.LevelInfo, "Running %s...", filepath.Base(script))
	if err := runner.Run(script); err != nil {
		s.log.Log(domain.LevelWarn, "%v", err)
	}
	return nil
}

// CleanBuildDir removes the configured build directory if present.
func (s *RunService) CleanBuildDir(root string) error {
	dir := filepath.Join(root, filepath.FromSlash(s.cfg.BuildDir))
	if !s.store.Exists(dir) {
		return nil
	}
	s.log.Log(domain.LevelStep, "Cleaning build directory...")
	if err := s.store.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing build directory: %w", err)
	}
	s.log.Log(domain.LevelInfo, "Build directory cleaned")
	return nil
}

// FindBuildScript returns the first configured script present under root.
func (s *RunService) FindBuildScript(root string) (string, bool) {
	for _, name := range s.cfg.BuildScripts {
		p := filepath.Join(root, filepath.FromSlash(name))
		if s.store.Exists(p) {
			return p, true
		}
	}
	return "", false
}
