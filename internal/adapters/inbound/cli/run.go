package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdidvp/appatch/internal/adapters/outbound/buildscript"
	"github.com/abdidvp/appatch/internal/adapters/outbound/config"
	"github.com/abdidvp/appatch/internal/adapters/outbound/console"
	"github.com/abdidvp/appatch/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/appatch/internal/adapters/outbound/history"
	"github.com/abdidvp/appatch/internal/adapters/outbound/textfile"
	"github.com/abdidvp/appatch/internal/application"
	"github.com/abdidvp/appatch/internal/domain"
)

const bannerTitle = "Archipelago Auto-Patcher for Selaco"

func runPatch(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	fmt.Fprint(out, console.RenderBanner(bannerTitle))

	log := console.New(out)
	svc, err := application.LoadRunService(config.New(), textfile.New(), log, absPath)
	if err != nil {
		return err
	}

	report, runErr := svc.Run(absPath)
	if errors.Is(runErr, domain.ErrProjectRootMissing) {
		return runErr
	}
	if svc.Config().HistoryEnabled() {
		_ = application.RecordRun(history.New(), gitinfo.New(), absPath, report, time.Now()) // best-effort
	}

	var stepErr *application.StepError
	if errors.As(runErr, &stepErr) {
		log.Log(domain.LevelError, "Error: %v", stepErr.Err)
		fmt.Fprint(cmd.ErrOrStderr(), stepErr.Trace())
		return runErr
	}
	if runErr != nil {
		return runErr
	}

	fmt.Fprint(out, "\n"+console.RenderBanner("All fixes applied"))
	fmt.Fprint(out, console.RenderReport(report))
	fmt.Fprint(out, console.RenderVerification(report.Verified))

	if !report.AllVerified() {
		return domain.ErrVerificationFailed
	}

	prompt := console.NewPrompter(cmd.InOrStdin(), out)
	if err := svc.Rebuild(absPath, prompt, buildscript.New()); err != nil {
		return err
	}
	prompt.Pause("\nPress Enter to exit...")
	return nil
}
