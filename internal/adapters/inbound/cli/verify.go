package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdidvp/appatch/internal/adapters/outbound/config"
	"github.com/abdidvp/appatch/internal/adapters/outbound/console"
	"github.com/abdidvp/appatch/internal/adapters/outbound/textfile"
	"github.com/abdidvp/appatch/internal/application"
	"github.com/abdidvp/appatch/internal/domain"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [path]",
		Short: "Check that every required file exists",
		Long:  "Run only the verification step. Nothing is created or modified.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc, err := application.LoadRunService(config.New(), textfile.New(), console.New(cmd.OutOrStdout()), absPath)
			if err != nil {
				return err
			}

			report, err := svc.Verify(absPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), "\n"+console.RenderVerification(report.Verified))
			if !report.AllVerified() {
				return domain.ErrVerificationFailed
			}
			return nil
		},
	}
}
