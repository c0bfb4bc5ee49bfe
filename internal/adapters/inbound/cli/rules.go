package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abdidvp/appatch/internal/adapters/outbound/console"
	"github.com/abdidvp/appatch/internal/domain/archipelago"
)

func newRulesCmd() *cobra.Command {
	var yamlOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the patch rule table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if yamlOutput {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(archipelago.Describe()); err != nil {
					return err
				}
				return enc.Close()
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, console.RenderRules(archipelago.IncludeRules()))
			fmt.Fprintln(out)
			fmt.Fprint(out, console.RenderInsertions(archipelago.BuildFile, archipelago.BuildFileInsertions()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output rules as YAML")

	return cmd
}
