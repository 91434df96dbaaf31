package main

import (
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/skillgap"
	"github.com/spf13/cobra"
)

func newCareersCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "careers",
		Short: "List the careers known to the skills analyzer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			careers := skillgap.Careers()
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), careers)
			}
			observability.NewPrinter(cmd.OutOrStdout()).PrintCareers(careers)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the catalog as JSON")
	return cmd
}
