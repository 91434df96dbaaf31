package main

import (
	"fmt"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/spf13/cobra"
)

// profileFlags binds the student profile to command flags.
type profileFlags struct {
	profile advisor.Profile
	raw     bool
	offline bool
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profile.Education, "education", "", "Education background")
	cmd.Flags().StringVarP(&f.profile.Skills, "skills", "s", "", "Current skills")
	cmd.Flags().StringVar(&f.profile.Interests, "interests", "", "Interests")
	cmd.Flags().StringVar(&f.profile.CareerGoals, "goals", "", "Career goals")
	cmd.Flags().BoolVar(&f.raw, "raw", false, "Print the model text instead of parsed cards")
	cmd.Flags().BoolVar(&f.offline, "offline", false, "Skip the language model and use the built-in sample answer")
}

func newAdviseCmd(g *globalOptions) *cobra.Command {
	flags := &profileFlags{}

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Suggest career paths for a student profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), g, cmd.ErrOrStderr(), appOptions{offline: flags.offline})
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.advisor.Advice(cmd.Context(), flags.profile)
			if err != nil {
				return fmt.Errorf("advice failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if flags.raw || len(result.Cards) == 0 {
				_, err = fmt.Fprintln(out, result.Result)
				return err
			}
			observability.NewPrinter(out).PrintCareerCards(result.Cards)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newPrepCmd(g *globalOptions) *cobra.Command {
	flags := &profileFlags{}
	var role string

	cmd := &cobra.Command{
		Use:   "prep",
		Short: "Build a preparation plan for a target role",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), g, cmd.ErrOrStderr(), appOptions{offline: flags.offline})
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.advisor.Prep(cmd.Context(), flags.profile, role)
			if err != nil {
				return fmt.Errorf("preparation plan failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if flags.raw || result.Plan == nil {
				_, err = fmt.Fprintln(out, result.Result)
				return err
			}
			observability.NewPrinter(out).PrintPrepPlan(result.Plan)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&role, "role", "r", "", "Target role (defaults to a generic role)")
	return cmd
}
