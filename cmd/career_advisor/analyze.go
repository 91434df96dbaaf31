package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/jonathan/career-advisor/internal/report"
	"github.com/jonathan/career-advisor/internal/skillgap"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	skills     string
	career     string
	level      string
	jsonOutput bool
	offline    bool
	reportPath string
}

func newAnalyzeCmd(g *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compare your skills against a target career",
		Long:  "Computes a skills-gap analysis: match percentage, missing skills, a two-phase learning roadmap and certifications. Uses the language model when configured and falls back to the offline analyzer otherwise.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, g, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.skills, "skills", "s", "", "Current skills, comma or newline separated")
	cmd.Flags().StringVar(&opts.career, "career", "", "Target career id (see 'careers') (required)")
	cmd.Flags().StringVarP(&opts.level, "level", "l", string(skillgap.TierBeginner), "Experience level: beginner, intermediate or advanced")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the analysis as JSON")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Skip the language model and use the offline analyzer")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Also write the HTML report to this path")

	if err := cmd.MarkFlagRequired("career"); err != nil {
		panic(fmt.Sprintf("failed to mark career flag as required: %v", err))
	}
	return cmd
}

func runAnalyze(cmd *cobra.Command, g *globalOptions, opts *analyzeOptions) error {
	if _, ok := skillgap.ParseTier(opts.level); !ok {
		return fmt.Errorf("invalid --level %q: want beginner, intermediate or advanced", opts.level)
	}

	a, err := newApp(cmd.Context(), g, cmd.ErrOrStderr(), appOptions{offline: opts.offline})
	if err != nil {
		return err
	}
	defer a.Close()

	analysis := a.advisor.SkillsAnalysis(cmd.Context(), advisor.SkillsRequest{
		CurrentSkills:   opts.skills,
		TargetCareer:    opts.career,
		ExperienceLevel: opts.level,
	})

	if opts.reportPath != "" {
		if err := writeReport(opts.reportPath, analysis); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return writeJSON(out, analysis)
	}
	observability.NewPrinter(out).PrintGapReport(&analysis)
	if opts.reportPath != "" {
		_, _ = fmt.Fprintf(out, "Report written to %s\n", opts.reportPath)
	}
	return nil
}

func writeReport(path string, analysis skillgap.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	if err := report.Render(f, analysis, time.Now()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write report file %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
