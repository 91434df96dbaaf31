// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-advisor/internal/cards"
	"github.com/jonathan/career-advisor/internal/skillgap"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// writeList writes up to maxItemsToShow items with a "... and N more" tail.
func writeList(sb *strings.Builder, items []string) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintGapReport outputs the match score, skills and roadmap of an analysis.
func (p *Printer) PrintGapReport(r *skillgap.Report) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Career:   %s\n", skillgap.FormatCareerName(r.TargetCareer)))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", r.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Match:    %d%% (%d of %d skills)\n",
		r.MatchPercentage, len(r.ExistingSkills), len(r.RequiredSkills)))
	sb.WriteString(fmt.Sprintf("Source:   %s\n", r.Source))
	sb.WriteString("\n")

	if len(r.ExistingSkills) > 0 {
		sb.WriteString("You have:\n")
		writeList(&sb, r.ExistingSkills)
		sb.WriteString("\n")
	}
	if len(r.MissingSkills) > 0 {
		sb.WriteString("To develop:\n")
		writeList(&sb, r.MissingSkills)
		sb.WriteString("\n")
	}

	for _, phase := range []struct {
		label string
		items []skillgap.RoadmapItem
	}{
		{"Short term", r.LearningRoadmap.ShortTerm},
		{"Long term", r.LearningRoadmap.LongTerm},
	} {
		if len(phase.items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (%s):\n", phase.label, phase.items[0].Timeline))
		for _, item := range phase.items {
			sb.WriteString(fmt.Sprintf("  → %s\n", item.Skill))
		}
		sb.WriteString("\n")
	}

	if len(r.Certifications) > 0 {
		sb.WriteString("Certifications:\n")
		for _, c := range r.Certifications {
			sb.WriteString(fmt.Sprintf("  ★ %s (%s, %s)\n", c.Name, c.Provider, c.Price))
		}
	}

	p.printBox("SKILLS GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareerCards outputs one box per suggested career path.
func (p *Printer) PrintCareerCards(list []cards.CareerCard) {
	for i, c := range list {
		var sb strings.Builder
		if c.WhySuitable != "" {
			sb.WriteString("Why: ")
			sb.WriteString(c.WhySuitable)
			sb.WriteString("\n")
		}
		if skills := c.Skills(); len(skills) > 0 {
			sb.WriteString("Skills:\n")
			writeList(&sb, skills)
		}
		if resources := c.Resources(); len(resources) > 0 {
			sb.WriteString("Resources:\n")
			writeList(&sb, resources)
		}
		p.printBox(fmt.Sprintf("CAREER PATH %d: %s", i+1, strings.ToUpper(c.Title)), strings.TrimSuffix(sb.String(), "\n"))
	}
}

// PrintPrepPlan outputs the sections of a preparation plan.
func (p *Printer) PrintPrepPlan(plan *cards.PrepPlan) {
	if plan == nil || plan.Empty() {
		return
	}

	var sb strings.Builder
	for i, section := range plan.Sections {
		sb.WriteString(fmt.Sprintf("%d) %s\n", i+1, section.Heading))
		for _, item := range section.Items {
			sb.WriteString(fmt.Sprintf("  - %s\n", item))
		}
		if i < len(plan.Sections)-1 {
			sb.WriteString("\n")
		}
	}

	title := plan.Title
	if title == "" {
		title = "Preparation Plan"
	}
	p.printBox(strings.ToUpper(title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCareers outputs the career catalog.
func (p *Printer) PrintCareers(careers []skillgap.Career) {
	if len(careers) == 0 {
		return
	}

	var sb strings.Builder
	for _, c := range careers {
		tiers := make([]string, len(c.Tiers))
		for i, t := range c.Tiers {
			tiers[i] = string(t)
		}
		sb.WriteString(fmt.Sprintf("%-22s %s\n", c.ID, strings.Join(tiers, ", ")))
	}
	p.printBox("CAREERS", strings.TrimSuffix(sb.String(), "\n"))
}
