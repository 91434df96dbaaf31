// Package report renders a skills-gap analysis as a standalone, printable HTML page.
package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/jonathan/career-advisor/internal/skillgap"
)

//go:embed report.html.tmpl
var reportTemplate string

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(reportTemplate))

// NextSteps are printed at the end of every report.
var NextSteps = []string{
	"Prioritize skills based on your timeline and resources",
	"Start with foundational skills before moving to advanced topics",
	"Build practical projects to demonstrate your skills",
	"Consider pursuing relevant certifications",
	"Network with professionals in your target field",
	"Regularly reassess your skills and update your learning plan",
}

type view struct {
	Report      skillgap.Report
	CareerName  string
	GeneratedOn string
	NextSteps   []string
}

// Render writes the HTML report for r to w. User-supplied values are escaped.
func Render(w io.Writer, r skillgap.Report, generatedAt time.Time) error {
	v := view{
		Report:      r,
		CareerName:  skillgap.FormatCareerName(r.TargetCareer),
		GeneratedOn: generatedAt.Format("January 2, 2006"),
		NextSteps:   NextSteps,
	}
	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
