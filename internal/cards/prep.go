package cards

import (
	"regexp"
	"strings"
)

// PrepPlan is a structured preparation plan.
type PrepPlan struct {
	Title    string        `json:"title,omitempty"`
	Sections []PrepSection `json:"sections"`
}

// PrepSection is one numbered section of a plan.
type PrepSection struct {
	Heading string   `json:"heading"`
	Items   []string `json:"items"`
}

// Empty reports whether nothing was recognized.
func (p PrepPlan) Empty() bool {
	return p.Title == "" && len(p.Sections) == 0
}

var (
	prepTitleRe   = regexp.MustCompile(`(?i)^Title:\s*(.+)$`)
	prepSectionRe = regexp.MustCompile(`^\d+\s*[).]\s*(.+)$`)
	prepItemRe    = regexp.MustCompile(`^[-*•]\s*(.+)$`)
)

// ParsePrepPlan extracts a plan from text shaped as
//
//	Title: <text>
//	1) <heading>
//	- <item>
//
// Items before the first section and unrecognized lines are dropped.
func ParsePrepPlan(text string) PrepPlan {
	plan := PrepPlan{Sections: []PrepSection{}}
	var current *PrepSection

	flush := func() {
		if current != nil {
			plan.Sections = append(plan.Sections, *current)
		}
	}

	for _, line := range lines(text) {
		if m := prepTitleRe.FindStringSubmatch(line); m != nil && plan.Title == "" {
			plan.Title = strings.TrimSpace(m[1])
			continue
		}
		if m := prepSectionRe.FindStringSubmatch(line); m != nil {
			flush()
			current = &PrepSection{Heading: strings.TrimSpace(m[1]), Items: []string{}}
			continue
		}
		if current == nil {
			continue
		}
		if m := prepItemRe.FindStringSubmatch(line); m != nil {
			current.Items = append(current.Items, strings.TrimSpace(m[1]))
		}
	}
	flush()
	return plan
}
