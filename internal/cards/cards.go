// Package cards turns the free-text answers of the advice and preparation
// prompts into structured cards. Parsing is lenient: text that does not follow
// the expected layout yields an empty result and callers keep the raw text.
package cards

import (
	"regexp"
	"strings"
)

// CareerCard is one suggested career path.
type CareerCard struct {
	Title             string `json:"title"`
	WhySuitable       string `json:"why,omitempty"`
	RequiredSkills    string `json:"skills,omitempty"`
	LearningResources string `json:"resources,omitempty"`
}

// Skills returns RequiredSkills split into items.
func (c CareerCard) Skills() []string {
	return SplitList(c.RequiredSkills)
}

// Resources returns LearningResources split into items.
func (c CareerCard) Resources() []string {
	return SplitList(c.LearningResources)
}

var (
	careerTitleRe = regexp.MustCompile(`(?i)^Career Path\s*\d+\s*:\s*(.+)$`)
	whyRe         = regexp.MustCompile(`(?i)^-\s*Why suitable:\s*(.+)$`)
	skillsRe      = regexp.MustCompile(`(?i)^-\s*Required Skills:\s*(.+)$`)
	resourcesRe   = regexp.MustCompile(`(?i)^-\s*Learning Resources:\s*(.+)$`)
)

// ParseCareerAdvice extracts career cards from advice text. A line
// "Career Path <n>: <title>" opens a card; "- Why suitable:", "- Required
// Skills:" and "- Learning Resources:" lines append to the open card. Repeated
// fields are joined with a space. Anything else is ignored.
func ParseCareerAdvice(text string) []CareerCard {
	result := []CareerCard{}
	var current *CareerCard

	for _, line := range lines(text) {
		if m := careerTitleRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				result = append(result, *current)
			}
			current = &CareerCard{Title: strings.TrimSpace(m[1])}
			continue
		}
		if current == nil {
			continue
		}

		switch {
		case whyRe.MatchString(line):
			current.WhySuitable = appendField(current.WhySuitable, whyRe.FindStringSubmatch(line)[1])
		case skillsRe.MatchString(line):
			current.RequiredSkills = appendField(current.RequiredSkills, skillsRe.FindStringSubmatch(line)[1])
		case resourcesRe.MatchString(line):
			current.LearningResources = appendField(current.LearningResources, resourcesRe.FindStringSubmatch(line)[1])
		}
	}
	if current != nil {
		result = append(result, *current)
	}
	return result
}

// lines splits text on \n or \r\n, trims each line and drops blank ones.
func lines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func appendField(existing, value string) string {
	value = strings.TrimSpace(value)
	if existing == "" {
		return value
	}
	return existing + " " + value
}

// SplitList splits a comma or semicolon separated field into trimmed,
// non-empty items. Separators inside parentheses are kept, so
// "Python (Pandas, NumPy), SQL" yields two items.
func SplitList(field string) []string {
	var items []string
	depth := 0
	start := 0
	flush := func(end int) {
		item := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(field[start:end]), "."))
		if item != "" {
			items = append(items, item)
		}
	}

	for i, r := range field {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0 && (r == ',' || r == ';'):
			flush(i)
			start = i + 1
		}
	}
	flush(len(field))
	return items
}
