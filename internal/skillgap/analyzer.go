package skillgap

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	shortTermTimeline = "3-6 months"
	longTermTimeline  = "6-12 months"
	estimatedTimeline = "6-12 months"
)

var (
	shortTermResources = []string{"Online courses", "Practice projects", "Documentation"}
	longTermResources  = []string{"Advanced courses", "Real projects", "Mentorship"}
)

const (
	shortTermGuidance = "Focus on building foundational knowledge and practical projects. Allocate 2-3 hours daily for learning and practice."
	longTermGuidance  = "Advanced implementation and real-world applications. Build portfolio projects and seek mentorship opportunities."
)

var skillSeparator = regexp.MustCompile(`[,\n]`)

// NormalizeSkills splits raw text on commas and newlines, trims and lower-cases
// each token and drops empty ones. Duplicates are kept.
func NormalizeSkills(raw string) SkillSet {
	parts := skillSeparator.Split(raw, -1)
	skills := make(SkillSet, 0, len(parts))
	for _, part := range parts {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill == "" {
			continue
		}
		skills = append(skills, skill)
	}
	return skills
}

// LookupRequiredSkills returns the requirement list for a career and tier, or an
// empty slice when either key is unknown. The returned slice is a copy.
func LookupRequiredSkills(careerID string, tier Tier) []string {
	tiers, ok := requiredSkills[careerID]
	if !ok {
		return []string{}
	}
	skills, ok := tiers[tier]
	if !ok {
		return []string{}
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

// ComputeGap marks each required skill as existing when any current skill is a
// substring of it or contains it, ignoring case. Current skills with no matching
// requirement are not reported.
func ComputeGap(current SkillSet, required []string) GapAnalysis {
	existing := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))

	for _, req := range required {
		if matchesAny(req, current) {
			existing = append(existing, req)
		} else {
			missing = append(missing, req)
		}
	}

	return GapAnalysis{
		CurrentSkills:   append([]string{}, current...),
		RequiredSkills:  append([]string{}, required...),
		ExistingSkills:  existing,
		MissingSkills:   missing,
		MatchPercentage: matchPercentage(len(existing), len(required)),
	}
}

func matchesAny(required string, current SkillSet) bool {
	r := strings.ToLower(strings.TrimSpace(required))
	if r == "" {
		return false
	}
	for _, c := range current {
		c = strings.ToLower(strings.TrimSpace(c))
		// "" is a substring of everything
		if c == "" {
			continue
		}
		if strings.Contains(r, c) || strings.Contains(c, r) {
			return true
		}
	}
	return false
}

func matchPercentage(matched, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(matched) / float64(total)))
}

// BuildRoadmap puts the first ceil(n/2) missing skills into the short-term phase
// and the rest into the long-term phase, preserving order.
func BuildRoadmap(missing []string) Roadmap {
	split := (len(missing) + 1) / 2

	roadmap := Roadmap{
		ShortTerm: make([]RoadmapItem, 0, split),
		LongTerm:  make([]RoadmapItem, 0, len(missing)-split),
	}
	for i, skill := range missing {
		if i < split {
			roadmap.ShortTerm = append(roadmap.ShortTerm, RoadmapItem{
				Skill:     skill,
				Timeline:  shortTermTimeline,
				Resources: append([]string{}, shortTermResources...),
				Priority:  "High",
				Guidance:  shortTermGuidance,
			})
			continue
		}
		roadmap.LongTerm = append(roadmap.LongTerm, RoadmapItem{
			Skill:     skill,
			Timeline:  longTermTimeline,
			Resources: append([]string{}, longTermResources...),
			Priority:  "Medium",
			Guidance:  longTermGuidance,
		})
	}
	return roadmap
}

// RecommendCertifications returns the catalog entries for a career, or a single
// generic record when the career has none.
func RecommendCertifications(careerID string) []Certification {
	certs, ok := certifications[careerID]
	if !ok {
		return []Certification{fallbackCertification}
	}
	out := make([]Certification, len(certs))
	copy(out, certs)
	return out
}

// Analyze runs the whole offline pipeline for one request.
func Analyze(rawSkills, careerID, level string) Report {
	tier, _ := ParseTier(level)
	careerID = strings.TrimSpace(careerID)

	gap := ComputeGap(NormalizeSkills(rawSkills), LookupRequiredSkills(careerID, tier))
	gap.TargetCareer = careerID
	gap.ExperienceLevel = string(tier)

	difficulty := "Easy"
	if tier == TierBeginner {
		difficulty = "Medium"
	}

	return Report{
		GapAnalysis:     gap,
		LearningRoadmap: BuildRoadmap(gap.MissingSkills),
		Certifications:  RecommendCertifications(careerID),
		Insights: fmt.Sprintf(
			"Based on your current skills and target career in %s, you have a %d%% skills match. "+
				"Focus on developing the missing skills through structured learning and practical projects.",
			careerID, gap.MatchPercentage),
		EstimatedTimeline: estimatedTimeline,
		Difficulty:        difficulty,
		Source:            SourceFallback,
	}
}

// Careers lists the catalog sorted by id.
func Careers() []Career {
	careers := make([]Career, 0, len(requiredSkills))
	for id, tiers := range requiredSkills {
		c := Career{ID: id, Name: FormatCareerName(id)}
		for _, t := range Tiers {
			if _, ok := tiers[t]; ok {
				c.Tiers = append(c.Tiers, t)
			}
		}
		careers = append(careers, c)
	}
	sort.Slice(careers, func(i, j int) bool {
		return careers[i].ID < careers[j].ID
	})
	return careers
}

// FormatCareerName turns "ui-ux-designer" into "Ui Ux Designer".
func FormatCareerName(careerID string) string {
	words := strings.Split(careerID, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
