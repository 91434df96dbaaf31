// Package skillgap compares a person's stated skills against a static catalog of
// career requirements and derives a match score, a two-phase learning roadmap and
// certification suggestions. It makes no network calls and keeps no state.
package skillgap

import "strings"

// Tier is an experience level used as the second key of the requirement table.
type Tier string

const (
	TierBeginner     Tier = "beginner"
	TierIntermediate Tier = "intermediate"
	TierAdvanced     Tier = "advanced"
)

// Tiers lists the experience levels in ascending order.
var Tiers = []Tier{TierBeginner, TierIntermediate, TierAdvanced}

// ParseTier maps a free-form level onto a Tier.
func ParseTier(s string) (Tier, bool) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tiers {
		if t == known {
			return t, true
		}
	}
	return t, false
}

// SkillSet holds normalized skill tokens in first-seen order.
type SkillSet []string

// GapAnalysis is the result of comparing current skills against a career profile.
type GapAnalysis struct {
	TargetCareer    string   `json:"targetCareer"`
	ExperienceLevel string   `json:"experienceLevel"`
	CurrentSkills   []string `json:"currentSkills"`
	RequiredSkills  []string `json:"requiredSkills"`
	ExistingSkills  []string `json:"existingSkills"`
	MissingSkills   []string `json:"missingSkills"`
	MatchPercentage int      `json:"matchPercentage"`
}

// RoadmapItem is one skill scheduled into a roadmap phase.
type RoadmapItem struct {
	Skill     string   `json:"skill"`
	Timeline  string   `json:"timeline"`
	Resources []string `json:"resources"`
	Priority  string   `json:"priority,omitempty"`
	Guidance  string   `json:"guidance,omitempty"`
}

// Roadmap splits missing skills into a short-term and a long-term phase.
type Roadmap struct {
	ShortTerm []RoadmapItem `json:"shortTerm"`
	LongTerm  []RoadmapItem `json:"longTerm"`
}

// Certification is a credential recommended for a career.
type Certification struct {
	Name        string `json:"name"`
	Provider    string `json:"provider"`
	Price       string `json:"price"`
	Relevance   string `json:"relevance,omitempty"`
	Description string `json:"description,omitempty"`
}

// Source values for Report.Source.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Report is the full skills-analysis payload served to clients.
type Report struct {
	GapAnalysis
	LearningRoadmap   Roadmap         `json:"learningRoadmap"`
	Certifications    []Certification `json:"certifications"`
	Insights          string          `json:"insights,omitempty"`
	EstimatedTimeline string          `json:"estimatedTimeline,omitempty"`
	Difficulty        string          `json:"difficulty,omitempty"`
	Source            string          `json:"source"`
}

// Career describes a catalog entry.
type Career struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Tiers []Tier `json:"tiers"`
}
