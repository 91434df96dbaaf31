package advisor

import (
	"github.com/jonathan/career-advisor/internal/cards"
	"github.com/jonathan/career-advisor/internal/chat"
	"github.com/jonathan/career-advisor/internal/prompts"
)

// Source values reported with every generated answer.
const (
	SourceAI     = "ai"
	SourceCanned = "canned"
)

// Profile is what a student tells us about themselves.
type Profile struct {
	Education   string `json:"education" validate:"max=2000"`
	Skills      string `json:"skills" validate:"max=2000"`
	Interests   string `json:"interests" validate:"max=2000"`
	CareerGoals string `json:"careerGoals" validate:"max=2000"`
}

func (p Profile) prompt() prompts.Profile {
	return prompts.Profile{
		Education:   p.Education,
		Skills:      p.Skills,
		Interests:   p.Interests,
		CareerGoals: p.CareerGoals,
	}
}

// AdviceResult is the answer to an advice request. Cards is empty when the
// text could not be parsed; Result always carries the raw text.
type AdviceResult struct {
	Result string             `json:"result"`
	Cards  []cards.CareerCard `json:"cards"`
	Source string             `json:"source"`
}

// PrepResult is the answer to a preparation-plan request.
type PrepResult struct {
	Role   string          `json:"role"`
	Result string          `json:"result"`
	Plan   *cards.PrepPlan `json:"plan,omitempty"`
	Source string          `json:"source"`
}

// ChatRequest is one mentor chat turn. Either SessionID or History carries
// prior context; with neither a new session is started.
type ChatRequest struct {
	Message   string         `json:"message" validate:"required,max=4000"`
	SessionID string         `json:"session_id,omitempty" validate:"omitempty,uuid"`
	History   []chat.Message `json:"chat_history,omitempty" validate:"max=100,dive"`
}

// ChatResult is the mentor reply. SessionID is empty when the caller supplied
// the history inline.
type ChatResult struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id,omitempty"`
	Source    string `json:"source"`
}

// SkillsRequest asks for a skills-gap analysis.
type SkillsRequest struct {
	CurrentSkills   string `json:"currentSkills" validate:"max=4000"`
	TargetCareer    string `json:"targetCareer" validate:"max=100"`
	ExperienceLevel string `json:"experienceLevel" validate:"max=50"`
}
