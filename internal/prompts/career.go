package prompts

import (
	"strings"
)

const (
	careerFile = "career.json"
	cannedFile = "canned.json"

	chatTopicPrefix = "chat:"

	// DefaultRole is used when a preparation plan is requested without a role.
	DefaultRole = "Target Role"
)

// Profile is the student profile interpolated into the advice and prep prompts.
type Profile struct {
	Education   string
	Skills      string
	Interests   string
	CareerGoals string
}

// Turn is one prior chat message. Role "user" is rendered as the student,
// anything else as the mentor.
type Turn struct {
	Role    string
	Content string
}

// Speaker returns the label used for the turn in the chat prompt.
func (t Turn) Speaker() string {
	if t.Role == "user" {
		return "Student"
	}
	return "AI Mentor"
}

// Advice renders the career-advice prompt.
func Advice(p Profile) (string, error) {
	return Render(careerFile, "advice", p)
}

// Prep renders the preparation-plan prompt for role.
func Prep(p Profile, role string) (string, error) {
	return Render(careerFile, "prep", struct {
		Profile Profile
		Role    string
	}{Profile: p, Role: roleOrDefault(role)})
}

// Chat renders the mentor chat prompt with the prior conversation appended.
func Chat(message string, history []Turn) (string, error) {
	return Render(careerFile, "chat", struct {
		Message string
		History []Turn
	}{Message: message, History: history})
}

// SkillsAnalysis renders the prompt asking for a JSON skills-gap analysis.
// required is the reference skill list for the career and level.
func SkillsAnalysis(currentSkills, targetCareer, level string, required []string) (string, error) {
	return Render(careerFile, "skills-analysis", struct {
		CurrentSkills   string
		TargetCareer    string
		ExperienceLevel string
		RequiredSkills  string
	}{
		CurrentSkills:   currentSkills,
		TargetCareer:    targetCareer,
		ExperienceLevel: level,
		RequiredSkills:  strings.Join(required, ", "),
	})
}

// CannedAdvice returns the offline career advice text.
func CannedAdvice() (string, error) {
	return Get(cannedFile, "advice")
}

// CannedPrep returns the offline preparation plan for role.
func CannedPrep(role string) (string, error) {
	return Render(cannedFile, "prep", struct{ Role string }{Role: roleOrDefault(role)})
}

// CannedChat returns the offline reply for message: the first topic (in key
// order) whose phrase appears in the message, or the default reply.
func CannedChat(message string) (string, error) {
	keys, err := List(cannedFile)
	if err != nil {
		return "", err
	}

	lower := strings.ToLower(message)
	for _, key := range keys {
		topic, ok := strings.CutPrefix(key, chatTopicPrefix)
		if !ok {
			continue
		}
		if strings.Contains(lower, strings.ToLower(topic)) {
			return Get(cannedFile, key)
		}
	}
	return Get(cannedFile, "chat-default")
}

func roleOrDefault(role string) string {
	if role = strings.TrimSpace(role); role != "" {
		return role
	}
	return DefaultRole
}
