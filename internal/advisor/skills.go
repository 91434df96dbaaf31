package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/career-advisor/internal/llm"
	"github.com/jonathan/career-advisor/internal/prompts"
	"github.com/jonathan/career-advisor/internal/schemas"
	"github.com/jonathan/career-advisor/internal/skillgap"
	"github.com/sirupsen/logrus"
)

// SkillsAnalysis returns a skills-gap report and never fails. With a model it
// asks for an enhanced analysis; any provider error, timeout, malformed JSON
// or schema violation is logged and the deterministic analyzer answers instead.
func (s *Service) SkillsAnalysis(ctx context.Context, req SkillsRequest) skillgap.Report {
	if s.client == nil {
		return skillgap.Analyze(req.CurrentSkills, req.TargetCareer, req.ExperienceLevel)
	}

	report, err := s.enhancedAnalysis(ctx, req)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"target_career":    req.TargetCareer,
			"experience_level": req.ExperienceLevel,
			"provider":         s.client.Provider(),
		}).WithError(err).Warn("enhanced skills analysis failed, using offline analyzer")
		return skillgap.Analyze(req.CurrentSkills, req.TargetCareer, req.ExperienceLevel)
	}
	return report
}

func (s *Service) enhancedAnalysis(ctx context.Context, req SkillsRequest) (skillgap.Report, error) {
	tier, _ := skillgap.ParseTier(req.ExperienceLevel)
	careerID := strings.TrimSpace(req.TargetCareer)
	required := skillgap.LookupRequiredSkills(careerID, tier)

	prompt, err := prompts.SkillsAnalysis(req.CurrentSkills, careerID, string(tier), required)
	if err != nil {
		return skillgap.Report{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return skillgap.Report{}, &UpstreamError{Op: "skills analysis", Cause: err}
	}
	text = llm.CleanJSONBlock(text)

	if err := schemas.ValidateSkillsAnalysis(text); err != nil {
		return skillgap.Report{}, err
	}

	var report skillgap.Report
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		return skillgap.Report{}, fmt.Errorf("failed to decode skills analysis: %w", err)
	}
	return completeReport(report, careerID, tier), nil
}

// completeReport fills the fields a model may omit so clients always get the
// same shape as the offline analyzer produces.
func completeReport(r skillgap.Report, careerID string, tier skillgap.Tier) skillgap.Report {
	r.Source = skillgap.SourceAI
	if strings.TrimSpace(r.TargetCareer) == "" {
		r.TargetCareer = careerID
	}
	if strings.TrimSpace(r.ExperienceLevel) == "" {
		r.ExperienceLevel = string(tier)
	}
	r.CurrentSkills = nonNil(r.CurrentSkills)
	r.RequiredSkills = nonNil(r.RequiredSkills)
	r.ExistingSkills = nonNil(r.ExistingSkills)
	r.MissingSkills = nonNil(r.MissingSkills)
	if r.LearningRoadmap.ShortTerm == nil {
		r.LearningRoadmap.ShortTerm = []skillgap.RoadmapItem{}
	}
	if r.LearningRoadmap.LongTerm == nil {
		r.LearningRoadmap.LongTerm = []skillgap.RoadmapItem{}
	}
	for _, phase := range [][]skillgap.RoadmapItem{r.LearningRoadmap.ShortTerm, r.LearningRoadmap.LongTerm} {
		for i := range phase {
			phase[i].Resources = nonNil(phase[i].Resources)
		}
	}
	if len(r.Certifications) == 0 {
		r.Certifications = skillgap.RecommendCertifications(careerID)
	}
	return r
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
