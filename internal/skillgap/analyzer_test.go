package skillgap

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SkillSet
	}{
		{
			name:     "comma separated",
			input:    "Python, Data Analysis",
			expected: SkillSet{"python", "data analysis"},
		},
		{
			name:     "newlines and commas",
			input:    "SQL\nExcel,  Git \n\n",
			expected: SkillSet{"sql", "excel", "git"},
		},
		{
			name:     "duplicates kept",
			input:    "sql, SQL",
			expected: SkillSet{"sql", "sql"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: SkillSet{},
		},
		{
			name:     "only separators",
			input:    " , ,\n",
			expected: SkillSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkills(tt.input))
		})
	}
}

func TestLookupRequiredSkills_AllCatalogCellsNonEmpty(t *testing.T) {
	for careerID, tiers := range requiredSkills {
		for _, tier := range Tiers {
			_, ok := tiers[tier]
			require.True(t, ok, "missing %s/%s", careerID, tier)
			assert.NotEmpty(t, LookupRequiredSkills(careerID, tier), "%s/%s", careerID, tier)
		}
	}
	assert.Len(t, requiredSkills, 10)
}

func TestLookupRequiredSkills_UnknownKeys(t *testing.T) {
	tests := []struct {
		career string
		tier   Tier
	}{
		{"unknown-career", TierBeginner},
		{"data-scientist", Tier("expert")},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.career, tt.tier), func(t *testing.T) {
			skills := LookupRequiredSkills(tt.career, tt.tier)
			assert.NotNil(t, skills)
			assert.Empty(t, skills)
		})
	}
}

func TestLookupRequiredSkills_ReturnsCopy(t *testing.T) {
	skills := LookupRequiredSkills("data-scientist", TierBeginner)
	skills[0] = "mutated"

	assert.Equal(t, "python", LookupRequiredSkills("data-scientist", TierBeginner)[0])
}

func TestComputeGap_DataScientistBeginner(t *testing.T) {
	required := LookupRequiredSkills("data-scientist", TierBeginner)
	require.Equal(t, []string{"python", "statistics", "data analysis", "excel", "sql", "mathematics"}, required)

	gap := ComputeGap(NormalizeSkills("python, data analysis"), required)

	assert.Equal(t, []string{"python", "data analysis"}, gap.ExistingSkills)
	assert.Equal(t, []string{"statistics", "excel", "sql", "mathematics"}, gap.MissingSkills)
	assert.Equal(t, 33, gap.MatchPercentage)
}

func TestComputeGap_EmptyCurrentSkills(t *testing.T) {
	required := LookupRequiredSkills("devops-engineer", TierIntermediate)

	gap := ComputeGap(NormalizeSkills(""), required)

	assert.Empty(t, gap.ExistingSkills)
	assert.Equal(t, required, gap.MissingSkills)
	assert.Equal(t, 0, gap.MatchPercentage)
}

func TestComputeGap_NoRequiredSkills(t *testing.T) {
	gap := ComputeGap(SkillSet{"python"}, []string{})

	assert.Empty(t, gap.ExistingSkills)
	assert.Empty(t, gap.MissingSkills)
	assert.Equal(t, 0, gap.MatchPercentage)
}

func TestComputeGap_ContainmentBothDirections(t *testing.T) {
	tests := []struct {
		name     string
		current  SkillSet
		required string
	}{
		{"current inside required", SkillSet{"sql"}, "advanced sql"},
		{"required inside current", SkillSet{"advanced sql"}, "sql"},
		{"case insensitive", SkillSet{"GIT"}, "git"},
		{"exact", SkillSet{"docker"}, "docker"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap := ComputeGap(tt.current, []string{tt.required})
			assert.Equal(t, []string{tt.required}, gap.ExistingSkills)
			assert.Equal(t, 100, gap.MatchPercentage)
		})
	}
}

func TestComputeGap_IgnoresEmptyCurrentToken(t *testing.T) {
	gap := ComputeGap(SkillSet{"", "  "}, []string{"sql"})

	assert.Empty(t, gap.ExistingSkills)
	assert.Equal(t, []string{"sql"}, gap.MissingSkills)
}

func TestComputeGap_ExtraSkillsNotSurfaced(t *testing.T) {
	gap := ComputeGap(SkillSet{"python", "cooking"}, []string{"python", "sql"})

	assert.Equal(t, []string{"python"}, gap.ExistingSkills)
	assert.Equal(t, []string{"sql"}, gap.MissingSkills)
	assert.NotContains(t, gap.ExistingSkills, "cooking")
	assert.NotContains(t, gap.MissingSkills, "cooking")
}

func TestComputeGap_Invariants(t *testing.T) {
	inputs := []string{"", "python", "sql, git, linux", "react\nnode\njava", "security, aws, design"}
	for careerID := range requiredSkills {
		for _, tier := range Tiers {
			for _, in := range inputs {
				required := LookupRequiredSkills(careerID, tier)
				current := NormalizeSkills(in)

				first := ComputeGap(current, required)
				second := ComputeGap(current, required)

				assert.Equal(t, first, second)
				assert.Equal(t, len(required), len(first.ExistingSkills)+len(first.MissingSkills))
				assert.GreaterOrEqual(t, first.MatchPercentage, 0)
				assert.LessOrEqual(t, first.MatchPercentage, 100)
			}
		}
	}
}

func TestBuildRoadmap_Split(t *testing.T) {
	tests := []struct {
		missing   []string
		wantShort int
		wantLong  int
	}{
		{[]string{}, 0, 0},
		{[]string{"a"}, 1, 0},
		{[]string{"a", "b"}, 1, 1},
		{[]string{"a", "b", "c"}, 2, 1},
		{[]string{"a", "b", "c", "d"}, 2, 2},
		{[]string{"a", "b", "c", "d", "e"}, 3, 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d missing", len(tt.missing)), func(t *testing.T) {
			roadmap := BuildRoadmap(tt.missing)
			assert.Len(t, roadmap.ShortTerm, tt.wantShort)
			assert.Len(t, roadmap.LongTerm, tt.wantLong)
			assert.Equal(t, len(tt.missing), len(roadmap.ShortTerm)+len(roadmap.LongTerm))
		})
	}
}

func TestBuildRoadmap_OrderAndLabels(t *testing.T) {
	roadmap := BuildRoadmap([]string{"statistics", "excel", "sql"})

	require.Len(t, roadmap.ShortTerm, 2)
	require.Len(t, roadmap.LongTerm, 1)

	assert.Equal(t, "statistics", roadmap.ShortTerm[0].Skill)
	assert.Equal(t, "excel", roadmap.ShortTerm[1].Skill)
	assert.Equal(t, "sql", roadmap.LongTerm[0].Skill)

	assert.Equal(t, "3-6 months", roadmap.ShortTerm[0].Timeline)
	assert.Equal(t, []string{"Online courses", "Practice projects", "Documentation"}, roadmap.ShortTerm[0].Resources)
	assert.Equal(t, "High", roadmap.ShortTerm[0].Priority)

	assert.Equal(t, "6-12 months", roadmap.LongTerm[0].Timeline)
	assert.Equal(t, []string{"Advanced courses", "Real projects", "Mentorship"}, roadmap.LongTerm[0].Resources)
	assert.Equal(t, "Medium", roadmap.LongTerm[0].Priority)
}

func TestRecommendCertifications(t *testing.T) {
	certs := RecommendCertifications("cybersecurity-analyst")
	require.Len(t, certs, 3)
	assert.Equal(t, "CompTIA Security+", certs[0].Name)

	fallback := RecommendCertifications("unknown-career")
	require.Len(t, fallback, 1)
	assert.Equal(t, "General Professional Development", fallback[0].Name)
	assert.Equal(t, "Various", fallback[0].Provider)
	assert.Equal(t, "Free-$500", fallback[0].Price)
	assert.Equal(t, "High", fallback[0].Relevance)
}

func TestAnalyze_UnknownCareer(t *testing.T) {
	report := Analyze("python, sql", "unknown-career", "beginner")

	assert.Equal(t, "unknown-career", report.TargetCareer)
	assert.Empty(t, report.RequiredSkills)
	assert.Empty(t, report.ExistingSkills)
	assert.Empty(t, report.MissingSkills)
	assert.Equal(t, 0, report.MatchPercentage)
	assert.Empty(t, report.LearningRoadmap.ShortTerm)
	assert.Empty(t, report.LearningRoadmap.LongTerm)
	assert.Equal(t, []Certification{fallbackCertification}, report.Certifications)
	assert.Equal(t, SourceFallback, report.Source)
}

func TestAnalyze_Pipeline(t *testing.T) {
	report := Analyze("Python, Data Analysis", " data-scientist ", "Beginner")

	assert.Equal(t, "data-scientist", report.TargetCareer)
	assert.Equal(t, "beginner", report.ExperienceLevel)
	assert.Equal(t, []string{"python", "data analysis"}, report.CurrentSkills)
	assert.Equal(t, 33, report.MatchPercentage)
	assert.Len(t, report.LearningRoadmap.ShortTerm, 2)
	assert.Len(t, report.LearningRoadmap.LongTerm, 2)
	assert.Len(t, report.Certifications, 3)
	assert.Contains(t, report.Insights, "33% skills match")
	assert.Equal(t, "6-12 months", report.EstimatedTimeline)
	assert.Equal(t, "Medium", report.Difficulty)
}

func TestAnalyze_DifficultyByTier(t *testing.T) {
	assert.Equal(t, "Easy", Analyze("", "ai-engineer", "advanced").Difficulty)
	assert.Equal(t, "Easy", Analyze("", "ai-engineer", "intermediate").Difficulty)
}

func TestParseTier(t *testing.T) {
	tier, ok := ParseTier(" Intermediate ")
	assert.True(t, ok)
	assert.Equal(t, TierIntermediate, tier)

	_, ok = ParseTier("guru")
	assert.False(t, ok)
}

func TestCareers(t *testing.T) {
	careers := Careers()
	require.Len(t, careers, 10)

	assert.Equal(t, "ai-engineer", careers[0].ID)
	assert.Equal(t, "Ai Engineer", careers[0].Name)
	assert.Equal(t, Tiers, careers[0].Tiers)
	for i := 1; i < len(careers); i++ {
		assert.Less(t, careers[i-1].ID, careers[i].ID)
	}
}

func TestFormatCareerName(t *testing.T) {
	assert.Equal(t, "Data Scientist", FormatCareerName("data-scientist"))
	assert.Equal(t, "Ui Ux Designer", FormatCareerName("ui-ux-designer"))
	assert.Equal(t, "", FormatCareerName(""))

	name := FormatCareerName("éngineer-ñu")
	assert.Equal(t, "Éngineer Ñu", name)
	assert.True(t, utf8.ValidString(name))
}
