package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/career-advisor/internal/advisor"
	"github.com/jonathan/career-advisor/internal/skillgap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// offlineEnv makes every command run without a model or database, whatever
// the developer's .env holds.
func offlineEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LLM_PROVIDER", "none")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "error")
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"serve", "analyze", "advise", "prep", "careers"} {
		assert.Contains(t, names, want)
	}
}

func TestCareersCommand_Table(t *testing.T) {
	stdout, _, err := execute(t, "careers")
	require.NoError(t, err)

	assert.Contains(t, stdout, "CAREERS")
	assert.Contains(t, stdout, "software-developer")
	assert.Contains(t, stdout, "data-scientist")
}

func TestCareersCommand_JSON(t *testing.T) {
	stdout, _, err := execute(t, "careers", "--json")
	require.NoError(t, err)

	var careers []skillgap.Career
	require.NoError(t, json.Unmarshal([]byte(stdout), &careers))
	assert.Equal(t, skillgap.Careers(), careers)
}

func TestAnalyzeCommand_MissingCareerFlag(t *testing.T) {
	offlineEnv(t)
	_, _, err := execute(t, "analyze", "--skills", "python")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "career")
}

func TestAnalyzeCommand_InvalidLevel(t *testing.T) {
	offlineEnv(t)
	_, _, err := execute(t, "analyze", "--career", "software-developer", "--level", "expert")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --level")
}

func TestAnalyzeCommand_Offline(t *testing.T) {
	offlineEnv(t)
	stdout, _, err := execute(t, "analyze",
		"--skills", "HTML, CSS, JavaScript",
		"--career", "software-developer",
		"--level", "beginner",
	)
	require.NoError(t, err)

	assert.Contains(t, stdout, "SKILLS GAP ANALYSIS")
	assert.Contains(t, stdout, "Software Developer")
	assert.Contains(t, stdout, "Source:   "+skillgap.SourceFallback)
	assert.Contains(t, stdout, "To develop:")
}

func TestAnalyzeCommand_JSONMatchesAnalyzer(t *testing.T) {
	offlineEnv(t)
	stdout, _, err := execute(t, "analyze",
		"--skills", "python\nsql",
		"--career", "data-scientist",
		"--level", "beginner",
		"--json",
	)
	require.NoError(t, err)

	var got skillgap.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))

	want := skillgap.Analyze("python\nsql", "data-scientist", "beginner")
	assert.Equal(t, want.MatchPercentage, got.MatchPercentage)
	assert.Equal(t, want.ExistingSkills, got.ExistingSkills)
	assert.Equal(t, want.MissingSkills, got.MissingSkills)
	assert.Equal(t, skillgap.SourceFallback, got.Source)
}

func TestAnalyzeCommand_OfflineFlagIgnoresProvider(t *testing.T) {
	offlineEnv(t)
	// A configured provider with a fake key must not be contacted
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "not-a-real-key")

	stdout, _, err := execute(t, "analyze", "--career", "ui-ux-designer", "--offline", "--json")
	require.NoError(t, err)

	var got skillgap.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, skillgap.SourceFallback, got.Source)
	assert.Zero(t, got.MatchPercentage)
}

func TestAnalyzeCommand_WritesReport(t *testing.T) {
	offlineEnv(t)
	path := filepath.Join(t.TempDir(), "report.html")

	stdout, _, err := execute(t, "analyze",
		"--skills", "git",
		"--career", "software-developer",
		"--report", path,
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Report written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(html), "<!DOCTYPE html>"))
	assert.Contains(t, html, "Software Developer")
}

func TestAnalyzeCommand_ReportPathUnwritable(t *testing.T) {
	offlineEnv(t)
	path := filepath.Join(t.TempDir(), "missing", "report.html")

	_, _, err := execute(t, "analyze", "--career", "software-developer", "--report", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create report file")
}

func TestAdviseCommand_OfflinePrintsCards(t *testing.T) {
	offlineEnv(t)
	stdout, _, err := execute(t, "advise", "--skills", "python", "--interests", "data")
	require.NoError(t, err)

	assert.Contains(t, stdout, "CAREER PATH 1:")
}

func TestAdviseCommand_Raw(t *testing.T) {
	offlineEnv(t)
	stdout, _, err := execute(t, "advise", "--raw")
	require.NoError(t, err)

	assert.NotContains(t, stdout, "CAREER PATH 1:")
	assert.NotEmpty(t, strings.TrimSpace(stdout))
}

func TestPrepCommand_DefaultRole(t *testing.T) {
	offlineEnv(t)
	stdout, _, err := execute(t, "prep", "--raw")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Preparation Plan for Target Role")
}

func TestPrepCommand_Role(t *testing.T) {
	offlineEnv(t)
	stdout, _, err := execute(t, "prep", "--role", "ML Engineer")
	require.NoError(t, err)

	assert.Contains(t, stdout, "PREPARATION PLAN FOR ML ENGINEER")
}

func TestNewApp_OfflineWiring(t *testing.T) {
	offlineEnv(t)
	var logs bytes.Buffer

	a, err := newApp(t.Context(), &globalOptions{}, &logs, appOptions{useStore: true})
	require.NoError(t, err)
	defer a.Close()

	assert.False(t, a.advisor.Online())
	assert.Equal(t, "none", a.advisor.Provider())

	// Without DATABASE_URL chat sessions live in memory and round-trip
	result, err := a.advisor.Chat(t.Context(), advisor.ChatRequest{Message: "What are AI career skills?"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	require.NoError(t, a.advisor.EndChat(t.Context(), result.SessionID))
}

func TestNewApp_LogLevelOverride(t *testing.T) {
	offlineEnv(t)

	a, err := newApp(t.Context(), &globalOptions{logLevel: "debug"}, &bytes.Buffer{}, appOptions{})
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "debug", a.log.GetLevel().String())
}

func TestNewApp_InvalidConfigFile(t *testing.T) {
	offlineEnv(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := newApp(t.Context(), &globalOptions{configPath: path}, &bytes.Buffer{}, appOptions{})
	require.Error(t, err)
}
