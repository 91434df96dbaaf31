// Package schemas holds the JSON Schema documents shipped with the binary.
package schemas

import "embed"

// Files contains every *.schema.json in this directory.
//
//go:embed *.schema.json
var Files embed.FS

// SkillsAnalysis is the file name of the AI-enhanced analysis schema.
const SkillsAnalysis = "skills_analysis.schema.json"
