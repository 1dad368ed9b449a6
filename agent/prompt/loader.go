package prompt

import (
	_ "embed"
	"strings"

	profilex "github.com/harz05/onestBack/agent/profile"
)

//go:embed template/coach.txt
var coachRaw string

// PromptSet holds loaded prompt content.
type PromptSet struct {
	Coach string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings. Safe to call
// concurrently; the embed is compile-time and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		Coach: strings.TrimSpace(coachRaw),
	}
}

var stageGuidance = map[profilex.Phase]string{
	profilex.PhaseGreeting:           "Give a warm welcome, explain you will help with interview prep, and start the timer.",
	profilex.PhaseInfoCollection:     "Ask for missing basic info: name, age, location, target job, languages, skills, challenges.",
	profilex.PhaseConceptExplanation: "Explain interviews, resumes, soft skills, and job-specific expectations in 3 to 5 minutes.",
	profilex.PhaseSkillAssessment:    "Ask situation-based questions for their job and give instant feedback.",
	profilex.PhasePracticeIntro:      "Have them introduce themselves, give feedback, and discuss job requirements.",
	profilex.PhaseFinalQnA:           "Ask what they want to practice more and answer their questions.",
	profilex.PhaseWrapUp:             "Give comprehensive final feedback and encouragement.",
}

// StageGuidance returns the per-phase instruction injected alongside the
// profile summary each turn.
func StageGuidance(phase profilex.Phase) string {
	guidance, ok := stageGuidance[phase]
	if !ok {
		return ""
	}
	return "Current objective: " + guidance + " Move to the next stage when the current objectives are complete. " +
		"Keep responses natural and conversational without any formatting. Be supportive and encouraging throughout."
}
