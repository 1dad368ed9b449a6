package profile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// JobSeekerProfile is the per-session source-of-truth for the coaching
// workflow. It is mutated only through Apply (see command.go) and confined to
// one session's control flow, so no locking is needed on the instance itself.
type JobSeekerProfile struct {
	// Identity
	SessionID string `json:"session_id"`

	// Basic info, unset until supplied
	Name  string `json:"name,omitempty"`
	Age   string `json:"age,omitempty"`
	City  string `json:"city,omitempty"`
	State string `json:"state,omitempty"`

	// Job target
	TargetJob        string `json:"target_job,omitempty"` // normalized: lowercase, spaces -> underscores
	EmploymentStatus string `json:"employment_status,omitempty"`
	ExperienceLevel  string `json:"experience_level,omitempty"`

	// Append-only conversation facts, duplicates preserved
	Languages      []string `json:"languages,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	Challenges     []string `json:"challenges,omitempty"`
	SkillResponses []string `json:"skill_responses,omitempty"`
	Notes          []string `json:"notes,omitempty"`

	// Workflow control
	CurrentPhase Phase `json:"current_phase"`

	// Derived from the job knowledge table whenever TargetJob changes
	JobSkills       []string `json:"job_skills,omitempty"`
	SafetyPoints    []string `json:"safety_points,omitempty"`
	CommonQuestions []string `json:"common_questions,omitempty"`

	// Flags, set once and never cleared
	ConceptsUnderstood bool `json:"concepts_understood,omitempty"`
	ReadyForPractice   bool `json:"ready_for_practice,omitempty"`
	PracticeIntroDone  bool `json:"practice_intro_done,omitempty"`
	InterviewCompleted bool `json:"interview_completed,omitempty"`

	InterviewScore int      `json:"interview_score,omitempty"`
	FeedbackPoints []string `json:"feedback_points,omitempty"`

	// Zero until StartTimer; set at most once.
	ConversationStartTime time.Time `json:"conversation_start_time,omitzero"`

	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrProfileNotFound = errors.New("job seeker profile not found")
	ErrNilProfile      = errors.New("job seeker profile is nil")
	ErrInvalidSession  = errors.New("session id is empty")
	ErrUnknownPhase    = errors.New("unknown phase")
	ErrPhaseRegression = errors.New("phase cannot move backward")
)

// Phase is the coaching workflow stage marker. The ordering below is fixed;
// transitions only ever move forward.
type Phase string

const (
	PhaseGreeting           Phase = "greeting"
	PhaseInfoCollection     Phase = "info_collection"
	PhaseConceptExplanation Phase = "concept_explanation"
	PhaseSkillAssessment    Phase = "skill_assessment"
	PhasePracticeIntro      Phase = "practice_intro"
	PhaseFinalQnA           Phase = "final_qna"
	PhaseWrapUp             Phase = "wrap_up"
)

var phaseOrder = map[Phase]int{
	PhaseGreeting:           0,
	PhaseInfoCollection:     1,
	PhaseConceptExplanation: 2,
	PhaseSkillAssessment:    3,
	PhasePracticeIntro:      4,
	PhaseFinalQnA:           5,
	PhaseWrapUp:             6,
}

func (p Phase) Known() bool {
	_, ok := phaseOrder[p]
	return ok
}

// Before reports whether p comes earlier than other in the fixed ordering.
// Unknown phases compare as not-before.
func (p Phase) Before(other Phase) bool {
	pi, ok := phaseOrder[p]
	if !ok {
		return false
	}
	oi, ok := phaseOrder[other]
	if !ok {
		return false
	}
	return pi < oi
}

func New(sessionID string, now time.Time) *JobSeekerProfile {
	return &JobSeekerProfile{
		SessionID:    sessionID,
		CurrentPhase: PhaseGreeting,
		UpdatedAt:    now.UTC(),
	}
}

func (p *JobSeekerProfile) Touch(now time.Time) {
	p.UpdatedAt = now.UTC()
}

// AdvancePhase moves the workflow forward to target. Re-asserting the current
// phase is a no-op; a request for an earlier phase is rejected.
func (p *JobSeekerProfile) AdvancePhase(target Phase) error {
	if p == nil {
		return ErrNilProfile
	}
	if !target.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownPhase, target)
	}
	if target == p.CurrentPhase {
		return nil
	}
	if target.Before(p.CurrentPhase) {
		return fmt.Errorf("%w: current=%s requested=%s", ErrPhaseRegression, p.CurrentPhase, target)
	}
	p.CurrentPhase = target
	return nil
}

// StartTimer records the conversation start time exactly once; later calls
// are no-ops.
func (p *JobSeekerProfile) StartTimer(now time.Time) {
	if p.ConversationStartTime.IsZero() {
		p.ConversationStartTime = now.UTC()
	}
}

// ElapsedMinutes returns minutes since the timer started, or 0 if it hasn't.
func (p *JobSeekerProfile) ElapsedMinutes(now time.Time) float64 {
	if p.ConversationStartTime.IsZero() {
		return 0
	}
	elapsed := now.Sub(p.ConversationStartTime).Minutes()
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// BasicInfoComplete reports whether the info-collection essentials are filled.
func (p *JobSeekerProfile) BasicInfoComplete() bool {
	return p.Name != "" && p.Age != "" && p.City != "" && p.TargetJob != ""
}

// JobSpecificSkills returns the static skill list for the target job, or the
// generic fallback when the job is unset or unrecognized.
func (p *JobSeekerProfile) JobSpecificSkills() []string {
	if p == nil || p.TargetJob == "" {
		return GenericSkills()
	}
	if know, ok := LookupJob(p.TargetJob); ok {
		return append([]string(nil), know.Skills...)
	}
	return GenericSkills()
}

func (p *JobSeekerProfile) location() string {
	city := strings.TrimSpace(p.City)
	st := strings.TrimSpace(p.State)
	switch {
	case city != "" && st != "":
		return city + ", " + st
	case city != "":
		return city
	case st != "":
		return st
	default:
		return ""
	}
}

// Summarize renders every field into a fixed-order status block that the
// turn pipeline injects into model context.
func (p *JobSeekerProfile) Summarize(now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current conversation stage: %s\n", p.CurrentPhase)
	fmt.Fprintf(&b, "Elapsed time: %.1f minutes (target: ~10 minutes total)\n", p.ElapsedMinutes(now))
	fmt.Fprintf(&b, "Name: %s\n", orNotProvided(p.Name))
	fmt.Fprintf(&b, "Age: %s\n", orNotProvided(p.Age))
	fmt.Fprintf(&b, "Location: %s\n", orNotProvided(p.location()))
	fmt.Fprintf(&b, "Target job: %s\n", orNotProvided(p.TargetJob))
	fmt.Fprintf(&b, "Employment status: %s\n", orNotProvided(p.EmploymentStatus))
	fmt.Fprintf(&b, "Experience level: %s\n", orNotProvided(p.ExperienceLevel))
	fmt.Fprintf(&b, "Languages: %s\n", joinOr(p.Languages, "Not provided"))
	fmt.Fprintf(&b, "Skills mentioned: %s\n", joinOr(p.Skills, "None yet"))
	fmt.Fprintf(&b, "Challenges: %s\n", joinOr(p.Challenges, "None mentioned"))
	fmt.Fprintf(&b, "Skill responses recorded: %d\n", len(p.SkillResponses))
	fmt.Fprintf(&b, "Practice intro done: %t\n", p.PracticeIntroDone)
	fmt.Fprintf(&b, "Concepts understood: %t\n", p.ConceptsUnderstood)
	fmt.Fprintf(&b, "Ready for practice: %t\n", p.ReadyForPractice)
	fmt.Fprintf(&b, "Interview completed: %t\n", p.InterviewCompleted)
	fmt.Fprintf(&b, "Job-specific skills to assess: %s\n", strings.Join(p.JobSpecificSkills(), ", "))
	fmt.Fprintf(&b, "Notes: %s", joinWithOr(p.Notes, "; ", "None"))
	return b.String()
}

func (p *JobSeekerProfile) Validate() error {
	if p == nil {
		return ErrNilProfile
	}
	if strings.TrimSpace(p.SessionID) == "" {
		return ErrInvalidSession
	}
	if !p.CurrentPhase.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownPhase, p.CurrentPhase)
	}
	return nil
}

func orNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

func joinOr(items []string, empty string) string {
	return joinWithOr(items, ", ", empty)
}

func joinWithOr(items []string, sep, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, sep)
}
