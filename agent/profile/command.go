package profile

import (
	"fmt"
	"strings"
	"time"

	contractx "github.com/harz05/onestBack/agent/contract"
)

// Command is one of the fixed mutation operations the language model may
// request. Each concrete type carries already-shaped values; decoding raw
// tool-call arguments happens in agent/tool.
type Command interface {
	apply(p *JobSeekerProfile, now time.Time) (string, error)
}

// Apply dispatches a command against the profile and returns a short
// confirmation string for the model. Wrong-shape values are rejected with a
// descriptive error; nothing is silently coerced.
func Apply(p *JobSeekerProfile, cmd Command, now time.Time) (string, error) {
	if p == nil {
		return "", fmt.Errorf("%w: nil profile", contractx.ErrValidation)
	}
	if cmd == nil {
		return "", fmt.Errorf("%w: nil command", contractx.ErrValidation)
	}
	msg, err := cmd.apply(p, now)
	if err != nil {
		return "", err
	}
	p.Touch(now)
	return msg, nil
}

// SetBasicInfo fills name, age, city, and state and moves the workflow into
// info collection if it is still at greeting.
type SetBasicInfo struct {
	Name  string
	Age   string
	City  string
	State string
}

func (c SetBasicInfo) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", contractx.ErrValidation)
	}
	p.Name = name
	// Re-calls with only a name must not erase details collected earlier.
	if age := strings.TrimSpace(c.Age); age != "" {
		p.Age = age
	}
	if city := strings.TrimSpace(c.City); city != "" {
		p.City = city
	}
	if state := strings.TrimSpace(c.State); state != "" {
		p.State = state
	}
	if p.CurrentPhase.Before(PhaseInfoCollection) {
		if err := p.AdvancePhase(PhaseInfoCollection); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Got it %s, I have noted your details", name), nil
}

// SetJobInfo records the target job, normalizes it, and populates the derived
// skill, safety, and question lists from the job knowledge table.
type SetJobInfo struct {
	TargetJob        string
	EmploymentStatus string
	ExperienceLevel  string
	Languages        []string
}

func (c SetJobInfo) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	job := NormalizeJob(c.TargetJob)
	if job == "" {
		return "", fmt.Errorf("%w: target_job is required", contractx.ErrValidation)
	}
	p.TargetJob = job
	p.EmploymentStatus = strings.TrimSpace(c.EmploymentStatus)
	p.ExperienceLevel = strings.TrimSpace(c.ExperienceLevel)
	if len(c.Languages) > 0 {
		p.Languages = append([]string(nil), c.Languages...)
	}

	if know, ok := LookupJob(job); ok {
		p.JobSkills = know.Skills
		p.SafetyPoints = know.SafetyPoints
		p.CommonQuestions = know.CommonQuestions
	} else {
		p.JobSkills = GenericSkills()
		p.SafetyPoints = nil
		p.CommonQuestions = nil
	}

	if p.CurrentPhase.Before(PhaseInfoCollection) {
		if err := p.AdvancePhase(PhaseInfoCollection); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("You are looking for a %s job", strings.ReplaceAll(job, "_", " ")), nil
}

// AppendSkills concatenates to the skills sequence, preserving call order and
// duplicates.
type AppendSkills struct {
	Skills []string
}

func (c AppendSkills) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	if len(c.Skills) == 0 {
		return "", fmt.Errorf("%w: skills list is empty", contractx.ErrValidation)
	}
	p.Skills = append(p.Skills, c.Skills...)
	return fmt.Sprintf("Got it, you know %s", strings.Join(c.Skills, ", ")), nil
}

// AppendChallenges concatenates to the challenges sequence.
type AppendChallenges struct {
	Challenges []string
}

func (c AppendChallenges) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	if len(c.Challenges) == 0 {
		return "", fmt.Errorf("%w: challenges list is empty", contractx.ErrValidation)
	}
	p.Challenges = append(p.Challenges, c.Challenges...)
	return "I understand the challenges you are facing", nil
}

// RecordSkillResponse appends one answer to the skill-assessment response log.
type RecordSkillResponse struct {
	Response string
}

func (c RecordSkillResponse) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	response := strings.TrimSpace(c.Response)
	if response == "" {
		return "", fmt.Errorf("%w: response is empty", contractx.ErrValidation)
	}
	p.SkillResponses = append(p.SkillResponses, response)
	return "I have noted your response", nil
}

// AddNote appends a free-form coaching note.
type AddNote struct {
	Note string
}

func (c AddNote) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	note := strings.TrimSpace(c.Note)
	if note == "" {
		return "", fmt.Errorf("%w: note is empty", contractx.ErrValidation)
	}
	p.Notes = append(p.Notes, note)
	return "Note added", nil
}

// SetPhase advances the workflow to the named phase. Backward requests are
// rejected; re-asserting the current phase is a no-op.
type SetPhase struct {
	Phase Phase
}

var phaseConfirmations = map[Phase]string{
	PhaseGreeting:           "Staying in greeting",
	PhaseInfoCollection:     "Collecting your basic details",
	PhaseConceptExplanation: "Moving to explain interview concepts",
	PhaseSkillAssessment:    "Starting skill assessment",
	PhasePracticeIntro:      "Moving to practice introduction",
	PhaseFinalQnA:           "Moving to final questions",
	PhaseWrapUp:             "Moving to final feedback and wrap up",
}

func (c SetPhase) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	if err := p.AdvancePhase(c.Phase); err != nil {
		return "", err
	}
	return phaseConfirmations[c.Phase], nil
}

// MarkPracticeIntroDone flags that the practice introduction is complete.
type MarkPracticeIntroDone struct{}

func (MarkPracticeIntroDone) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	p.PracticeIntroDone = true
	return "Practice introduction completed", nil
}

// MarkConceptsUnderstood records whether the seeker followed the concept
// explanation. Understanding advances the workflow to practice and sets
// ready_for_practice; a false value changes nothing.
type MarkConceptsUnderstood struct {
	Understood bool
}

func (c MarkConceptsUnderstood) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	if !c.Understood {
		return "No problem, let us go over the concepts once more", nil
	}
	if err := p.AdvancePhase(PhasePracticeIntro); err != nil {
		return "", err
	}
	p.ConceptsUnderstood = true
	p.ReadyForPractice = true
	return "Great, moving on to interview practice", nil
}

// StartTimer records the conversation start time; calling it again is a no-op.
type StartTimer struct{}

func (StartTimer) apply(p *JobSeekerProfile, now time.Time) (string, error) {
	p.StartTimer(now)
	return "Timer started", nil
}

// CompleteInterview stores the final score and feedback and moves the
// workflow into wrap up.
type CompleteInterview struct {
	Score          int
	FeedbackPoints []string
}

func (c CompleteInterview) apply(p *JobSeekerProfile, _ time.Time) (string, error) {
	if c.Score < 0 || c.Score > 10 {
		return "", fmt.Errorf("%w: score must be between 0 and 10, got %d", contractx.ErrValidation, c.Score)
	}
	if err := p.AdvancePhase(PhaseWrapUp); err != nil {
		return "", err
	}
	p.InterviewCompleted = true
	p.InterviewScore = c.Score
	p.FeedbackPoints = append([]string(nil), c.FeedbackPoints...)
	return "Interview practice completed, sharing final feedback", nil
}
