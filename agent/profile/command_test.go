package profile

import (
	"errors"
	"strings"
	"testing"
	"time"

	contractx "github.com/harz05/onestBack/agent/contract"
)

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestApplyNilChecks(t *testing.T) {
	t.Parallel()

	if _, err := Apply(nil, AddNote{Note: "x"}, testNow); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("nil profile error = %v, want ErrValidation", err)
	}

	p := New("session-1", testNow)
	if _, err := Apply(p, nil, testNow); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("nil command error = %v, want ErrValidation", err)
	}
}

func TestApplyTouchesOnSuccessOnly(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	later := testNow.Add(time.Minute)

	if _, err := Apply(p, AddNote{Note: "speaks clearly"}, later); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if !p.UpdatedAt.Equal(later) {
		t.Fatalf("UpdatedAt = %v, want %v", p.UpdatedAt, later)
	}

	evenLater := later.Add(time.Minute)
	if _, err := Apply(p, AddNote{Note: "  "}, evenLater); err == nil {
		t.Fatal("expected error for empty note")
	}
	if !p.UpdatedAt.Equal(later) {
		t.Fatalf("UpdatedAt moved on failed command: %v", p.UpdatedAt)
	}
}

func TestSetBasicInfo(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	msg, err := Apply(p, SetBasicInfo{Name: " Ravi ", Age: "28", City: "Pune", State: "Maharashtra"}, testNow)
	if err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if !strings.Contains(msg, "Ravi") {
		t.Fatalf("confirmation = %q, want the name echoed", msg)
	}
	if p.Name != "Ravi" || p.Age != "28" || p.City != "Pune" || p.State != "Maharashtra" {
		t.Fatalf("fields = %q/%q/%q/%q", p.Name, p.Age, p.City, p.State)
	}
	if p.CurrentPhase != PhaseInfoCollection {
		t.Fatalf("CurrentPhase = %s, want %s", p.CurrentPhase, PhaseInfoCollection)
	}
}

func TestSetBasicInfoRequiresName(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if _, err := Apply(p, SetBasicInfo{Age: "28"}, testNow); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	if p.Age != "" {
		t.Fatal("profile mutated by rejected command")
	}
}

func TestSetBasicInfoRecallKeepsCollectedFields(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if _, err := Apply(p, SetBasicInfo{Name: "Ravi", Age: "28", City: "Pune", State: "Maharashtra"}, testNow); err != nil {
		t.Fatal(err)
	}

	// a correction carrying only the name must not erase the rest
	if _, err := Apply(p, SetBasicInfo{Name: "Ravindra"}, testNow); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if p.Name != "Ravindra" {
		t.Fatalf("Name = %q, want Ravindra", p.Name)
	}
	if p.Age != "28" || p.City != "Pune" || p.State != "Maharashtra" {
		t.Fatalf("collected fields erased: %q/%q/%q", p.Age, p.City, p.State)
	}

	// a later value still overwrites
	if _, err := Apply(p, SetBasicInfo{Name: "Ravindra", City: "Mumbai"}, testNow); err != nil {
		t.Fatal(err)
	}
	if p.City != "Mumbai" {
		t.Fatalf("City = %q, want Mumbai", p.City)
	}
}

func TestSetBasicInfoLatePhaseStays(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if err := p.AdvancePhase(PhaseSkillAssessment); err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(p, SetBasicInfo{Name: "Ravi"}, testNow); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if p.CurrentPhase != PhaseSkillAssessment {
		t.Fatalf("CurrentPhase = %s, want %s", p.CurrentPhase, PhaseSkillAssessment)
	}
}

func TestSetJobInfoKnownJob(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	msg, err := Apply(p, SetJobInfo{
		TargetJob:        "Delivery Agent",
		EmploymentStatus: "unemployed",
		ExperienceLevel:  "fresher",
		Languages:        []string{"Hindi", "English"},
	}, testNow)
	if err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if msg != "You are looking for a delivery agent job" {
		t.Fatalf("confirmation = %q", msg)
	}
	if p.TargetJob != "delivery_agent" {
		t.Fatalf("TargetJob = %q, want delivery_agent", p.TargetJob)
	}
	if len(p.JobSkills) == 0 || len(p.SafetyPoints) == 0 || len(p.CommonQuestions) == 0 {
		t.Fatalf("derived lists not populated: %v / %v / %v", p.JobSkills, p.SafetyPoints, p.CommonQuestions)
	}
	if len(p.Languages) != 2 {
		t.Fatalf("Languages = %v", p.Languages)
	}
}

func TestSetJobInfoUnknownJobFallsBack(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if _, err := Apply(p, SetJobInfo{TargetJob: "lion tamer"}, testNow); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if p.TargetJob != "lion_tamer" {
		t.Fatalf("TargetJob = %q", p.TargetJob)
	}
	if strings.Join(p.JobSkills, "|") != strings.Join(GenericSkills(), "|") {
		t.Fatalf("JobSkills = %v, want generic fallback", p.JobSkills)
	}
	if p.SafetyPoints != nil || p.CommonQuestions != nil {
		t.Fatalf("safety/questions should be empty for unknown job: %v / %v", p.SafetyPoints, p.CommonQuestions)
	}
}

func TestSetJobInfoReplacesDerivedLists(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if _, err := Apply(p, SetJobInfo{TargetJob: "plumber"}, testNow); err != nil {
		t.Fatal(err)
	}
	plumberSkills := strings.Join(p.JobSkills, "|")

	if _, err := Apply(p, SetJobInfo{TargetJob: "electrician"}, testNow); err != nil {
		t.Fatal(err)
	}
	if strings.Join(p.JobSkills, "|") == plumberSkills {
		t.Fatal("derived lists not replaced on job change")
	}
	want := []string{"Circuit analysis", "Safety protocols", "Tool usage", "Problem diagnosis"}
	if strings.Join(p.JobSkills, "|") != strings.Join(want, "|") {
		t.Fatalf("JobSkills = %v, want %v", p.JobSkills, want)
	}
}

func TestAppendSkillsPreservesOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if _, err := Apply(p, AppendSkills{Skills: []string{"wiring", "soldering"}}, testNow); err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(p, AppendSkills{Skills: []string{"wiring"}}, testNow); err != nil {
		t.Fatal(err)
	}
	want := []string{"wiring", "soldering", "wiring"}
	if strings.Join(p.Skills, "|") != strings.Join(want, "|") {
		t.Fatalf("Skills = %v, want %v", p.Skills, want)
	}

	if _, err := Apply(p, AppendSkills{}, testNow); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("empty list error = %v, want ErrValidation", err)
	}
}

func TestAppendChallenges(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if _, err := Apply(p, AppendChallenges{Challenges: []string{"nervousness"}}, testNow); err != nil {
		t.Fatal(err)
	}
	if len(p.Challenges) != 1 || p.Challenges[0] != "nervousness" {
		t.Fatalf("Challenges = %v", p.Challenges)
	}
	if _, err := Apply(p, AppendChallenges{}, testNow); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("empty list error = %v, want ErrValidation", err)
	}
}

func TestRecordSkillResponseAndAddNote(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if _, err := Apply(p, RecordSkillResponse{Response: "I check the fuse first"}, testNow); err != nil {
		t.Fatal(err)
	}
	if _, err := Apply(p, AddNote{Note: "confident answer"}, testNow); err != nil {
		t.Fatal(err)
	}
	if len(p.SkillResponses) != 1 || len(p.Notes) != 1 {
		t.Fatalf("responses = %v, notes = %v", p.SkillResponses, p.Notes)
	}
	if _, err := Apply(p, RecordSkillResponse{Response: " "}, testNow); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("blank response error = %v, want ErrValidation", err)
	}
}

func TestSetPhase(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	msg, err := Apply(p, SetPhase{Phase: PhaseConceptExplanation}, testNow)
	if err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if msg != "Moving to explain interview concepts" {
		t.Fatalf("confirmation = %q", msg)
	}

	if _, err := Apply(p, SetPhase{Phase: PhaseGreeting}, testNow); !errors.Is(err, ErrPhaseRegression) {
		t.Fatalf("backward error = %v, want ErrPhaseRegression", err)
	}
	if p.CurrentPhase != PhaseConceptExplanation {
		t.Fatalf("CurrentPhase = %s after rejected request", p.CurrentPhase)
	}
}

func TestMarkConceptsUnderstood(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if err := p.AdvancePhase(PhaseConceptExplanation); err != nil {
		t.Fatal(err)
	}

	if _, err := Apply(p, MarkConceptsUnderstood{Understood: false}, testNow); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if p.ConceptsUnderstood || p.ReadyForPractice || p.CurrentPhase != PhaseConceptExplanation {
		t.Fatalf("false must not change state: %+v", p)
	}

	if _, err := Apply(p, MarkConceptsUnderstood{Understood: true}, testNow); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if !p.ConceptsUnderstood || !p.ReadyForPractice {
		t.Fatal("flags not set")
	}
	if p.CurrentPhase != PhasePracticeIntro {
		t.Fatalf("CurrentPhase = %s, want %s", p.CurrentPhase, PhasePracticeIntro)
	}
}

func TestMarkPracticeIntroDone(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if _, err := Apply(p, MarkPracticeIntroDone{}, testNow); err != nil {
		t.Fatal(err)
	}
	if !p.PracticeIntroDone {
		t.Fatal("PracticeIntroDone not set")
	}
}

func TestStartTimerCommand(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)
	if _, err := Apply(p, StartTimer{}, testNow); err != nil {
		t.Fatal(err)
	}
	later := testNow.Add(time.Minute)
	if _, err := Apply(p, StartTimer{}, later); err != nil {
		t.Fatal(err)
	}
	if !p.ConversationStartTime.Equal(testNow) {
		t.Fatalf("ConversationStartTime = %v, want %v", p.ConversationStartTime, testNow)
	}
}

func TestCompleteInterview(t *testing.T) {
	t.Parallel()

	p := New("session-1", testNow)

	if _, err := Apply(p, CompleteInterview{Score: 11}, testNow); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("out-of-range error = %v, want ErrValidation", err)
	}
	if p.InterviewCompleted {
		t.Fatal("flag set by rejected command")
	}

	if _, err := Apply(p, CompleteInterview{Score: 7, FeedbackPoints: []string{"speak slower", "good examples"}}, testNow); err != nil {
		t.Fatalf("Apply error = %v", err)
	}
	if !p.InterviewCompleted || p.InterviewScore != 7 {
		t.Fatalf("completed=%t score=%d", p.InterviewCompleted, p.InterviewScore)
	}
	if p.CurrentPhase != PhaseWrapUp {
		t.Fatalf("CurrentPhase = %s, want %s", p.CurrentPhase, PhaseWrapUp)
	}
	if len(p.FeedbackPoints) != 2 {
		t.Fatalf("FeedbackPoints = %v", p.FeedbackPoints)
	}
}
