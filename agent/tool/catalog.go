package tool

import (
	"fmt"
	"math"
	"time"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/harz05/onestBack/agent/contract"
	profilex "github.com/harz05/onestBack/agent/profile"
)

// Tool names surfaced to the language model. One per profile operation.
const (
	ToolUpdateBasicInfo        = "update_basic_info"
	ToolUpdateJobInfo          = "update_job_info"
	ToolUpdateSkills           = "update_skills"
	ToolUpdateChallenges       = "update_challenges"
	ToolRecordSkillResponse    = "record_skill_response"
	ToolAddNote                = "add_note"
	ToolMoveToConceptExplain   = "move_to_concept_explanation"
	ToolMoveToSkillAssessment  = "move_to_skill_assessment"
	ToolMoveToPracticeIntro    = "move_to_practice_intro"
	ToolMoveToFinalQnA         = "move_to_final_qna"
	ToolMoveToWrapUp           = "move_to_wrap_up"
	ToolMarkPracticeIntroDone  = "mark_practice_intro_done"
	ToolMarkConceptsUnderstood = "mark_concepts_understood"
	ToolStartConversationTimer = "start_conversation_timer"
	ToolCompleteInterview      = "complete_interview"
)

var moveTools = map[string]profilex.Phase{
	ToolMoveToConceptExplain:  profilex.PhaseConceptExplanation,
	ToolMoveToSkillAssessment: profilex.PhaseSkillAssessment,
	ToolMoveToPracticeIntro:   profilex.PhasePracticeIntro,
	ToolMoveToFinalQnA:        profilex.PhaseFinalQnA,
	ToolMoveToWrapUp:          profilex.PhaseWrapUp,
}

// Infos returns the schema for every profile operation, in the order the
// coach binds them to the chat model.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolUpdateBasicInfo,
			Desc: "Record the job seeker's name, age, city, and state.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"name":  {Type: schema.String, Desc: "The job seeker's name", Required: true},
				"age":   {Type: schema.String, Desc: "The job seeker's age"},
				"city":  {Type: schema.String, Desc: "City where the job seeker lives"},
				"state": {Type: schema.String, Desc: "State where the job seeker lives"},
			}),
		},
		{
			Name: ToolUpdateJobInfo,
			Desc: "Record the job they are looking for (delivery agent, plumber, electrician, mechanic, healthcare worker, IT support, etc) with status, experience, and spoken languages.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"target_job":        {Type: schema.String, Desc: "The type of job they are looking for", Required: true},
				"employment_status": {Type: schema.String, Desc: "Current employment status"},
				"experience_level":  {Type: schema.String, Desc: "How much work experience they have"},
				"languages": {
					Type:     schema.Array,
					Desc:     "Languages the person speaks",
					ElemInfo: &schema.ParameterInfo{Type: schema.String},
				},
			}),
		},
		{
			Name: ToolUpdateSkills,
			Desc: "Record skills the person has mentioned they know.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"skills": {
					Type:     schema.Array,
					Desc:     "Skills mentioned",
					ElemInfo: &schema.ParameterInfo{Type: schema.String},
					Required: true,
				},
			}),
		},
		{
			Name: ToolUpdateChallenges,
			Desc: "Record challenges or issues the person faces in their job search.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"challenges": {
					Type:     schema.Array,
					Desc:     "Challenges mentioned",
					ElemInfo: &schema.ParameterInfo{Type: schema.String},
					Required: true,
				},
			}),
		},
		{
			Name: ToolRecordSkillResponse,
			Desc: "Save the user's answer to a skill-based question.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"response": {Type: schema.String, Desc: "The user's answer", Required: true},
			}),
		},
		{
			Name: ToolAddNote,
			Desc: "Add a coaching note about the conversation.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"note": {Type: schema.String, Desc: "The note text", Required: true},
			}),
		},
		{Name: ToolMoveToConceptExplain, Desc: "Move to explaining interview concepts."},
		{Name: ToolMoveToSkillAssessment, Desc: "Move to the skill assessment phase."},
		{Name: ToolMoveToPracticeIntro, Desc: "Move to the practice introduction phase."},
		{Name: ToolMoveToFinalQnA, Desc: "Move to the final questions phase."},
		{Name: ToolMoveToWrapUp, Desc: "Move to final feedback and wrap up."},
		{Name: ToolMarkPracticeIntroDone, Desc: "Mark that the practice introduction is complete."},
		{
			Name: ToolMarkConceptsUnderstood,
			Desc: "Record whether the user understood the interview concepts. Understanding moves the session to practice.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"understood": {Type: schema.Boolean, Desc: "Whether the user understood", Required: true},
			}),
		},
		{Name: ToolStartConversationTimer, Desc: "Start tracking conversation time."},
		{
			Name: ToolCompleteInterview,
			Desc: "Finish the practice interview with a score out of 10 and final feedback points.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"score": {Type: schema.Integer, Desc: "Overall score from 0 to 10", Required: true},
				"feedback_points": {
					Type:     schema.Array,
					Desc:     "Final feedback points for the job seeker",
					ElemInfo: &schema.ParameterInfo{Type: schema.String},
				},
			}),
		},
	}
}

// Execute decodes one tool request into a profile command and applies it.
// Decode and validation failures come back in ToolResult.Error so the model
// can recover; they never abort the turn.
func Execute(p *profilex.JobSeekerProfile, req contractx.ToolRequest, now time.Time) contractx.ToolResult {
	cmd, err := decodeCommand(req)
	if err != nil {
		return contractx.ToolResult{Tool: req.Tool, Error: err.Error()}
	}

	msg, err := profilex.Apply(p, cmd, now)
	if err != nil {
		return contractx.ToolResult{Tool: req.Tool, Error: err.Error()}
	}
	return contractx.ToolResult{Tool: req.Tool, Result: msg}
}

func decodeCommand(req contractx.ToolRequest) (profilex.Command, error) {
	if phase, ok := moveTools[req.Tool]; ok {
		return profilex.SetPhase{Phase: phase}, nil
	}

	switch req.Tool {
	case ToolUpdateBasicInfo:
		name, err := stringArg(req.Args, "name", true)
		if err != nil {
			return nil, err
		}
		age, _ := stringArg(req.Args, "age", false)
		city, _ := stringArg(req.Args, "city", false)
		state, _ := stringArg(req.Args, "state", false)
		return profilex.SetBasicInfo{Name: name, Age: age, City: city, State: state}, nil

	case ToolUpdateJobInfo:
		job, err := stringArg(req.Args, "target_job", true)
		if err != nil {
			return nil, err
		}
		status, _ := stringArg(req.Args, "employment_status", false)
		experience, _ := stringArg(req.Args, "experience_level", false)
		languages, err := stringSliceArg(req.Args, "languages", false)
		if err != nil {
			return nil, err
		}
		return profilex.SetJobInfo{
			TargetJob:        job,
			EmploymentStatus: status,
			ExperienceLevel:  experience,
			Languages:        languages,
		}, nil

	case ToolUpdateSkills:
		skills, err := stringSliceArg(req.Args, "skills", true)
		if err != nil {
			return nil, err
		}
		return profilex.AppendSkills{Skills: skills}, nil

	case ToolUpdateChallenges:
		challenges, err := stringSliceArg(req.Args, "challenges", true)
		if err != nil {
			return nil, err
		}
		return profilex.AppendChallenges{Challenges: challenges}, nil

	case ToolRecordSkillResponse:
		response, err := stringArg(req.Args, "response", true)
		if err != nil {
			return nil, err
		}
		return profilex.RecordSkillResponse{Response: response}, nil

	case ToolAddNote:
		note, err := stringArg(req.Args, "note", true)
		if err != nil {
			return nil, err
		}
		return profilex.AddNote{Note: note}, nil

	case ToolMarkPracticeIntroDone:
		return profilex.MarkPracticeIntroDone{}, nil

	case ToolMarkConceptsUnderstood:
		understood, err := boolArg(req.Args, "understood", true)
		if err != nil {
			return nil, err
		}
		return profilex.MarkConceptsUnderstood{Understood: understood}, nil

	case ToolStartConversationTimer:
		return profilex.StartTimer{}, nil

	case ToolCompleteInterview:
		score, err := intArg(req.Args, "score", true)
		if err != nil {
			return nil, err
		}
		feedback, err := stringSliceArg(req.Args, "feedback_points", false)
		if err != nil {
			return nil, err
		}
		return profilex.CompleteInterview{Score: score, FeedbackPoints: feedback}, nil

	default:
		return nil, fmt.Errorf("unknown tool %q", req.Tool)
	}
}

func stringArg(args map[string]any, key string, required bool) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		if required {
			return "", fmt.Errorf("%s is required", key)
		}
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

func stringSliceArg(args map[string]any, key string, required bool) ([]string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		if required {
			return nil, fmt.Errorf("%s is required", key)
		}
		return nil, nil
	}

	switch v := raw.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a list of strings", key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s must be a list of strings", key)
	}
}

func boolArg(args map[string]any, key string, required bool) (bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		if required {
			return false, fmt.Errorf("%s is required", key)
		}
		return false, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return b, nil
}

// intArg accepts JSON numbers, which decode as float64, but rejects
// fractional values.
func intArg(args map[string]any, key string, required bool) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		if required {
			return 0, fmt.Errorf("%s is required", key)
		}
		return 0, nil
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s must be a whole number", key)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s must be a number", key)
	}
}
