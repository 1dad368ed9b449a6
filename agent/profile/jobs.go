package profile

import "strings"

// JobKnowledge is the static coaching content attached to one recognized job
// title. The table is read-only after init and safe for concurrent reads
// across sessions.
type JobKnowledge struct {
	Skills          []string
	SafetyPoints    []string
	CommonQuestions []string
}

var jobKnowledgeTable = map[string]JobKnowledge{
	"delivery_agent": {
		Skills: []string{"Route planning", "Customer service", "Phone handling", "Vehicle safety"},
		SafetyPoints: []string{
			"Always wear a helmet and follow traffic rules",
			"Confirm the address before starting the trip",
			"Never rush a delivery at the cost of road safety",
		},
		CommonQuestions: []string{
			"What would you do if a customer is angry about a late delivery?",
			"How do you plan your route during peak hours?",
		},
	},
	"plumber": {
		Skills: []string{"Pipe fitting", "Leak detection", "Tool usage", "Emergency handling"},
		SafetyPoints: []string{
			"Shut off the water supply before opening any joint",
			"Check for electrical lines before drilling into walls",
			"Keep the work area dry to avoid slipping",
		},
		CommonQuestions: []string{
			"What would you do if a customer's pipe is leaking badly?",
			"How do you explain a repair and its cost to a customer?",
		},
	},
	"electrician": {
		Skills: []string{"Circuit analysis", "Safety protocols", "Tool usage", "Problem diagnosis"},
		SafetyPoints: []string{
			"Switch off the mains before touching any wiring",
			"Test every circuit with a tester before working on it",
			"Wear insulated gloves and footwear on the job",
		},
		CommonQuestions: []string{
			"How do you stay safe when working with electricity?",
			"How would you find the fault when a socket stops working?",
		},
	},
	"mechanic": {
		Skills: []string{"Engine diagnosis", "Tool handling", "Problem diagnosis", "Customer explanation"},
		SafetyPoints: []string{
			"Secure the vehicle on stands before working underneath",
			"Disconnect the battery before electrical repairs",
			"Keep flammable fluids away from sparks",
		},
		CommonQuestions: []string{
			"How do you find out why an engine will not start?",
			"How do you explain a costly repair to a doubtful customer?",
		},
	},
	"healthcare_worker": {
		Skills: []string{"Patient care", "Hygiene practice", "Protocol compliance", "Emergency response"},
		SafetyPoints: []string{
			"Wash hands and use gloves before touching a patient",
			"Follow the doctor's instructions exactly",
			"Report emergencies immediately instead of handling alone",
		},
		CommonQuestions: []string{
			"How do you make a patient feel comfortable?",
			"What do you do if a patient suddenly gets worse?",
		},
	},
	"it_support": {
		Skills: []string{"Computer basics", "Troubleshooting", "Customer patience", "Technical communication"},
		SafetyPoints: []string{
			"Back up data before making system changes",
			"Never share or note down a customer's password",
			"Power off equipment before opening hardware",
		},
		CommonQuestions: []string{
			"How do you help someone who says their computer is not working?",
			"How do you explain a technical fix in simple words?",
		},
	},
}

var genericSkills = []string{"communication", "punctuality", "problem solving", "teamwork", "reliability"}

// NormalizeJob lowercases a spoken job title and converts spaces to
// underscores so it can key into the knowledge table.
func NormalizeJob(job string) string {
	job = strings.ToLower(strings.TrimSpace(job))
	return strings.Join(strings.Fields(job), "_")
}

// LookupJob returns the knowledge entry for a normalized job key.
func LookupJob(job string) (JobKnowledge, bool) {
	know, ok := jobKnowledgeTable[NormalizeJob(job)]
	if !ok {
		return JobKnowledge{}, false
	}
	return JobKnowledge{
		Skills:          append([]string(nil), know.Skills...),
		SafetyPoints:    append([]string(nil), know.SafetyPoints...),
		CommonQuestions: append([]string(nil), know.CommonQuestions...),
	}, true
}

// GenericSkills returns the fallback skill list used when the target job is
// unset or unrecognized.
func GenericSkills() []string {
	return append([]string(nil), genericSkills...)
}

// RecognizedJobs lists the job keys present in the knowledge table.
func RecognizedJobs() []string {
	jobs := make([]string, 0, len(jobKnowledgeTable))
	for job := range jobKnowledgeTable {
		jobs = append(jobs, job)
	}
	return jobs
}
