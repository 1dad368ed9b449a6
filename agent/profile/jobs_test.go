package profile

import (
	"strings"
	"testing"
)

func TestNormalizeJob(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Electrician", "electrician"},
		{"  Delivery   Agent ", "delivery_agent"},
		{"IT Support", "it_support"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeJob(tc.in); got != tc.want {
			t.Errorf("NormalizeJob(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestLookupJobKnown(t *testing.T) {
	t.Parallel()

	know, ok := LookupJob("Electrician")
	if !ok {
		t.Fatal("LookupJob(Electrician) not found")
	}
	want := []string{"Circuit analysis", "Safety protocols", "Tool usage", "Problem diagnosis"}
	if strings.Join(know.Skills, "|") != strings.Join(want, "|") {
		t.Fatalf("Skills = %v, want %v", know.Skills, want)
	}
	if len(know.SafetyPoints) == 0 || len(know.CommonQuestions) == 0 {
		t.Fatalf("entry incomplete: %+v", know)
	}
}

func TestLookupJobReturnsCopies(t *testing.T) {
	t.Parallel()

	first, _ := LookupJob("plumber")
	first.Skills[0] = "tampered"

	second, _ := LookupJob("plumber")
	if second.Skills[0] == "tampered" {
		t.Fatal("LookupJob leaked a shared slice")
	}
}

func TestLookupJobUnknown(t *testing.T) {
	t.Parallel()

	if _, ok := LookupJob("lion tamer"); ok {
		t.Fatal("LookupJob(lion tamer) unexpectedly found")
	}
}

func TestRecognizedJobs(t *testing.T) {
	t.Parallel()

	jobs := RecognizedJobs()
	if len(jobs) != 6 {
		t.Fatalf("RecognizedJobs() has %d entries, want 6: %v", len(jobs), jobs)
	}
	seen := make(map[string]bool, len(jobs))
	for _, job := range jobs {
		seen[job] = true
	}
	for _, want := range []string{"delivery_agent", "plumber", "electrician", "mechanic", "healthcare_worker", "it_support"} {
		if !seen[want] {
			t.Errorf("RecognizedJobs() missing %q", want)
		}
	}
}
