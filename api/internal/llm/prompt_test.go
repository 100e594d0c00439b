package llm

import (
	"strings"
	"testing"
)

func TestEnrichPromptOrder(t *testing.T) {
	c := &Context{
		History: []string{"one", "two", "three", "four"},
		Profile: &ProfileSummary{SkillLevel: "Beginner", TargetGoal: "Technical Interviews"},
		Problem: &ProblemSummary{Title: "Two Sum", Difficulty: "Easy"},
	}

	got := EnrichPrompt("generate a hint", c)

	wantOrder := []string{
		"DSA-COACH AI",
		"User Request: generate a hint",
		"Conversation History:",
		"Previous: two",
		"Previous: four",
		"User Profile: Skill Level: Beginner, Goal: Technical Interviews",
		"Current Problem Context: Two Sum - Easy difficulty",
	}
	last := -1
	for _, part := range wantOrder {
		idx := strings.Index(got, part)
		if idx < 0 {
			t.Fatalf("enriched prompt missing %q:\n%s", part, got)
		}
		if idx < last {
			t.Fatalf("%q appears out of order", part)
		}
		last = idx
	}

	if strings.Contains(got, "Previous: one") {
		t.Fatalf("history window leaked more than %d entries", historyWindow)
	}
}

func TestEnrichPromptWithoutContext(t *testing.T) {
	got := EnrichPrompt("review my code", nil)
	if !strings.Contains(got, "User Request: review my code") {
		t.Fatalf("instruction missing from prompt:\n%s", got)
	}
	for _, absent := range []string{"Conversation History", "User Profile", "Current Problem Context"} {
		if strings.Contains(got, absent) {
			t.Fatalf("unexpected %q in context-free prompt", absent)
		}
	}
}

func TestEnrichPromptUnknownFields(t *testing.T) {
	c := &Context{Profile: &ProfileSummary{}, Problem: &ProblemSummary{}}
	got := EnrichPrompt("x", c)
	if !strings.Contains(got, "Skill Level: Unknown, Goal: Unknown") {
		t.Fatalf("empty profile fields should render as Unknown:\n%s", got)
	}
	if !strings.Contains(got, "N/A - Unknown difficulty") {
		t.Fatalf("empty problem fields should render as N/A / Unknown:\n%s", got)
	}
}
