package llm

import (
	"fmt"
	"strings"
)

// historyWindow caps how many prior exchanges are replayed into a prompt.
const historyWindow = 3

const systemGuidance = `You are DSA-COACH AI, an intelligent coding mentor specializing in Data Structures and Algorithms. Your role is to help students master DSA concepts through guided practice, avoiding solution dependency.

Core principles:
- Focus on understanding over memorization
- Provide progressive hints without revealing complete solutions
- Encourage independent thinking through guided questions
- Be patient, encouraging, and adapt to the user's level
- Connect new problems to previously learned concepts
- Build intuition through analogies and examples

Always maintain a supportive and educational tone. Guide users to discover solutions independently while building lasting DSA intuition.`

// EnrichPrompt assembles the final generation request. Order is fixed:
// behavioral guidance, task instruction, recent history, profile summary,
// active-problem summary. Absent context pieces are skipped.
func EnrichPrompt(instruction string, c *Context) string {
	var b strings.Builder
	b.WriteString(systemGuidance)
	b.WriteString("\n\nUser Request: ")
	b.WriteString(instruction)

	if c == nil {
		return b.String()
	}

	if len(c.History) > 0 {
		recent := c.History
		if len(recent) > historyWindow {
			recent = recent[len(recent)-historyWindow:]
		}
		b.WriteString("\n\nConversation History:")
		for _, item := range recent {
			b.WriteString("\nPrevious: ")
			b.WriteString(item)
		}
	}

	if c.Profile != nil {
		fmt.Fprintf(&b, "\n\nUser Profile: Skill Level: %s, Goal: %s",
			orUnknown(c.Profile.SkillLevel), orUnknown(c.Profile.TargetGoal))
	}

	if c.Problem != nil {
		title := strings.TrimSpace(c.Problem.Title)
		if title == "" {
			title = "N/A"
		}
		fmt.Fprintf(&b, "\n\nCurrent Problem Context: %s - %s difficulty",
			title, orUnknown(c.Problem.Difficulty))
	}

	return b.String()
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Unknown"
	}
	return s
}
