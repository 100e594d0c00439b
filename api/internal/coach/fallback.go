package coach

import (
	"math/rand"
	"time"
)

// Every fallback constant the engine can emit lives here, so tests (and the
// surrounding service layer) have one source of truth for degraded output.

const (
	DefaultScore           = 7
	DefaultTimeComplexity  = "O(n)"
	DefaultSpaceComplexity = "O(1)"
	DefaultSummary         = "Code analysis completed"
	DefaultConcept         = "Algorithm Practice"
	DefaultContext         = "Generated variation"
	DefaultEstimatedTime   = "15-20 min"
	DefaultComplexity      = "O(n)"

	fallbackScore   = 6
	fallbackSummary = "Code review service temporarily unavailable. Please try again later."
)

// DefaultAnalysis is the starting point for overall-analysis extraction;
// fields survive unless the response yields a usable replacement.
func DefaultAnalysis() CodeAnalysis {
	return CodeAnalysis{
		CorrectnessScore: DefaultScore,
		TimeComplexity:   DefaultTimeComplexity,
		SpaceComplexity:  DefaultSpaceComplexity,
		StyleRating:      DefaultScore,
		Summary:          DefaultSummary,
	}
}

// FallbackReview is returned when generation fails terminally. It is complete
// and deterministic apart from the timestamp.
func FallbackReview() CodeReview {
	return CodeReview{
		OverallAnalysis: CodeAnalysis{
			CorrectnessScore: fallbackScore,
			TimeComplexity:   "Unable to analyze",
			SpaceComplexity:  "Unable to analyze",
			StyleRating:      fallbackScore,
			Summary:          fallbackSummary,
		},
		Issues:        []string{"Unable to analyze issues at this time"},
		Optimizations: []string{"Please resubmit your code for optimization suggestions"},
		Alternatives:  []string{"Alternative approaches analysis unavailable"},
		ReviewedAt:    time.Now(),
	}
}

var fallbackHints = map[int]string{
	1:                 "Let's start by understanding the problem better. What are the inputs and expected outputs? What constraints should we consider?",
	2:                 "Think about what data structures or algorithms might be helpful here. Consider the time complexity requirements.",
	3:                 "Try breaking the problem into smaller steps. What would be the main phases of your solution?",
	4:                 "Focus on implementing one part at a time. Start with the basic logic and handle edge cases later.",
	LevelPersonalized: "Based on your approach, you're thinking in the right direction. What specific part would you like to explore further?",
	LevelStuck:        "It's okay to feel stuck! Try starting with a simpler version of this problem. What would be the most basic case you could solve?",
}

const fallbackHintGeneric = "Keep thinking through the problem step by step. You're making progress!"

// FallbackHint returns the fixed hint for a level when generation fails.
func FallbackHint(level int) HintResult {
	content, ok := fallbackHints[level]
	if !ok {
		content = fallbackHintGeneric
	}
	return HintResult{
		Hint: Hint{
			Level:     level,
			Content:   content,
			Category:  HintCategory(level),
			CreatedAt: time.Now(),
		},
		NextAvailable: level < MaxHintLevels,
		TotalLevels:   MaxHintLevels,
	}
}

type problemSeed struct {
	title       string
	statement   string
	coreConcept string
	context     string
}

var fallbackProblemSeeds = []problemSeed{
	{
		title:       "Array Sum Variation",
		statement:   "Find the maximum sum of any contiguous subarray in the given array.",
		coreConcept: "Dynamic Programming",
		context:     "Classic subarray problem",
	},
	{
		title:       "Tree Traversal Challenge",
		statement:   "Implement an iterative in-order traversal of a binary tree.",
		coreConcept: "Tree Traversal",
		context:     "Iterative approach",
	},
	{
		title:       "Hash Table Lookup",
		statement:   "Find two numbers in an array that add up to a target sum.",
		coreConcept: "Hash Tables",
		context:     "Two-sum variation",
	},
}

// FallbackProblems materializes the fixed problem list for a request,
// honoring its difficulty, count and hint preference.
func FallbackProblems(req ProblemRequest) []Problem {
	n := req.Count
	if n < 1 || n > len(fallbackProblemSeeds) {
		n = len(fallbackProblemSeeds)
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = DifficultyMedium
	}

	problems := make([]Problem, 0, n)
	for _, seed := range fallbackProblemSeeds[:n] {
		p := Problem{
			Title:         seed.title,
			Statement:     seed.statement,
			Difficulty:    difficulty,
			CoreConcept:   seed.coreConcept,
			Context:       seed.context,
			EstimatedTime: DefaultEstimatedTime,
			Complexity:    DefaultComplexity,
		}
		if req.IncludeHints {
			p.ApproachHint = "Think about the most efficient data structure for this problem."
		}
		problems = append(problems, p)
	}
	return problems
}

var randomProblemPool = []problemSeed{
	{
		title:       "Maximum Subarray Sum",
		statement:   "Given an array of integers, find the maximum sum of a contiguous subarray.",
		coreConcept: "Dynamic Programming",
		context:     "Kadane's Algorithm variation",
	},
	{
		title:       "Binary Tree Balance Check",
		statement:   "Implement a function to check if a binary tree is balanced.",
		coreConcept: "Tree Algorithms",
		context:     "Tree property verification",
	},
	{
		title:       "Longest Substring Without Repeating Characters",
		statement:   "Find the length of the longest substring without repeating characters.",
		coreConcept: "Sliding Window",
		context:     "String processing with hash set",
	},
	{
		title:       "Linked List Cycle Detection",
		statement:   "Determine if a linked list has a cycle using Floyd's algorithm.",
		coreConcept: "Two Pointers",
		context:     "Fast and slow pointer technique",
	},
}

// RandomProblem picks one practice problem from the fixed rotating pool.
func RandomProblem() Problem {
	seed := randomProblemPool[rand.Intn(len(randomProblemPool))]
	return Problem{
		Title:         seed.title,
		Statement:     seed.statement,
		Difficulty:    DifficultyMedium,
		CoreConcept:   seed.coreConcept,
		Context:       seed.context,
		EstimatedTime: "20-25 min",
		Complexity:    DefaultComplexity,
		ApproachHint:  "Consider the most efficient approach for this problem pattern.",
	}
}
