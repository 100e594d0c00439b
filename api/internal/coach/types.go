package coach

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty maps free text onto the enum; anything unrecognized is Medium.
func ParseDifficulty(s string) Difficulty {
	s = strings.ToLower(s)
	switch {
	case strings.Contains(s, "easy"):
		return DifficultyEasy
	case strings.Contains(s, "hard"):
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Problem is one generated practice problem. Statement is never empty: when
// extraction finds none, a synthesized placeholder tied to the concept is
// substituted.
type Problem struct {
	Title         string     `json:"title"`
	Statement     string     `json:"statement"`
	Difficulty    Difficulty `json:"difficulty"`
	CoreConcept   string     `json:"core_concept"`
	Context       string     `json:"context"`
	EstimatedTime string     `json:"estimated_time"`
	Complexity    string     `json:"complexity"`
	ApproachHint  string     `json:"approach_hint,omitempty"`
}

const MaxProblemsPerGeneration = 10

type ProblemRequest struct {
	OriginalProblem string
	Count           int
	Difficulty      Difficulty
	ContextOptions  []string
	FocusAreas      []string
	IncludeHints    bool
}

// Code review --------------------------------------------------------------

const MaxCodeLength = 10000

var SupportedLanguages = []string{"python", "java", "cpp", "javascript", "go", "rust", "c"}

type ReviewRequest struct {
	Code              string
	Language          string
	ProblemContext    string
	FocusAspects      []string
	AdditionalContext string
}

// Validate is a convenience for the outer service layer; ReviewCode itself
// never rejects a request.
func (r ReviewRequest) Validate() error {
	if strings.TrimSpace(r.Code) == "" {
		return errors.New("code is empty")
	}
	if len(r.Code) > MaxCodeLength {
		return fmt.Errorf("code exceeds %d characters", MaxCodeLength)
	}
	lang := strings.ToLower(strings.TrimSpace(r.Language))
	for _, l := range SupportedLanguages {
		if l == lang {
			return nil
		}
	}
	return fmt.Errorf("unsupported language %q", r.Language)
}

// CodeAnalysis scores are always within [1,10]; out-of-range or unparsable
// values from the model are discarded in favor of the defaults.
type CodeAnalysis struct {
	CorrectnessScore int    `json:"correctness_score"`
	TimeComplexity   string `json:"time_complexity"`
	SpaceComplexity  string `json:"space_complexity"`
	StyleRating      int    `json:"style_rating"`
	Summary          string `json:"summary"`
}

type CodeReview struct {
	OverallAnalysis CodeAnalysis `json:"overall_analysis"`
	Issues          []string     `json:"issues"`
	Optimizations   []string     `json:"optimizations"`
	Alternatives    []string     `json:"alternatives"`
	ReviewedAt      time.Time    `json:"review_timestamp"`
}

// Hints ---------------------------------------------------------------------

type Hint struct {
	Level     int       `json:"level"`
	Content   string    `json:"content"`
	Category  string    `json:"hint_type"`
	CreatedAt time.Time `json:"timestamp"`
}

type HintResult struct {
	Hint          Hint `json:"hint"`
	NextAvailable bool `json:"next_available"`
	TotalLevels   int  `json:"total_levels"`
}

type HintRequest struct {
	CurrentLevel int
	UserApproach string
}
