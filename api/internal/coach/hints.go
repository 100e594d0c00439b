package coach

import (
	"context"
	"errors"
	"time"

	"dsa-coach/api/internal/llm"
	"dsa-coach/api/internal/logger"
)

// MaxHintLevels bounds the ordinary progression track.
const MaxHintLevels = 4

// Out-of-band hint levels. They never touch the level counter.
const (
	LevelPersonalized = 0
	LevelStuck        = -1
)

// ErrMaxHintLevel signals an invalid-request condition: the caller asked to
// advance past the last hint level. It is surfaced, never defaulted.
var ErrMaxHintLevel = errors.New("maximum hint level reached")

var hintCategories = map[int]string{
	1:                 "clarifying",
	2:                 "direction",
	3:                 "structure",
	4:                 "implementation",
	LevelPersonalized: "personalized",
	LevelStuck:        "emergency",
}

// HintCategory maps a level to its fixed category label.
func HintCategory(level int) string {
	if c, ok := hintCategories[level]; ok {
		return c
	}
	return "general"
}

// NextAvailable reports whether another ordinary-track advance remains.
func NextAvailable(level int) bool { return level < MaxHintLevels }

type HintService struct {
	llm *llm.Client
	log *logger.Logger
}

func NewHintService(client *llm.Client, log *logger.Logger) *HintService {
	return &HintService{llm: client, log: log.With("service", "hints")}
}

// GetHint advances the ordinary hint track by one level. Advancing past
// MaxHintLevels fails with ErrMaxHintLevel; any generation failure yields the
// fixed fallback hint for the level instead of an error.
func (s *HintService) GetHint(ctx context.Context, req HintRequest, problem Problem, uc *llm.Context) (HintResult, error) {
	next := req.CurrentLevel + 1
	if next > MaxHintLevels {
		return HintResult{}, ErrMaxHintLevel
	}

	content, err := s.llm.Generate(ctx, hintPrompt(problem, next, req.UserApproach), uc)
	if err != nil {
		s.log.Error("hint generation failed", "level", next, "error", err.Error())
		return FallbackHint(next), nil
	}

	return HintResult{
		Hint: Hint{
			Level:     next,
			Content:   content,
			Category:  HintCategory(next),
			CreatedAt: time.Now(),
		},
		NextAvailable: NextAvailable(next),
		TotalLevels:   MaxHintLevels,
	}, nil
}

// PersonalizedHint reacts to the user's own approach. Level 0, out-of-band.
func (s *HintService) PersonalizedHint(ctx context.Context, userApproach string, problem Problem, uc *llm.Context) HintResult {
	content, err := s.llm.Generate(ctx, personalizedHintPrompt(problem, userApproach), uc)
	if err != nil {
		s.log.Error("personalized hint generation failed", "error", err.Error())
		return FallbackHint(LevelPersonalized)
	}
	return HintResult{
		Hint: Hint{
			Level:     LevelPersonalized,
			Content:   content,
			Category:  HintCategory(LevelPersonalized),
			CreatedAt: time.Now(),
		},
		NextAvailable: true,
		TotalLevels:   MaxHintLevels,
	}
}

// StuckHelp is the emergency path for a completely stuck user. Level -1,
// out-of-band.
func (s *HintService) StuckHelp(ctx context.Context, problem Problem, uc *llm.Context) HintResult {
	content, err := s.llm.Generate(ctx, stuckHelpPrompt(problem), uc)
	if err != nil {
		s.log.Error("stuck help generation failed", "error", err.Error())
		return FallbackHint(LevelStuck)
	}
	return HintResult{
		Hint: Hint{
			Level:     LevelStuck,
			Content:   content,
			Category:  HintCategory(LevelStuck),
			CreatedAt: time.Now(),
		},
		NextAvailable: true,
		TotalLevels:   MaxHintLevels,
	}
}
