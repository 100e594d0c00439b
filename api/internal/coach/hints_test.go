package coach

import (
	"context"
	"errors"
	"testing"
	"time"

	"dsa-coach/api/internal/llm"
	"dsa-coach/api/internal/logger"
)

// scriptedEngine replies with a fixed text, or errors when text is empty.
type scriptedEngine struct {
	text string
}

func (e *scriptedEngine) Name() string     { return "scripted" }
func (e *scriptedEngine) GetModel() string { return "scripted-model" }
func (e *scriptedEngine) Ready() bool      { return true }

func (e *scriptedEngine) GenerateText(context.Context, string) (string, error) {
	if e.text == "" {
		return "", errors.New("scripted failure")
	}
	return e.text, nil
}

func testClient(text string) *llm.Client {
	return llm.NewClient(&scriptedEngine{text: text}, logger.Nop(),
		llm.WithMaxRetries(1), llm.WithRetryDelay(time.Millisecond))
}

func TestGetHintAdvancesOneLevel(t *testing.T) {
	s := NewHintService(testClient("try thinking about the constraints"), logger.Nop())
	problem := Problem{Statement: "Find the maximum subarray sum."}

	res, err := s.GetHint(context.Background(), HintRequest{CurrentLevel: 1}, problem, nil)
	if err != nil {
		t.Fatalf("GetHint() error = %v", err)
	}
	if res.Hint.Level != 2 {
		t.Fatalf("level = %d, want 2", res.Hint.Level)
	}
	if res.Hint.Category != "direction" {
		t.Fatalf("category = %q, want direction", res.Hint.Category)
	}
	if !res.NextAvailable || res.TotalLevels != MaxHintLevels {
		t.Fatalf("unexpected progression state: %+v", res)
	}
}

func TestGetHintRejectsBeyondMax(t *testing.T) {
	s := NewHintService(testClient("unused"), logger.Nop())

	_, err := s.GetHint(context.Background(), HintRequest{CurrentLevel: MaxHintLevels}, Problem{}, nil)
	if !errors.Is(err, ErrMaxHintLevel) {
		t.Fatalf("error = %v, want ErrMaxHintLevel", err)
	}
}

func TestGetHintFallsBackOnGenerationFailure(t *testing.T) {
	s := NewHintService(testClient(""), logger.Nop())

	res, err := s.GetHint(context.Background(), HintRequest{CurrentLevel: 0}, Problem{}, nil)
	if err != nil {
		t.Fatalf("fallback path must not error, got %v", err)
	}
	if res.Hint.Level != 1 {
		t.Fatalf("fallback level = %d, want 1", res.Hint.Level)
	}
	if res.Hint.Content != fallbackHints[1] {
		t.Fatalf("fallback content = %q, want the fixed level-1 hint", res.Hint.Content)
	}
}

func TestLastLevelHasNoFurtherAdvance(t *testing.T) {
	s := NewHintService(testClient("implementation details"), logger.Nop())

	res, err := s.GetHint(context.Background(), HintRequest{CurrentLevel: MaxHintLevels - 1}, Problem{}, nil)
	if err != nil {
		t.Fatalf("GetHint() error = %v", err)
	}
	if res.Hint.Level != MaxHintLevels || res.NextAvailable {
		t.Fatalf("level %d should be terminal: %+v", MaxHintLevels, res)
	}
}

func TestOutOfBandHints(t *testing.T) {
	s := NewHintService(testClient("tailored guidance"), logger.Nop())
	problem := Problem{Statement: "Reverse a linked list."}

	personal := s.PersonalizedHint(context.Background(), "I tried recursion", problem, nil)
	if personal.Hint.Level != LevelPersonalized || personal.Hint.Category != "personalized" {
		t.Fatalf("personalized hint mislabeled: %+v", personal.Hint)
	}

	stuck := s.StuckHelp(context.Background(), problem, nil)
	if stuck.Hint.Level != LevelStuck || stuck.Hint.Category != "emergency" {
		t.Fatalf("stuck help mislabeled: %+v", stuck.Hint)
	}
}

func TestHintCategory(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "clarifying"},
		{2, "direction"},
		{3, "structure"},
		{4, "implementation"},
		{LevelPersonalized, "personalized"},
		{LevelStuck, "emergency"},
		{99, "general"},
	}
	for _, tt := range tests {
		if got := HintCategory(tt.level); got != tt.want {
			t.Errorf("HintCategory(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
