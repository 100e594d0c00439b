package coach

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"dsa-coach/api/internal/logger"
)

const sampleReview = `Here is my assessment of your solution.

1. OVERALL ANALYSIS
- Correctness assessment: 9/10
- Time complexity: O(n log n) due to the sort
- Space complexity: O(1) extra space
- Code style rating: 8
Solid solution overall.

2. ISSUES FOUND
- No guard for an empty input slice
- Variable naming is cryptic
  in the inner loop

3. OPTIMIZATIONS
- Avoid re-sorting on every call

4. ALTERNATIVE APPROACHES
- A heap-based approach trades memory for speed
`

func TestParseReview(t *testing.T) {
	review := parseReview(sampleReview)

	a := review.OverallAnalysis
	if a.CorrectnessScore != 9 {
		t.Errorf("correctness = %d, want 9", a.CorrectnessScore)
	}
	if a.StyleRating != 8 {
		t.Errorf("style = %d, want 8", a.StyleRating)
	}
	if a.TimeComplexity != "O(n log n)" {
		t.Errorf("time complexity = %q, want O(n log n)", a.TimeComplexity)
	}
	if a.SpaceComplexity != "O(1)" {
		t.Errorf("space complexity = %q, want O(1)", a.SpaceComplexity)
	}
	if !strings.Contains(a.Summary, "Correctness assessment") {
		t.Errorf("summary should carry the section text, got %q", a.Summary)
	}

	wantIssues := []string{
		"No guard for an empty input slice",
		"Variable naming is cryptic in the inner loop",
	}
	if !reflect.DeepEqual(review.Issues, wantIssues) {
		t.Errorf("issues = %v, want %v", review.Issues, wantIssues)
	}
	if len(review.Optimizations) != 1 || len(review.Alternatives) != 1 {
		t.Errorf("unexpected list sizes: %d optimizations, %d alternatives",
			len(review.Optimizations), len(review.Alternatives))
	}
}

func TestParseReviewOutOfRangeScoreKeepsDefault(t *testing.T) {
	review := parseReview("Overall Analysis:\nCorrectness Score: 15\n")
	if review.OverallAnalysis.CorrectnessScore != DefaultScore {
		t.Fatalf("correctness = %d, want default %d",
			review.OverallAnalysis.CorrectnessScore, DefaultScore)
	}
}

func TestParseReviewSummaryTruncation(t *testing.T) {
	long := "Overall Analysis:\n" + strings.Repeat("x", summaryLimit+50)
	review := parseReview(long)
	summary := review.OverallAnalysis.Summary
	if len(summary) != summaryLimit+len("...") || !strings.HasSuffix(summary, "...") {
		t.Fatalf("summary not truncated to %d+ellipsis: len=%d", summaryLimit, len(summary))
	}
}

// A response with no recognizable headers must still produce a complete,
// default-shaped review with empty lists.
func TestReviewCodeUnstructuredResponse(t *testing.T) {
	s := NewReviewService(testClient("just an unlabeled paragraph of feedback"), logger.Nop())

	review := s.ReviewCode(context.Background(), ReviewRequest{Code: "x", Language: "go"}, nil)
	if review.OverallAnalysis.Summary != DefaultSummary {
		t.Errorf("summary = %q, want %q", review.OverallAnalysis.Summary, DefaultSummary)
	}
	if len(review.Issues) != 0 || len(review.Optimizations) != 0 || len(review.Alternatives) != 0 {
		t.Errorf("lists should be empty: %+v", review)
	}
	if review.Issues == nil || review.Optimizations == nil || review.Alternatives == nil {
		t.Error("lists should be empty slices, not nil")
	}
}

func TestReviewCodeGenerationFailure(t *testing.T) {
	s := NewReviewService(testClient(""), logger.Nop())

	review := s.ReviewCode(context.Background(), ReviewRequest{Code: "x", Language: "go"}, nil)
	if review.OverallAnalysis.Summary != fallbackSummary {
		t.Errorf("summary = %q, want the fallback summary", review.OverallAnalysis.Summary)
	}
	if review.OverallAnalysis.CorrectnessScore != fallbackScore || review.OverallAnalysis.StyleRating != fallbackScore {
		t.Errorf("fallback scores = %d/%d, want %d/%d",
			review.OverallAnalysis.CorrectnessScore, review.OverallAnalysis.StyleRating,
			fallbackScore, fallbackScore)
	}
}

func TestReviewRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ReviewRequest
		wantErr bool
	}{
		{"valid", ReviewRequest{Code: "x", Language: "go"}, false},
		{"case-insensitive language", ReviewRequest{Code: "x", Language: "Python"}, false},
		{"empty code", ReviewRequest{Language: "go"}, true},
		{"unsupported language", ReviewRequest{Code: "x", Language: "cobol"}, true},
		{"oversized code", ReviewRequest{Code: strings.Repeat("a", MaxCodeLength+1), Language: "go"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
