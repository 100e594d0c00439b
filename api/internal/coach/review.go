package coach

import (
	"context"
	"strings"
	"time"

	"dsa-coach/api/internal/llm"
	"dsa-coach/api/internal/logger"
	"dsa-coach/api/internal/parse"
	"dsa-coach/api/internal/util"
)

const summaryLimit = 200

// reviewSections drives segmentation of a review response. Order matters:
// specs are probed first to last. Weak keywords need a numeric marker on the
// line ("2. Issues"), plain keywords stand alone.
var reviewSections = []parse.SectionSpec{
	{Name: "overall", Keywords: []string{"overall analysis"}, WeakKeywords: []string{"overall"}},
	{Name: "issues", Keywords: []string{"issues found"}, WeakKeywords: []string{"issues"}},
	{Name: "optimizations", Keywords: []string{"optimizations"}, WeakKeywords: []string{"optimization"}},
	{Name: "alternatives", Keywords: []string{"alternative"}},
}

type ReviewService struct {
	llm *llm.Client
	log *logger.Logger
}

func NewReviewService(client *llm.Client, log *logger.Logger) *ReviewService {
	return &ReviewService{llm: client, log: log.With("service", "review")}
}

// ReviewCode always returns a complete review. Terminal generation failure
// yields the fixed fallback review; a response with no recognizable sections
// yields defaults with empty lists.
func (s *ReviewService) ReviewCode(ctx context.Context, req ReviewRequest, uc *llm.Context) CodeReview {
	response, err := s.llm.Generate(ctx, reviewPrompt(req), uc)
	if err != nil {
		s.log.Error("review generation failed", "language", req.Language, "error", err.Error())
		return FallbackReview()
	}
	return parseReview(response)
}

func parseReview(response string) CodeReview {
	sections := parse.SplitSections(response, reviewSections)

	review := CodeReview{
		OverallAnalysis: DefaultAnalysis(),
		Issues:          []string{},
		Optimizations:   []string{},
		Alternatives:    []string{},
		ReviewedAt:      time.Now(),
	}

	if lines, ok := sections["overall"]; ok {
		review.OverallAnalysis = parseOverall(lines)
	}
	if lines, ok := sections["issues"]; ok {
		review.Issues = itemsOrEmpty(lines)
	}
	if lines, ok := sections["optimizations"]; ok {
		review.Optimizations = itemsOrEmpty(lines)
	}
	if lines, ok := sections["alternatives"]; ok {
		review.Alternatives = itemsOrEmpty(lines)
	}

	return review
}

// itemsOrEmpty never returns nil: an empty list is a valid outcome, distinct
// from "section absent" only by having been matched at all.
func itemsOrEmpty(lines []string) []string {
	items := parse.Items(strings.Join(lines, "\n"))
	if items == nil {
		return []string{}
	}
	return items
}

func parseOverall(lines []string) CodeAnalysis {
	analysis := DefaultAnalysis()
	analysis.Summary = util.Truncate(strings.Join(lines, "\n"), summaryLimit)

	for _, line := range lines {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "correctness"):
			if score, ok := parse.Score(line); ok {
				analysis.CorrectnessScore = score
			}
		case strings.Contains(lower, "style"):
			if score, ok := parse.Score(line); ok {
				analysis.StyleRating = score
			}
		case strings.Contains(lower, "time complexity"):
			if notation, ok := parse.ComplexityNotation(line); ok {
				analysis.TimeComplexity = notation
			}
		case strings.Contains(lower, "space complexity"):
			if notation, ok := parse.ComplexityNotation(line); ok {
				analysis.SpaceComplexity = notation
			}
		}
	}

	return analysis
}
