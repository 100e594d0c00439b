package coach

import (
	"context"
	"fmt"
	"strings"

	"dsa-coach/api/internal/llm"
	"dsa-coach/api/internal/logger"
)

// problemMarker precedes each generated problem block in the response.
const problemMarker = "Problem"

type ProblemService struct {
	llm *llm.Client
	log *logger.Logger
}

func NewProblemService(client *llm.Client, log *logger.Logger) *ProblemService {
	return &ProblemService{llm: client, log: log.With("service", "problems")}
}

// GenerateProblems produces up to req.Count problem variations. It never
// fails: terminal generation errors and unparseable responses both fall back
// to the fixed problem list.
func (s *ProblemService) GenerateProblems(ctx context.Context, req ProblemRequest) []Problem {
	if req.Count < 1 {
		req.Count = 3
	}
	if req.Count > MaxProblemsPerGeneration {
		req.Count = MaxProblemsPerGeneration
	}
	if req.Difficulty == "" {
		req.Difficulty = DifficultyMedium
	}

	response, err := s.llm.Generate(ctx, generationPrompt(req), nil)
	if err != nil {
		s.log.Error("problem generation failed", "error", err.Error())
		return FallbackProblems(req)
	}

	problems := parseProblems(response)
	if len(problems) == 0 {
		s.log.Warn("no problems extracted from response, using fallback")
		return FallbackProblems(req)
	}
	if len(problems) > req.Count {
		problems = problems[:req.Count]
	}
	return problems
}

// parseProblems splits the response on the problem marker and extracts one
// record per chunk. Chunks that yield nothing at all still produce a record
// with a synthesized statement; only the preamble before the first marker is
// discarded.
func parseProblems(response string) []Problem {
	chunks := strings.Split(response, problemMarker)
	if len(chunks) < 2 {
		return nil
	}

	problems := make([]Problem, 0, len(chunks)-1)
	for i, chunk := range chunks[1:] {
		problems = append(problems, parseProblemChunk(chunk, i+1))
	}
	return problems
}

// problemFieldLabels maps each recognized labeled prefix (lowercase, with
// colon) onto a field key. Matching tolerates a leading "- ".
var problemFieldLabels = []struct {
	label string
	field string
}{
	{"title:", "title"},
	{"difficulty:", "difficulty"},
	{"statement:", "statement"},
	{"description:", "statement"},
	{"core concept:", "concept"},
	{"concept:", "concept"},
	{"context:", "context"},
	{"estimated time:", "time"},
	{"time:", "time"},
	{"complexity:", "complexity"},
	{"approach hint:", "hint"},
	{"hint:", "hint"},
}

func parseProblemChunk(chunk string, index int) Problem {
	p := Problem{
		Title:         fmt.Sprintf("Generated Problem %d", index),
		Difficulty:    DifficultyMedium,
		CoreConcept:   DefaultConcept,
		Context:       DefaultContext,
		EstimatedTime: DefaultEstimatedTime,
		Complexity:    DefaultComplexity,
	}

	currentField := ""
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		field, value := matchProblemField(line, lower)
		switch field {
		case "title":
			p.Title = value
		case "difficulty":
			p.Difficulty = ParseDifficulty(value)
		case "statement":
			p.Statement = value
		case "concept":
			p.CoreConcept = value
		case "context":
			p.Context = value
		case "time":
			p.EstimatedTime = value
		case "complexity":
			p.Complexity = value
		case "hint":
			p.ApproachHint = value
		case "":
			// Wrapped statement text continues until the next labeled line.
			if currentField == "statement" && !strings.HasPrefix(line, "-") {
				p.Statement += " " + line
			}
			continue
		}
		currentField = field
	}

	p.Statement = strings.TrimSpace(p.Statement)
	if p.Statement == "" {
		p.Statement = fmt.Sprintf("Practice problem %d focusing on %s", index, p.CoreConcept)
	}
	return p
}

func matchProblemField(line, lower string) (field, value string) {
	stripped := lower
	if strings.HasPrefix(stripped, "- ") {
		stripped = stripped[2:]
	}
	for _, entry := range problemFieldLabels {
		if strings.HasPrefix(stripped, entry.label) {
			if i := strings.IndexByte(line, ':'); i >= 0 {
				return entry.field, strings.TrimSpace(line[i+1:])
			}
		}
	}
	return "", ""
}
