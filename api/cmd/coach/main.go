package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"dsa-coach/api/internal/coach"
	"dsa-coach/api/internal/config"
	"dsa-coach/api/internal/httpserver"
	"dsa-coach/api/internal/llm"
	"dsa-coach/api/internal/llm/gemini"
	"dsa-coach/api/internal/llm/openai"
	"dsa-coach/api/internal/logger"
)

func main() {
	op := flag.String("op", "", "one-shot operation: generate, hint, review, random, check (empty: serve HTTP)")
	problem := flag.String("problem", "", "problem statement for generate/hint")
	code := flag.String("code", "", "code to review (or @path to read a file)")
	lang := flag.String("lang", "python", "language of the reviewed code")
	level := flag.Int("level", 0, "current hint level (next one is produced)")
	approach := flag.String("approach", "", "user's current approach, if any")
	count := flag.Int("count", 3, "number of problem variations")
	difficulty := flag.String("difficulty", "", "desired difficulty: Easy, Medium or Hard")
	flag.Parse()

	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	engines := &llm.Engines{
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
	}
	eng, err := engines.GetEngine(cfg.LLMName)
	if err != nil {
		log.Fatal("engine selection failed", "llm", cfg.LLMName, "error", err.Error())
	}

	client := llm.NewClient(eng, log,
		llm.WithMaxRetries(cfg.MaxRetries),
		llm.WithRetryDelay(cfg.RetryDelay),
	)

	info := client.ModelInfo()
	log.Info("generation client ready",
		"engine", info.Engine, "model", info.Model, "configured", info.Configured,
		"max_retries", info.MaxRetries, "retry_delay", info.RetryDelay.String())

	if *op != "" {
		runOnce(client, log, *op, oneShotArgs{
			problem:    *problem,
			code:       *code,
			lang:       *lang,
			level:      *level,
			approach:   *approach,
			count:      *count,
			difficulty: *difficulty,
		})
		return
	}

	probe := func(ctx context.Context) bool {
		ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		return client.CheckConnection(ctx)
	}

	addr := ":" + cfg.Port
	if err := httpserver.StartHTTP(addr, info.Model, probe, log); err != nil {
		log.Fatal("http server stopped", "error", err.Error())
	}
}

type oneShotArgs struct {
	problem    string
	code       string
	lang       string
	level      int
	approach   string
	count      int
	difficulty string
}

func runOnce(client *llm.Client, log *logger.Logger, op string, args oneShotArgs) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch op {
	case "generate":
		svc := coach.NewProblemService(client, log)
		printJSON(svc.GenerateProblems(ctx, coach.ProblemRequest{
			OriginalProblem: args.problem,
			Count:           args.count,
			Difficulty:      coach.ParseDifficulty(args.difficulty),
			IncludeHints:    true,
		}))
	case "hint":
		svc := coach.NewHintService(client, log)
		res, err := svc.GetHint(ctx,
			coach.HintRequest{CurrentLevel: args.level, UserApproach: args.approach},
			coach.Problem{Statement: args.problem}, nil)
		if err != nil {
			log.Fatal("hint request rejected", "error", err.Error())
		}
		printJSON(res)
	case "review":
		req := coach.ReviewRequest{Code: readArg(args.code), Language: args.lang}
		if err := req.Validate(); err != nil {
			log.Fatal("review request rejected", "error", err.Error())
		}
		svc := coach.NewReviewService(client, log)
		printJSON(svc.ReviewCode(ctx, req, nil))
	case "random":
		printJSON(coach.RandomProblem())
	case "check":
		printJSON(map[string]bool{"connected": client.CheckConnection(ctx)})
	default:
		log.Fatal("unknown operation", "op", op)
	}
}

// readArg resolves @path flag values to file contents.
func readArg(s string) string {
	if len(s) > 1 && s[0] == '@' {
		b, err := os.ReadFile(s[1:])
		if err == nil {
			return string(b)
		}
	}
	return s
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
