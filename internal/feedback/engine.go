package feedback

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dshills/empath/internal/cache"
	"github.com/dshills/empath/internal/config"
	"github.com/dshills/empath/internal/input"
	"github.com/dshills/empath/internal/providers"
	"github.com/dshills/empath/internal/redact"
)

const completionMaxTokens = 4096

// Options configures a Run beyond the static config.
type Options struct {
	// Completer overrides the provider built from cfg. Tests use this to
	// substitute a deterministic fake.
	Completer providers.Completer
	// Cache, when non-nil, stores raw completions keyed by provider, model,
	// and prompt.
	Cache *cache.Cache
	// Progress, when non-nil, receives informational status messages as the
	// pipeline advances.
	Progress func(msg string)
}

func (o Options) progress(format string, args ...any) {
	if o.Progress != nil {
		o.Progress(fmt.Sprintf(format, args...))
	}
}

// Run executes the full report pipeline: one analysis call per comment (in
// input order), then a single summary call that consumes all analyses.
//
// A provider failure for one comment never aborts the run; the comment gets a
// degraded placeholder analysis and processing continues, so the report
// always contains exactly one analysis per input comment. Context
// cancellation is the exception: an interrupted run returns an error and no
// report, so no partial file is ever written.
func Run(ctx context.Context, in input.ReviewInput, cfg config.Config, opts Options) (*Report, error) {
	startTime := time.Now()

	rules, err := LoadRules(cfg.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}

	completer := opts.Completer
	if completer == nil {
		completer, err = providers.New(cfg.Provider, cfg.Model, providers.Options{
			APIKeyEnv: cfg.APIKeyEnv,
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
			Retry: providers.RetryPolicy{
				Retries: cfg.Retries,
				Backoff: cfg.Backoff,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("creating provider: %w", err)
		}
	}

	// Prompts get the redacted snippet; the rendered report shows the
	// original, which never leaves the machine.
	promptSnippet := in.CodeSnippet
	if cfg.Privacy.RedactSecrets {
		promptSnippet = redact.Secrets(promptSnippet)
	}

	var (
		llmMs int64
		mu    sync.Mutex
	)
	complete := func(ctx context.Context, prompt string) (string, error) {
		if opts.Cache != nil {
			key := cache.BuildKey(completer.Name(), cfg.Model, prompt)
			if content, ok := opts.Cache.Get(key); ok {
				return content, nil
			}
		}
		llmStart := time.Now()
		resp, err := completer.Complete(ctx, providers.CompletionRequest{
			SystemPrompt: SystemPrompt(),
			Prompt:       prompt,
			MaxTokens:    completionMaxTokens,
		})
		mu.Lock()
		llmMs += time.Since(llmStart).Milliseconds()
		mu.Unlock()
		if err != nil {
			return "", err
		}
		if opts.Cache != nil {
			// A cache write failure only costs a future cache hit.
			_ = opts.Cache.Put(cache.BuildKey(completer.Name(), cfg.Model, prompt), resp.Content)
		}
		return resp.Content, nil
	}

	analyses := make([]CommentAnalysis, len(in.Comments))
	var degraded int
	var degradedMu sync.Mutex

	analyzeOne := func(i int, comment string) {
		opts.progress("analyzing comment %d/%d: %q", i+1, len(in.Comments), comment)

		sev := InferSeverity(comment)
		prompt := BuildAnalysisPrompt(promptSnippet, cfg.Language, comment, sev, rules)
		content, err := complete(ctx, prompt)
		if err != nil {
			degradedMu.Lock()
			degraded++
			degradedMu.Unlock()
			analyses[i] = degradedAnalysis(comment, sev, err)
			return
		}
		analyses[i] = ParseAnalysis(comment, content)
	}

	if cfg.Workers <= 1 {
		for i, comment := range in.Comments {
			analyzeOne(i, comment)
		}
	} else {
		// Per-comment analyses are independent; fan out with a bounded
		// semaphore. Results land in a position-indexed slice, so input
		// order survives regardless of completion order.
		var wg sync.WaitGroup
		sem := make(chan struct{}, cfg.Workers)
		for i, comment := range in.Comments {
			wg.Add(1)
			go func(i int, comment string) {
				defer wg.Done()
				sem <- struct{}{}        // acquire
				defer func() { <-sem }() // release
				analyzeOne(i, comment)
			}(i, comment)
		}
		wg.Wait()
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Summary is a synchronization barrier: it consumes every analysis.
	opts.progress("generating overall summary")
	summary, err := complete(ctx, BuildSummaryPrompt(promptSnippet, cfg.Language, analyses, rules))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		degraded++
		summary = fmt.Sprintf("A closing summary could not be generated due to a provider error: %v", err)
	}

	return &Report{
		Tool:     "empath",
		Version:  "1.0",
		RunID:    generateRunID(),
		Provider: completer.Name(),
		Model:    cfg.Model,
		Snippet:  in.CodeSnippet,
		Language: cfg.Language,
		Analyses: analyses,
		Summary:  summary,
		Degraded: degraded,
		Timing: Timing{
			LLMMs:   llmMs,
			TotalMs: time.Since(startTime).Milliseconds(),
		},
	}, nil
}

func degradedAnalysis(comment string, sev Severity, err error) CommentAnalysis {
	return CommentAnalysis{
		Comment:     comment,
		Severity:    sev,
		Explanation: fmt.Sprintf("Feedback for this comment could not be generated due to a provider error: %v", err),
		Degraded:    true,
	}
}

func generateRunID() string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%d", time.Now().UnixNano())))
	return fmt.Sprintf("%x", h[:16])
}
