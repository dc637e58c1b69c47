package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dshills/empath/internal/cache"
	"github.com/dshills/empath/internal/config"
	"github.com/dshills/empath/internal/feedback"
	"github.com/dshills/empath/internal/input"
	"github.com/dshills/empath/internal/output"
	"github.com/dshills/empath/internal/providers"
)

// Review flags
var (
	flagOut            string
	flagFormat         string
	flagProvider       string
	flagModel          string
	flagLanguage       string
	flagWorkers        int
	flagTimeoutSeconds int
	flagRetries        int
	flagBackoff        string
	flagRules          string
	flagAPIKeyEnv      string
	flagNoRedact       bool
	flagNoCache        bool
)

func addReviewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagOut, "out", "o", "report.md", "Output file path")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format (markdown, json)")
	cmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (gemini, openai, anthropic, ollama)")
	cmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	cmd.Flags().StringVar(&flagLanguage, "language", "", "Snippet language hint for prompts and fences")
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "Concurrent analysis calls (1 = sequential)")
	cmd.Flags().IntVar(&flagTimeoutSeconds, "timeout-seconds", 0, "Per-call timeout in seconds")
	cmd.Flags().IntVar(&flagRetries, "retries", 0, "Retries for transient provider failures")
	cmd.Flags().StringVar(&flagBackoff, "backoff", "", "Retry backoff strategy (fixed, exponential)")
	cmd.Flags().StringVar(&flagRules, "rules", "", "Rules file path")
	cmd.Flags().StringVar(&flagAPIKeyEnv, "api-key-env", "", "Environment variable holding the API key")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the completion cache")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagLanguage != "" {
		m["language"] = flagLanguage
	}
	if flagWorkers > 0 {
		m["workers"] = fmt.Sprintf("%d", flagWorkers)
	}
	if flagTimeoutSeconds > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeoutSeconds)
	}
	if flagRetries > 0 {
		m["retries"] = fmt.Sprintf("%d", flagRetries)
	}
	if flagBackoff != "" {
		m["backoff"] = flagBackoff
	}
	if flagRules != "" {
		m["rulesFile"] = flagRules
	}
	if flagAPIKeyEnv != "" {
		m["apiKeyEnv"] = flagAPIKeyEnv
	}
	return m
}

var reviewCmd = &cobra.Command{
	Use:   "review <input.json>",
	Short: "Generate an empathetic feedback report from review comments",
	Long:  "Read a JSON file containing a code snippet and review comments, rewrite each comment as constructive mentoring feedback, and write a report.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		if flagNoRedact {
			cfg.Privacy.RedactSecrets = false
			fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
		}

		in, err := input.Load(args[0])
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitInputError
			return nil
		}

		runFeedback(in, cfg)
		return nil
	},
}

func runFeedback(in input.ReviewInput, cfg config.Config) {
	var completionCache *cache.Cache
	if cfg.Cache.Enabled && !flagNoCache {
		c, err := cache.New(true, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WARNING: cache unavailable: %v\n", err)
		} else {
			completionCache = c
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	spin := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	spin.Suffix = " contacting provider..."
	spin.Start()

	report, err := feedback.Run(ctx, in, cfg, feedback.Options{
		Cache: completionCache,
		Progress: func(msg string) {
			spin.Suffix = " " + msg
		},
	})
	spin.Stop()

	if err != nil {
		if providers.IsConfigError(err) || providers.IsAuthError(err) {
			color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if err := output.WriteReport(report, cfg.Format, flagOut); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if report.Degraded > 0 {
		color.New(color.FgYellow).Fprintf(os.Stderr, "WARNING: %d of %d sections degraded due to provider errors\n",
			report.Degraded, len(report.Analyses)+1)
	}
	color.New(color.FgGreen).Fprintf(os.Stderr, "Report written to %s\n", flagOut)
}

func init() {
	addReviewFlags(reviewCmd)
}
