package providers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// CompletionRequest contains a single prompt sent to an LLM.
type CompletionRequest struct {
	SystemPrompt string
	Prompt       string
	MaxTokens    int
	Temperature  float64
}

// Completion contains the raw text response from an LLM.
type Completion struct {
	Content    string
	TokensUsed int
}

// Completer is the provider abstraction interface.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
	Name() string
}

// Options carries construction settings shared by all providers.
type Options struct {
	// APIKeyEnv overrides the provider's default credential variable name.
	APIKeyEnv string
	// Timeout is the per-call HTTP timeout. Zero means DefaultTimeout.
	Timeout time.Duration
	// Retry controls how transient failures are retried.
	Retry RetryPolicy
}

// DefaultTimeout is applied when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

func (o Options) timeout() time.Duration {
	if o.Timeout > 0 {
		return o.Timeout
	}
	return DefaultTimeout
}

// New creates a provider by name.
func New(provider, model string, opts Options) (Completer, error) {
	switch provider {
	case "gemini", "google":
		return NewGemini(model, opts)
	case "openai":
		return NewOpenAI(model, opts)
	case "anthropic":
		return NewAnthropic(model, opts)
	case "ollama", "lmstudio":
		return NewOllama(model, opts)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}

// apiKeyFromEnv resolves a credential from the override variable (if set) or
// the provider's default variables. A missing credential is a config error:
// it aborts before any network call is attempted.
func apiKeyFromEnv(override string, defaults ...string) (string, error) {
	if override != "" {
		if key := os.Getenv(override); key != "" {
			return key, nil
		}
		return "", &configError{message: fmt.Sprintf("%s environment variable is not set", override)}
	}
	for _, name := range defaults {
		if key := os.Getenv(name); key != "" {
			return key, nil
		}
	}
	return "", &configError{message: fmt.Sprintf("%s environment variable is not set", strings.Join(defaults, " (or) "))}
}
