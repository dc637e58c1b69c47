// Package providers implements the Completer interface for each supported LLM
// provider.
//
// Supported providers: Google (Gemini, the default), OpenAI (GPT), Anthropic
// (Claude), and Ollama / LM Studio for local models.
//
// All providers share a retry helper whose policy (retry count, fixed or
// exponential back-off) comes from configuration; only rate-limit and 5xx
// responses are retried. Missing credentials are reported as config errors at
// construction time, before any network call. HTTP clients are injected via a
// transport field so that tests can redirect calls to local httptest servers
// without making live API requests.
//
// Use [New] to obtain a Completer by provider name and model string.
package providers
