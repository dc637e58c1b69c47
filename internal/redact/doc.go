// Package redact removes secrets from the code snippet before it is sent to
// any LLM provider.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs and secret access keys, bearer
// tokens, and provider-specific tokens (Google, Anthropic, OpenAI, GitHub,
// Slack). Only prompts are affected; the rendered report always shows the
// original snippet.
package redact
