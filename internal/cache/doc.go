// Package cache provides a file-based cache for LLM completions.
//
// Entries are keyed by a SHA-256 hash of the provider name, model, and full
// prompt text. Each entry stores the raw completion string along with a
// creation timestamp and a TTL (in seconds). Expired entries are skipped on
// read and removed during cache-clear operations.
//
// The default cache directory is $XDG_CACHE_HOME/empath (or the OS-appropriate
// equivalent). All prompts stored in the cache have already been through
// secret redaction.
package cache
