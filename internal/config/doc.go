// Package config loads and merges empath configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (EMPATH_PROVIDER, EMPATH_MODEL, EMPATH_WORKERS, etc.)
//  3. Config file ($XDG_CONFIG_HOME/empath/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single key
// in the config file. Provider API keys are not stored here; they come from
// the process environment (the variable name is configurable via apiKeyEnv).
package config
