// Package cli implements the empath command tree: review, config, models,
// cache, and version. Command handlers translate pipeline errors into
// deterministic exit codes.
package cli
