package models

import (
	"net/url"
	"time"
)

// Config holds the process-wide settings built once from command line flags.
// It is passed by value and never mutated after startup.
type Config struct {
	// RepoPath is the absolute path to the git repository being watched
	RepoPath string
	// Model is the Ollama model used to generate commit messages
	Model string
	// Host is the base URL of the local Ollama server
	Host *url.URL
	// Temperature for model generation (0.0-1.0)
	Temperature float64
	// MaxDiffLength caps the diff sent to the model; 0 means no limit
	MaxDiffLength int
	// Timeout bounds a single inference call
	Timeout time.Duration
	// Debounce is the window used to coalesce bursts of file events
	Debounce time.Duration
	// Watch enables continuous mode
	Watch bool
}
