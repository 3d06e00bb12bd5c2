package commands

import (
	"flag"
	"time"
)

var (
	// Command line flags
	Repository    string
	Watch         bool
	Model         string
	Host          string
	Temperature   float64
	MaxDiffLength int
	Timeout       time.Duration
	Debounce      time.Duration
)

// ParseFlags parses command line flags
func ParseFlags() {
	flag.StringVar(&Repository, "repository", "", "Path to the git repository you want to watch")
	flag.BoolVar(&Watch, "watch", false, "Watch for file changes and run continuously")
	flag.StringVar(&Model, "model", "commit-bot-llama-1.0-1B", "Ollama model to use for commit message suggestions")
	flag.StringVar(&Host, "host", "http://127.0.0.1:11434", "Base URL of the local Ollama server")
	flag.Float64Var(&Temperature, "temperature", 0.0, "Temperature for model generation (0.0-1.0)")
	flag.IntVar(&MaxDiffLength, "max-diff", 0, "Maximum length of diff to send to the model (0 means no limit)")
	flag.DurationVar(&Timeout, "timeout", 2*time.Minute, "Maximum time to wait for a single inference call")
	flag.DurationVar(&Debounce, "debounce", 10*time.Second, "Quiet window used to coalesce bursts of file changes")
	flag.Parse()
}
