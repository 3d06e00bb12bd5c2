package commands

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MrLemur/commitwatch/internal/models"
	"github.com/MrLemur/commitwatch/internal/services"
	"github.com/MrLemur/commitwatch/internal/watcher"
	"github.com/MrLemur/commitwatch/pkg/helpers"
	logger "github.com/sirupsen/logrus"
)

// BuildConfig validates the parsed flags and turns them into the immutable
// process configuration. All argument problems surface here, before any
// diff or inference work happens.
func BuildConfig() (models.Config, error) {
	if Repository == "" {
		return models.Config{}, fmt.Errorf("%w: -repository is required", models.ErrInvalidArgument)
	}

	repoPath, err := helpers.ExpandPath(Repository)
	if err != nil {
		return models.Config{}, fmt.Errorf("%w: cannot resolve repository path: %v", models.ErrInvalidArgument, err)
	}

	info, err := os.Stat(repoPath)
	if err != nil {
		return models.Config{}, fmt.Errorf("%w: repository path does not exist: %s", models.ErrInvalidArgument, repoPath)
	}
	if !info.IsDir() {
		return models.Config{}, fmt.Errorf("%w: repository path is not a directory: %s", models.ErrInvalidArgument, repoPath)
	}

	host, err := url.Parse(Host)
	if err != nil || host.Scheme == "" || host.Host == "" {
		return models.Config{}, fmt.Errorf("%w: invalid Ollama host URL: %s", models.ErrInvalidArgument, Host)
	}

	return models.Config{
		RepoPath:      repoPath,
		Model:         Model,
		Host:          host,
		Temperature:   Temperature,
		MaxDiffLength: MaxDiffLength,
		Timeout:       Timeout,
		Debounce:      Debounce,
		Watch:         Watch,
	}, nil
}

// RunApplication runs the main application logic
func RunApplication() {
	cfg, err := BuildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(Run(cfg))
}

// Run executes the pipeline once, or repeatedly in watch mode, and returns
// the process exit code.
func Run(cfg models.Config) int {
	client := services.NewClient(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.Watch {
		fmt.Println("Try -watch to watch for file changes and run continuously")
		if err := RunPipeline(ctx, cfg, client, os.Stdout); err != nil {
			logger.Errorf("Failed to generate commit message: %v", err)
			return 1
		}
		return 0
	}

	// A dead server at startup is an unrecoverable error; once watching,
	// per-run failures only warn.
	if err := client.CheckAvailability(ctx); err != nil {
		logger.Errorf("Cannot reach Ollama: %v", err)
		return 1
	}

	w, err := watcher.New(cfg.RepoPath, cfg.Debounce)
	if err != nil {
		logger.Errorf("Failed to watch repository: %v", err)
		return 1
	}
	go w.Run(ctx)

	fmt.Printf("Watching repository: %s\n", cfg.RepoPath)
	fmt.Println("Press Ctrl+C to stop...")
	fmt.Println()

	if err := RunPipeline(ctx, cfg, client, os.Stdout); err != nil {
		logger.Warnf("Run failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nStopped watching repository")
			return 0
		case <-w.Triggers:
			if err := RunPipeline(ctx, cfg, client, os.Stdout); err != nil {
				logger.Warnf("Run failed: %v", err)
			}
		}
	}
}

// RunPipeline performs one diff -> prompt -> inference pass and writes the
// suggested commit message to out. A clean working tree short-circuits
// before inference.
func RunPipeline(ctx context.Context, cfg models.Config, client *services.Client, out io.Writer) error {
	if err := services.ValidateRepository(cfg.RepoPath); err != nil {
		return err
	}

	diff, err := services.WorkingTreeDiff(cfg.RepoPath)
	if err != nil {
		return err
	}
	if diff == "" {
		fmt.Fprintln(out, "No changes found")
		return nil
	}

	banner := strings.Repeat("=", 60)
	fmt.Fprintf(out, "\n%s\n", banner)
	fmt.Fprintf(out, "Changes detected at %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out, "Generating commit message suggestion")
	fmt.Fprintf(out, "%s\n\n", banner)

	suggestion, err := client.SuggestCommitMessage(ctx, services.BuildPrompt(diff, cfg.MaxDiffLength))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, helpers.SanitizeCommitMessage(suggestion))
	return nil
}
