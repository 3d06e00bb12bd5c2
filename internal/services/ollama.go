package services

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MrLemur/commitwatch/internal/models"
	ollama "github.com/ollama/ollama/api"
)

// Client is a thin wrapper around the Ollama API for generating commit
// message suggestions. It is safe to reuse across pipeline runs.
type Client struct {
	api         *ollama.Client
	model       string
	temperature float64
	timeout     time.Duration
}

// NewClient builds an inference client from the process configuration.
func NewClient(cfg models.Config) *Client {
	return &Client{
		api:         ollama.NewClient(cfg.Host, http.DefaultClient),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}
}

// CheckAvailability checks if the Ollama server is reachable
func (c *Client) CheckAvailability(ctx context.Context) error {
	if _, err := c.api.List(ctx); err != nil {
		return classifyInferenceError(err)
	}
	return nil
}

// SuggestCommitMessage sends the prompt to the model and returns the
// generated commit message. One synchronous request, no retries.
func (c *Client) SuggestCommitMessage(ctx context.Context, messages []ollama.Message) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	stream := false
	var response strings.Builder
	respFunc := func(resp ollama.ChatResponse) error {
		response.WriteString(resp.Message.Content)
		return nil
	}

	err := c.api.Chat(
		ctx,
		&ollama.ChatRequest{
			Model:    c.model,
			Messages: messages,
			Stream:   &stream,
			Options:  map[string]any{"temperature": c.temperature},
		},
		respFunc,
	)
	if err != nil {
		return "", classifyInferenceError(err)
	}

	return response.String(), nil
}

// classifyInferenceError maps transport failures onto the error taxonomy:
// deadline and net timeouts become ErrInferenceTimeout, everything else
// (connection refused, non-success status) becomes ErrInferenceUnavailable.
func classifyInferenceError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", models.ErrInferenceTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", models.ErrInferenceTimeout, err)
	}
	return fmt.Errorf("%w: %v", models.ErrInferenceUnavailable, err)
}
