package helpers

import (
	"os"
	"path/filepath"
	"strings"
)

// TruncateString truncates a string to the specified length and adds an ellipsis if needed
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// SanitizeCommitMessage removes any unwanted characters from a commit message
func SanitizeCommitMessage(message string) string {
	// Remove leading/trailing whitespace
	message = strings.TrimSpace(message)
	// Replace multiple newlines with a single newline
	message = strings.ReplaceAll(message, "\n\n\n", "\n\n")
	return message
}

// ExpandPath resolves a leading ~ and returns an absolute, cleaned path
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}
