package services

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/MrLemur/commitwatch/internal/models"
	"github.com/go-git/go-git/v5"
)

// hunkHeaderRe matches a unified diff hunk header. Git appends the enclosing
// function name after the second @@, which only adds noise for the model.
var hunkHeaderRe = regexp.MustCompile(`(@@[^@]*@@).*`)

// ValidateRepository checks that path points at a usable git working tree.
// It is called before the first run and again on every watch trigger, since
// the repository can disappear or break between runs.
func ValidateRepository(path string) error {
	if _, err := git.PlainOpen(path); err != nil {
		return fmt.Errorf("%w: %s is not a git repository: %v", models.ErrRepository, path, err)
	}
	return nil
}

// WorkingTreeDiff returns the textual diff of uncommitted changes against
// HEAD. An empty string means the working tree is clean.
func WorkingTreeDiff(repoPath string) (string, error) {
	cmd := exec.Command("git", "diff", "--no-ext-diff", "-U0", "HEAD")
	cmd.Dir = repoPath

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%w: git diff failed: %s", models.ErrRepository, detail)
	}

	return stripHunkContext(stdout.String()), nil
}

// stripHunkContext removes the function context git appends to @@ hunk
// headers, leaving only the line ranges.
func stripHunkContext(diff string) string {
	if diff == "" {
		return diff
	}
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "@@") {
			lines[i] = hunkHeaderRe.ReplaceAllString(line, "$1")
		}
	}
	return strings.Join(lines, "\n")
}
