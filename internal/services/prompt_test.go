package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrLemur/commitwatch/internal/services"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	diff := "diff --git a/main.go b/main.go\n@@ -1,0 +2 @@\n+foo()\n"

	t.Run("should produce a system and a user message", func(t *testing.T) {
		t.Parallel()

		messages := services.BuildPrompt(diff, 0)

		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].Role)
		assert.Equal(t, "user", messages[1].Role)
	})

	t.Run("should embed the diff in the context block", func(t *testing.T) {
		t.Parallel()

		messages := services.BuildPrompt(diff, 0)

		assert.Contains(t, messages[1].Content, "<context>"+diff+"</context>")
		assert.Contains(t, messages[1].Content, "<question>"+services.DefaultQuestion+"</question>")
		assert.Contains(t, messages[1].Content, "+foo()")
	})

	t.Run("should describe the commit message task in the system message", func(t *testing.T) {
		t.Parallel()

		messages := services.BuildPrompt(diff, 0)

		assert.Contains(t, messages[0].Content, "<task_description>")
		assert.Contains(t, messages[0].Content, "git commit message")
	})

	t.Run("should be idempotent for identical input", func(t *testing.T) {
		t.Parallel()

		first := services.BuildPrompt(diff, 0)
		second := services.BuildPrompt(diff, 0)

		assert.Equal(t, first, second)
	})

	t.Run("should truncate the diff when a limit is set", func(t *testing.T) {
		t.Parallel()

		messages := services.BuildPrompt(diff, 20)

		assert.Contains(t, messages[1].Content, "<context>"+diff[:17]+"...</context>")
		assert.NotContains(t, messages[1].Content, "+foo()")
	})

	t.Run("should accept an empty diff", func(t *testing.T) {
		t.Parallel()

		messages := services.BuildPrompt("", 0)

		require.Len(t, messages, 2)
		assert.Contains(t, messages[1].Content, "<context></context>")
	})
}
