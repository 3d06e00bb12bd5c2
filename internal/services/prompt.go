package services

import (
	"fmt"

	"github.com/MrLemur/commitwatch/pkg/helpers"
	ollama "github.com/ollama/ollama/api"
)

// DefaultQuestion is the task sent alongside every diff.
const DefaultQuestion = `Process the context according to the task description.`

// systemPrompt describes the commit message task to the model. The model is
// fine-tuned against this exact template, so the wording is fixed.
const systemPrompt = `
You are a problem solving model working on task_description XML block:
<task_description>## Task
Generate a concise yet informative git commit message draft from a ` + "`git diff`" + ` output. The message should include a title (under 50 characters) and optionally a body for additional context when necessary. The commit message should summarize the changes by identifying what was added, modified, or removed, and explain the purpose or impact of those changes in a clear, technical manner.

## Inputs
The raw output string from the ` + "`git diff`" + ` command, which shows changes between commits, commit and working tree, etc. This includes file paths, added/removed lines, and change context across multiple files. The diff may include code modifications, new files, deleted files, and comments indicating the nature of changes.

## Outputs
A string in conventional git commit message format: a title line (<=50 characters) followed by an optional blank line and a body paragraph for elaboration. The body should provide specific details about the changes made, including functionality added, bugs fixed, or architectural improvements. Omit the body if the title sufficiently describes the changes.</task_description>
You will be given a single task with context in the context XML block and the task in the question XML block
Solve the task in question block based on the context in context block.
Generate only the answer, do not generate anything else
`

// BuildPrompt wraps a diff into the chat messages expected by the model.
// Pure function: identical input always yields identical messages. When
// maxDiffLength is positive the diff is truncated before embedding.
func BuildPrompt(diff string, maxDiffLength int) []ollama.Message {
	context := helpers.TruncateString(diff, maxDiffLength)
	userPrompt := fmt.Sprintf(`

Now for the real task, solve the task in question block based on the context in context block.
Generate only the solution, do not generate anything else
<context>%s</context>
<question>%s</question>
`, context, DefaultQuestion)

	return []ollama.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userPrompt},
	}
}
