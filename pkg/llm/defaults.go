package llm

import (
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL  = "https://api.openai.com/v1"
	DefaultModel    = openai.GPT3Dot5Turbo16K
	DefaultLanguage = "English"

	// Temperature is kept low so the same diff yields the same message.
	Temperature = 0.1
	MaxTokens   = 2000
)

const (
	GetDiffFunction = "get_diff"
	CommitFunction  = "commit"
)

var (
	PromptSystemFormat = `You are an experienced programmer who writes great commit messages.
The title is a short summary of the change, the description explains every change in detail.
Write the commit message in %s.`

	PromptGetDiffDescription = "Returns the output of `git diff HEAD` as a string."
	PromptCommitDescription  = "Creates a commit with the given title and a description."
)

// SystemPrompt returns the system message asking for a commit message in
// the given language.
func SystemPrompt(language string) string {
	if language == "" {
		language = DefaultLanguage
	}
	return fmt.Sprintf(PromptSystemFormat, language)
}
