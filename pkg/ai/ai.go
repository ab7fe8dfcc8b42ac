package ai

import (
	"context"

	"github.com/openai/openai-go"
)

// CompletionResult carries the generated text plus the token accounting the
// turn envelope reports.
type CompletionResult struct {
	Content          string
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
	Retries          int
}

// Completion is the generation collaborator contract. Implementations apply
// their own retry policy and report the retry count in the result.
type Completion interface {
	Completions(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, model string) (CompletionResult, error)
}
