// Package rephrase rewrites follow-up questions into standalone queries so
// retrieval quality does not depend on conversational ellipsis. Failures are
// absorbed: the original query is always a valid fallback.
package rephrase

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"

	"github.com/servvia/servvia/pkg/ai"
)

const systemPrompt = `You rewrite a user's health question into a standalone search query.
Use the conversation history to resolve pronouns and references.
Reply with the rewritten query only, no explanation, no quotes.`

// Rephraser turns (query, history) into a retrieval-friendly query.
type Rephraser struct {
	completion ai.Completion
	model      string
	logger     *log.Logger
}

func NewRephraser(completion ai.Completion, model string, logger *log.Logger) *Rephraser {
	return &Rephraser{completion: completion, model: model, logger: logger}
}

// Rephrase returns the rewritten query, or the original unchanged when the
// history is empty or the completion call fails.
func (r *Rephraser) Rephrase(ctx context.Context, query, history string) string {
	if strings.TrimSpace(history) == "" {
		return query
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage("Conversation so far:\n" + history + "\n\nQuestion to rewrite:\n" + query),
	}

	result, err := r.completion.Completions(ctx, messages, r.model)
	if err != nil {
		r.logger.Warn("Query rephrasing failed, using original query", "error", err)
		return query
	}

	rewritten := strings.TrimSpace(result.Content)
	if rewritten == "" {
		return query
	}
	return rewritten
}
