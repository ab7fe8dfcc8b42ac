package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/pkg/errors"
)

const defaultMaxRetries = 2

var _ Completion = (*Service)(nil)

// Service wraps the OpenAI-compatible completions API.
type Service struct {
	client     *openai.Client
	logger     *log.Logger
	maxRetries int
}

func NewOpenAIService(logger *log.Logger, apiKey string, baseURL string) *Service {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
	)
	return &Service{
		client:     &client,
		logger:     logger,
		maxRetries: defaultMaxRetries,
	}
}

// Completions requests a chat completion, retrying transient failures with a
// short linear backoff. The result records how many retries were needed.
func (s *Service) Completions(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, model string) (CompletionResult, error) {
	var lastErr error

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return CompletionResult{Retries: attempt - 1}, ctx.Err()
			case <-time.After(time.Duration(attempt) * 500 * time.Millisecond):
			}
			s.logger.Warn("Retrying completion", "attempt", attempt, "error", lastErr)
		}

		completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Messages: messages,
			Model:    openai.ChatModel(model),
		})
		if err != nil {
			lastErr = err
			continue
		}

		if len(completion.Choices) == 0 {
			lastErr = fmt.Errorf("completions API returned no choices")
			continue
		}

		return CompletionResult{
			Content:          completion.Choices[0].Message.Content,
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
			Retries:          attempt,
		}, nil
	}

	return CompletionResult{Retries: s.maxRetries}, errors.Wrap(lastErr, "completions exhausted retries")
}
