package rephrase

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/servvia/servvia/pkg/ai"
)

type stubCompletion struct {
	content string
	err     error
}

func (s stubCompletion) Completions(ctx context.Context, messages []openai.ChatCompletionMessageParamUnion, model string) (ai.CompletionResult, error) {
	if s.err != nil {
		return ai.CompletionResult{}, s.err
	}
	return ai.CompletionResult{Content: s.content}, nil
}

func TestRephrase(t *testing.T) {
	logger := log.New(io.Discard)
	history := "User: I have a headache\nServVia: Try ginger tea."

	t.Run("uses completion output", func(t *testing.T) {
		r := NewRephraser(stubCompletion{content: "ginger tea dosage for headache"}, "test-model", logger)
		got := r.Rephrase(context.Background(), "how much should I drink?", history)
		assert.Equal(t, "ginger tea dosage for headache", got)
	})

	t.Run("empty history passes query through", func(t *testing.T) {
		r := NewRephraser(stubCompletion{content: "should not be called"}, "test-model", logger)
		got := r.Rephrase(context.Background(), "ginger for headache", "")
		assert.Equal(t, "ginger for headache", got)
	})

	t.Run("completion failure falls back to original", func(t *testing.T) {
		r := NewRephraser(stubCompletion{err: errors.New("api down")}, "test-model", logger)
		got := r.Rephrase(context.Background(), "how much should I drink?", history)
		assert.Equal(t, "how much should I drink?", got)
	})

	t.Run("blank completion falls back to original", func(t *testing.T) {
		r := NewRephraser(stubCompletion{content: "   "}, "test-model", logger)
		got := r.Rephrase(context.Background(), "how much?", history)
		assert.Equal(t, "how much?", got)
	})
}
