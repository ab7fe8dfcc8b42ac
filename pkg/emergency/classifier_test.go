package emergency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantCat   Category
		wantMatch bool
	}{
		{
			name:      "cardiac arrest via CPR mention",
			query:     "he is not breathing, start CPR",
			wantCat:   CategoryCardiacArrest,
			wantMatch: true,
		},
		{
			name:      "choking",
			query:     "My friend is CHOKING on food",
			wantCat:   CategoryChoking,
			wantMatch: true,
		},
		{
			name:      "heart attack",
			query:     "severe chest pain radiating to my arm",
			wantCat:   CategoryCardiac,
			wantMatch: true,
		},
		{
			name:      "stroke",
			query:     "her speech is slurred and face drooping",
			wantCat:   CategoryStroke,
			wantMatch: true,
		},
		{
			name:      "mental health crisis",
			query:     "i want to die",
			wantCat:   CategoryMentalHealth,
			wantMatch: true,
		},
		{
			name:      "poisoning",
			query:     "my son swallowed poison",
			wantCat:   CategoryPoisoning,
			wantMatch: true,
		},
		{
			name:      "anaphylaxis",
			query:     "throat closing after peanuts",
			wantCat:   CategoryAllergicReaction,
			wantMatch: true,
		},
		{
			name:      "severe bleeding",
			query:     "the cut wont stop bleeding",
			wantCat:   CategorySevereBleeding,
			wantMatch: true,
		},
		{
			name:      "priority: cardiac arrest beats choking",
			query:     "he was choking and now he is not breathing",
			wantCat:   CategoryCardiacArrest,
			wantMatch: true,
		},
		{
			name:      "priority: choking beats bleeding",
			query:     "choking and severe bleeding",
			wantCat:   CategoryChoking,
			wantMatch: true,
		},
		{
			name:      "ordinary health query",
			query:     "I have a splitting headache",
			wantMatch: false,
		},
		{
			name:      "empty query",
			query:     "",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, ok := Classify(tt.query)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantCat, cat)
			}
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	query := "chest pain and slurred speech and severe bleeding"
	first, ok := Classify(query)
	require.True(t, ok)
	for i := 0; i < 50; i++ {
		cat, ok := Classify(query)
		require.True(t, ok)
		require.Equal(t, first, cat)
	}
	assert.Equal(t, CategoryCardiac, first)
}

func TestResponse(t *testing.T) {
	for _, cat := range Categories() {
		t.Run(string(cat), func(t *testing.T) {
			text := Response(cat)
			require.NotEmpty(t, text)
			assert.NotEqual(t, genericResponse, text, "category %q should have its own template", cat)
		})
	}

	t.Run("unknown category falls back to generic", func(t *testing.T) {
		assert.Equal(t, genericResponse, Response(Category("volcanic_eruption")))
	})
}
