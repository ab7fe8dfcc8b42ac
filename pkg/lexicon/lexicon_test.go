package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVocabulariesAreWellFormed(t *testing.T) {
	t.Run("conditions", func(t *testing.T) {
		seen := map[string]bool{}
		for _, e := range Conditions() {
			require.NotEmpty(t, e.Canonical)
			require.NotEmpty(t, e.Keywords, "condition %q has no keywords", e.Canonical)
			assert.False(t, seen[e.Canonical], "duplicate condition %q", e.Canonical)
			seen[e.Canonical] = true
			for _, kw := range e.Keywords {
				assert.Equal(t, strings.ToLower(kw), kw, "keyword %q must be lower-case", kw)
			}
		}
	})

	t.Run("medications", func(t *testing.T) {
		seen := map[string]bool{}
		for _, e := range Medications() {
			require.NotEmpty(t, e.Canonical)
			require.NotEmpty(t, e.Keywords, "medication %q has no keywords", e.Canonical)
			assert.False(t, seen[e.Canonical], "duplicate medication %q", e.Canonical)
			seen[e.Canonical] = true
			for _, kw := range e.Keywords {
				assert.Equal(t, strings.ToLower(kw), kw, "keyword %q must be lower-case", kw)
			}
		}
	})

	t.Run("herbs", func(t *testing.T) {
		seen := map[string]bool{}
		for _, h := range Herbs() {
			require.NotEmpty(t, h)
			assert.False(t, seen[h], "duplicate herb %q", h)
			seen[h] = true
			assert.Equal(t, strings.ToLower(h), h, "herb %q must be lower-case", h)
		}
	})
}

func TestLookups(t *testing.T) {
	assert.True(t, IsCondition("headache"))
	assert.False(t, IsCondition("warfarin"))

	assert.True(t, IsHerb("turmeric"))
	assert.False(t, IsHerb("aspirin"))

	assert.True(t, IsMedication("warfarin"))
	assert.False(t, IsMedication("turmeric"))

	assert.Contains(t, MedicationKeywords("warfarin"), "coumadin")
	assert.Nil(t, MedicationKeywords("not a medication"))
}
