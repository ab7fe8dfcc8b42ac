package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		wantConditions  []string
		wantHerbs       []string
		wantMedications []string
	}{
		{
			name:           "single condition",
			query:          "I have a splitting headache",
			wantConditions: []string{"headache"},
		},
		{
			name:           "condition via synonym",
			query:          "my head hurts so much",
			wantConditions: []string{"headache"},
		},
		{
			name:           "herb and condition",
			query:          "I'm taking turmeric for my joint pain",
			wantConditions: []string{"joint pain"},
			wantHerbs:      []string{"turmeric"},
		},
		{
			name:            "medication via brand name",
			query:           "I take Coumadin every morning",
			wantMedications: []string{"warfarin"},
		},
		{
			name:            "multiple entity kinds",
			query:           "can I drink ginger tea with aspirin for my fever",
			wantConditions:  []string{"fever"},
			wantHerbs:       []string{"ginger"},
			wantMedications: []string{"aspirin"},
		},
		{
			name:      "aloe vera also matches aloe",
			query:     "is aloe vera good for skin",
			wantHerbs: []string{"aloe vera", "aloe"},
		},
		{
			name:  "nothing recognized",
			query: "what is the weather like",
		},
		{
			name:  "empty query",
			query: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.query)
			assert.Equal(t, tt.wantConditions, got.Conditions)
			assert.Equal(t, tt.wantHerbs, got.Herbs)
			assert.Equal(t, tt.wantMedications, got.Medications)
		})
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	query := "ginger and turmeric with warfarin for my headache and fever"
	first := Extract(query)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Extract(query))
	}
}

func TestExtractIsCaseInsensitive(t *testing.T) {
	lower := Extract("turmeric with warfarin for joint pain")
	upper := Extract("TURMERIC with WARFARIN for JOINT PAIN")
	assert.Equal(t, lower, upper)
}
