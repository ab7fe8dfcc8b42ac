// Package emergency detects life-threatening situations in raw query text.
// A positive classification short-circuits the rest of the pipeline: the
// caller must answer with the canned response and skip every other stage.
package emergency

import "strings"

// Category identifies one class of medical emergency.
type Category string

const (
	CategoryCardiacArrest    Category = "cardiac_arrest"
	CategoryChoking          Category = "choking"
	CategoryCardiac          Category = "cardiac"
	CategoryStroke           Category = "stroke"
	CategoryMentalHealth     Category = "mental_health"
	CategoryPoisoning        Category = "poisoning"
	CategoryAllergicReaction Category = "allergic_reaction"
	CategorySevereBleeding   Category = "severe_bleeding"
)

// categoryOrder fixes the tie-break precedence: most safety-critical first.
// Classify returns the first category with any matching trigger.
var categoryOrder = []Category{
	CategoryCardiacArrest,
	CategoryChoking,
	CategoryCardiac,
	CategoryStroke,
	CategoryMentalHealth,
	CategoryPoisoning,
	CategoryAllergicReaction,
	CategorySevereBleeding,
}

var triggers = map[Category][]string{
	CategoryCardiacArrest:    {"cpr", "not breathing", "stopped breathing", "no pulse", "unconscious not breathing"},
	CategoryChoking:          {"choking", "cant breathe", "can't breathe", "something stuck throat", "heimlich"},
	CategoryCardiac:          {"heart attack", "chest pain", "chest pressure", "heart pain"},
	CategoryStroke:           {"stroke", "face drooping", "arm weakness", "slurred speech", "sudden confusion"},
	CategoryMentalHealth:     {"suicide", "kill myself", "want to die", "end my life", "self harm", "hurt myself"},
	CategoryPoisoning:        {"poisoning", "overdose", "swallowed poison", "took too many pills", "drank bleach"},
	CategoryAllergicReaction: {"anaphylaxis", "allergic reaction severe", "cant breathe allergy", "throat closing"},
	CategorySevereBleeding:   {"severe bleeding", "wont stop bleeding", "blood everywhere", "arterial bleeding"},
}

// Classify scans query for emergency trigger phrases. It returns the highest
// priority matching category, or ok=false when nothing matches. Matching is
// case-insensitive substring search, no side effects.
func Classify(query string) (Category, bool) {
	q := strings.ToLower(query)
	for _, cat := range categoryOrder {
		for _, phrase := range triggers[cat] {
			if strings.Contains(q, phrase) {
				return cat, true
			}
		}
	}
	return "", false
}

// Categories returns every known category in priority order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
