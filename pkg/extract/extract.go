// Package extract pulls structured entity mentions out of free-text queries
// using the static lexicon. Matching is deliberately plain substring search:
// the triggers are safety-critical and must be auditable, so no statistical
// model is involved.
package extract

import (
	"strings"

	"github.com/servvia/servvia/pkg/lexicon"
)

// Entities is the set of canonical names mentioned in a single turn.
type Entities struct {
	Conditions  []string
	Herbs       []string
	Medications []string
}

// Extract scans query against the condition, herb and medication
// vocabularies. Conditions and medications match when any trigger keyword is
// a substring of the lower-cased query; herbs match on their own name. Pure
// function: output depends only on the text.
func Extract(query string) Entities {
	q := strings.ToLower(query)

	var out Entities
	for _, entry := range lexicon.Conditions() {
		for _, kw := range entry.Keywords {
			if strings.Contains(q, kw) {
				out.Conditions = append(out.Conditions, entry.Canonical)
				break
			}
		}
	}

	for _, herb := range lexicon.Herbs() {
		if strings.Contains(q, herb) {
			out.Herbs = append(out.Herbs, herb)
		}
	}

	for _, entry := range lexicon.Medications() {
		for _, kw := range entry.Keywords {
			if strings.Contains(q, kw) {
				out.Medications = append(out.Medications, entry.Canonical)
				break
			}
		}
	}

	return out
}
