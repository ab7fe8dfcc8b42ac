package interaction

import "strings"

// Warning is one herb-medication contraindication, produced fresh per turn.
type Warning struct {
	Herb         string   `json:"herb"`
	Medication   string   `json:"medication"`
	Severity     Severity `json:"severity"`
	Rationale    string   `json:"rationale"`
	Alternatives []string `json:"alternatives"`
}

// Evaluate cross-references every herb in herbs against every medication in
// medications. A pair matches when any matrix drug keyword is a substring of
// the medication name or vice versa; at most one warning is emitted per
// pair. Output order follows the input herb order then medication order,
// not severity. Callers wanting severity order must sort explicitly.
func Evaluate(herbs, medications []string) []Warning {
	if len(herbs) == 0 || len(medications) == 0 {
		return nil
	}

	var warnings []Warning
	for _, herb := range herbs {
		entry, ok := matrix[strings.TrimSpace(strings.ToLower(herb))]
		if !ok {
			continue
		}
		for _, med := range medications {
			medLower := strings.TrimSpace(strings.ToLower(med))
			for _, drug := range entry.Drugs {
				if strings.Contains(medLower, drug) || strings.Contains(drug, medLower) {
					warnings = append(warnings, Warning{
						Herb:         herb,
						Medication:   med,
						Severity:     entry.Severity,
						Rationale:    entry.Rationale,
						Alternatives: entry.Alternatives,
					})
					break
				}
			}
		}
	}
	return warnings
}

// FilterRemoved drops warnings about medications the user just reported
// discontinuing. Matching is case-insensitive substring in both directions,
// mirroring Evaluate.
func FilterRemoved(warnings []Warning, removedMedications []string) []Warning {
	if len(warnings) == 0 || len(removedMedications) == 0 {
		return warnings
	}

	kept := warnings[:0]
	for _, w := range warnings {
		if !mentionsAnyMedication(w.Medication, removedMedications) {
			kept = append(kept, w)
		}
	}
	return kept
}

// MentionsMedication reports whether text refers to any of the given
// medications. Used to blank interaction notes attached to retrieved content
// once a medication is discontinued.
func MentionsMedication(text string, medications []string) bool {
	lower := strings.ToLower(text)
	for _, med := range medications {
		if med == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(med)) {
			return true
		}
	}
	return false
}

func mentionsAnyMedication(medication string, removed []string) bool {
	medLower := strings.ToLower(medication)
	for _, r := range removed {
		rLower := strings.ToLower(r)
		if rLower == "" {
			continue
		}
		if strings.Contains(medLower, rLower) || strings.Contains(rLower, medLower) {
			return true
		}
	}
	return false
}
