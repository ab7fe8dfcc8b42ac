// Package lexicon holds the static vocabularies the safety engine matches
// queries against: health conditions, herbal remedies and medications.
//
// Entries are kept in explicit ordered slices rather than maps so that scan
// precedence is a property of the data, not of map iteration order.
package lexicon

// Entry maps a canonical name to the surface-text keywords that imply it.
type Entry struct {
	Canonical string
	Keywords  []string
}

// Conditions returns the condition vocabulary in scan order.
func Conditions() []Entry { return conditions }

// Herbs returns the flat herb vocabulary in scan order. Herbs carry no
// keyword aliases; the canonical name is its own trigger.
func Herbs() []string { return herbs }

// Medications returns the medication vocabulary in scan order.
func Medications() []Entry { return medications }

// MedicationKeywords returns the trigger keywords for a canonical medication
// name, or nil if the name is not part of the vocabulary.
func MedicationKeywords(canonical string) []string {
	for _, e := range medications {
		if e.Canonical == canonical {
			return e.Keywords
		}
	}
	return nil
}

// IsHerb reports whether name is part of the herb vocabulary.
func IsHerb(name string) bool {
	for _, h := range herbs {
		if h == name {
			return true
		}
	}
	return false
}

// IsCondition reports whether name is a canonical condition.
func IsCondition(name string) bool {
	for _, e := range conditions {
		if e.Canonical == name {
			return true
		}
	}
	return false
}

// IsMedication reports whether name is a canonical medication.
func IsMedication(name string) bool {
	return MedicationKeywords(name) != nil
}
