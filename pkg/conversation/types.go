package conversation

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// UserContext is the accumulated, turn-spanning state tracked for one user.
// The slices behave as sets of canonical lexicon names; order is the order
// entities were first observed in.
type UserContext struct {
	Conditions  []string  `json:"conditions"`
	Herbs       []string  `json:"herbs"`
	Medications []string  `json:"medications"`
	LastUpdated time.Time `json:"last_updated"`
}

// Delta records the additions and removals one turn applied to stored
// context. Entries are tagged with their entity kind, e.g.
// "medication: warfarin". Ephemeral, never persisted.
type Delta struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

const (
	kindCondition  = "condition"
	kindHerb       = "herb"
	kindMedication = "medication"
)

func tagged(kind, name string) string { return kind + ": " + name }

// RemovedMedications returns the canonical medication names in Removed,
// lower-cased, with the kind tag stripped.
func (d Delta) RemovedMedications() []string {
	var meds []string
	for _, r := range d.Removed {
		if rest, ok := strings.CutPrefix(r, kindMedication+": "); ok {
			meds = append(meds, strings.ToLower(rest))
		}
	}
	return meds
}

// AddedMedications returns the canonical medication names in Added with the
// kind tag stripped.
func (d Delta) AddedMedications() []string {
	var meds []string
	for _, a := range d.Added {
		if rest, ok := strings.CutPrefix(a, kindMedication+": "); ok {
			meds = append(meds, rest)
		}
	}
	return meds
}

// Empty reports whether the turn changed nothing.
func (d Delta) Empty() bool { return len(d.Added) == 0 && len(d.Removed) == 0 }

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}

func remove(set []string, name string) []string {
	out := set[:0]
	for _, s := range set {
		if s != name {
			out = append(out, s)
		}
	}
	return out
}
