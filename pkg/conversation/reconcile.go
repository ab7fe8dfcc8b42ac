package conversation

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/servvia/servvia/pkg/lexicon"
)

// removalPhrases flags a turn as a removal event for medications/herbs.
var removalPhrases = []string{
	"stopped taking", "stop taking", "no longer take", "not taking anymore",
	"don't take anymore", "dont take anymore", "stopped using", "no longer use",
	"quit taking", "off of", "discontinued", "not on anymore", "no longer on",
	"stopped", "quit", "gave up", "not anymore", "no more",
}

// additionPhrases flags an explicit medication addition cue.
var additionPhrases = []string{
	"i take", "i am taking", "i'm taking", "taking", "i use", "i am using",
	"i'm using", "i am on", "i'm on", "prescribed", "started taking",
	"doctor gave", "put me on", "been taking",
}

// DefaultAdditionKeywordMinLen guards against noisy short trigger tokens
// adding a medication when no explicit addition cue is present. The cutoff
// is a heuristic, not load-bearing; it is configurable for that reason.
const DefaultAdditionKeywordMinLen = 3

// Reconciler decides whether a turn adds to or removes from a user's stored
// context and applies the change, returning the per-turn delta.
type Reconciler struct {
	store                 *Store
	logger                *log.Logger
	additionKeywordMinLen int
}

func NewReconciler(store *Store, logger *log.Logger, additionKeywordMinLen int) *Reconciler {
	if additionKeywordMinLen <= 0 {
		additionKeywordMinLen = DefaultAdditionKeywordMinLen
	}
	return &Reconciler{
		store:                 store,
		logger:                logger,
		additionKeywordMinLen: additionKeywordMinLen,
	}
}

// Reconcile runs one read-modify-write cycle against the user's stored
// context, serialized per user. A turn containing any removal phrase is
// treated as exclusively a removal turn: no additions are considered, even
// if the text also mentions a never-seen entity.
func (r *Reconciler) Reconcile(ctx context.Context, user, query string) Delta {
	unlock := r.store.lockUser(user)
	defer unlock()

	q := strings.ToLower(query)
	uc := r.store.Context(ctx, user)

	var delta Delta
	if containsAny(q, removalPhrases) {
		r.applyRemovals(q, &uc, &delta)
	} else {
		r.applyAdditions(q, &uc, &delta)
	}

	r.store.SetContext(ctx, user, uc)

	if !delta.Empty() {
		r.logger.Info("Context updated",
			"user", userKey(user),
			"added", len(delta.Added),
			"removed", len(delta.Removed))
	}
	return delta
}

func (r *Reconciler) applyRemovals(q string, uc *UserContext, delta *Delta) {
	for _, entry := range lexicon.Medications() {
		if !contains(uc.Medications, entry.Canonical) {
			continue
		}
		for _, kw := range entry.Keywords {
			if strings.Contains(q, kw) {
				uc.Medications = remove(uc.Medications, entry.Canonical)
				delta.Removed = append(delta.Removed, tagged(kindMedication, entry.Canonical))
				r.logger.Debug("Removed medication", "name", entry.Canonical)
				break
			}
		}
	}

	for _, herb := range lexicon.Herbs() {
		if strings.Contains(q, herb) && contains(uc.Herbs, herb) {
			uc.Herbs = remove(uc.Herbs, herb)
			delta.Removed = append(delta.Removed, tagged(kindHerb, herb))
			r.logger.Debug("Removed herb", "name", herb)
		}
	}
}

func (r *Reconciler) applyAdditions(q string, uc *UserContext, delta *Delta) {
	for _, entry := range lexicon.Conditions() {
		for _, kw := range entry.Keywords {
			if strings.Contains(q, kw) {
				if !contains(uc.Conditions, entry.Canonical) {
					uc.Conditions = append(uc.Conditions, entry.Canonical)
					delta.Added = append(delta.Added, tagged(kindCondition, entry.Canonical))
					r.logger.Debug("Added condition", "name", entry.Canonical)
				}
				break
			}
		}
	}

	for _, herb := range lexicon.Herbs() {
		if strings.Contains(q, herb) && !contains(uc.Herbs, herb) {
			uc.Herbs = append(uc.Herbs, herb)
			delta.Added = append(delta.Added, tagged(kindHerb, herb))
			r.logger.Debug("Added herb", "name", herb)
		}
	}

	isAdditionContext := containsAny(q, additionPhrases)
	for _, entry := range lexicon.Medications() {
		for _, kw := range entry.Keywords {
			if strings.Contains(q, kw) {
				if isAdditionContext || len(kw) > r.additionKeywordMinLen {
					if !contains(uc.Medications, entry.Canonical) {
						uc.Medications = append(uc.Medications, entry.Canonical)
						delta.Added = append(delta.Added, tagged(kindMedication, entry.Canonical))
						r.logger.Debug("Added medication", "name", entry.Canonical)
					}
				}
				break
			}
		}
	}
}

func containsAny(q string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(q, p) {
			return true
		}
	}
	return false
}
