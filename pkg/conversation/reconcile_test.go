package conversation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReconciler(t *testing.T) (*Reconciler, *Store) {
	t.Helper()
	store := NewStore(NewMemoryBackend(), testLogger(), Options{})
	return NewReconciler(store, testLogger(), 0), store
}

func TestReconcileAdditions(t *testing.T) {
	ctx := context.Background()
	r, store := newTestReconciler(t)

	delta := r.Reconcile(ctx, "u", "I have a headache and I'm taking warfarin")
	assert.ElementsMatch(t, []string{"condition: headache", "medication: warfarin"}, delta.Added)
	assert.Empty(t, delta.Removed)

	uc := store.Context(ctx, "u")
	assert.Equal(t, []string{"headache"}, uc.Conditions)
	assert.Equal(t, []string{"warfarin"}, uc.Medications)

	// Re-mentioning an already stored entity adds nothing.
	delta = r.Reconcile(ctx, "u", "more about warfarin and my headache please")
	assert.Empty(t, delta.Added)
	assert.Equal(t, []string{"warfarin"}, store.Context(ctx, "u").Medications)
}

func TestReconcileHerbAddition(t *testing.T) {
	ctx := context.Background()
	r, store := newTestReconciler(t)

	delta := r.Reconcile(ctx, "u", "is ginger tea good for nausea?")
	assert.Contains(t, delta.Added, "herb: ginger")
	assert.Contains(t, delta.Added, "condition: nausea")
	assert.Equal(t, []string{"ginger"}, store.Context(ctx, "u").Herbs)
}

func TestReconcileRemoval(t *testing.T) {
	ctx := context.Background()
	r, store := newTestReconciler(t)

	r.Reconcile(ctx, "u", "I am taking warfarin and drinking ginger tea")
	require.Equal(t, []string{"warfarin"}, store.Context(ctx, "u").Medications)
	require.Equal(t, []string{"ginger"}, store.Context(ctx, "u").Herbs)

	delta := r.Reconcile(ctx, "u", "I stopped taking warfarin")
	assert.Equal(t, []string{"medication: warfarin"}, delta.Removed)
	assert.Empty(t, delta.Added)
	assert.Empty(t, store.Context(ctx, "u").Medications)
	assert.Equal(t, []string{"ginger"}, store.Context(ctx, "u").Herbs, "herb not mentioned, must survive")

	assert.Equal(t, []string{"warfarin"}, delta.RemovedMedications())
}

func TestReconcileRemovalViaAlias(t *testing.T) {
	ctx := context.Background()
	r, store := newTestReconciler(t)

	r.Reconcile(ctx, "u", "I'm on Coumadin")
	require.Equal(t, []string{"warfarin"}, store.Context(ctx, "u").Medications)

	delta := r.Reconcile(ctx, "u", "my doctor discontinued coumadin")
	assert.Equal(t, []string{"medication: warfarin"}, delta.Removed)
	assert.Empty(t, store.Context(ctx, "u").Medications)
}

func TestReconcileRemovalTurnNeverAdds(t *testing.T) {
	ctx := context.Background()
	r, store := newTestReconciler(t)

	r.Reconcile(ctx, "u", "I take ginger daily")

	// Removal-flavored turn mentioning a brand-new herb: the new mention is
	// dropped, only the removal happens.
	delta := r.Reconcile(ctx, "u", "I stopped ginger because I started turmeric instead")
	assert.Equal(t, []string{"herb: ginger"}, delta.Removed)
	assert.Empty(t, delta.Added)

	uc := store.Context(ctx, "u")
	assert.Empty(t, uc.Herbs)
	assert.NotContains(t, uc.Herbs, "turmeric")
}

func TestReconcileRemovalOfUnknownEntityIsNoop(t *testing.T) {
	ctx := context.Background()
	r, store := newTestReconciler(t)

	delta := r.Reconcile(ctx, "u", "I stopped taking warfarin")
	assert.Empty(t, delta.Removed)
	assert.Empty(t, delta.Added)
	assert.Empty(t, store.Context(ctx, "u").Medications)
}

func TestReconcileShortKeywordGuard(t *testing.T) {
	ctx := context.Background()
	r, store := newTestReconciler(t)

	// "dolo" is a 4-char trigger for paracetamol, above the default cutoff,
	// so it adds even without an addition cue.
	delta := r.Reconcile(ctx, "u", "does dolo help?")
	assert.Contains(t, delta.Added, "medication: paracetamol")

	// With a raised cutoff the bare mention is ignored...
	strict := NewReconciler(store, testLogger(), 10)
	delta = strict.Reconcile(ctx, "v", "does dolo help?")
	assert.Empty(t, delta.Added)

	// ...unless an explicit addition cue is present.
	delta = strict.Reconcile(ctx, "v", "i take dolo sometimes")
	assert.Contains(t, delta.Added, "medication: paracetamol")
}

func TestReconcileIsDeterministic(t *testing.T) {
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		r, store := newTestReconciler(t)
		r.Reconcile(ctx, "u", "I'm taking warfarin and aspirin for my headache")
		delta := r.Reconcile(ctx, "u", "I quit aspirin")

		assert.Equal(t, []string{"medication: aspirin"}, delta.Removed)
		assert.Equal(t, []string{"warfarin"}, store.Context(ctx, "u").Medications)
	}
}

func TestReconcileStoresOnlyCanonicalNames(t *testing.T) {
	ctx := context.Background()
	r, store := newTestReconciler(t)

	r.Reconcile(ctx, "u", "I take Tylenol and Advil for my migraine")
	uc := store.Context(ctx, "u")
	assert.ElementsMatch(t, []string{"paracetamol", "ibuprofen"}, uc.Medications)
	assert.Equal(t, []string{"headache"}, uc.Conditions)
}
