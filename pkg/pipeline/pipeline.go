package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nats-io/nats.go"
	"github.com/openai/openai-go"
	"github.com/samber/lo"

	"github.com/servvia/servvia/pkg/ai"
	"github.com/servvia/servvia/pkg/conversation"
	"github.com/servvia/servvia/pkg/emergency"
	"github.com/servvia/servvia/pkg/extract"
	"github.com/servvia/servvia/pkg/helpers"
	"github.com/servvia/servvia/pkg/interaction"
	"github.com/servvia/servvia/pkg/observability"
	"github.com/servvia/servvia/pkg/profile"
	"github.com/servvia/servvia/pkg/prompts"
	"github.com/servvia/servvia/pkg/retrieval"
)

const (
	// apologyResponse is returned verbatim when generation fails.
	apologyResponse = "I apologize, but I'm having trouble generating a response right now. Please try again in a moment."

	defaultDisplayName = "there"

	// contextChunkLimit is how many retrieved chunks feed the prompt.
	contextChunkLimit = 5

	DefaultRetrievalTimeout  = 15 * time.Second
	DefaultGenerationTimeout = 60 * time.Second
)

// ProfileLookup fetches a stored user profile. Implemented by profile.Store.
type ProfileLookup interface {
	Get(ctx context.Context, userID string) (*profile.Profile, error)
}

// Retriever searches the knowledge base. Implemented by retrieval.Client.
type Retriever interface {
	Search(ctx context.Context, query, userID string, topK int) (retrieval.Result, error)
}

// Rephraser rewrites a follow-up query into a standalone one. Implemented by
// rephrase.Rephraser; expected to fall back to the original query on failure.
type Rephraser interface {
	Rephrase(ctx context.Context, query, history string) string
}

// Deps collects the orchestrator's collaborators. Store, Reconciler and
// Completion are required; the rest may be nil and the matching stage is
// skipped or degraded.
type Deps struct {
	Logger     *log.Logger
	Store      *conversation.Store
	Reconciler *conversation.Reconciler
	Profiles   ProfileLookup
	Retriever  Retriever
	Rephraser  Rephraser
	Completion ai.Completion
	Model      string
	Metrics    *observability.Metrics
	Nats       *nats.Conn

	TopK              int
	RetrievalTimeout  time.Duration
	GenerationTimeout time.Duration
}

// Orchestrator runs the per-turn state machine: emergency check, entity
// extraction, context reconciliation, interaction evaluation, retrieval,
// generation. Every turn ends in a well-formed Envelope regardless of which
// collaborators fail along the way.
type Orchestrator struct {
	logger     *log.Logger
	store      *conversation.Store
	reconciler *conversation.Reconciler
	profiles   ProfileLookup
	retriever  Retriever
	rephraser  Rephraser
	completion ai.Completion
	model      string
	metrics    *observability.Metrics
	nc         *nats.Conn

	topK              int
	retrievalTimeout  time.Duration
	generationTimeout time.Duration
}

func NewOrchestrator(deps Deps) *Orchestrator {
	if deps.TopK <= 0 {
		deps.TopK = retrieval.DefaultTopK
	}
	if deps.RetrievalTimeout <= 0 {
		deps.RetrievalTimeout = DefaultRetrievalTimeout
	}
	if deps.GenerationTimeout <= 0 {
		deps.GenerationTimeout = DefaultGenerationTimeout
	}
	return &Orchestrator{
		logger:            deps.Logger,
		store:             deps.Store,
		reconciler:        deps.Reconciler,
		profiles:          deps.Profiles,
		retriever:         deps.Retriever,
		rephraser:         deps.Rephraser,
		completion:        deps.Completion,
		model:             deps.Model,
		metrics:           deps.Metrics,
		nc:                deps.Nats,
		topK:              deps.TopK,
		retrievalTimeout:  deps.RetrievalTimeout,
		generationTimeout: deps.GenerationTimeout,
	}
}

// Answer processes one user turn. It never returns an error; every fault
// path degrades into the envelope.
func (o *Orchestrator) Answer(ctx context.Context, userID, query string) Envelope {
	started := time.Now()

	env := o.answer(ctx, userID, query)

	o.logger.Info("turn complete",
		"user", userID,
		"intent", env.Intent,
		"warnings", env.InteractionWarningCount,
		"chunks", env.RetrievalChunkCount,
		"tokens", env.TokenUsage.Total,
		"duration", time.Since(started))

	if o.metrics != nil {
		o.metrics.Turns.WithLabelValues(string(env.Intent)).Inc()
		o.metrics.TokensUsed.WithLabelValues("prompt").Add(float64(env.TokenUsage.Prompt))
		o.metrics.TokensUsed.WithLabelValues("completion").Add(float64(env.TokenUsage.Completion))
		o.metrics.ObserveStage("turn", time.Since(started))
	}
	o.publish(userID, env)
	return env
}

func (o *Orchestrator) answer(ctx context.Context, userID, query string) Envelope {
	if cat, ok := emergency.Classify(query); ok {
		return o.answerEmergency(ctx, userID, query, cat)
	}

	entities := extract.Extract(query)

	delta := o.reconcile(ctx, userID, query)
	removedMeds := delta.RemovedMedications()

	// History is fetched before the current message is appended so the
	// prompt separates prior turns from the current question.
	// History and the follow-up check read prior turns only, so both run
	// before the current message is appended.
	history := o.store.FormattedHistory(ctx, userID, conversation.DefaultFormattedMessages)
	followUp := o.store.IsFollowUp(ctx, userID, query)
	o.store.AppendMessage(ctx, userID, conversation.RoleUser, query)

	uc := o.store.Context(ctx, userID)
	prof := o.lookupProfile(ctx, userID)

	allConditions := lo.Uniq(append(append([]string{}, uc.Conditions...), entities.Conditions...))
	allHerbs := lo.Uniq(append(append([]string{}, uc.Herbs...), entities.Herbs...))
	allMedications := mergeMedications(prof.Medications, uc.Medications, entities.Medications, removedMeds)

	currentCondition := ""
	if len(entities.Conditions) > 0 {
		currentCondition = entities.Conditions[0]
	} else if len(allConditions) > 0 {
		currentCondition = allConditions[len(allConditions)-1]
	}

	warnings := o.evaluate(allHerbs, allMedications)
	warnings = interaction.FilterRemoved(warnings, removedMeds)
	if o.metrics != nil && len(warnings) > 0 {
		o.metrics.InteractionWarnings.Add(float64(len(warnings)))
	}

	rephrased := query
	if o.rephraser != nil {
		rephrased = o.rephraser.Rephrase(ctx, query, history)
	}

	result, contextText := o.retrieve(ctx, rephrased, userID)

	systemPrompt, err := prompts.BuildHealthChatSystemPrompt(prompts.HealthChatSystemPrompt{
		UserName:           prof.DisplayName,
		Allergies:          strings.Join(prof.Allergies, ", "),
		ProfileConditions:  strings.Join(prof.Conditions, ", "),
		ProfileMedications: strings.Join(prof.Medications, ", "),
		CurrentCondition:   currentCondition,
		Conditions:         strings.Join(allConditions, ", "),
		Herbs:              strings.Join(allHerbs, ", "),
		Medications:        strings.Join(allMedications, ", "),
		MedicationUpdate:   prompts.MedicationUpdate(delta),
		SafetyInstructions: prompts.SafetyInstructions(warnings),
		History:            history,
		FollowUp:           followUp,
	})
	if err != nil {
		o.logger.Error("system prompt build failed", "error", err)
	}

	responseText, usage, retries := o.generate(ctx, systemPrompt, contextText, query)

	o.store.AppendMessage(ctx, userID, conversation.RoleAssistant, responseText)

	return Envelope{
		FinalResponseText:       responseText,
		Intent:                  IntentNormal,
		CurrentCondition:        currentCondition,
		InteractionWarningCount: len(warnings),
		InteractionNote:         interactionNote(warnings, removedMeds),
		RetrievalChunkCount:     len(result.Chunks),
		TokenUsage:              usage,
		GenerationRetries:       retries,
		ContextDelta:            delta,
	}
}

func (o *Orchestrator) answerEmergency(ctx context.Context, userID, query string, cat emergency.Category) Envelope {
	o.logger.Warn("emergency detected", "user", userID, "category", cat)
	if o.metrics != nil {
		o.metrics.Emergencies.WithLabelValues(string(cat)).Inc()
	}

	response := emergency.Response(cat)
	o.store.AppendMessage(ctx, userID, conversation.RoleUser, query)
	o.store.AppendMessage(ctx, userID, conversation.RoleAssistant, response)

	return Envelope{
		FinalResponseText: response,
		Intent:            IntentEmergency,
		EmergencyCategory: string(cat),
	}
}

// reconcile isolates the context update so an unexpected panic in the pure
// reconciliation path costs only this turn's delta, not the turn itself.
func (o *Orchestrator) reconcile(ctx context.Context, userID, query string) (delta conversation.Delta) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("reconciliation failed", "user", userID, "panic", r)
			delta = conversation.Delta{}
		}
	}()
	return o.reconciler.Reconcile(ctx, userID, query)
}

func (o *Orchestrator) evaluate(herbs, medications []string) (warnings []interaction.Warning) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("interaction evaluation failed", "panic", r)
			warnings = nil
		}
	}()
	return interaction.Evaluate(herbs, medications)
}

func (o *Orchestrator) lookupProfile(ctx context.Context, userID string) profile.Profile {
	empty := profile.Profile{UserID: userID, DisplayName: defaultDisplayName}
	if o.profiles == nil {
		return empty
	}
	p, err := o.profiles.Get(ctx, userID)
	if err != nil {
		if err != profile.ErrNotFound {
			o.logger.Warn("profile lookup failed", "user", userID, "error", err)
		}
		return empty
	}
	if p.DisplayName == "" {
		p.DisplayName = defaultDisplayName
	}
	return *p
}

func (o *Orchestrator) retrieve(ctx context.Context, query, userID string) (retrieval.Result, string) {
	if o.retriever == nil {
		return retrieval.Result{}, ""
	}

	started := time.Now()
	rctx, cancel := context.WithTimeout(ctx, o.retrievalTimeout)
	defer cancel()

	result, err := o.retriever.Search(rctx, query, userID, o.topK)
	if o.metrics != nil {
		o.metrics.ObserveStage("retrieval", time.Since(started))
	}
	if err != nil {
		o.logger.Warn("retrieval failed", "user", userID, "error", err)
		return retrieval.Result{}, ""
	}

	texts := make([]string, 0, contextChunkLimit)
	for _, chunk := range result.Chunks {
		if len(texts) == contextChunkLimit {
			break
		}
		if chunk.Text != "" {
			texts = append(texts, chunk.Text)
		}
	}
	return result, strings.Join(texts, "\n\n")
}

func (o *Orchestrator) generate(ctx context.Context, systemPrompt, contextText, query string) (string, TokenUsage, int) {
	prompt := prompts.BuildGenerationPrompt(systemPrompt, contextText, query)

	started := time.Now()
	gctx, cancel := context.WithTimeout(ctx, o.generationTimeout)
	defer cancel()

	result, err := o.completion.Completions(gctx, []openai.ChatCompletionMessageParamUnion{
		openai.UserMessage(prompt),
	}, o.model)
	if o.metrics != nil {
		o.metrics.ObserveStage("generation", time.Since(started))
	}
	if err != nil || strings.TrimSpace(result.Content) == "" {
		o.logger.Error("generation failed", "error", err, "retries", result.Retries)
		return apologyResponse, TokenUsage{}, result.Retries
	}

	usage := TokenUsage{
		Prompt:     result.PromptTokens,
		Completion: result.CompletionTokens,
		Total:      result.TotalTokens,
	}
	return result.Content, usage, result.Retries
}

func (o *Orchestrator) publish(userID string, env Envelope) {
	if o.nc == nil {
		return
	}
	if err := helpers.NatsPublish(o.nc, "chat."+userID, env); err != nil {
		o.logger.Warn("envelope publish failed", "user", userID, "error", err)
	}
}

// mergeMedications unions the profile, accumulated and current-turn
// medication sets, then drops anything the user reported stopping this turn.
func mergeMedications(profileMeds, storedMeds, currentMeds, removed []string) []string {
	merged := lo.Uniq(append(append(append([]string{}, profileMeds...), storedMeds...), currentMeds...))
	if len(removed) == 0 {
		return merged
	}
	return lo.Filter(merged, func(med string, _ int) bool {
		medLower := strings.ToLower(med)
		for _, r := range removed {
			if medLower == r {
				return false
			}
		}
		return true
	})
}

// interactionNote is a one-line summary of the most severe warning carried on
// the envelope for presentation layers. Blank when the only warnings concern
// medications the user just stopped.
func interactionNote(warnings []interaction.Warning, removedMeds []string) string {
	if len(warnings) == 0 {
		return ""
	}
	top := warnings[0]
	for _, w := range warnings[1:] {
		if w.Severity.AtLeast(top.Severity) && w.Severity != top.Severity {
			top = w
		}
	}
	note := string(top.Severity) + ": avoid " + top.Herb + " while taking " + top.Medication
	if interaction.MentionsMedication(note, removedMeds) {
		return ""
	}
	return note
}
