package pipeline

import "github.com/servvia/servvia/pkg/conversation"

// Intent labels how a turn was resolved.
type Intent string

const (
	IntentEmergency Intent = "emergency"
	IntentNormal    Intent = "normal"
)

// TokenUsage is the LLM token accounting for one turn. All zeros when
// generation failed or was never reached.
type TokenUsage struct {
	Prompt     int64 `json:"prompt"`
	Completion int64 `json:"completion"`
	Total      int64 `json:"total"`
}

// Envelope is the per-turn output consumed by presentation and storage
// layers. Always well-formed: every fault path lands here with defaults
// rather than erroring.
type Envelope struct {
	FinalResponseText       string             `json:"final_response_text"`
	Intent                  Intent             `json:"intent"`
	EmergencyCategory       string             `json:"emergency_category,omitempty"`
	CurrentCondition        string             `json:"current_condition,omitempty"`
	InteractionWarningCount int                `json:"interaction_warning_count"`
	InteractionNote         string             `json:"interaction_note,omitempty"`
	RetrievalChunkCount     int                `json:"retrieval_chunk_count"`
	TokenUsage              TokenUsage         `json:"token_usage"`
	GenerationRetries       int                `json:"generation_retries"`
	ContextDelta            conversation.Delta `json:"context_delta"`
}
