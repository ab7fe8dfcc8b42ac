package prompts

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"
)

//go:embed templates/health_chat_system_prompt.tmpl
var healthChatSystemPromptTemplate string

// HealthChatSystemPrompt carries everything the system prompt needs: profile
// data, accumulated conversation context, the per-turn medication update and
// safety block, and formatted history. List fields are pre-joined strings so
// the template stays declarative.
type HealthChatSystemPrompt struct {
	UserName           string
	Allergies          string
	ProfileConditions  string
	ProfileMedications string
	CurrentCondition   string
	Conditions         string
	Herbs              string
	Medications        string
	MedicationUpdate   string
	SafetyInstructions string
	History            string
	FollowUp           bool
}

func BuildHealthChatSystemPrompt(data HealthChatSystemPrompt) (string, error) {
	systemPromptTmpl := template.Must(template.New("system_prompt").Parse(healthChatSystemPromptTemplate))
	var buf bytes.Buffer
	if err := systemPromptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// knowledgeContextCap bounds how much retrieved text goes into the prompt.
const knowledgeContextCap = 3000

// BuildGenerationPrompt assembles the full prompt: system prompt, retrieved
// knowledge context (capped), and the user's question.
func BuildGenerationPrompt(systemPrompt, knowledgeContext, query string) string {
	context := strings.TrimSpace(knowledgeContext)
	if context == "" {
		context = "Using general natural home knowledge."
	} else if len(context) > knowledgeContextCap {
		context = context[:knowledgeContextCap]
	}

	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n=== KNOWLEDGE BASE CONTEXT ===\n")
	b.WriteString(context)
	b.WriteString("\n\n=== USER'S CURRENT QUESTION ===\n")
	b.WriteString(query)
	b.WriteString("\n\n=== YOUR RESPONSE ===\nProvide a helpful, detailed response following the guidelines above:")
	return b.String()
}
