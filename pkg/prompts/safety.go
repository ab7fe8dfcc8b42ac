package prompts

import (
	"fmt"
	"strings"

	"github.com/servvia/servvia/pkg/conversation"
	"github.com/servvia/servvia/pkg/interaction"
)

// SafetyInstructions renders the contraindication block injected into the
// system prompt. Empty when there are no warnings.
func SafetyInstructions(warnings []interaction.Warning) string {
	if len(warnings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n🚨 CRITICAL SAFETY ALERTS 🚨\n")
	for _, w := range warnings {
		fmt.Fprintf(&b, `
**%s SEVERITY - DO NOT RECOMMEND %s**
User is taking: %s
Risk: %s
Safe alternatives to suggest: %s

You MUST:
1. Clearly state that %s should NOT be used with %s
2. Explain the specific risk in simple terms
3. Recommend these safe alternatives instead

`,
			w.Severity, strings.ToUpper(w.Herb),
			w.Medication,
			w.Rationale,
			strings.Join(w.Alternatives, ", "),
			w.Herb, w.Medication)
	}
	return b.String()
}

// MedicationUpdate renders the acknowledgment block for a turn that changed
// the user's medication list. A removal takes priority; at most one block is
// produced.
func MedicationUpdate(delta conversation.Delta) string {
	if removed := delta.RemovedMedications(); len(removed) > 0 {
		return fmt.Sprintf(`
📝 IMPORTANT UPDATE: The user just informed you they STOPPED taking: %s

You MUST:
1. Acknowledge this update at the start of your response (e.g., "Thanks for letting me know you've stopped taking %s...")
2. These medications are NO LONGER a concern for interactions
3. You CAN now recommend remedies that were previously contraindicated due to these medications
`, strings.Join(removed, ", "), removed[0])
	}

	if added := delta.AddedMedications(); len(added) > 0 {
		return fmt.Sprintf(`
📝 UPDATE: The user just mentioned they are taking: %s
Note this for future interactions and check if any recommendations conflict with these medications.
`, strings.Join(added, ", "))
	}

	return ""
}

// JoinOrDefault joins names with commas, substituting fallback when the list
// is empty. Keeps the template free of conditionals.
func JoinOrDefault(names []string, fallback string) string {
	if len(names) == 0 {
		return fallback
	}
	return strings.Join(names, ", ")
}
