package service

import (
	"fmt"
	"strings"

	"sybil/internal/model"
)

// policyExcerptChars bounds the policy text embedded into a prompt so
// the rest of the payload still fits the context window.
const policyExcerptChars = 4000

// noCitation is the citation value when no precedent matched.
const noCitation = "None"

// BuildPrompt composes the single tribunal inference prompt from the
// scenario, the user's justification, the matched precedent (nil when
// none), the policy snapshot, and the rubric. It returns the prompt
// text plus the citation fallback value the parser uses when the
// model omits its own citation.
func BuildPrompt(scenarioCtx, userInput string, actions []string, precedent *model.IncidentRecord, policy string, rubric map[string]string) (prompt, citationFallback string) {
	precedentText := "NO PRIOR INCIDENTS FOUND."
	citationFallback = noCitation

	if precedent != nil {
		citationFallback = precedent.Name
		precedentText = fmt.Sprintf(`CRITICAL WARNING - HISTORICAL MATCH FOUND:
Incident ID: %s
Event: %s
Cause: %s
Outcome: %s`, precedent.ID, precedent.Name, precedent.Trigger, precedent.Outcome)
	}

	policyContext := "NO SPECIFIC POLICY LOADED."
	if policy != "" {
		if runes := []rune(policy); len(runes) > policyExcerptChars {
			policy = string(runes[:policyExcerptChars])
		}
		policyContext = fmt.Sprintf("ACTIVE POLICY (THE LAW):\n%s", policy)
	}

	actionsText := "none selected"
	if len(actions) > 0 {
		actionsText = strings.Join(actions, ", ")
	}

	prompt = fmt.Sprintf(`CONTEXT:
You are S.Y.B.I.L., a Tribunal of 3 Sub-Personalities:
1. HAWK (Risk/Compliance - Aggressive)
2. DOVE (Business Value - Forgiving)
3. OWL (Logic/Coherence - Neutral)

INPUT DATA:
[MEMORY]: %s
[POLICY]: %s
[SCENARIO]: %s
[SELECTED ACTIONS]: %s
[USER ACTION]: "%s"

RUBRIC:
%s
TASK:
Evaluate the USER ACTION against the MEMORY and POLICY.
If a Memory or Policy violation exists, HAWK must be 5/5 (High Risk).

OUTPUT FORMAT:
Respond ONLY with valid JSON. Do not write explanations outside the JSON.
{
    "HAWK": { "score": <int 1-5>, "reasoning": "<string>" },
    "DOVE": { "score": <int 1-5>, "reasoning": "<string>" },
    "OWL":  { "score": <int 1-5>, "reasoning": "<string>" },
    "citation": "%s"
}`, precedentText, policyContext, scenarioCtx, actionsText, userInput, rubricText(rubric), citationFallback)

	return prompt, citationFallback
}

// rubricText renders the rubric in canonical judge order so prompts
// are deterministic regardless of map iteration.
func rubricText(rubric map[string]string) string {
	var sb strings.Builder
	for _, judge := range model.JudgeOrder {
		instruction, ok := rubric[judge]
		if !ok {
			instruction, ok = rubric[strings.ToLower(judge)]
		}
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("- %s: %s\n", judge, instruction))
	}
	return sb.String()
}
