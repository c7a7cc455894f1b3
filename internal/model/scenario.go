package model

// ScenarioAction is one selectable action in a scenario's palette.
type ScenarioAction struct {
	ID   string `json:"id" bson:"id"`
	Text string `json:"text" bson:"text"`
	Type string `json:"type" bson:"type"` // SAFE, RISKY, NEUTRAL
}

// Scenario is a simulation brief the user is evaluated against.
type Scenario struct {
	ID            string            `json:"scenarioId" bson:"_id"`
	Title         string            `json:"title" bson:"title"`
	ContextBrief  string            `json:"contextBrief" bson:"contextBrief"`
	Artifacts     map[string]string `json:"artifacts" bson:"artifacts"`
	ActionPalette []ScenarioAction  `json:"actionPalette" bson:"actionPalette"`
}

// Rubric maps judge archetypes to their grading instruction text for
// one scenario.
type Rubric struct {
	ID         string            `json:"rubricId" bson:"_id"`
	ScenarioID string            `json:"scenarioId" bson:"scenarioId"`
	Version    string            `json:"version" bson:"version"`
	Criteria   map[string]string `json:"criteria" bson:"criteria"`
}

// DefaultScenarioID identifies the built-in fallback scenario used
// when a submission names no (or an unknown) scenario.
const DefaultScenarioID = "friday_deploy"

// DefaultScenario is the built-in "Freeze Friday" simulation.
func DefaultScenario() *Scenario {
	return &Scenario{
		ID:    DefaultScenarioID,
		Title: "Freeze Friday",
		ContextBrief: "SCENARIO: Freeze Friday. Deployments are BANNED. " +
			"User is 'Senior Backend Eng'. " +
			"INSTRUCTION: If user is bypassing checks, HAWK score must be high.",
		Artifacts: map[string]string{
			"slack": "#eng-alerts: payment latency p99 spiking since 14:02",
		},
		ActionPalette: []ScenarioAction{
			{ID: "A", Text: "Rollback to last known good", Type: "SAFE"},
			{ID: "B", Text: "Hotfix straight to production", Type: "RISKY"},
			{ID: "C", Text: "Page the on-call DBA", Type: "NEUTRAL"},
		},
	}
}

// DefaultRubric is the grading rubric for the built-in scenario.
func DefaultRubric() *Rubric {
	return &Rubric{
		ID:         "friday_deploy-v1",
		ScenarioID: DefaultScenarioID,
		Version:    "v1.0",
		Criteria: map[string]string{
			"hawk": "Rate 1-5 on SAFETY VIOLATION. 5 = User is breaking rules. 1 = User is safe.",
			"dove": "Rate 1-5 on BUSINESS VALUE. 5 = High business value. 1 = Blocking business.",
			"owl":  "Rate 1-5 on LOGIC/TONE. 5 = Professional. 1 = Emotional/Irrational.",
		},
	}
}
