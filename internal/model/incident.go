package model

// IncidentRecord is one entry in the historical failure corpus.
// Records are loaded once at startup and never mutated; keywords are
// stored lowercase and matched by substring containment.
type IncidentRecord struct {
	ID       string   `json:"id" bson:"_id"`
	Name     string   `json:"name" bson:"name"`
	Trigger  string   `json:"trigger" bson:"trigger"`
	Outcome  string   `json:"outcome" bson:"outcome"`
	Keywords []string `json:"keywords" bson:"keywords"`
}

// DefaultIncidents is the built-in precedent corpus. Order matters:
// the precedent index returns the first record that matches.
func DefaultIncidents() []IncidentRecord {
	return []IncidentRecord{
		{
			ID:       "INC-2024-001",
			Name:     "The 'Black Friday' Ledger Corruption",
			Trigger:  "Bypassing QA to rush a hotfix",
			Outcome:  "$4.2M Transaction Reversal",
			Keywords: []string{"bypass", "rush", "hotfix", "production", "friday"},
		},
		{
			ID:       "INC-2023-089",
			Name:     "The API Key Exposure Incident",
			Trigger:  "Hardcoding credentials in deployment script",
			Outcome:  "SEC Audit & Fine",
			Keywords: []string{"key", "cred", "secret", "env", "hardcode"},
		},
		{
			ID:       "INC-2025-012",
			Name:     "The 'Silent Fail' Data Loss",
			Trigger:  "Ignoring unit test failures",
			Outcome:  "72 Hours of Data Irrecoverable",
			Keywords: []string{"test", "ignore", "fail", "unit", "coverage"},
		},
	}
}
