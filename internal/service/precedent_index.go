package service

import (
	"strings"

	"sybil/internal/model"
)

// PrecedentIndex answers "does this input reference a known failure
// mode?" over a fixed, ordered incident corpus. The corpus is set at
// construction and never mutated, so lookups are safe from any
// goroutine.
type PrecedentIndex struct {
	records []model.IncidentRecord
}

// NewPrecedentIndex creates an index over the given records. Order is
// significant: Lookup returns the first matching record.
func NewPrecedentIndex(records []model.IncidentRecord) *PrecedentIndex {
	return &PrecedentIndex{records: records}
}

// Lookup returns the first record (in list order) with at least one
// keyword occurring as a substring of the lowercased input, or nil.
//
// First-match-wins is a deliberate contract: an earlier record wins
// even if a later record matches more keywords. Do not upgrade this
// to best-match or ranked similarity; citation behavior downstream
// depends on it.
func (idx *PrecedentIndex) Lookup(text string) *model.IncidentRecord {
	lowered := strings.ToLower(text)

	for i := range idx.records {
		for _, kw := range idx.records[i].Keywords {
			if strings.Contains(lowered, kw) {
				rec := idx.records[i]
				return &rec
			}
		}
	}

	return nil
}
