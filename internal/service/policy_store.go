package service

import "sync"

// maxPolicyChars caps the stored policy text to stay inside the model
// context window.
const maxPolicyChars = 10000

// PolicyStore holds the currently active policy text in a single
// process-wide slot. The latest successful ingestion fully replaces
// the previous snapshot; no versioning, no merge. Concurrent SetActive
// calls race last-writer-wins, but each individual swap is atomic, so
// a reader never observes a half-written blob. That weak-consistency
// window is accepted: policy replacement is rare and not
// safety-critical to linearize strictly.
type PolicyStore struct {
	mu   sync.RWMutex
	text string
}

// NewPolicyStore creates an empty policy store.
func NewPolicyStore() *PolicyStore {
	return &PolicyStore{}
}

// SetActive replaces the active policy with the first 10,000
// characters of text.
func (s *PolicyStore) SetActive(text string) {
	if runes := []rune(text); len(runes) > maxPolicyChars {
		text = string(runes[:maxPolicyChars])
	}

	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Current returns the active policy text, or "" if none was ever set.
func (s *PolicyStore) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}
