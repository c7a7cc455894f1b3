package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PolicyIngestor extracts text from an uploaded policy PDF and
// installs it as the active policy.
type PolicyIngestor struct {
	store *PolicyStore
}

// NewPolicyIngestor creates an ingestor writing into store.
func NewPolicyIngestor(store *PolicyStore) *PolicyIngestor {
	return &PolicyIngestor{store: store}
}

// LoadPDF extracts the text of every page and replaces the active
// policy snapshot. It returns the stored length in characters.
func (p *PolicyIngestor) LoadPDF(content []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unextractable page should not lose the rest.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	p.store.SetActive(sb.String())
	return len([]rune(p.store.Current())), nil
}
