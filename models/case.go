package models

// CaseRecord represents a prior case in the reference corpus
type CaseRecord struct {
	DocID        string  `json:"doc_id" yaml:"doc_id" validate:"required"`
	Title        *string `json:"title" yaml:"title"`
	Jurisdiction *string `json:"jurisdiction" yaml:"jurisdiction"`
	CaseType     *string `json:"case_type" yaml:"case_type"`
	URL          *string `json:"url" yaml:"url"`
}

// CaseView is the public projection of a case returned to clients
type CaseView struct {
	DocID        string  `json:"doc_id"`
	Title        *string `json:"title"`
	Jurisdiction *string `json:"jurisdiction"`
	CaseType     *string `json:"case_type"`
	URL          *string `json:"url"`
}

// View projects the case onto its public field set
func (c CaseRecord) View() CaseView {
	return CaseView{
		DocID:        c.DocID,
		Title:        Optional(c.Title),
		Jurisdiction: Optional(c.Jurisdiction),
		CaseType:     Optional(c.CaseType),
		URL:          Optional(c.URL),
	}
}

// Reference builds the support reference that cites this case
func (c CaseRecord) Reference() SupportReference {
	return SupportReference{
		Kind: ReferenceCase,
		Ref:  c.DocID,
		Text: Optional(c.Title),
		URL:  Optional(c.URL),
	}
}

// Clone returns a deep copy of the record
func (c CaseRecord) Clone() CaseRecord {
	return CaseRecord{
		DocID:        c.DocID,
		Title:        clonePtr(c.Title),
		Jurisdiction: clonePtr(c.Jurisdiction),
		CaseType:     clonePtr(c.CaseType),
		URL:          clonePtr(c.URL),
	}
}
