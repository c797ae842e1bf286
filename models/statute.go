package models

// StatuteRecord represents a statute in the reference corpus
type StatuteRecord struct {
	DocID        string  `json:"doc_id" yaml:"doc_id" validate:"required"`
	Title        *string `json:"title" yaml:"title"`
	Citation     *string `json:"citation" yaml:"citation"`
	Jurisdiction *string `json:"jurisdiction" yaml:"jurisdiction"`
	CaseType     *string `json:"case_type" yaml:"case_type"` // Used for matching only, never echoed
	URL          *string `json:"url" yaml:"url"`
}

// StatuteView is the public projection of a statute returned to clients
type StatuteView struct {
	DocID        string  `json:"doc_id"`
	Title        *string `json:"title"`
	Citation     *string `json:"citation"`
	Jurisdiction *string `json:"jurisdiction"`
	URL          *string `json:"url"`
}

// View projects the statute onto its public field set
func (s StatuteRecord) View() StatuteView {
	return StatuteView{
		DocID:        s.DocID,
		Title:        Optional(s.Title),
		Citation:     Optional(s.Citation),
		Jurisdiction: Optional(s.Jurisdiction),
		URL:          Optional(s.URL),
	}
}

// Reference builds the support reference that cites this statute
func (s StatuteRecord) Reference() SupportReference {
	return SupportReference{
		Kind: ReferenceStatute,
		Ref:  s.DocID,
		Text: Optional(s.Citation),
		URL:  Optional(s.URL),
	}
}

// Clone returns a deep copy of the record
func (s StatuteRecord) Clone() StatuteRecord {
	return StatuteRecord{
		DocID:        s.DocID,
		Title:        clonePtr(s.Title),
		Citation:     clonePtr(s.Citation),
		Jurisdiction: clonePtr(s.Jurisdiction),
		CaseType:     clonePtr(s.CaseType),
		URL:          clonePtr(s.URL),
	}
}

func clonePtr(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
