package models

import (
	"encoding/json"
	"fmt"
)

// ResearchQuery is the structured research question. Absent fields match every record.
type ResearchQuery struct {
	Jurisdiction *string
	CaseType     *string
}

// NewResearchQuery builds a query from raw request values, treating empty strings as absent
func NewResearchQuery(jurisdiction, caseType string) ResearchQuery {
	return ResearchQuery{
		Jurisdiction: Optional(&jurisdiction),
		CaseType:     Optional(&caseType),
	}
}

// QueryUsed echoes the query back to the client
type QueryUsed struct {
	Jurisdiction *string `json:"jurisdiction"`
	CaseType     *string `json:"case_type"`
}

// ReferenceKind tags a SupportReference
type ReferenceKind string

const (
	ReferenceStatute ReferenceKind = "statute"
	ReferenceCase    ReferenceKind = "case"
)

// SupportReference cites a statute or a case.
// Text holds the citation for statutes and the title for cases.
type SupportReference struct {
	Kind ReferenceKind
	Ref  string
	Text *string
	URL  *string
}

type statuteSupportJSON struct {
	Type     ReferenceKind `json:"type"`
	Ref      string        `json:"ref"`
	Citation *string       `json:"citation"`
	URL      *string       `json:"url"`
}

type caseSupportJSON struct {
	Type  ReferenceKind `json:"type"`
	Ref   string        `json:"ref"`
	Title *string       `json:"title"`
	URL   *string       `json:"url"`
}

// MarshalJSON renders the reference with the display field named after its kind
func (r SupportReference) MarshalJSON() ([]byte, error) {
	switch r.Kind {
	case ReferenceStatute:
		return json.Marshal(statuteSupportJSON{Type: r.Kind, Ref: r.Ref, Citation: r.Text, URL: r.URL})
	case ReferenceCase:
		return json.Marshal(caseSupportJSON{Type: r.Kind, Ref: r.Ref, Title: r.Text, URL: r.URL})
	default:
		return nil, fmt.Errorf("unknown support reference kind: %q", r.Kind)
	}
}

// ArgumentPoint is a templated argument with the references supporting it
type ArgumentPoint struct {
	Point   string             `json:"point"`
	Support []SupportReference `json:"support"`
}

// ResearchResult is the full answer to a research query.
// Array order is positional and must not be changed after assembly.
type ResearchResult struct {
	QueryUsed    QueryUsed       `json:"query_used"`
	Statutes     []StatuteView   `json:"statutes"`
	SimilarCases []CaseView      `json:"similar_cases"`
	Arguments    []ArgumentPoint `json:"arguments"`
	NextSteps    []string        `json:"next_steps"`
}
