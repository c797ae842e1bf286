package service

import (
	"slices"

	"legalresearch-backend/models"
)

// nextSteps is the fixed advisory list returned with every result. It is generic
// workflow guidance, not legal advice.
var nextSteps = [...]string{
	"Assemble the written contract, amendments, and communications (emails, invoices, delivery proofs).",
	"Send a written demand with cure deadline; preserve evidence for potential litigation or arbitration.",
	"Check any arbitration/venue clause and verify limitation periods before filing.",
	"If unresolved, file in the proper court (or initiate arbitration) and prepare initial disclosures.",
}

// NextSteps returns a copy of the advisory list
func NextSteps() []string {
	return slices.Clone(nextSteps[:])
}

// AssembleResult composes the response object. Input order is kept as is.
func AssembleResult(
	query models.ResearchQuery,
	statutes []models.StatuteRecord,
	cases []models.CaseRecord,
	arguments []models.ArgumentPoint,
) *models.ResearchResult {
	statuteViews := make([]models.StatuteView, 0, len(statutes))
	for _, s := range statutes {
		statuteViews = append(statuteViews, s.View())
	}

	caseViews := make([]models.CaseView, 0, len(cases))
	for _, c := range cases {
		caseViews = append(caseViews, c.View())
	}

	return &models.ResearchResult{
		QueryUsed: models.QueryUsed{
			Jurisdiction: models.Optional(query.Jurisdiction),
			CaseType:     models.Optional(query.CaseType),
		},
		Statutes:     statuteViews,
		SimilarCases: caseViews,
		Arguments:    arguments,
		NextSteps:    NextSteps(),
	}
}
