package service

import (
	"fmt"

	"legalresearch-backend/models"
)

// ArgumentCount is the number of argument points in every result
const ArgumentCount = 2

const (
	defaultLimitationsLaw = "applicable limitations law"
	defaultDamagesLaw     = "applicable damages provision"
	defaultComparableCase = "a comparable case"
)

// BuildArguments pairs the selected statutes and cases into exactly two argument points.
//
// The first point uses the primary statute and case, the second the secondary ones.
// When only one record of a kind was selected it stands in as its own secondary.
// References to records that do not exist are left out of the support list.
func BuildArguments(statutes []models.StatuteRecord, cases []models.CaseRecord) []models.ArgumentPoint {
	s1, s2 := pickPair(statutes)
	c1, c2 := pickPair(cases)

	return []models.ArgumentPoint{
		{
			Point: fmt.Sprintf(
				"Breach elements and timeliness: claim is supportable under %s; filing appears timely if within the stated period.",
				statuteTitle(s1, defaultLimitationsLaw),
			),
			Support: supportFor(s1, c1),
		},
		{
			Point: fmt.Sprintf(
				"Damages/remedies: recovery should align with %s; facts in similar disputes (e.g., %s) support contract-based relief.",
				statuteTitle(s2, defaultDamagesLaw),
				caseTitle(c2, defaultComparableCase),
			),
			Support: supportFor(s2, c2),
		},
	}
}

// pickPair returns the primary and secondary records of a selection
func pickPair[T any](selected []T) (*T, *T) {
	switch len(selected) {
	case 0:
		return nil, nil
	case 1:
		return &selected[0], &selected[0]
	default:
		return &selected[0], &selected[1]
	}
}

func statuteTitle(s *models.StatuteRecord, fallback string) string {
	if s == nil {
		return fallback
	}
	return models.ValueOr(s.Title, fallback)
}

func caseTitle(c *models.CaseRecord, fallback string) string {
	if c == nil {
		return fallback
	}
	return models.ValueOr(c.Title, fallback)
}

func supportFor(s *models.StatuteRecord, c *models.CaseRecord) []models.SupportReference {
	support := make([]models.SupportReference, 0, 2)
	if s != nil {
		support = append(support, s.Reference())
	}
	if c != nil {
		support = append(support, c.Reference())
	}
	return support
}
