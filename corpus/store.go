package corpus

import (
	"legalresearch-backend/models"
)

// Store holds the statute and case corpora. It is built once and never mutated,
// so it can be shared by any number of concurrent requests without locking.
type Store struct {
	statutes []models.StatuteRecord
	cases    []models.CaseRecord
}

// NewStore creates a store from already validated records. The inputs are copied.
func NewStore(statutes []models.StatuteRecord, cases []models.CaseRecord) *Store {
	return &Store{
		statutes: cloneStatutes(statutes),
		cases:    cloneCases(cases),
	}
}

// Statutes returns every statute in load order.
// The result is a private copy; changing it does not affect the store.
func (s *Store) Statutes() []models.StatuteRecord {
	return cloneStatutes(s.statutes)
}

// Cases returns every case in load order.
// The result is a private copy; changing it does not affect the store.
func (s *Store) Cases() []models.CaseRecord {
	return cloneCases(s.cases)
}

// StatuteCount returns the number of statutes in the store
func (s *Store) StatuteCount() int {
	return len(s.statutes)
}

// CaseCount returns the number of cases in the store
func (s *Store) CaseCount() int {
	return len(s.cases)
}

func cloneStatutes(in []models.StatuteRecord) []models.StatuteRecord {
	out := make([]models.StatuteRecord, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}

func cloneCases(in []models.CaseRecord) []models.CaseRecord {
	out := make([]models.CaseRecord, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}
