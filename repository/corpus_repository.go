package repository

import (
	"context"
	"fmt"

	"legalresearch-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CorpusRepository handles database operations for the statute and case corpora
type CorpusRepository struct {
	db *pgxpool.Pool
}

// NewCorpusRepository creates a new corpus repository
func NewCorpusRepository(db *pgxpool.Pool) *CorpusRepository {
	return &CorpusRepository{db: db}
}

// ListStatutes retrieves all statutes in load order
func (r *CorpusRepository) ListStatutes(ctx context.Context) ([]models.StatuteRecord, error) {
	query := `
		SELECT doc_id, title, citation, jurisdiction, case_type, url
		FROM statutes
		ORDER BY position ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query statutes: %w", err)
	}
	defer rows.Close()

	statutes := []models.StatuteRecord{}
	for rows.Next() {
		var s models.StatuteRecord
		err := rows.Scan(
			&s.DocID,
			&s.Title,
			&s.Citation,
			&s.Jurisdiction,
			&s.CaseType,
			&s.URL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statute: %w", err)
		}
		statutes = append(statutes, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating statutes: %w", err)
	}

	return statutes, nil
}

// ListCases retrieves all cases in load order
func (r *CorpusRepository) ListCases(ctx context.Context) ([]models.CaseRecord, error) {
	query := `
		SELECT doc_id, title, jurisdiction, case_type, url
		FROM cases
		ORDER BY position ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cases: %w", err)
	}
	defer rows.Close()

	cases := []models.CaseRecord{}
	for rows.Next() {
		var c models.CaseRecord
		err := rows.Scan(
			&c.DocID,
			&c.Title,
			&c.Jurisdiction,
			&c.CaseType,
			&c.URL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case: %w", err)
		}
		cases = append(cases, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cases: %w", err)
	}

	return cases, nil
}

// ReplaceAll swaps the stored corpora for the given records in a single transaction.
// Positions follow slice order so ListStatutes and ListCases return the same order.
func (r *CorpusRepository) ReplaceAll(ctx context.Context, statutes []models.StatuteRecord, cases []models.CaseRecord) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM statutes"); err != nil {
		return fmt.Errorf("failed to clear statutes: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM cases"); err != nil {
		return fmt.Errorf("failed to clear cases: %w", err)
	}

	if err := insertStatutes(ctx, tx, statutes); err != nil {
		return err
	}
	if err := insertCases(ctx, tx, cases); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func insertStatutes(ctx context.Context, tx pgx.Tx, statutes []models.StatuteRecord) error {
	query := `
		INSERT INTO statutes (
			position, doc_id, title, citation, jurisdiction, case_type, url
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for i, s := range statutes {
		_, err := tx.Exec(ctx, query,
			i, s.DocID, s.Title, s.Citation, s.Jurisdiction, s.CaseType, s.URL,
		)
		if err != nil {
			return fmt.Errorf("failed to insert statute %s: %w", s.DocID, err)
		}
	}
	return nil
}

func insertCases(ctx context.Context, tx pgx.Tx, cases []models.CaseRecord) error {
	query := `
		INSERT INTO cases (
			position, doc_id, title, jurisdiction, case_type, url
		) VALUES ($1, $2, $3, $4, $5, $6)`

	for i, c := range cases {
		_, err := tx.Exec(ctx, query,
			i, c.DocID, c.Title, c.Jurisdiction, c.CaseType, c.URL,
		)
		if err != nil {
			return fmt.Errorf("failed to insert case %s: %w", c.DocID, err)
		}
	}
	return nil
}
