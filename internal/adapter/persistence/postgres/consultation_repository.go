package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const consultationColumns = `id, user_id, search_term, search_type, status, results, cost, created_at`

type ConsultationRepository struct {
	db DBTX
	tx *TxRunner
}

var _ interfaces.IConsultationRepository = (*ConsultationRepository)(nil)

func NewConsultationRepository(pool *pgxpool.Pool) *ConsultationRepository {
	return &ConsultationRepository{db: pool, tx: NewTxRunner(pool)}
}

func (r *ConsultationRepository) CreateWithBilling(ctx context.Context, c entities.Consultation, b entities.BillingRecord) error {
	results, err := json.Marshal(resultsOrEmpty(c.Results))
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	return r.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO inpi_consultations (`+consultationColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			c.ID, c.UserID, c.SearchTerm, string(c.SearchType), string(c.Status), results, int64(c.Cost), c.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert consultation: %w", err)
		}
		return insertBilling(ctx, tx, b)
	})
}

func (r *ConsultationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]entities.Consultation, error) {
	query := `
		SELECT ` + consultationColumns + `
		FROM inpi_consultations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	return collectConsultations(rows)
}

func (r *ConsultationRepository) ListAll(ctx context.Context) ([]entities.Consultation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+consultationColumns+`
		FROM inpi_consultations
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all consultations: %w", err)
	}
	return collectConsultations(rows)
}

func collectConsultations(rows pgx.Rows) ([]entities.Consultation, error) {
	defer rows.Close()
	items := make([]entities.Consultation, 0)
	for rows.Next() {
		var (
			c                  entities.Consultation
			searchType, status string
			results            []byte
			cost               int64
		)
		if err := rows.Scan(&c.ID, &c.UserID, &c.SearchTerm, &searchType, &status, &results, &cost, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan consultation: %w", err)
		}
		if err := json.Unmarshal(results, &c.Results); err != nil {
			return nil, fmt.Errorf("decode results: %w", err)
		}
		c.SearchType = entities.SearchType(searchType)
		c.Status = entities.ConsultationStatus(status)
		c.Cost = entities.Money(cost)
		c.CreatedAt = c.CreatedAt.UTC()
		items = append(items, c)
	}
	return items, rows.Err()
}

func resultsOrEmpty(results []entities.SearchResult) []entities.SearchResult {
	if results == nil {
		return []entities.SearchResult{}
	}
	return results
}
