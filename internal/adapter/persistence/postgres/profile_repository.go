package postgres

import (
	"context"
	"errors"
	"fmt"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `id, email, full_name, company_name, document_type, document_number, phone, created_at, updated_at`

type ProfileRepository struct {
	db DBTX
}

var _ interfaces.IProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: pool}
}

func (r *ProfileRepository) Create(ctx context.Context, p entities.Profile) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Email, p.FullName, p.CompanyName, string(p.DocumentType), p.DocumentNumber, p.Phone, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return interfaces.ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	row := r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepository) Update(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE profiles
		SET full_name = $2, company_name = $3, document_type = $4, document_number = $5, phone = $6, updated_at = $7
		WHERE id = $1
		RETURNING `+profileColumns,
		p.ID, p.FullName, p.CompanyName, string(p.DocumentType), p.DocumentNumber, p.Phone, p.UpdatedAt,
	)
	updated, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Profile{}, nil
		}
		return entities.Profile{}, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]entities.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profiles ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func scanProfile(row pgx.Row) (entities.Profile, error) {
	var (
		p       entities.Profile
		docType string
	)
	if err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.CompanyName, &docType, &p.DocumentNumber, &p.Phone, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return entities.Profile{}, err
	}
	p.DocumentType = entities.DocumentType(docType)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
