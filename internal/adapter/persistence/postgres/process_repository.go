package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const processColumns = `id, user_id, process_type, title, description, status, process_number,
	priority_date, publication_date, total_cost, created_at, updated_at`

const monitoringColumns = `id, process_id, status_change, previous_status, new_status, notes, created_at`

type ProcessRepository struct {
	db DBTX
	tx *TxRunner
}

var _ interfaces.IProcessRepository = (*ProcessRepository)(nil)

func NewProcessRepository(pool *pgxpool.Pool) *ProcessRepository {
	return &ProcessRepository{db: pool, tx: NewTxRunner(pool)}
}

func (r *ProcessRepository) CreateWithBilling(ctx context.Context, p entities.RegistrationProcess, m entities.ProcessMonitoring, b entities.BillingRecord) error {
	return r.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO registration_processes (`+processColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			p.ID, p.UserID, string(p.ProcessType), p.Title, p.Description, string(p.Status), p.ProcessNumber,
			p.PriorityDate, p.PublicationDate, int64(p.TotalCost), p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert process: %w", err)
		}
		if err := insertMonitoring(ctx, tx, m); err != nil {
			return err
		}
		return insertBilling(ctx, tx, b)
	})
}

func (r *ProcessRepository) GetByID(ctx context.Context, id string) (entities.RegistrationProcess, error) {
	row := r.db.QueryRow(ctx, `SELECT `+processColumns+` FROM registration_processes WHERE id = $1`, id)
	p, err := scanProcess(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.RegistrationProcess{}, nil
		}
		return entities.RegistrationProcess{}, fmt.Errorf("get process: %w", err)
	}
	return p, nil
}

// UpdateStatus only touches the row while it still holds status from; the
// monitoring insert shares the transaction.
func (r *ProcessRepository) UpdateStatus(ctx context.Context, updated entities.RegistrationProcess, from entities.ProcessStatus, m entities.ProcessMonitoring) error {
	return r.tx.RunInTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE registration_processes
			SET status = $2, updated_at = $3, process_number = $4, publication_date = $5
			WHERE id = $1 AND status = $6`,
			updated.ID, string(updated.Status), updated.UpdatedAt, updated.ProcessNumber, updated.PublicationDate, string(from),
		)
		if err != nil {
			return fmt.Errorf("update process status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return interfaces.ErrStatusConflict
		}
		return insertMonitoring(ctx, tx, m)
	})
}

func (r *ProcessRepository) ListByUser(ctx context.Context, userID string) ([]entities.RegistrationProcess, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+processColumns+`
		FROM registration_processes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	return collectProcesses(rows)
}

func (r *ProcessRepository) ListAll(ctx context.Context) ([]entities.RegistrationProcess, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+processColumns+`
		FROM registration_processes
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all processes: %w", err)
	}
	return collectProcesses(rows)
}

func (r *ProcessRepository) ListMonitoring(ctx context.Context, processID string) ([]entities.ProcessMonitoring, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+monitoringColumns+`
		FROM process_monitoring
		WHERE process_id = $1
		ORDER BY created_at ASC, id ASC`, processID)
	if err != nil {
		return nil, fmt.Errorf("list monitoring: %w", err)
	}
	defer rows.Close()

	items := make([]entities.ProcessMonitoring, 0)
	for rows.Next() {
		m, err := scanMonitoring(rows)
		if err != nil {
			return nil, fmt.Errorf("scan monitoring: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *ProcessRepository) ListRecentMonitoring(ctx context.Context, limit int) ([]entities.MonitoringActivity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT m.id, m.process_id, m.status_change, m.previous_status, m.new_status, m.notes, m.created_at,
			p.title, p.user_id
		FROM process_monitoring m
		JOIN registration_processes p ON p.id = m.process_id
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent monitoring: %w", err)
	}
	defer rows.Close()

	items := make([]entities.MonitoringActivity, 0)
	for rows.Next() {
		var (
			a        entities.MonitoringActivity
			previous *string
			next     string
		)
		if err := rows.Scan(&a.ID, &a.ProcessID, &a.StatusChange, &previous, &next, &a.Notes, &a.CreatedAt,
			&a.ProcessTitle, &a.UserID); err != nil {
			return nil, fmt.Errorf("scan monitoring activity: %w", err)
		}
		a.PreviousStatus = entities.ProcessStatus(derefString(previous))
		a.NewStatus = entities.ProcessStatus(next)
		a.CreatedAt = a.CreatedAt.UTC()
		items = append(items, a)
	}
	return items, rows.Err()
}

func insertMonitoring(ctx context.Context, q DBTX, m entities.ProcessMonitoring) error {
	_, err := q.Exec(ctx, `
		INSERT INTO process_monitoring (`+monitoringColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ProcessID, m.StatusChange, nullString(string(m.PreviousStatus)), string(m.NewStatus), m.Notes, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert monitoring: %w", err)
	}
	return nil
}

func collectProcesses(rows pgx.Rows) ([]entities.RegistrationProcess, error) {
	defer rows.Close()
	items := make([]entities.RegistrationProcess, 0)
	for rows.Next() {
		p, err := scanProcess(rows)
		if err != nil {
			return nil, fmt.Errorf("scan process: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func scanProcess(row pgx.Row) (entities.RegistrationProcess, error) {
	var (
		p                   entities.RegistrationProcess
		processType, status string
		priority, published *time.Time
		totalCost           int64
	)
	err := row.Scan(&p.ID, &p.UserID, &processType, &p.Title, &p.Description, &status, &p.ProcessNumber,
		&priority, &published, &totalCost, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return entities.RegistrationProcess{}, err
	}
	p.ProcessType = entities.ProcessType(processType)
	p.Status = entities.ProcessStatus(status)
	p.PriorityDate = utcPtr(priority)
	p.PublicationDate = utcPtr(published)
	p.TotalCost = entities.Money(totalCost)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func scanMonitoring(row pgx.Row) (entities.ProcessMonitoring, error) {
	var (
		m        entities.ProcessMonitoring
		previous *string
		next     string
	)
	if err := row.Scan(&m.ID, &m.ProcessID, &m.StatusChange, &previous, &next, &m.Notes, &m.CreatedAt); err != nil {
		return entities.ProcessMonitoring{}, err
	}
	m.PreviousStatus = entities.ProcessStatus(derefString(previous))
	m.NewStatus = entities.ProcessStatus(next)
	m.CreatedAt = m.CreatedAt.UTC()
	return m, nil
}
