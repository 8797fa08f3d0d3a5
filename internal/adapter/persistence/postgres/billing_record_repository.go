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

const billingColumns = `id, user_id, consultation_id, process_id, service_type, amount, status,
	payment_date, payment_method, invoice_number, created_at`

type BillingRecordRepository struct {
	db DBTX
}

var _ interfaces.IBillingRecordRepository = (*BillingRecordRepository)(nil)

func NewBillingRecordRepository(pool *pgxpool.Pool) *BillingRecordRepository {
	return &BillingRecordRepository{db: pool}
}

// insertBilling runs inside the caller's transaction.
func insertBilling(ctx context.Context, q DBTX, b entities.BillingRecord) error {
	_, err := q.Exec(ctx, `
		INSERT INTO billing_records (`+billingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID, b.UserID, nullString(b.ConsultationID), nullString(b.ProcessID),
		string(b.ServiceType), int64(b.Amount), string(b.Status),
		b.PaymentDate, nullString(string(b.PaymentMethod)), nullString(b.InvoiceNumber), b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert billing record: %w", err)
	}
	return nil
}

func (r *BillingRecordRepository) GetByID(ctx context.Context, id string) (entities.BillingRecord, error) {
	row := r.db.QueryRow(ctx, `SELECT `+billingColumns+` FROM billing_records WHERE id = $1`, id)
	b, err := scanBilling(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.BillingRecord{}, nil
		}
		return entities.BillingRecord{}, fmt.Errorf("get billing record: %w", err)
	}
	return b, nil
}

// MarkPaid is a single conditional UPDATE; zero rows means the record was
// not pending for this user at commit time.
func (r *BillingRecordRepository) MarkPaid(ctx context.Context, id, userID string, payment entities.Payment) (entities.BillingRecord, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE billing_records
		SET status = $3, payment_date = $4, payment_method = $5, invoice_number = $6
		WHERE id = $1 AND user_id = $2 AND status = $7
		RETURNING `+billingColumns,
		id, userID, string(entities.BillingStatusPaid), payment.Date,
		string(payment.Method), payment.InvoiceNumber, string(entities.BillingStatusPending),
	)
	b, err := scanBilling(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.BillingRecord{}, interfaces.ErrBillingNotPending
		}
		return entities.BillingRecord{}, fmt.Errorf("mark billing record paid: %w", err)
	}
	return b, nil
}

func (r *BillingRecordRepository) ListByUser(ctx context.Context, userID string) ([]entities.BillingRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+billingColumns+`
		FROM billing_records
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list billing records: %w", err)
	}
	return collectBilling(rows)
}

func (r *BillingRecordRepository) ListAll(ctx context.Context) ([]entities.BillingRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+billingColumns+`
		FROM billing_records
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all billing records: %w", err)
	}
	return collectBilling(rows)
}

func collectBilling(rows pgx.Rows) ([]entities.BillingRecord, error) {
	defer rows.Close()
	items := make([]entities.BillingRecord, 0)
	for rows.Next() {
		b, err := scanBilling(rows)
		if err != nil {
			return nil, fmt.Errorf("scan billing record: %w", err)
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func scanBilling(row pgx.Row) (entities.BillingRecord, error) {
	var (
		b                            entities.BillingRecord
		consultationID, processID    *string
		paymentMethod, invoiceNumber *string
		serviceType, status          string
		amount                       int64
		paymentDate                  *time.Time
	)
	err := row.Scan(&b.ID, &b.UserID, &consultationID, &processID, &serviceType, &amount, &status,
		&paymentDate, &paymentMethod, &invoiceNumber, &b.CreatedAt)
	if err != nil {
		return entities.BillingRecord{}, err
	}
	b.ConsultationID = derefString(consultationID)
	b.ProcessID = derefString(processID)
	b.ServiceType = entities.ServiceType(serviceType)
	b.Amount = entities.Money(amount)
	b.Status = entities.BillingStatus(status)
	b.PaymentDate = utcPtr(paymentDate)
	b.PaymentMethod = entities.PaymentMethod(derefString(paymentMethod))
	b.InvoiceNumber = derefString(invoiceNumber)
	b.CreatedAt = b.CreatedAt.UTC()
	return b, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
