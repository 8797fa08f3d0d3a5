package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/domain/reporting"
	"registro_inpi/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DefaultGatewayTimeout = 10 * time.Second

// IBillingUseCase reconciles billing records and reports on them.

type IBillingUseCase interface {
	Pay(ctx context.Context, recordID, userID string, method entities.PaymentMethod) (entities.BillingRecord, error)
	ListByUser(ctx context.Context, userID string) ([]entities.BillingRecord, error)
	Report(ctx context.Context, userID string) (reporting.BillingReport, error)
}

type BillingUseCase struct {
	repo           interfaces.IBillingRecordRepository
	gateway        interfaces.IPaymentGateway
	gatewayTimeout time.Duration
	now            func() time.Time
}

var _ IBillingUseCase = (*BillingUseCase)(nil)

func NewBillingUseCase(repo interfaces.IBillingRecordRepository, gateway interfaces.IPaymentGateway, gatewayTimeout time.Duration) *BillingUseCase {
	if gatewayTimeout <= 0 {
		gatewayTimeout = DefaultGatewayTimeout
	}
	return &BillingUseCase{repo: repo, gateway: gateway, gatewayTimeout: gatewayTimeout, now: defaultClock}
}

// Pay charges a pending record owned by userID and marks it paid.
//
// Checks happen before the gateway is called; the final write is conditional
// on the record still being pending, so two concurrent payers cannot both win.
func (u *BillingUseCase) Pay(ctx context.Context, recordID, userID string, method entities.PaymentMethod) (entities.BillingRecord, error) {
	recordID = strings.TrimSpace(recordID)
	userID = strings.TrimSpace(userID)
	if recordID == "" {
		return entities.BillingRecord{}, ErrInvalidRecordID
	}
	if userID == "" {
		return entities.BillingRecord{}, ErrInvalidUserID
	}
	if !method.Valid() {
		return entities.BillingRecord{}, ErrInvalidPaymentMethod
	}
	if u.gateway == nil {
		log.Printf("[billing][usecase] gateway not configured record_id=%s", recordID)
		return entities.BillingRecord{}, ErrGatewayNotConfigured
	}
	log.Printf("[billing][usecase] pay start record_id=%s user_id=%s method=%s", recordID, userID, method)

	rec, err := u.repo.GetByID(ctx, recordID)
	if err != nil {
		return entities.BillingRecord{}, storeErr("get billing record", err)
	}
	if rec.ID == "" {
		return entities.BillingRecord{}, ErrBillingNotFound
	}
	if rec.UserID != userID {
		log.Printf("[billing][usecase] pay denied record_id=%s user_id=%s", recordID, userID)
		return entities.BillingRecord{}, ErrNotRecordOwner
	}
	if rec.Status != entities.BillingStatusPending {
		log.Printf("[billing][usecase] record not pending record_id=%s status=%s", recordID, rec.Status)
		return entities.BillingRecord{}, ErrAlreadyPaid
	}

	chargeCtx, cancel := context.WithTimeout(ctx, u.gatewayTimeout)
	defer cancel()
	res, err := u.gateway.Charge(chargeCtx, interfaces.ChargeRequest{
		RecordID: rec.ID,
		UserID:   rec.UserID,
		Amount:   rec.Amount,
		Method:   method,
	})
	if err != nil {
		log.Printf("[billing][usecase] gateway charge failed record_id=%s err=%v", recordID, err)
		return entities.BillingRecord{}, upstreamErr("payment gateway", err)
	}
	if !res.Approved {
		log.Printf("[billing][usecase] gateway declined record_id=%s provider_ref=%s", recordID, res.ProviderReference)
		return entities.BillingRecord{}, ErrPaymentDeclined
	}

	now := u.now()
	payment := entities.Payment{
		Date:          now,
		Method:        method,
		InvoiceNumber: newInvoiceNumber(now),
	}
	paid, err := u.repo.MarkPaid(ctx, rec.ID, userID, payment)
	if err != nil {
		if errors.Is(err, interfaces.ErrBillingNotPending) {
			log.Printf("[billing][usecase] record paid concurrently record_id=%s", recordID)
			return entities.BillingRecord{}, ErrAlreadyPaid
		}
		log.Printf("[billing][usecase] mark paid failed record_id=%s err=%v", recordID, err)
		return entities.BillingRecord{}, storeErr("mark billing record paid", err)
	}
	log.Printf("[billing][usecase] pay success record_id=%s invoice=%s provider_ref=%s", recordID, paid.InvoiceNumber, res.ProviderReference)
	return paid, nil
}

// newInvoiceNumber is INV-<unix millis>-<8 hex chars>; the random suffix keeps
// numbers distinct when two payments land in the same millisecond.
func newInvoiceNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("INV-%d-%s", now.UnixMilli(), strings.ToUpper(suffix))
}

func (u *BillingUseCase) ListByUser(ctx context.Context, userID string) ([]entities.BillingRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, storeErr("list billing records", err)
	}
	return items, nil
}

func (u *BillingUseCase) Report(ctx context.Context, userID string) (reporting.BillingReport, error) {
	items, err := u.ListByUser(ctx, userID)
	if err != nil {
		return reporting.BillingReport{}, err
	}
	return reporting.BuildBillingReport(items, reporting.DefaultMonthsBack, u.now()), nil
}
