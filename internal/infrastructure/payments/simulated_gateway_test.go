package payments

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"registro_inpi/internal/domain/entities"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSimulatedGateway_Approves(t *testing.T) {
	g := NewSimulatedGateway(time.Millisecond)
	before := testutil.ToFloat64(chargesTotal.WithLabelValues("pix", "approved"))

	res, err := g.Charge(context.Background(), interfaces.ChargeRequest{
		RecordID: "b-1", UserID: "u-1", Amount: 35500, Method: entities.PaymentMethodPix,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Approved || !strings.HasPrefix(res.ProviderReference, "SIM-") {
		t.Fatalf("unexpected result: %+v", res)
	}
	if got := testutil.ToFloat64(chargesTotal.WithLabelValues("pix", "approved")); got != before+1 {
		t.Fatalf("expected approved counter to grow by 1, got %v -> %v", before, got)
	}
}

func TestSimulatedGateway_HonoursCancellation(t *testing.T) {
	g := NewSimulatedGateway(time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := g.Charge(ctx, interfaces.ChargeRequest{RecordID: "b-1", Method: entities.PaymentMethodCreditCard})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > time.Second {
		t.Fatalf("charge did not return promptly after cancellation")
	}
}

func TestNewSimulatedGateway_NegativeDelay(t *testing.T) {
	if g := NewSimulatedGateway(-time.Second); g.delay != 0 {
		t.Fatalf("expected negative delay to clamp to 0, got %s", g.delay)
	}
}

func TestSimulatedGateway_ConcurrentChargesCollectOnce(t *testing.T) {
	g := NewSimulatedGateway(20 * time.Millisecond)
	req := interfaces.ChargeRequest{RecordID: "b-7", UserID: "u-1", Amount: 2500, Method: entities.PaymentMethodDebitCard}
	before := testutil.ToFloat64(chargesTotal.WithLabelValues("debit_card", "approved"))

	const callers = 8
	refs := make([]string, callers)
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := g.Charge(context.Background(), req)
			refs[i], errs[i] = res.ProviderReference, err
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d: unexpected error: %v", i, errs[i])
		}
		if refs[i] != refs[0] {
			t.Fatalf("caller %d got a different provider reference: %q vs %q", i, refs[i], refs[0])
		}
	}
	if got := testutil.ToFloat64(chargesTotal.WithLabelValues("debit_card", "approved")); got != before+1 {
		t.Fatalf("expected exactly one approved charge, got %v", got-before)
	}
}

func TestSimulatedGateway_ReplaysSettledCharge(t *testing.T) {
	g := NewSimulatedGateway(time.Millisecond)
	req := interfaces.ChargeRequest{RecordID: "b-8", UserID: "u-1", Amount: 2500, Method: entities.PaymentMethodCreditCard}
	before := testutil.ToFloat64(chargesTotal.WithLabelValues("credit_card", "approved"))

	first, err := g.Charge(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := g.Charge(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected replayed result, got %+v then %+v", first, second)
	}
	if got := testutil.ToFloat64(chargesTotal.WithLabelValues("credit_card", "approved")); got != before+1 {
		t.Fatalf("expected one approved charge, got %v", got-before)
	}

	other, err := g.Charge(context.Background(), interfaces.ChargeRequest{RecordID: "b-9", Method: entities.PaymentMethodCreditCard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if other.ProviderReference == first.ProviderReference {
		t.Fatalf("different records must not share a provider reference")
	}
}

func TestSimulatedGateway_CanceledChargeCanBeRetried(t *testing.T) {
	g := NewSimulatedGateway(30 * time.Millisecond)
	req := interfaces.ChargeRequest{RecordID: "b-10", Method: entities.PaymentMethodPix}

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	if _, err := g.Charge(ctx, req); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}

	res, err := g.Charge(context.Background(), req)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if !res.Approved {
		t.Fatalf("expected approval on retry, got %+v", res)
	}
}
