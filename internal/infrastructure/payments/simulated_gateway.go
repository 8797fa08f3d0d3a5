package payments

import (
	"context"
	"log"
	"strconv"
	"time"

	"registro_inpi/internal/usecase/interfaces"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"
)

const (
	settledCacheSize = 1024
	settledCacheTTL  = 24 * time.Hour
)

var chargesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "inpi_payment_charges_total",
		Help: "Payment gateway charges by outcome.",
	},
	[]string{"method", "outcome"},
)

// SimulatedGateway approves every charge after a fixed delay. It stands in for
// a real provider round-trip and honours ctx cancellation while waiting.
//
// RecordID is the idempotency key: concurrent charges for one record share a
// single round-trip, and a record charged within settledCacheTTL gets the
// original result back without being charged again.
type SimulatedGateway struct {
	delay    time.Duration
	now      func() time.Time
	inflight singleflight.Group
	settled  *expirable.LRU[string, interfaces.ChargeResult]
}

var _ interfaces.IPaymentGateway = (*SimulatedGateway)(nil)

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	if delay < 0 {
		delay = 0
	}
	log.Printf("[payment][gateway] simulated gateway enabled delay=%s", delay)
	return &SimulatedGateway{
		delay:   delay,
		now:     time.Now,
		settled: expirable.NewLRU[string, interfaces.ChargeResult](settledCacheSize, nil, settledCacheTTL),
	}
}

func (g *SimulatedGateway) Charge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	if res, ok := g.settled.Get(req.RecordID); ok {
		chargesTotal.WithLabelValues(string(req.Method), "replayed").Inc()
		log.Printf("[payment][gateway] charge replayed record_id=%s provider_ref=%s", req.RecordID, res.ProviderReference)
		return res, nil
	}

	ch := g.inflight.DoChan(req.RecordID, func() (any, error) {
		return g.charge(ctx, req)
	})
	select {
	case <-ctx.Done():
		return interfaces.ChargeResult{}, ctx.Err()
	case out := <-ch:
		if out.Err != nil {
			return interfaces.ChargeResult{}, out.Err
		}
		res := out.Val.(interfaces.ChargeResult)
		if out.Shared {
			log.Printf("[payment][gateway] charge shared record_id=%s provider_ref=%s", req.RecordID, res.ProviderReference)
		}
		return res, nil
	}
}

// charge runs once per in-flight RecordID. Only approvals are remembered, so
// a canceled or failed attempt can be retried.
func (g *SimulatedGateway) charge(ctx context.Context, req interfaces.ChargeRequest) (interfaces.ChargeResult, error) {
	if res, ok := g.settled.Get(req.RecordID); ok {
		return res, nil
	}
	log.Printf("[payment][gateway] charge start record_id=%s method=%s amount=%s", req.RecordID, req.Method, req.Amount)

	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		chargesTotal.WithLabelValues(string(req.Method), "canceled").Inc()
		log.Printf("[payment][gateway] charge aborted record_id=%s err=%v", req.RecordID, ctx.Err())
		return interfaces.ChargeResult{}, ctx.Err()
	case <-timer.C:
	}

	res := interfaces.ChargeResult{
		ProviderReference: "SIM-" + strconv.FormatInt(g.now().UTC().UnixNano(), 10),
		Approved:          true,
	}
	g.settled.Add(req.RecordID, res)
	chargesTotal.WithLabelValues(string(req.Method), "approved").Inc()
	log.Printf("[payment][gateway] charge success record_id=%s provider_ref=%s", req.RecordID, res.ProviderReference)
	return res, nil
}
