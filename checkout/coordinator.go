package checkout

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/Greenoni119/k2.0/gateway"
	"github.com/Greenoni119/k2.0/models"
)

// State of one client's checkout flow. There is no completed state here:
// completion is signaled out-of-band when the success page clears the cart.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateRedirected State = "redirected"
	StateFailed     State = "failed"
)

var (
	// ErrEmptyCart rejects checkout before any gateway call. The caller
	// surfaces it as a disabled action, not a failure.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrInFlight guards against duplicate double-click submissions while a
	// session create is already on the wire.
	ErrInFlight = errors.New("checkout: submission already in progress")
)

// CartReader is the read-only view the coordinator takes of a cart.
type CartReader interface {
	Lines() []models.CartLine
}

// Coordinator drives the one-shot transition from browsing to awaiting
// external payment for a single client.
type Coordinator struct {
	mu    sync.Mutex
	state State
	gw    gateway.Gateway
}

func NewCoordinator(gw gateway.Gateway) *Coordinator {
	return &Coordinator{state: StateIdle, gw: gw}
}

func (co *Coordinator) State() State {
	co.mu.Lock()
	defer co.mu.Unlock()
	return co.state
}

// Initiate builds a checkout request from the current cart snapshot and
// asks the gateway for a hosted session. On success the returned session
// URL is where the browser navigates; the coordinator's job ends there.
// On any failure the cart is left untouched and a fresh Initiate is the
// retry path.
func (co *Coordinator) Initiate(ctx context.Context, cart CartReader, origin string) (*gateway.Session, error) {
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	co.mu.Lock()
	if co.state == StateSubmitting {
		co.mu.Unlock()
		return nil, ErrInFlight
	}
	co.state = StateSubmitting
	co.mu.Unlock()

	req := gateway.SessionRequest{
		Lines:      buildLineItems(lines),
		SuccessURL: origin + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  origin,
	}

	session, err := co.gw.CreateCheckoutSession(ctx, req)

	co.mu.Lock()
	defer co.mu.Unlock()
	if err != nil {
		co.state = StateFailed
		return nil, err
	}
	co.state = StateRedirected
	return session, nil
}

func buildLineItems(lines []models.CartLine) []gateway.LineItem {
	items := make([]gateway.LineItem, 0, len(lines))
	for _, l := range lines {
		item := gateway.LineItem{
			Name:       l.Name,
			UnitAmount: Cents(l.UnitPrice),
			Quantity:   l.Quantity,
		}
		if l.Image != "" {
			item.Images = []string{l.Image}
		}
		items = append(items, item)
	}
	return items
}

// Cents converts a decimal price to integer minor currency units. Rounding,
// not truncation: 19.995 must bill as 2000, never 1999. The intermediate
// round at a tenth of a cent absorbs binary float drift (19.995*100 is
// 1999.4999... as a float64).
func Cents(price float64) int64 {
	tenths := math.Round(price * 1000)
	return int64(math.Round(tenths / 10))
}
