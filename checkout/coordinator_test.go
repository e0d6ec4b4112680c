package checkout

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Greenoni119/k2.0/gateway"
	"github.com/Greenoni119/k2.0/models"
)

// mockGateway implements gateway.Gateway for testing.
type mockGateway struct {
	createFunc func(ctx context.Context, req gateway.SessionRequest) (*gateway.Session, error)
	calls      atomic.Int32
}

func (m *mockGateway) CreateCheckoutSession(ctx context.Context, req gateway.SessionRequest) (*gateway.Session, error) {
	m.calls.Add(1)
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &gateway.Session{ID: "cs_test", URL: "https://pay.example/cs_test"}, nil
}

type stubCart struct {
	lines []models.CartLine
}

func (s *stubCart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

func TestInitiateEmptyCartNeverCallsGateway(t *testing.T) {
	t.Parallel()

	gw := &mockGateway{}
	co := NewCoordinator(gw)

	_, err := co.Initiate(context.Background(), &stubCart{}, "https://shop.example")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("Expected ErrEmptyCart, got %v", err)
	}
	if got := gw.calls.Load(); got != 0 {
		t.Errorf("Empty cart must not reach the gateway, got %d calls", got)
	}
	if co.State() != StateIdle {
		t.Errorf("Rejected pre-flight should not change state, got %s", co.State())
	}
}

func TestInitiateSuccess(t *testing.T) {
	t.Parallel()

	var captured gateway.SessionRequest
	gw := &mockGateway{
		createFunc: func(ctx context.Context, req gateway.SessionRequest) (*gateway.Session, error) {
			captured = req
			return &gateway.Session{ID: "cs_123", URL: "https://pay.example/cs_123"}, nil
		},
	}
	co := NewCoordinator(gw)
	c := &stubCart{lines: []models.CartLine{
		{ProductID: 1, Name: "Tote", UnitPrice: 19.99, Image: "/tote.jpg", Quantity: 2},
		{ProductID: 2, Name: "Hoodie", UnitPrice: 59.5, Variant: "M", Quantity: 1},
	}}

	session, err := co.Initiate(context.Background(), c, "https://shop.example")
	if err != nil {
		t.Fatalf("Initiate failed: %v", err)
	}
	if session.ID != "cs_123" {
		t.Errorf("Expected session cs_123, got %s", session.ID)
	}
	if co.State() != StateRedirected {
		t.Errorf("Expected state redirected, got %s", co.State())
	}

	if captured.SuccessURL != "https://shop.example/success?session_id={CHECKOUT_SESSION_ID}" {
		t.Errorf("Wrong success URL: %s", captured.SuccessURL)
	}
	if captured.CancelURL != "https://shop.example" {
		t.Errorf("Cancel URL should be the bare origin, got %s", captured.CancelURL)
	}
	if len(captured.Lines) != 2 {
		t.Fatalf("Expected 2 line items, got %d", len(captured.Lines))
	}
	if captured.Lines[0].UnitAmount != 1999 || captured.Lines[0].Quantity != 2 {
		t.Errorf("Bad first line item: %+v", captured.Lines[0])
	}
	if len(captured.Lines[0].Images) != 1 || captured.Lines[0].Images[0] != "/tote.jpg" {
		t.Errorf("Expected image list on line item, got %+v", captured.Lines[0].Images)
	}
}

func TestInitiateRoundsCentsUp(t *testing.T) {
	t.Parallel()

	var captured gateway.SessionRequest
	gw := &mockGateway{
		createFunc: func(ctx context.Context, req gateway.SessionRequest) (*gateway.Session, error) {
			captured = req
			return &gateway.Session{ID: "cs", URL: "u"}, nil
		},
	}
	co := NewCoordinator(gw)
	c := &stubCart{lines: []models.CartLine{
		{ProductID: 1, Name: "Odd price", UnitPrice: 19.995, Quantity: 1},
	}}

	if _, err := co.Initiate(context.Background(), c, "https://shop.example"); err != nil {
		t.Fatalf("Initiate failed: %v", err)
	}
	if got := captured.Lines[0].UnitAmount; got != 2000 {
		t.Errorf("19.995 must round to 2000 cents, got %d", got)
	}
}

func TestCents(t *testing.T) {
	t.Parallel()

	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{19.995, 2000},
		{0, 0},
		{0.004, 0},
		{0.005, 1},
		{120, 12000},
	}
	for _, tc := range cases {
		if got := Cents(tc.price); got != tc.want {
			t.Errorf("Cents(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestInitiateFailureLeavesCartAndAllowsRetry(t *testing.T) {
	t.Parallel()

	fail := true
	gw := &mockGateway{
		createFunc: func(ctx context.Context, req gateway.SessionRequest) (*gateway.Session, error) {
			if fail {
				return nil, errors.New("gateway unreachable")
			}
			return &gateway.Session{ID: "cs_retry", URL: "https://pay.example/cs_retry"}, nil
		},
	}
	co := NewCoordinator(gw)
	c := &stubCart{lines: []models.CartLine{
		{ProductID: 1, Name: "Tote", UnitPrice: 19.99, Quantity: 1},
	}}

	if _, err := co.Initiate(context.Background(), c, "https://shop.example"); err == nil {
		t.Fatal("Expected gateway failure")
	}
	if co.State() != StateFailed {
		t.Errorf("Expected state failed, got %s", co.State())
	}
	if len(c.Lines()) != 1 {
		t.Error("Failure must leave the cart untouched")
	}

	// Retry is a fresh user-initiated call, never automatic.
	fail = false
	session, err := co.Initiate(context.Background(), c, "https://shop.example")
	if err != nil {
		t.Fatalf("Retry failed: %v", err)
	}
	if session.ID != "cs_retry" || co.State() != StateRedirected {
		t.Errorf("Retry should succeed, got %+v in state %s", session, co.State())
	}
}

func TestOverlappingInitiatesMakeOneGatewayCall(t *testing.T) {
	t.Parallel()

	inFlight := make(chan struct{})
	release := make(chan struct{})
	gw := &mockGateway{
		createFunc: func(ctx context.Context, req gateway.SessionRequest) (*gateway.Session, error) {
			close(inFlight)
			<-release
			return &gateway.Session{ID: "cs_once", URL: "u"}, nil
		},
	}
	co := NewCoordinator(gw)
	c := &stubCart{lines: []models.CartLine{
		{ProductID: 1, Name: "Tote", UnitPrice: 19.99, Quantity: 1},
	}}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := co.Initiate(context.Background(), c, "https://shop.example"); err != nil {
			t.Errorf("First initiate failed: %v", err)
		}
	}()

	// Wait for the first call to be on the wire, then double-click.
	<-inFlight
	if co.State() != StateSubmitting {
		t.Fatalf("Expected state submitting, got %s", co.State())
	}
	if _, err := co.Initiate(context.Background(), c, "https://shop.example"); !errors.Is(err, ErrInFlight) {
		t.Errorf("Expected ErrInFlight for overlapping initiate, got %v", err)
	}

	close(release)
	wg.Wait()

	if got := gw.calls.Load(); got != 1 {
		t.Errorf("Expected exactly one gateway call, got %d", got)
	}
}
