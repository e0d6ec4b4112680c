package gateway

import "context"

// LineItem is one priced entry of a checkout request. UnitAmount is in
// minor currency units (cents).
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int
	Images     []string
}

// SessionRequest asks the gateway for a hosted checkout session.
type SessionRequest struct {
	Lines      []LineItem
	SuccessURL string
	CancelURL  string
}

// Session is a gateway-issued handle for one payment attempt. URL is the
// hosted payment page the browser is redirected to.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Gateway creates hosted checkout sessions with the payment provider.
type Gateway interface {
	CreateCheckoutSession(ctx context.Context, req SessionRequest) (*Session, error)
}
