package checkoutControllers

import (
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/Greenoni119/k2.0/cart"
	"github.com/Greenoni119/k2.0/checkout"
	"github.com/Greenoni119/k2.0/gateway"
	"github.com/Greenoni119/k2.0/middleware"
)

type CheckoutInput struct {
	ReturnURL string `json:"return_url"`
}

// Coordinators holds one checkout coordinator per client, created lazily.
type Coordinators struct {
	mu       sync.Mutex
	gw       gateway.Gateway
	byClient map[string]*checkout.Coordinator
}

func NewCoordinators(gw gateway.Gateway) *Coordinators {
	return &Coordinators{gw: gw, byClient: make(map[string]*checkout.Coordinator)}
}

func (cs *Coordinators) Get(clientID string) *checkout.Coordinator {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	co, ok := cs.byClient[clientID]
	if !ok {
		co = checkout.NewCoordinator(cs.gw)
		cs.byClient[clientID] = co
	}
	return co
}

// POST /checkout
//
// Hands the current cart off to the payment gateway and returns the hosted
// checkout URL to redirect to. The cart itself is never touched here; it is
// cleared only by the success boundary.
func InitiateCheckout(m *cart.Manager, cs *Coordinators) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := middleware.ClientID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		// Body is optional; a missing return_url falls back to config.
		var input CheckoutInput
		_ = c.ShouldBindJSON(&input)
		origin := resolveOrigin(c, input.ReturnURL)

		userCart := m.Get(c.Request.Context(), clientID)
		session, err := cs.Get(clientID).Initiate(c.Request.Context(), userCart, origin)
		if err != nil {
			switch {
			case errors.Is(err, checkout.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide items to checkout"})
			case errors.Is(err, checkout.ErrInFlight):
				c.JSON(http.StatusConflict, gin.H{"error": "Checkout already in progress"})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id":   session.ID,
			"checkout_url": session.URL,
		})
	}
}

// GET /success
//
// The payment gateway sends the browser back here with the session handle
// in the query string. Only that handle authorizes clearing the cart; a
// bare visit bounces to the home page with the cart intact.
func CheckoutSuccess(m *cart.Manager, hub CartBroadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := middleware.ClientID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.Redirect(http.StatusFound, "/")
			return
		}

		userCart := m.Get(c.Request.Context(), clientID)
		userCart.Clear(c.Request.Context())
		hub.Broadcast(clientID, gin.H{
			"items":    userCart.Lines(),
			"is_open":  userCart.IsPanelOpen(),
			"subtotal": userCart.Subtotal(),
		})

		c.JSON(http.StatusOK, gin.H{
			"message":    "Thank you for your order!",
			"session_id": sessionID,
		})
	}
}

// CartBroadcaster pushes cart snapshots to the client's open tabs.
type CartBroadcaster interface {
	Broadcast(clientID string, snapshot interface{})
}

// resolveOrigin picks the success/cancel return origin: the one the page
// sent, else the configured frontend, else the requesting host.
func resolveOrigin(c *gin.Context, requested string) string {
	if requested != "" {
		return requested
	}
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		return frontend
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
