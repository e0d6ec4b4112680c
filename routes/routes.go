package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Greenoni119/k2.0/cart"
	"github.com/Greenoni119/k2.0/catalog"
	"github.com/Greenoni119/k2.0/gateway"
)

// SetupRoutes is the single entry-point that wires up the auth, catalog,
// cart, and checkout route groups.
func SetupRoutes(r *gin.Engine, svc catalog.Service, m *cart.Manager, gw gateway.Gateway) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r)

	// 2️⃣ Public catalog routes (read-only)
	SetupCatalogRoutes(r, svc)

	// 3️⃣ Cart routes (client-token protected)
	hub := SetupCartRoutes(r, svc, m)

	// 4️⃣ Checkout handoff routes
	SetupCheckoutRoutes(r, m, gw, hub)
}
