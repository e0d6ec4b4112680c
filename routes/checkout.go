package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Greenoni119/k2.0/cart"
	checkoutControllers "github.com/Greenoni119/k2.0/controllers/checkout"
	"github.com/Greenoni119/k2.0/gateway"
	"github.com/Greenoni119/k2.0/middleware"
)

func SetupCheckoutRoutes(r *gin.Engine, m *cart.Manager, gw gateway.Gateway, hub checkoutControllers.CartBroadcaster) {
	coordinators := checkoutControllers.NewCoordinators(gw)

	checkoutGroup := r.Group("/")
	checkoutGroup.Use(middleware.RequireClient)
	{
		checkoutGroup.POST("/checkout", checkoutControllers.InitiateCheckout(m, coordinators)) // POST /checkout
		checkoutGroup.GET("/success", checkoutControllers.CheckoutSuccess(m, hub))             // GET /success
	}
}
