package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Greenoni119/k2.0/cart"
	"github.com/Greenoni119/k2.0/catalog"
	cartControllers "github.com/Greenoni119/k2.0/controllers/cart"
	"github.com/Greenoni119/k2.0/middleware"
)

// SetupCartRoutes registers all "/cart/*" endpoints behind the client-token
// middleware and returns the websocket hub so checkout can push the
// post-payment snapshot too.
func SetupCartRoutes(r *gin.Engine, svc catalog.Service, m *cart.Manager) *cartControllers.Hub {
	hub := cartControllers.NewHub()

	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.RequireClient)
	{
		cartGroup.GET("", cartControllers.GetCart(m))                            // GET /cart
		cartGroup.POST("/items", cartControllers.AddCartItem(svc, m, hub))       // POST /cart/items
		cartGroup.PUT("/items", cartControllers.UpdateCartItem(m, hub))          // PUT /cart/items
		cartGroup.DELETE("/items/:product_id", cartControllers.DeleteCartItem(m, hub)) // DELETE /cart/items/:product_id
		cartGroup.DELETE("", cartControllers.ClearCart(m, hub))                  // DELETE /cart
		cartGroup.POST("/open", cartControllers.SetPanel(m, true))               // POST /cart/open
		cartGroup.POST("/close", cartControllers.SetPanel(m, false))             // POST /cart/close
		cartGroup.GET("/ws", hub.CartWebSocketHandler())                         // GET /cart/ws
	}

	return hub
}
