package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Greenoni119/k2.0/cart"
	"github.com/Greenoni119/k2.0/catalog"
	"github.com/Greenoni119/k2.0/middleware"
)

type AddItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Variant   string `json:"variant"`
}

type UpdateQuantityInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Variant   string `json:"variant"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

// snapshot is the JSON shape every cart endpoint responds with.
func snapshot(c *cart.Cart) gin.H {
	return gin.H{
		"items":    c.Lines(),
		"is_open":  c.IsPanelOpen(),
		"subtotal": c.Subtotal(),
	}
}

// GET /cart
func GetCart(m *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := middleware.ClientID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, snapshot(m.Get(c.Request.Context(), clientID)))
	}
}

// POST /cart/items
//
// Looks the product up in the catalog and merges it into the cart. The
// variant must be one the product actually offers; beyond that the catalog
// record is trusted as-is.
func AddCartItem(svc catalog.Service, m *cart.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := middleware.ClientID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := svc.Product(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}
		if !product.HasVariant(input.Variant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid variant for product"})
			return
		}

		userCart := m.Get(c.Request.Context(), clientID)
		userCart.AddItem(c.Request.Context(), product.CartLine(input.Variant))
		hub.Broadcast(clientID, snapshot(userCart))

		c.JSON(http.StatusCreated, snapshot(userCart))
	}
}

// PUT /cart/items
func UpdateCartItem(m *cart.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := middleware.ClientID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		userCart := m.Get(c.Request.Context(), clientID)
		userCart.UpdateQuantity(c.Request.Context(), input.ProductID, input.Variant, *input.Quantity)
		hub.Broadcast(clientID, snapshot(userCart))

		c.JSON(http.StatusOK, snapshot(userCart))
	}
}

// DELETE /cart/items/:product_id
func DeleteCartItem(m *cart.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := middleware.ClientID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}
		variant := c.Query("variant")

		userCart := m.Get(c.Request.Context(), clientID)
		userCart.RemoveItem(c.Request.Context(), uint(productID), variant)
		hub.Broadcast(clientID, snapshot(userCart))

		c.JSON(http.StatusOK, snapshot(userCart))
	}
}

// DELETE /cart
func ClearCart(m *cart.Manager, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := middleware.ClientID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userCart := m.Get(c.Request.Context(), clientID)
		userCart.Clear(c.Request.Context())
		hub.Broadcast(clientID, snapshot(userCart))

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// POST /cart/open and POST /cart/close
func SetPanel(m *cart.Manager, open bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := middleware.ClientID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		userCart := m.Get(c.Request.Context(), clientID)
		if open {
			userCart.OpenPanel()
		} else {
			userCart.ClosePanel()
		}
		c.JSON(http.StatusOK, snapshot(userCart))
	}
}
