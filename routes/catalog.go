package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Greenoni119/k2.0/catalog"
	catalogControllers "github.com/Greenoni119/k2.0/controllers/catalog"
)

// SetupCatalogRoutes registers the read-only product and category lookups.
func SetupCatalogRoutes(r *gin.Engine, svc catalog.Service) {
	r.GET("/products", catalogControllers.GetProducts(svc))        // GET /products
	r.GET("/products/:id", catalogControllers.GetProductByID(svc)) // GET /products/:id
	r.GET("/categories", catalogControllers.GetCategories(svc))    // GET /categories
}
