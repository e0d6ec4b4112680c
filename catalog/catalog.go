package catalog

import (
	"context"
	"errors"

	"github.com/Greenoni119/k2.0/models"
)

// ErrNotFound is returned when a product or category does not exist.
var ErrNotFound = errors.New("catalog: not found")

// Service is the read-only product and category lookup the cart and the
// storefront pages consume. Nothing in this repo writes to the catalog.
type Service interface {
	Product(ctx context.Context, id uint) (*models.Product, error)
	Products(ctx context.Context) ([]models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}
