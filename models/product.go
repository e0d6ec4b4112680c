package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"` // Required
	Image       string  `json:"image"`
	// VariantOptions lists the selectable variants (e.g. size labels).
	// Empty means the product has no variants.
	VariantOptions []string       `gorm:"serializer:json" json:"variant_options"`
	Categories     []Category     `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// CartLine builds the cart entry for one unit of the product in the given
// variant. Quantity is left to the cart to assign.
func (p Product) CartLine(variant string) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.Image,
		Variant:   variant,
	}
}

// HasVariant reports whether variant is a valid selection for the product.
// The empty variant is always valid for products without options.
func (p Product) HasVariant(variant string) bool {
	if variant == "" {
		return len(p.VariantOptions) == 0
	}
	for _, v := range p.VariantOptions {
		if v == variant {
			return true
		}
	}
	return false
}
