package models

import "time"

// CartLine is one distinct purchasable entry in a cart.
// A line is uniquely keyed by (ProductID, Variant); a product without
// variants simply carries an empty Variant.
type CartLine struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Image     string  `json:"image,omitempty"`
	Variant   string  `json:"variant,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Matches reports whether the line is keyed by (productID, variant).
func (l CartLine) Matches(productID uint, variant string) bool {
	return l.ProductID == productID && l.Variant == variant
}

// CartRecord is the durable mirror of one client's cart.
// Items holds the JSON-encoded ordered line list. There is no schema
// version field; an incompatible payload decodes to an empty cart.
type CartRecord struct {
	ID        uint   `gorm:"primaryKey"`
	ClientID  string `gorm:"uniqueIndex"` // Enforces ONE cart record per client
	Items     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
