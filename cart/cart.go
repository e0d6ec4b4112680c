package cart

import (
	"context"
	"log"
	"sync"

	"github.com/Greenoni119/k2.0/models"
	"github.com/Greenoni119/k2.0/store"
)

// Cart is the authoritative in-memory cart for one client. It is the sole
// mutator of its line list: every mutation runs under the lock, so each is
// atomic, and is written through to the store before the method returns.
//
// Mutators are total. Persistence failures are logged and swallowed; the
// cart stays usable on in-memory state alone.
type Cart struct {
	mu        sync.Mutex
	clientID  string
	lines     []models.CartLine
	panelOpen bool
	store     store.Store
}

// Load hydrates a cart from the client's persisted snapshot. A missing or
// undecodable snapshot yields an empty cart.
func Load(ctx context.Context, st store.Store, clientID string) *Cart {
	lines, err := st.Load(ctx, clientID)
	if err != nil {
		log.Printf("cart %s: load failed, starting empty: %v", clientID, err)
		lines = []models.CartLine{}
	}
	return &Cart{clientID: clientID, lines: lines, store: st}
}

// AddItem merges an item into the cart: an existing (product, variant)
// line gains one more unit, otherwise a new line with quantity 1 is
// appended. The cart panel opens so the user sees the result.
func (c *Cart) AddItem(ctx context.Context, item models.CartLine) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx := c.find(item.ProductID, item.Variant); idx >= 0 {
		c.lines[idx].Quantity++
	} else {
		item.Quantity = 1
		c.lines = append(c.lines, item)
	}
	c.panelOpen = true
	c.persist(ctx)
}

// UpdateQuantity sets the quantity of the matching line. A quantity below 1
// removes the line instead. No-op when no line matches.
func (c *Cart) UpdateQuantity(ctx context.Context, productID uint, variant string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.find(productID, variant)
	if idx < 0 {
		return
	}
	if quantity < 1 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	} else {
		c.lines[idx].Quantity = quantity
	}
	c.persist(ctx)
}

// RemoveItem removes the matching line. No-op when no line matches.
func (c *Cart) RemoveItem(ctx context.Context, productID uint, variant string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.find(productID, variant)
	if idx < 0 {
		return
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	c.persist(ctx)
}

// Clear empties the cart and erases the durable record. Called from the
// payment success boundary or by explicit user action.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = []models.CartLine{}
	if err := c.store.Erase(ctx, c.clientID); err != nil {
		log.Printf("cart %s: erase failed: %v", c.clientID, err)
	}
}

func (c *Cart) OpenPanel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.panelOpen = true
}

func (c *Cart) ClosePanel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.panelOpen = false
}

func (c *Cart) IsPanelOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.panelOpen
}

// Lines returns a snapshot copy of the line list.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Subtotal is always recomputed from the lines, never stored.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// find returns the index of the (productID, variant) line, or -1.
// Callers hold the lock.
func (c *Cart) find(productID uint, variant string) int {
	for i := range c.lines {
		if c.lines[i].Matches(productID, variant) {
			return i
		}
	}
	return -1
}

// snapshot copies the line list. Callers hold the lock.
func (c *Cart) snapshot() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// persist writes the current lines through to the store. Callers hold the
// lock. Failures never propagate; the cart must not depend on storage
// availability.
func (c *Cart) persist(ctx context.Context) {
	if err := c.store.Save(ctx, c.clientID, c.snapshot()); err != nil {
		log.Printf("cart %s: save failed, continuing in memory: %v", c.clientID, err)
	}
}
