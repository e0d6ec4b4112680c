package store

import (
	"context"

	"github.com/Greenoni119/k2.0/models"
)

// Store is the durable mirror of a client's cart. One record per client,
// overwritten in full on every save.
//
// Load never fails on bad data: a missing or undecodable record yields an
// empty line list. A lost cart is recoverable by re-browsing; a crash on
// load is not.
type Store interface {
	Load(ctx context.Context, clientID string) ([]models.CartLine, error)
	Save(ctx context.Context, clientID string, lines []models.CartLine) error
	Erase(ctx context.Context, clientID string) error
}
