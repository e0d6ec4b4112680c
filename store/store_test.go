package store

import (
	"context"
	"testing"

	"github.com/Greenoni119/k2.0/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	lines := []models.CartLine{
		{ProductID: 2, Name: "Hoodie", UnitPrice: 59.5, Variant: "M", Quantity: 2},
		{ProductID: 1, Name: "Tote", UnitPrice: 19.99, Quantity: 1},
		{ProductID: 2, Name: "Hoodie", UnitPrice: 59.5, Variant: "L", Quantity: 3},
	}
	if err := s.Save(ctx, "client-a", lines); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := s.Load(ctx, "client-a")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != len(lines) {
		t.Fatalf("Expected %d lines, got %d", len(lines), len(loaded))
	}
	for i := range lines {
		if loaded[i] != lines[i] {
			t.Errorf("Line %d changed through round trip: %+v != %+v", i, loaded[i], lines[i])
		}
	}
}

func TestMemoryStoreLoadMissingClient(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	loaded, err := s.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("Load of missing client should not fail: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected empty cart, got %d lines", len(loaded))
	}
}

func TestMemoryStoreErase(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	ctx := context.Background()

	lines := []models.CartLine{{ProductID: 1, Name: "Tote", UnitPrice: 10, Quantity: 1}}
	if err := s.Save(ctx, "client-a", lines); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Erase(ctx, "client-a"); err != nil {
		t.Fatalf("Erase failed: %v", err)
	}

	loaded, err := s.Load(ctx, "client-a")
	if err != nil {
		t.Fatalf("Load after erase failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Expected empty cart after erase, got %d lines", len(loaded))
	}
}

func TestLoadCorruptPayloadFailsOpen(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	s.records["client-a"] = `{"definitely": "not a line list"`

	loaded, err := s.Load(context.Background(), "client-a")
	if err != nil {
		t.Fatalf("Corrupt payload must not surface an error, got: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("Corrupt payload should decode to an empty cart, got %d lines", len(loaded))
	}
}

func TestDecodeLines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload string
		want    int
	}{
		{"empty payload", "", 0},
		{"json null", "null", 0},
		{"garbage", "][", 0},
		{"incompatible schema", `{"items": 3}`, 0},
		{"one line", `[{"product_id":1,"name":"Tote","unit_price":10,"quantity":2}]`, 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := decodeLines(tc.payload)
			if got == nil {
				t.Fatal("decodeLines must never return nil")
			}
			if len(got) != tc.want {
				t.Errorf("Expected %d lines, got %d", tc.want, len(got))
			}
		})
	}
}
