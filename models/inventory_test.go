package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLowStock(t *testing.T) {
	cases := []struct {
		name     string
		quantity float64
		reorder  float64
		want     bool
	}{
		{"well stocked", 50, 10, false},
		{"just above threshold", 11, 10, false},
		{"at threshold", 10, 10, true},
		{"below threshold", 5, 10, true},
		{"empty", 0, 10, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := InventoryItem{Quantity: tc.quantity, ReorderLevel: tc.reorder}
			assert.Equal(t, tc.want, item.IsLowStock())
		})
	}
}
