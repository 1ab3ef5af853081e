package services

import (
	"testing"

	"github.com/ghuser/shoppingcart/services/cart/domain/models"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		price    float64
		quantity int
		discount int
		want     float64
	}{
		{0.3, 2, 0, 0.6},
		{20, 4, 50, 40},
		{2, 500, 80, 200},
	}
	for _, tt := range tests {
		if got := LineTotal(tt.price, tt.quantity, tt.discount); got != tt.want {
			t.Errorf("LineTotal(%v, %d, %d) = %v, want %v", tt.price, tt.quantity, tt.discount, got, tt.want)
		}
	}
}

func TestPriceCart(t *testing.T) {
	cart := models.NewCart()
	mustAdd(t, cart, "Banana", 20.00, 4, models.ItemTypeSecondFree)
	mustAdd(t, cart, "Nails", 2.00, 500, models.ItemTypeRegular)

	r := PriceCart(cart)
	if len(r.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(r.Lines))
	}
	if r.Lines[0].Discount != 50 || r.Lines[0].Total != 40 {
		t.Errorf("unexpected first line: %+v", r.Lines[0])
	}
	if r.Lines[1].Discount != 50 || r.Lines[1].Total != 500 {
		t.Errorf("unexpected second line: %+v", r.Lines[1])
	}
	if r.Total != 540 {
		t.Errorf("expected total 540, got %v", r.Total)
	}
}

func TestPriceCart_Empty(t *testing.T) {
	r := PriceCart(models.NewCart())
	if len(r.Lines) != 0 || r.Total != 0 {
		t.Fatalf("expected empty receipt, got %+v", r)
	}
}

func mustAdd(t *testing.T, cart *models.Cart, title string, price float64, quantity int, itemType models.ItemType) {
	t.Helper()
	if err := cart.AddItem(title, price, quantity, itemType); err != nil {
		t.Fatalf("AddItem(%q): %v", title, err)
	}
}
