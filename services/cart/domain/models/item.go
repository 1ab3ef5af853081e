package models

import (
	"fmt"
	"math"

	"github.com/ghuser/shoppingcart/services/cart/domain"
)

const (
	// MinUnitPrice is the smallest accepted unit price, one cent.
	MinUnitPrice = 0.01
	// MinQuantity is the smallest accepted quantity. There is no upper bound.
	MinQuantity = 1
)

// Item is a single cart line. It is stored by value and never mutated after
// NewItem returns it.
type Item struct {
	Title     Title
	UnitPrice float64
	Quantity  int
	Type      ItemType
}

// NewItem validates its arguments in order (title, price, quantity, type) and
// returns the first violation.
func NewItem(title string, unitPrice float64, quantity int, itemType ItemType) (Item, error) {
	t, err := NewTitle(title)
	if err != nil {
		return Item{}, err
	}

	if !(unitPrice >= MinUnitPrice) || math.IsInf(unitPrice, 1) {
		return Item{}, fmt.Errorf("%w: must be at least %.2f, got %v",
			domain.ErrInvalidPrice, MinUnitPrice, unitPrice)
	}

	if quantity < MinQuantity {
		return Item{}, fmt.Errorf("%w: must be at least %d, got %d",
			domain.ErrInvalidQuantity, MinQuantity, quantity)
	}

	if !itemType.Valid() {
		return Item{}, fmt.Errorf("%w: %q", domain.ErrInvalidItemType, string(itemType))
	}

	return Item{
		Title:     t,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Type:      itemType,
	}, nil
}
