// Package services contains stateless domain services for the cart bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import "github.com/ghuser/shoppingcart/services/cart/domain/models"

const (
	// MaxDiscount caps the combined discount percentage.
	MaxDiscount = 80

	secondFreeDiscount = 50
	saleDiscount       = 70
	// bulkStep is the quantity that earns one extra percentage point.
	bulkStep = 10
)

// CalculateDiscount returns the discount percentage in [0, MaxDiscount] for a
// line of the given type and quantity.
//
// Business rules:
//   - NEW items never get a discount, bulk bonus included
//   - SECOND_FREE gets 50% when more than one is bought
//   - SALE gets 70%
//   - every other type starts at 0%
//   - every full 10 units add 1%, capped at 80% total
func CalculateDiscount(itemType models.ItemType, quantity int) int {
	if itemType == models.ItemTypeNew {
		return 0
	}

	var discount int
	switch itemType {
	case models.ItemTypeSecondFree:
		if quantity > 1 {
			discount = secondFreeDiscount
		}
	case models.ItemTypeSale:
		discount = saleDiscount
	}

	discount += quantity / bulkStep
	return min(discount, MaxDiscount)
}
