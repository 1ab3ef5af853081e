package services

import "github.com/ghuser/shoppingcart/services/cart/domain/models"

// PricedLine is a cart item with its discount and discounted total applied.
type PricedLine struct {
	Item     models.Item
	Discount int
	Total    float64
}

// Receipt is the priced view of a cart. Total is the unrounded sum of the line
// totals; rounding happens only when it is formatted.
type Receipt struct {
	Lines []PricedLine
	Total float64
}

// LineTotal returns unitPrice * quantity reduced by discount percent.
func LineTotal(unitPrice float64, quantity, discount int) float64 {
	return unitPrice * float64(quantity) * float64(100-discount) / 100
}

// PriceCart prices every item of cart in insertion order.
func PriceCart(cart *models.Cart) Receipt {
	items := cart.Items()
	r := Receipt{Lines: make([]PricedLine, 0, len(items))}
	for _, item := range items {
		discount := CalculateDiscount(item.Type, item.Quantity)
		total := LineTotal(item.UnitPrice, item.Quantity, discount)
		r.Lines = append(r.Lines, PricedLine{Item: item, Discount: discount, Total: total})
		r.Total += total
	}
	return r
}
