package models

// Cart is the aggregate for this bounded context: an insertion-ordered list of
// validated items. Items can only be appended.
//
// A Cart is owned by a single goroutine; callers sharing one must serialize
// AddItem and ticket formatting themselves.
type Cart struct {
	items []Item
}

// NewCart returns an empty Cart. The zero value is also ready to use.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem validates the arguments and appends a new Item. On error the cart is
// left unchanged; the error wraps domain.ErrInvalidArgument.
func (c *Cart) AddItem(title string, unitPrice float64, quantity int, itemType ItemType) error {
	item, err := NewItem(title, unitPrice, quantity, itemType)
	if err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// Items returns a copy of the cart's items in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}
