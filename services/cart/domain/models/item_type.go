package models

import (
	"fmt"
	"strings"

	"github.com/ghuser/shoppingcart/services/cart/domain"
)

// ItemType selects the discount rule applied to a line item.
type ItemType string

const (
	ItemTypeNew        ItemType = "NEW"
	ItemTypeRegular    ItemType = "REGULAR"
	ItemTypeSecondFree ItemType = "SECOND_FREE"
	ItemTypeSale       ItemType = "SALE"
)

// ItemTypes lists every valid ItemType in declaration order.
var ItemTypes = []ItemType{ItemTypeNew, ItemTypeRegular, ItemTypeSecondFree, ItemTypeSale}

// ParseItemType maps a case-insensitive name to an ItemType.
func ParseItemType(s string) (ItemType, error) {
	t := ItemType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidItemType, s)
	}
	return t, nil
}

// Valid reports whether t is one of the declared item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeNew, ItemTypeRegular, ItemTypeSecondFree, ItemTypeSale:
		return true
	default:
		return false
	}
}

func (t ItemType) String() string {
	return string(t)
}
