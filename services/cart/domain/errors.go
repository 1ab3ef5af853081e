package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cart domain. Use errors.Is() to check these.
var (
	// ErrInvalidArgument is the single error kind raised when a line item
	// violates a domain constraint. Every field error below wraps it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidTitle indicates the item title is empty or longer than allowed.
	ErrInvalidTitle = fmt.Errorf("%w: illegal title", ErrInvalidArgument)

	// ErrInvalidPrice indicates the unit price is below the minimum amount.
	ErrInvalidPrice = fmt.Errorf("%w: illegal price", ErrInvalidArgument)

	// ErrInvalidQuantity indicates the quantity is below one.
	ErrInvalidQuantity = fmt.Errorf("%w: illegal quantity", ErrInvalidArgument)

	// ErrInvalidItemType indicates the item type is outside the closed set.
	ErrInvalidItemType = fmt.Errorf("%w: illegal item type", ErrInvalidArgument)
)
