package models

import (
	"fmt"
	"unicode/utf8"

	"github.com/ghuser/shoppingcart/services/cart/domain"
)

// Title is a value object representing a valid item title.
// Encapsulates validation rules: 1 <= characters <= 32.
type Title string

const (
	minTitleLength = 1
	maxTitleLength = 32
)

// NewTitle constructs a valid Title or returns an error wrapping
// domain.ErrInvalidTitle if constraints are violated.
func NewTitle(s string) (Title, error) {
	n := utf8.RuneCountInString(s)
	if n < minTitleLength || n > maxTitleLength {
		return "", fmt.Errorf("%w: must be %d to %d characters, got %d",
			domain.ErrInvalidTitle, minTitleLength, maxTitleLength, n)
	}
	return Title(s), nil
}

// String returns the underlying string value.
func (t Title) String() string {
	return string(t)
}
