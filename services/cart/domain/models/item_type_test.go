package models

import (
	"errors"
	"testing"

	"github.com/ghuser/shoppingcart/services/cart/domain"
)

func TestParseItemType(t *testing.T) {
	tests := []struct {
		input   string
		want    ItemType
		wantErr bool
	}{
		{"NEW", ItemTypeNew, false},
		{"regular", ItemTypeRegular, false},
		{"Second_Free", ItemTypeSecondFree, false},
		{" SALE ", ItemTypeSale, false},
		{"", "", true},
		{"CLEARANCE", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseItemType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseItemType(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidItemType) {
				t.Fatalf("expected ErrInvalidItemType, got %v", err)
			}
			if got != tt.want {
				t.Fatalf("ParseItemType(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestItemType_Valid(t *testing.T) {
	for _, it := range ItemTypes {
		if !it.Valid() {
			t.Errorf("%s must be valid", it)
		}
	}
	if ItemType("").Valid() {
		t.Error("zero ItemType must not be valid")
	}
}
