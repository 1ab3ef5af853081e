// Command demo prints the ticket for a fixed sample cart.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ghuser/shoppingcart/services/cart/domain/models"
	domainsvcs "github.com/ghuser/shoppingcart/services/cart/domain/services"
)

type line struct {
	title    string
	price    float64
	quantity int
	itemType models.ItemType
}

var sample = []line{
	{"Apple", 0.99, 5, models.ItemTypeNew},
	{"Banana", 20.00, 4, models.ItemTypeSecondFree},
	{"A long piece of toilet paper", 17.20, 1, models.ItemTypeSale},
	{"Nails", 2.00, 500, models.ItemTypeRegular},
}

func main() {
	cart, err := sampleCart()
	if err != nil {
		slog.Error("failed to build sample cart", "error", err)
		os.Exit(1)
	}
	fmt.Println(domainsvcs.FormatTicket(cart))
}

func sampleCart() (*models.Cart, error) {
	cart := models.NewCart()
	for _, l := range sample {
		if err := cart.AddItem(l.title, l.price, l.quantity, l.itemType); err != nil {
			return nil, fmt.Errorf("add %q: %w", l.title, err)
		}
	}
	return cart, nil
}
