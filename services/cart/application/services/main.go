package services

import (
	"github.com/ghuser/shoppingcart/pkg/app"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Cart *CartService
}

// New wires all cart application services with infrastructure from the Application container.
func New(a *app.Application) (*Services, error) {
	var pub Publisher
	if a.EventBus != nil {
		pub = a.EventBus
	}
	cart, err := NewCartService(pub, a.Logger)
	if err != nil {
		return nil, err
	}
	return &Services{Cart: cart}, nil
}
