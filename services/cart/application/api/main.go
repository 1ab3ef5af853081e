package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shoppingcart/pkg/app"
	"github.com/ghuser/shoppingcart/services/cart/application/handlers"
	appsvcs "github.com/ghuser/shoppingcart/services/cart/application/services"
)

// CartRoutes registers cart endpoints on the provided chi router.
func CartRoutes(r chi.Router, a *app.Application) error {
	svcs, err := appsvcs.New(a)
	if err != nil {
		return err
	}
	r.Group(func(r chi.Router) {
		r.Route("/ticket", func(r chi.Router) {
			r.Post("/", handlers.NewPostTicketHandler(svcs, a.IsProduction()).Execute)
		})
	})
	return nil
}
