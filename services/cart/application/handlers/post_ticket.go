package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/shoppingcart/pkg/errhttp"
	"github.com/ghuser/shoppingcart/pkg/httpx"
	pkgvalidator "github.com/ghuser/shoppingcart/pkg/validator"
	appsvcs "github.com/ghuser/shoppingcart/services/cart/application/services"
	"github.com/ghuser/shoppingcart/services/cart/domain/models"
	domainsvcs "github.com/ghuser/shoppingcart/services/cart/domain/services"
)

// CreateTicketRequest is the request body for POST /ticket.
type CreateTicketRequest struct {
	Items []TicketItemRequest `json:"items" validate:"max=1000,dive"`
} // @name CreateTicketRequest

// TicketItemRequest is one cart line. Price accepts a JSON number or string
// and is decoded without binary rounding. Type is matched case-insensitively;
// field values are checked by the cart, in title, price, quantity, type order.
type TicketItemRequest struct {
	Title    string          `json:"title"    example:"Banana"`
	Price    decimal.Decimal `json:"price"    swaggertype:"string" example:"20.00"`
	Quantity int             `json:"quantity" example:"4"`
	Type     string          `json:"type"     example:"SECOND_FREE"`
} // @name TicketItemRequest

// TicketResponse is returned on successful ticket creation.
type TicketResponse struct {
	ID        uuid.UUID `json:"id"         example:"123e4567-e89b-12d3-a456-426614174000"`
	Ticket    string    `json:"ticket"`
	ItemCount int       `json:"item_count" example:"4"`
	Total     string    `json:"total"      example:"$550.11"`
	IssuedAt  time.Time `json:"issued_at"  example:"2024-01-15T10:30:00Z"`
} // @name TicketResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"line 1: invalid argument: illegal title"`
} // @name ErrorResponse

// PostTicketHandler handles POST /ticket requests.
type PostTicketHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPostTicketHandler returns a PostTicketHandler backed by the given services.
func NewPostTicketHandler(svc *appsvcs.Services, isProduction bool) *PostTicketHandler {
	return &PostTicketHandler{svc: svc, isProduction: isProduction}
}

// Execute builds a cart from the request lines and returns its ticket.
//
//	@Summary		Issue ticket
//	@Description	Prices the given cart lines and renders the fixed-width ticket
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Produce		plain
//	@Param			request	body		CreateTicketRequest	true	"Cart lines"
//	@Success		201		{object}	TicketResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/ticket [post]
func (h *PostTicketHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateTicketRequest](w, r)
	if !ok {
		return
	}

	ticket, err := h.svc.Cart.IssueTicket(r.Context(), toLineItems(req.Items))
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	if httpx.AcceptsText(r) {
		httpx.Text(w, http.StatusCreated, ticket.Text)
		return
	}
	httpx.JSON(w, http.StatusCreated, TicketResponse{
		ID:        ticket.ID,
		Ticket:    ticket.Text,
		ItemCount: ticket.ItemCount,
		Total:     domainsvcs.FormatMoney(ticket.Total),
		IssuedAt:  ticket.IssuedAt,
	})
}

// toLineItems normalizes known type names. Unknown names pass through unchanged
// so the cart rejects them after the title, price and quantity checks.
func toLineItems(items []TicketItemRequest) []appsvcs.LineItem {
	lines := make([]appsvcs.LineItem, 0, len(items))
	for _, it := range items {
		itemType, err := models.ParseItemType(it.Type)
		if err != nil {
			itemType = models.ItemType(it.Type)
		}
		lines = append(lines, appsvcs.LineItem{
			Title:    it.Title,
			Price:    it.Price.InexactFloat64(),
			Quantity: it.Quantity,
			Type:     itemType,
		})
	}
	return lines
}
