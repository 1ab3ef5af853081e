package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/ghuser/shoppingcart/pkg/logger"
	domainevents "github.com/ghuser/shoppingcart/services/cart/domain/events"
	"github.com/ghuser/shoppingcart/services/cart/domain/models"
	domainsvcs "github.com/ghuser/shoppingcart/services/cart/domain/services"
)

const instrumentationName = "github.com/ghuser/shoppingcart/services/cart"

// Publisher delivers messages to a topic. *events.EventBus satisfies it.
type Publisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// LineItem is one requested cart line, in the order it should appear on the ticket.
type LineItem struct {
	Title    string
	Price    float64
	Quantity int
	Type     models.ItemType
}

// IssuedTicket is the result of IssueTicket.
type IssuedTicket struct {
	ID        uuid.UUID
	Text      string
	ItemCount int
	Total     float64
	IssuedAt  time.Time
}

// CartService builds carts from line items and issues tickets for them.
// Nothing is stored: every call works on a fresh Cart.
type CartService struct {
	pub    Publisher
	log    logger.Logger
	now    func() time.Time
	tracer trace.Tracer

	issued    metric.Int64Counter
	itemCount metric.Int64Histogram
}

// NewCartService returns a CartService publishing ticket.issued events to pub.
// pub may be nil, in which case no events are published.
func NewCartService(pub Publisher, log logger.Logger) (*CartService, error) {
	meter := otel.Meter(instrumentationName)
	issued, err := meter.Int64Counter("cart.tickets.issued",
		metric.WithDescription("Number of tickets issued"))
	if err != nil {
		return nil, fmt.Errorf("create tickets counter: %w", err)
	}
	itemCount, err := meter.Int64Histogram("cart.ticket.items",
		metric.WithDescription("Number of items per issued ticket"))
	if err != nil {
		return nil, fmt.Errorf("create items histogram: %w", err)
	}
	return &CartService{
		pub:       pub,
		log:       log,
		now:       time.Now,
		tracer:    otel.Tracer(instrumentationName),
		issued:    issued,
		itemCount: itemCount,
	}, nil
}

// IssueTicket adds lines to a new Cart in order and renders its ticket.
// A rejected line aborts the whole call; the error names the 1-based line
// number and wraps the domain error.
// Publishing the ticket.issued event is best effort: a failure is logged.
func (s *CartService) IssueTicket(ctx context.Context, lines []LineItem) (*IssuedTicket, error) {
	ctx, span := s.tracer.Start(ctx, "CartService.IssueTicket",
		trace.WithAttributes(attribute.Int("cart.lines", len(lines))))
	defer span.End()

	cart := models.NewCart()
	for i, l := range lines {
		if err := cart.AddItem(l.Title, l.Price, l.Quantity, l.Type); err != nil {
			err = fmt.Errorf("line %d: %w", i+1, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "invalid line item")
			return nil, err
		}
	}

	receipt := domainsvcs.PriceCart(cart)
	ticket := &IssuedTicket{
		ID:        uuid.New(),
		Text:      domainsvcs.FormatTicket(cart),
		ItemCount: cart.Len(),
		Total:     receipt.Total,
		IssuedAt:  s.now().UTC(),
	}
	span.SetAttributes(attribute.String("ticket.id", ticket.ID.String()))

	s.publish(ctx, ticket)

	s.issued.Add(ctx, 1)
	s.itemCount.Record(ctx, int64(ticket.ItemCount))

	return ticket, nil
}

func (s *CartService) publish(ctx context.Context, t *IssuedTicket) {
	if s.pub == nil {
		return
	}
	evt := domainevents.TicketIssuedEvent{
		EventID:    uuid.New(),
		Version:    1,
		TicketID:   t.ID,
		ItemCount:  t.ItemCount,
		Total:      domainsvcs.FormatMoney(t.Total),
		OccurredAt: t.IssuedAt,
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		s.log.WarnContext(ctx, "marshal ticket.issued failed", "ticket_id", t.ID, "error", err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pub.Publish(ctx, domainevents.TopicTicketIssued, msg); err != nil {
		s.log.WarnContext(ctx, "publish ticket.issued failed", "ticket_id", t.ID, "error", err)
	}
}

// HandleTicketIssued returns a subscriber for ticket.issued events that logs
// each issued ticket. It is idempotent.
func HandleTicketIssued(log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt domainevents.TicketIssuedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return fmt.Errorf("decode %s: %w", domainevents.TopicTicketIssued, err)
		}
		log.InfoContext(ctx, "ticket issued",
			"ticket_id", evt.TicketID,
			"event_id", evt.EventID,
			"item_count", evt.ItemCount,
			"total", evt.Total,
		)
		return nil
	}
}
