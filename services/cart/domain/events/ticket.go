package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicTicketIssued is the Watermill topic published when a ticket is issued.
const TopicTicketIssued = "ticket.issued"

// TicketIssuedEvent is published after a ticket has been formatted for a cart.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicTicketIssued).
type TicketIssuedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	TicketID   uuid.UUID `json:"ticket_id"`
	ItemCount  int       `json:"item_count"`
	Total      string    `json:"total"` // formatted, e.g. "$550.11"
	OccurredAt time.Time `json:"occurred_at"`
}
