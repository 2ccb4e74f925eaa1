package service

import (
	"context"
	"log"
	"time"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"

	"github.com/google/uuid"
)

type OrderReader interface {
	GetOrder(ctx context.Context, sess *backend.Session, id string) (*domain.Order, error)
}

// KitchenService sends kitchen order tickets. Either sink may be nil; a
// failing sink is logged and never fails the request.
type KitchenService struct {
	orders    OrderReader
	publisher TicketPublisher
	tickets   TicketLog
	now       func() time.Time
}

func NewKitchenService(orders OrderReader, publisher TicketPublisher, tickets TicketLog) *KitchenService {
	return &KitchenService{
		orders:    orders,
		publisher: publisher,
		tickets:   tickets,
		now:       time.Now,
	}
}

var _ KitchenInterface = (*KitchenService)(nil)

func (s *KitchenService) SendKOT(ctx context.Context, sess *backend.Session, orderID string) (*domain.KitchenTicket, error) {
	order, err := s.orders.GetOrder(ctx, sess, orderID)
	if err != nil {
		return nil, err
	}

	ticket := NewTicket(*order, s.now())

	if s.publisher != nil {
		if err := s.publisher.PublishTicket(ctx, ticket); err != nil {
			log.Printf("[pos-svc] WARNING: failed to publish KOT %s for order %s: %v", ticket.ID, order.ID, err)
		}
	}
	if s.tickets != nil {
		if err := s.tickets.RecordTicket(ctx, ticket); err != nil {
			log.Printf("[pos-svc] WARNING: failed to record KOT %s for order %s: %v", ticket.ID, order.ID, err)
		}
	}

	log.Printf("[pos-svc] KOT %s sent for order %s (%d lines)", ticket.ID, order.ID, len(ticket.Lines))
	return &ticket, nil
}

// Tickets returns the tickets already sent for an order, newest first.
func (s *KitchenService) Tickets(ctx context.Context, orderID string) ([]domain.KitchenTicket, error) {
	if s.tickets == nil {
		return []domain.KitchenTicket{}, nil
	}
	return s.tickets.ListTickets(ctx, orderID)
}

func NewTicket(order domain.Order, now time.Time) domain.KitchenTicket {
	lines := make([]domain.TicketLine, 0, len(order.Items))
	for _, it := range order.Items {
		lines = append(lines, domain.TicketLine{
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			Note:      it.Notes,
			Modifiers: it.Modifiers,
		})
	}
	return domain.KitchenTicket{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		TableID:   order.TableID,
		Channel:   order.OrderType,
		Lines:     lines,
		CreatedAt: now.UTC(),
	}
}

// SetClock overrides time.Now, for tests.
func (s *KitchenService) SetClock(now func() time.Time) {
	s.now = now
}
