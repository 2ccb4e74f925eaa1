package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"
)

var ErrNoTransition = errors.New("order has no next status")

// BoardOrder is an order as shown on the live board, with the single action
// the staff can take on it.
type BoardOrder struct {
	domain.Order
	NextStatus  domain.OrderStatus `json:"next_status,omitempty"`
	CanAdvance  bool               `json:"can_advance"`
	StatusColor string             `json:"status_color"`
}

func newBoardOrder(o domain.Order) BoardOrder {
	b := BoardOrder{Order: o, StatusColor: o.OrderStatus.Color()}
	if next, ok := o.OrderStatus.Next(); ok {
		b.NextStatus = next
		b.CanAdvance = true
	}
	return b
}

type OrderBoardService struct {
	orders OrderBackend
}

func NewOrderBoardService(orders OrderBackend) *OrderBoardService {
	return &OrderBoardService{orders: orders}
}

var _ OrderBoardInterface = (*OrderBoardService)(nil)

func (s *OrderBoardService) List(ctx context.Context, sess *backend.Session, f backend.OrderFilter) ([]BoardOrder, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrInvalidInput, f.Status)
	}
	orders, err := s.orders.ListOrders(ctx, sess, f)
	if err != nil {
		return nil, err
	}
	board := make([]BoardOrder, 0, len(orders))
	for _, o := range orders {
		board = append(board, newBoardOrder(o))
	}
	return board, nil
}

// Advance moves an order one step along the workflow, starting from the
// status the caller last saw. It never re-reads the order first.
func (s *OrderBoardService) Advance(ctx context.Context, sess *backend.Session, orderID string, current domain.OrderStatus) (*BoardOrder, error) {
	next, ok := current.Next()
	if !ok {
		return nil, ErrNoTransition
	}
	order, err := s.orders.UpdateOrderStatus(ctx, sess, orderID, next)
	if err != nil {
		return nil, err
	}
	log.Printf("[pos-svc] order %s advanced %s -> %s", orderID, current, next)
	b := newBoardOrder(*order)
	return &b, nil
}
