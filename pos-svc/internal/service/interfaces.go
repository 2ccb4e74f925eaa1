package service

import (
	"context"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/cart"
	"waiterman/pos-svc/internal/domain"
)

type CartStore interface {
	LoadCart(ctx context.Context, key string) (*cart.Cart, error)
	SaveCart(ctx context.Context, key string, c *cart.Cart) error
	DeleteCart(ctx context.Context, key string) error
}

type SessionStore interface {
	LoadSession(ctx context.Context, id string) (*backend.Session, error)
	SaveSession(ctx context.Context, sess *backend.Session) error
	DeleteSession(ctx context.Context, id string) error
}

type MenuBackend interface {
	ListMenuItems(ctx context.Context, sess *backend.Session, f backend.MenuFilter) ([]domain.MenuItem, error)
}

type OrderBackend interface {
	ListOrders(ctx context.Context, sess *backend.Session, f backend.OrderFilter) ([]domain.Order, error)
	GetOrder(ctx context.Context, sess *backend.Session, id string) (*domain.Order, error)
	CreateOrder(ctx context.Context, sess *backend.Session, in domain.OrderCreate) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, sess *backend.Session, id string, status domain.OrderStatus) (*domain.Order, error)
}

type DiscountBackend interface {
	ListDiscounts(ctx context.Context, sess *backend.Session) ([]domain.Discount, error)
}

type AuthBackend interface {
	Login(ctx context.Context, email, password string) (*domain.TokenResponse, error)
	Logout(ctx context.Context, sess *backend.Session) error
}

type TableQRBackend interface {
	TableQR(ctx context.Context, sess *backend.Session, id string) (string, error)
}

type TicketPublisher interface {
	PublishTicket(ctx context.Context, ticket domain.KitchenTicket) error
}

type TicketLog interface {
	RecordTicket(ctx context.Context, ticket domain.KitchenTicket) error
	ListTickets(ctx context.Context, orderID string) ([]domain.KitchenTicket, error)
}

type QRGenerator interface {
	Generate(tableID string) ([]byte, error)
}

type POSServiceInterface interface {
	View(ctx context.Context, ref CartRef) (*CartView, error)
	AddItem(ctx context.Context, ref CartRef, itemID string, modifiers ...string) (*CartView, error)
	ChangeQuantity(ctx context.Context, ref CartRef, lineID string, delta int) (*CartView, error)
	RemoveItem(ctx context.Context, ref CartRef, lineID string) (*CartView, error)
	SetNote(ctx context.Context, ref CartRef, lineID, note string) (*CartView, error)
	SetChannel(ctx context.Context, ref CartRef, ch domain.Channel) (*CartView, error)
	SetCustomer(ctx context.Context, ref CartRef, form CustomerForm) (*CartView, error)
	ApplyDiscount(ctx context.Context, ref CartRef, req DiscountRequest) (*CartView, error)
	Clear(ctx context.Context, ref CartRef) (*CartView, error)
	Submit(ctx context.Context, ref CartRef) (*domain.Order, error)
}

type OrderBoardInterface interface {
	List(ctx context.Context, sess *backend.Session, f backend.OrderFilter) ([]BoardOrder, error)
	Advance(ctx context.Context, sess *backend.Session, orderID string, current domain.OrderStatus) (*BoardOrder, error)
}

type KitchenInterface interface {
	SendKOT(ctx context.Context, sess *backend.Session, orderID string) (*domain.KitchenTicket, error)
	Tickets(ctx context.Context, orderID string) ([]domain.KitchenTicket, error)
}

type AuthInterface interface {
	Login(ctx context.Context, form LoginForm) (*backend.Session, error)
	Session(ctx context.Context, id string) (*backend.Session, error)
	Logout(ctx context.Context, sess *backend.Session) error
	Forget(ctx context.Context, sess *backend.Session)
}

type QRInterface interface {
	TablePNG(ctx context.Context, sess *backend.Session, tableID string) ([]byte, error)
}

var (
	_ MenuBackend     = (*backend.Client)(nil)
	_ OrderBackend    = (*backend.Client)(nil)
	_ DiscountBackend = (*backend.Client)(nil)
	_ AuthBackend     = (*backend.Client)(nil)
	_ TableQRBackend  = (*backend.Client)(nil)
)
