package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/billing"
	"waiterman/pos-svc/internal/cart"
	"waiterman/pos-svc/internal/domain"
	"waiterman/pos-svc/internal/storage"
)

var (
	ErrItemNotFound     = errors.New("menu item not found")
	ErrDiscountNotFound = errors.New("discount not found")
	ErrDiscountInactive = errors.New("discount is not active")
	ErrGuestDiscount    = errors.New("discounts can only be applied at the POS")
	ErrOverdiscounted   = errors.New("discount exceeds the order total")
)

// CartRef addresses one cart. Admin carts ride on the staff session; guest
// carts belong to a browser and a table and call the backend anonymously.
type CartRef struct {
	Key     string
	TableID string
	Session *backend.Session
}

func AdminCart(sess *backend.Session) CartRef {
	return CartRef{Key: "pos:" + sess.ID, Session: sess}
}

func GuestCart(guestID, tableID string) CartRef {
	return CartRef{Key: "guest:" + guestID + ":" + tableID, TableID: tableID}
}

func (r CartRef) Guest() bool {
	return r.Session == nil
}

type CartView struct {
	Cart      *cart.Cart   `json:"cart"`
	Bill      billing.Bill `json:"bill"`
	ItemCount int          `json:"item_count"`
}

type POSService struct {
	carts     CartStore
	menu      MenuBackend
	orders    OrderBackend
	discounts DiscountBackend
	calc      billing.Calculator
	policy    cart.Policy
}

func NewPOSService(carts CartStore, menu MenuBackend, orders OrderBackend, discounts DiscountBackend, policy cart.Policy, calc billing.Calculator) *POSService {
	return &POSService{
		carts:     carts,
		menu:      menu,
		orders:    orders,
		discounts: discounts,
		calc:      calc,
		policy:    policy,
	}
}

var _ POSServiceInterface = (*POSService)(nil)

func (s *POSService) View(ctx context.Context, ref CartRef) (*CartView, error) {
	c, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.view(c), nil
}

func (s *POSService) AddItem(ctx context.Context, ref CartRef, itemID string, modifiers ...string) (*CartView, error) {
	item, err := s.findItem(ctx, ref, itemID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, ref, func(c *cart.Cart) error {
		_, err := c.AddItem(*item, modifiers...)
		return err
	})
}

func (s *POSService) ChangeQuantity(ctx context.Context, ref CartRef, lineID string, delta int) (*CartView, error) {
	return s.mutate(ctx, ref, func(c *cart.Cart) error {
		_, err := c.ChangeQuantity(lineID, delta)
		return err
	})
}

func (s *POSService) RemoveItem(ctx context.Context, ref CartRef, lineID string) (*CartView, error) {
	return s.mutate(ctx, ref, func(c *cart.Cart) error {
		return c.RemoveItem(lineID)
	})
}

func (s *POSService) SetNote(ctx context.Context, ref CartRef, lineID, note string) (*CartView, error) {
	return s.mutate(ctx, ref, func(c *cart.Cart) error {
		return c.SetNote(lineID, note)
	})
}

func (s *POSService) SetChannel(ctx context.Context, ref CartRef, ch domain.Channel) (*CartView, error) {
	return s.mutate(ctx, ref, func(c *cart.Cart) error {
		return c.SetChannel(ch)
	})
}

func (s *POSService) SetCustomer(ctx context.Context, ref CartRef, form CustomerForm) (*CartView, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.mutate(ctx, ref, func(c *cart.Cart) error {
		c.SetCustomer(form.Name, form.Phone)
		return nil
	})
}

// ApplyDiscount sets or removes the cart discount. A discount id must name an
// active persisted discount; inline values are clamped to their legal range.
func (s *POSService) ApplyDiscount(ctx context.Context, ref CartRef, req DiscountRequest) (*CartView, error) {
	if ref.Guest() && !req.empty() {
		return nil, ErrGuestDiscount
	}

	var spec *domain.DiscountSpec
	switch {
	case req.empty():
	case req.DiscountID != "":
		resolved, err := s.resolveDiscount(ctx, ref.Session, req.DiscountID)
		if err != nil {
			return nil, err
		}
		spec = resolved
	default:
		if !req.Kind.Valid() {
			return nil, fmt.Errorf("%w: unknown discount type %q", ErrInvalidInput, req.Kind)
		}
		normalized := billing.Normalize(domain.DiscountSpec{Kind: req.Kind, Value: req.Value})
		spec = &normalized
	}

	return s.mutate(ctx, ref, func(c *cart.Cart) error {
		c.SetDiscount(spec)
		return nil
	})
}

func (s *POSService) Clear(ctx context.Context, ref CartRef) (*CartView, error) {
	return s.mutate(ctx, ref, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
}

// Submit posts the cart as a new order. The cart is cleared only after the
// backend accepted it; on any failure it is left exactly as it was.
func (s *POSService) Submit(ctx context.Context, ref CartRef) (*domain.Order, error) {
	c, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrEmpty
	}

	bill := s.calc.Bill(c)
	if bill.Overdiscounted && !s.calc.ClampAtZero {
		return nil, ErrOverdiscounted
	}

	order, err := s.orders.CreateOrder(ctx, ref.Session, orderCreate(c, bill))
	if err != nil {
		return nil, err
	}

	c.Clear()
	if err := s.carts.SaveCart(ctx, ref.Key, c); err != nil {
		log.Printf("[pos-svc] WARNING: order %s created but cart %s not cleared: %v", order.ID, ref.Key, err)
	}
	log.Printf("[pos-svc] order %s submitted from cart %s (%s, %d lines)", order.ID, ref.Key, order.OrderType, len(order.Items))
	return order, nil
}

func orderCreate(c *cart.Cart, bill billing.Bill) domain.OrderCreate {
	items := make([]domain.OrderItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, domain.OrderItem{
			ItemID:    l.ItemID,
			ItemName:  l.Name,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
			Tax:       l.Tax,
			Notes:     l.Note,
			Modifiers: l.Modifiers,
		})
	}
	return domain.OrderCreate{
		TableID:       c.TableID,
		OrderType:     c.Channel,
		Items:         items,
		CustomerName:  c.CustomerName,
		CustomerPhone: c.CustomerPhone,
		Discount:      bill.Discount,
	}
}

func (s *POSService) mutate(ctx context.Context, ref CartRef, fn func(*cart.Cart) error) (*CartView, error) {
	c, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := s.carts.SaveCart(ctx, ref.Key, c); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	return s.view(c), nil
}

// load returns the stored cart or a fresh one. Guest carts are always
// dine-in at their table.
func (s *POSService) load(ctx context.Context, ref CartRef) (*cart.Cart, error) {
	c, err := s.carts.LoadCart(ctx, ref.Key)
	if errors.Is(err, storage.ErrNotFound) {
		c = cart.New(s.policy, domain.ChannelDineIn)
		c.TableID = ref.TableID
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	c.Policy = s.policy
	return c, nil
}

func (s *POSService) view(c *cart.Cart) *CartView {
	return &CartView{Cart: c, Bill: s.calc.Bill(c), ItemCount: c.ItemCount()}
}

func (s *POSService) findItem(ctx context.Context, ref CartRef, itemID string) (*domain.MenuItem, error) {
	items, err := s.menu.ListMenuItems(ctx, ref.Session, backend.MenuFilter{})
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *POSService) resolveDiscount(ctx context.Context, sess *backend.Session, id string) (*domain.DiscountSpec, error) {
	discounts, err := s.discounts.ListDiscounts(ctx, sess)
	if err != nil {
		return nil, err
	}
	for _, d := range discounts {
		if d.ID != id {
			continue
		}
		if !d.Active {
			return nil, ErrDiscountInactive
		}
		if !d.Kind.Valid() {
			return nil, fmt.Errorf("%w: unknown discount type %q", ErrInvalidInput, d.Kind)
		}
		spec := billing.Normalize(domain.DiscountSpec{Kind: d.Kind, Value: d.Value, DiscountID: d.ID, Name: d.Name})
		return &spec, nil
	}
	return nil, ErrDiscountNotFound
}
