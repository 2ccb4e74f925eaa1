package cart

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"waiterman/pos-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrLineNotFound    = errors.New("cart line not found")
	ErrItemUnavailable = errors.New("menu item is not available")
	ErrInvalidChannel  = errors.New("invalid order channel")
	ErrEmpty           = errors.New("cart is empty")
	ErrUnknownModifier = errors.New("unknown modifier")
)

// Policy decides how quantities bottom out. With FloorAtOne a line can only
// leave the cart through RemoveItem; without it, decrementing to zero drops
// the line.
type Policy struct {
	FloorAtOne bool `json:"floor_at_one"`
}

type Line struct {
	ID        string       `json:"id"`
	ItemID    string       `json:"item_id"`
	Name      string       `json:"name"`
	UnitPrice domain.Money `json:"unit_price"`
	Tax       domain.Money `json:"tax"`
	Quantity  int          `json:"quantity"`
	Note      string       `json:"note"`
	Modifiers []string     `json:"modifiers,omitempty"`
}

func (l Line) Total() domain.Money {
	return l.UnitPrice.Times(l.Quantity)
}

// Cart is the transient order being built by one browser session.
type Cart struct {
	Channel       domain.Channel       `json:"channel"`
	TableID       string               `json:"table_id,omitempty"`
	CustomerName  string               `json:"customer_name,omitempty"`
	CustomerPhone string               `json:"customer_phone,omitempty"`
	Discount      *domain.DiscountSpec `json:"discount,omitempty"`
	StartedAt     *time.Time           `json:"started_at,omitempty"`
	Lines         []Line               `json:"lines"`
	Policy        Policy               `json:"policy"`

	now func() time.Time
}

func New(policy Policy, ch domain.Channel) *Cart {
	if !ch.Valid() {
		ch = domain.ChannelDineIn
	}
	return &Cart{
		Channel: ch,
		Lines:   []Line{},
		Policy:  policy,
	}
}

// AddItem bumps the quantity of the line already holding item with the same
// modifiers, or appends a new line priced for the cart's current channel plus
// the selected modifier deltas.
func (c *Cart) AddItem(item domain.MenuItem, modifiers ...string) (*Line, error) {
	if !item.Availability {
		return nil, ErrItemUnavailable
	}

	selected, delta, err := pickModifiers(item, modifiers)
	if err != nil {
		return nil, err
	}

	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID && slices.Equal(c.Lines[i].Modifiers, selected) {
			c.Lines[i].Quantity++
			return &c.Lines[i], nil
		}
	}

	if c.StartedAt == nil {
		started := c.clock()
		c.StartedAt = &started
	}

	c.Lines = append(c.Lines, Line{
		ID:        uuid.NewString(),
		ItemID:    item.ID,
		Name:      item.Name,
		UnitPrice: item.PriceFor(c.Channel) + delta,
		Tax:       item.Tax,
		Quantity:  1,
		Modifiers: selected,
	})
	return &c.Lines[len(c.Lines)-1], nil
}

// pickModifiers resolves names against the item's modifiers. The result is
// sorted and deduplicated so the same selection always merges into one line.
func pickModifiers(item domain.MenuItem, names []string) ([]string, domain.Money, error) {
	if len(names) == 0 {
		return nil, 0, nil
	}

	selected := slices.Clone(names)
	slices.Sort(selected)
	selected = slices.Compact(selected)

	var delta domain.Money
	for _, name := range selected {
		i := slices.IndexFunc(item.Modifiers, func(m domain.Modifier) bool { return m.Name == name })
		if i < 0 {
			return nil, 0, fmt.Errorf("%w %q for %s", ErrUnknownModifier, name, item.Name)
		}
		delta += item.Modifiers[i].PriceDelta
	}
	return selected, delta, nil
}

// ChangeQuantity applies delta to a line. It reports whether the line is still
// in the cart afterwards.
func (c *Cart) ChangeQuantity(lineID string, delta int) (bool, error) {
	i := c.index(lineID)
	if i < 0 {
		return false, ErrLineNotFound
	}

	floor := 0
	if c.Policy.FloorAtOne {
		floor = 1
	}

	qty := c.Lines[i].Quantity + delta
	if qty < floor {
		qty = floor
	}
	if qty == 0 {
		c.removeAt(i)
		return false, nil
	}
	c.Lines[i].Quantity = qty
	return true, nil
}

func (c *Cart) RemoveItem(lineID string) error {
	i := c.index(lineID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.removeAt(i)
	return nil
}

func (c *Cart) SetNote(lineID, text string) error {
	i := c.index(lineID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.Lines[i].Note = text
	return nil
}

// SetChannel switches the channel used for future adds. Lines already in
// the cart keep the price captured when they were added.
func (c *Cart) SetChannel(ch domain.Channel) error {
	if !ch.Valid() {
		return ErrInvalidChannel
	}
	c.Channel = ch
	return nil
}

func (c *Cart) SetCustomer(name, phone string) {
	c.CustomerName = name
	c.CustomerPhone = phone
}

func (c *Cart) SetDiscount(spec *domain.DiscountSpec) {
	c.Discount = spec
}

// Clear empties the cart and resets the per-order fields. Channel, table and
// policy survive so the next order starts on the same screen.
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.CustomerName = ""
	c.CustomerPhone = ""
	c.Discount = nil
	c.StartedAt = nil
}

func (c *Cart) Line(lineID string) (Line, bool) {
	i := c.index(lineID)
	if i < 0 {
		return Line{}, false
	}
	return c.Lines[i], true
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// SetClock overrides time.Now, for tests.
func (c *Cart) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Cart) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}

func (c *Cart) index(lineID string) int {
	for i := range c.Lines {
		if c.Lines[i].ID == lineID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
}
