package tests

import (
	"testing"
	"time"

	"waiterman/pos-svc/internal/cart"
	"waiterman/pos-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(id string, price domain.Money) domain.MenuItem {
	return domain.MenuItem{ID: id, Name: "Item " + id, Price: price, Availability: true}
}

func TestCart_AddItemMergesLines(t *testing.T) {
	c := cart.New(cart.Policy{FloorAtOne: true}, domain.ChannelDineIn)

	first, err := c.AddItem(menuItem("a", 1000))
	require.NoError(t, err)
	_, err = c.AddItem(menuItem("a", 1000))
	require.NoError(t, err)
	_, err = c.AddItem(menuItem("b", 500))
	require.NoError(t, err)

	assert.Len(t, c.Lines, 2)
	line, ok := c.Line(first.ID)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 3, c.ItemCount())
}

func TestCart_AddItemRejectsUnavailable(t *testing.T) {
	c := cart.New(cart.Policy{}, domain.ChannelDineIn)
	item := menuItem("a", 1000)
	item.Availability = false

	_, err := c.AddItem(item)

	assert.ErrorIs(t, err, cart.ErrItemUnavailable)
	assert.True(t, c.IsEmpty())
}

func TestCart_AddItemUsesChannelPrice(t *testing.T) {
	item := domain.MenuItem{ID: "a", Price: 1000, TakeawayPrice: 900, Availability: true}

	tests := []struct {
		name    string
		channel domain.Channel
		want    domain.Money
	}{
		{name: "dine in", channel: domain.ChannelDineIn, want: 1000},
		{name: "takeaway", channel: domain.ChannelTakeaway, want: 900},
		{name: "delivery falls back to price", channel: domain.ChannelDelivery, want: 1000},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := cart.New(cart.Policy{}, testCase.channel)
			line, err := c.AddItem(item)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, line.UnitPrice)
		})
	}
}

func TestCart_SetChannelKeepsCapturedPrices(t *testing.T) {
	item := domain.MenuItem{ID: "a", Price: 1000, DeliveryPrice: 1200, Availability: true}
	c := cart.New(cart.Policy{}, domain.ChannelDineIn)
	line, err := c.AddItem(item)
	require.NoError(t, err)

	require.NoError(t, c.SetChannel(domain.ChannelDelivery))

	kept, _ := c.Line(line.ID)
	assert.Equal(t, domain.Money(1000), kept.UnitPrice)
	assert.ErrorIs(t, c.SetChannel("drive_through"), cart.ErrInvalidChannel)
	assert.Equal(t, domain.ChannelDelivery, c.Channel)
}

func TestCart_ChangeQuantity(t *testing.T) {
	tests := []struct {
		name        string
		policy      cart.Policy
		start       int
		delta       int
		wantPresent bool
		wantQty     int
	}{
		{name: "increment", policy: cart.Policy{FloorAtOne: true}, start: 1, delta: 1, wantPresent: true, wantQty: 2},
		{name: "floor at one holds", policy: cart.Policy{FloorAtOne: true}, start: 1, delta: -1, wantPresent: true, wantQty: 1},
		{name: "floor at one clamps big delta", policy: cart.Policy{FloorAtOne: true}, start: 3, delta: -10, wantPresent: true, wantQty: 1},
		{name: "zero removes line", policy: cart.Policy{}, start: 1, delta: -1, wantPresent: false},
		{name: "below zero removes line", policy: cart.Policy{}, start: 2, delta: -5, wantPresent: false},
		{name: "decrement above floor", policy: cart.Policy{}, start: 3, delta: -1, wantPresent: true, wantQty: 2},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := cart.New(testCase.policy, domain.ChannelDineIn)
			var lineID string
			for i := 0; i < testCase.start; i++ {
				line, err := c.AddItem(menuItem("a", 100))
				require.NoError(t, err)
				lineID = line.ID
			}

			present, err := c.ChangeQuantity(lineID, testCase.delta)

			require.NoError(t, err)
			assert.Equal(t, testCase.wantPresent, present)
			line, ok := c.Line(lineID)
			assert.Equal(t, testCase.wantPresent, ok)
			if ok {
				assert.Equal(t, testCase.wantQty, line.Quantity)
			}
			for _, l := range c.Lines {
				assert.GreaterOrEqual(t, l.Quantity, 1)
			}
		})
	}
}

func TestCart_UnknownLine(t *testing.T) {
	c := cart.New(cart.Policy{}, domain.ChannelDineIn)

	_, err := c.ChangeQuantity("missing", 1)
	assert.ErrorIs(t, err, cart.ErrLineNotFound)
	assert.ErrorIs(t, c.RemoveItem("missing"), cart.ErrLineNotFound)
	assert.ErrorIs(t, c.SetNote("missing", "x"), cart.ErrLineNotFound)
}

func TestCart_NoteAndRemove(t *testing.T) {
	c := cart.New(cart.Policy{FloorAtOne: true}, domain.ChannelDineIn)
	ids := make([]string, 0, 3)
	for i, id := range []string{"a", "b", "c"} {
		line, err := c.AddItem(menuItem(id, 100))
		require.NoError(t, err)
		ids = append(ids, line.ID)
		_, err = c.ChangeQuantity(line.ID, i+1)
		require.NoError(t, err)
	}

	require.NoError(t, c.SetNote(ids[2], "no onions"))
	require.NoError(t, c.RemoveItem(ids[1]))

	require.Len(t, c.Lines, 2)
	assert.Equal(t, ids[0], c.Lines[0].ID)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Empty(t, c.Lines[0].Note)
	assert.Equal(t, ids[2], c.Lines[1].ID)
	assert.Equal(t, 4, c.Lines[1].Quantity)
	assert.Equal(t, "no onions", c.Lines[1].Note)
	assert.Equal(t, 6, c.ItemCount())

	_, ok := c.Line(ids[1])
	assert.False(t, ok)
}

func TestCart_AddItemWithModifiers(t *testing.T) {
	burger := menuItem("m1", 1200)
	burger.Modifiers = []domain.Modifier{
		{Name: "Extra cheese", PriceDelta: 150},
		{Name: "Bacon", PriceDelta: 250},
		{Name: "No onions"},
	}

	testCases := []struct {
		name      string
		modifiers []string
		wantPrice domain.Money
		wantMods  []string
		wantErr   error
	}{
		{name: "plain", wantPrice: 1200},
		{name: "one modifier", modifiers: []string{"Extra cheese"}, wantPrice: 1350, wantMods: []string{"Extra cheese"}},
		{name: "deltas add up", modifiers: []string{"Extra cheese", "Bacon"}, wantPrice: 1600, wantMods: []string{"Bacon", "Extra cheese"}},
		{name: "duplicates collapse", modifiers: []string{"Bacon", "Bacon"}, wantPrice: 1450, wantMods: []string{"Bacon"}},
		{name: "free modifier", modifiers: []string{"No onions"}, wantPrice: 1200, wantMods: []string{"No onions"}},
		{name: "unknown modifier", modifiers: []string{"Pineapple"}, wantErr: cart.ErrUnknownModifier},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			c := cart.New(cart.Policy{FloorAtOne: true}, domain.ChannelDineIn)

			line, err := c.AddItem(burger, testCase.modifiers...)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.True(t, c.IsEmpty())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantPrice, line.UnitPrice)
			assert.Equal(t, testCase.wantMods, line.Modifiers)
		})
	}
}

func TestCart_ModifiersSplitLines(t *testing.T) {
	c := cart.New(cart.Policy{FloorAtOne: true}, domain.ChannelDineIn)
	burger := menuItem("m1", 1200)
	burger.Modifiers = []domain.Modifier{{Name: "Extra cheese", PriceDelta: 150}, {Name: "Bacon", PriceDelta: 250}}

	_, err := c.AddItem(burger)
	require.NoError(t, err)
	_, err = c.AddItem(burger, "Bacon", "Extra cheese")
	require.NoError(t, err)
	_, err = c.AddItem(burger, "Extra cheese", "Bacon")
	require.NoError(t, err)
	_, err = c.AddItem(burger)
	require.NoError(t, err)

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, domain.Money(1200), c.Lines[0].UnitPrice)
	assert.Equal(t, 2, c.Lines[1].Quantity)
	assert.Equal(t, domain.Money(1600), c.Lines[1].UnitPrice)
	assert.Equal(t, domain.Money(2400+3200), c.Lines[0].Total()+c.Lines[1].Total())
}

func TestCart_ClearResetsOrderFields(t *testing.T) {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := cart.New(cart.Policy{FloorAtOne: true}, domain.ChannelTakeaway)
	c.SetClock(func() time.Time { return started })
	c.TableID = "t1"
	_, _ = c.AddItem(menuItem("a", 100))
	c.SetCustomer("Ana", "555")
	c.SetDiscount(&domain.DiscountSpec{Kind: domain.DiscountBOGO})

	require.NotNil(t, c.StartedAt)
	assert.True(t, c.StartedAt.Equal(started))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.CustomerName)
	assert.Empty(t, c.CustomerPhone)
	assert.Nil(t, c.Discount)
	assert.Nil(t, c.StartedAt)
	assert.Equal(t, domain.ChannelTakeaway, c.Channel)
	assert.Equal(t, "t1", c.TableID)
	assert.True(t, c.Policy.FloorAtOne)
}

func TestCart_NewDefaultsInvalidChannel(t *testing.T) {
	c := cart.New(cart.Policy{}, "")
	assert.Equal(t, domain.ChannelDineIn, c.Channel)
}
