package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Branch struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	Location     string    `json:"location,omitempty"`
	Contact      string    `json:"contact,omitempty"`
	Active       bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type Table struct {
	ID        string      `json:"id"`
	BranchID  string      `json:"branch_id,omitempty"`
	Name      string      `json:"table_name"`
	Capacity  int         `json:"capacity"`
	Status    TableStatus `json:"status"`
	QRURL     string      `json:"qr_url,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type Category struct {
	ID        string    `json:"id"`
	BranchID  string    `json:"branch_id,omitempty"`
	Name      string    `json:"name"`
	Status    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SubCategory struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	Status     bool      `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type Modifier struct {
	Name       string `json:"name"`
	PriceDelta Money  `json:"price_delta"`
}

// MenuItem is a read-only copy of the backend record. Price is the dine-in
// price; the takeaway and delivery prices fall back to it when unset.
type MenuItem struct {
	ID            string     `json:"id"`
	CategoryID    string     `json:"category_id"`
	SubCategoryID string     `json:"sub_category_id,omitempty"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Price         Money      `json:"price"`
	TakeawayPrice Money      `json:"takeaway_price,omitempty"`
	DeliveryPrice Money      `json:"delivery_price,omitempty"`
	Tax           Money      `json:"tax"`
	Availability  bool       `json:"availability"`
	ImageURL      string     `json:"image_url,omitempty"`
	Modifiers     []Modifier `json:"modifiers,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (m MenuItem) PriceFor(ch Channel) Money {
	switch ch {
	case ChannelTakeaway:
		if m.TakeawayPrice > 0 {
			return m.TakeawayPrice
		}
	case ChannelDelivery:
		if m.DeliveryPrice > 0 {
			return m.DeliveryPrice
		}
	}
	return m.Price
}

type OrderItem struct {
	ItemID    string   `json:"item_id"`
	ItemName  string   `json:"item_name"`
	Quantity  int      `json:"quantity"`
	Price     Money    `json:"price"`
	Tax       Money    `json:"tax"`
	Notes     string   `json:"notes,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

type Order struct {
	ID            string        `json:"id"`
	TableID       string        `json:"table_id,omitempty"`
	OrderType     Channel       `json:"order_type"`
	Items         []OrderItem   `json:"items"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	TotalAmount   Money         `json:"total_amount"`
	Discount      Money         `json:"discount"`
	Tax           Money         `json:"tax"`
	GrandTotal    Money         `json:"grand_total"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OrderStatus   OrderStatus   `json:"order_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// OrderCreate is the body of POST /orders.
type OrderCreate struct {
	TableID       string      `json:"table_id,omitempty"`
	OrderType     Channel     `json:"order_type"`
	Items         []OrderItem `json:"items"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	Discount      Money       `json:"discount"`
}

type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
	DiscountBOGO       DiscountKind = "bogo"
)

func (k DiscountKind) Valid() bool {
	return k == DiscountPercentage || k == DiscountFixed || k == DiscountBOGO
}

type Discount struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      DiscountKind    `json:"discount_type"`
	Value     decimal.Decimal `json:"value"`
	Active    bool            `json:"is_active"`
	AppliedOn string          `json:"applied_on"`
	CreatedAt time.Time       `json:"created_at"`
}

// DiscountSpec is the discount applied to the current cart, either typed in
// on the POS screen or resolved from a persisted Discount.
type DiscountSpec struct {
	Kind       DiscountKind    `json:"kind"`
	Value      decimal.Decimal `json:"value"`
	DiscountID string          `json:"discount_id,omitempty"`
	Name       string          `json:"name,omitempty"`
}

type Reservation struct {
	ID            string            `json:"id"`
	TableID       string            `json:"table_id,omitempty"`
	CustomerName  string            `json:"customer_name"`
	CustomerPhone string            `json:"customer_phone"`
	PartySize     int               `json:"party_size"`
	ReservedFor   time.Time         `json:"reservation_time"`
	Notes         string            `json:"notes,omitempty"`
	Status        ReservationStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	BranchID     string    `json:"branch_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type UserRegister struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	RestaurantID string `json:"restaurant_id,omitempty"`
	BranchID     string `json:"branch_id,omitempty"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type DashboardStats struct {
	TotalTables     int   `json:"total_tables"`
	OccupiedTables  int   `json:"occupied_tables"`
	AvailableTables int   `json:"available_tables"`
	TotalOrders     int   `json:"total_orders"`
	TodayOrders     int   `json:"today_orders"`
	TotalRevenue    Money `json:"total_revenue"`
	TodayRevenue    Money `json:"today_revenue"`
	TotalMenuItems  int   `json:"total_menu_items"`
}

type DailySales struct {
	Date    string `json:"date"`
	Orders  int    `json:"orders"`
	Revenue Money  `json:"revenue"`
}

type SalesReport struct {
	StartDate         string              `json:"start_date"`
	EndDate           string              `json:"end_date"`
	TotalOrders       int                 `json:"total_orders"`
	TotalRevenue      Money               `json:"total_revenue"`
	TotalTax          Money               `json:"total_tax"`
	TotalDiscount     Money               `json:"total_discount"`
	AverageOrderValue Money               `json:"average_order_value"`
	OrdersByStatus    map[OrderStatus]int `json:"orders_by_status"`
	Daily             []DailySales        `json:"daily"`
}

type ItemSales struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Revenue  Money  `json:"revenue"`
}

type ItemsReport struct {
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Items     []ItemSales `json:"items"`
}

// KitchenTicket is what the kitchen receives when a KOT is sent.
type KitchenTicket struct {
	ID        string       `json:"id"`
	OrderID   string       `json:"order_id"`
	TableID   string       `json:"table_id,omitempty"`
	Channel   Channel      `json:"channel"`
	Lines     []TicketLine `json:"lines"`
	CreatedAt time.Time    `json:"created_at"`
}

type TicketLine struct {
	ItemName  string   `json:"item_name"`
	Quantity  int      `json:"quantity"`
	Note      string   `json:"note,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}
