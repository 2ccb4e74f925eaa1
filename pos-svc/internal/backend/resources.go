package backend

import (
	"context"
	"net/url"
	"strconv"

	"waiterman/pos-svc/internal/domain"
)

type RestaurantInput struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

type BranchInput struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Location     string `json:"location,omitempty"`
	Contact      string `json:"contact,omitempty"`
}

type TableInput struct {
	BranchID string `json:"branch_id,omitempty"`
	Name     string `json:"table_name"`
	Capacity int    `json:"capacity"`
}

type CategoryInput struct {
	BranchID string `json:"branch_id,omitempty"`
	Name     string `json:"name"`
	Status   bool   `json:"status"`
}

type SubCategoryInput struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Status     bool   `json:"status"`
}

type MenuItemInput struct {
	CategoryID    string            `json:"category_id"`
	SubCategoryID string            `json:"sub_category_id,omitempty"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Price         domain.Money      `json:"price"`
	TakeawayPrice domain.Money      `json:"takeaway_price,omitempty"`
	DeliveryPrice domain.Money      `json:"delivery_price,omitempty"`
	Tax           domain.Money      `json:"tax"`
	Availability  bool              `json:"availability"`
	ImageURL      string            `json:"image_url,omitempty"`
	Modifiers     []domain.Modifier `json:"modifiers,omitempty"`
}

type MenuFilter struct {
	CategoryID    string
	AvailableOnly bool
}

type OrderFilter struct {
	Status  domain.OrderStatus
	TableID string
}

type DiscountInput struct {
	Name      string              `json:"name"`
	Kind      domain.DiscountKind `json:"discount_type"`
	Value     string              `json:"value"`
	Active    bool                `json:"is_active"`
	AppliedOn string              `json:"applied_on"`
}

type ReservationInput struct {
	TableID       string `json:"table_id,omitempty"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	PartySize     int    `json:"party_size"`
	ReservedFor   string `json:"reservation_time"`
	Notes         string `json:"notes,omitempty"`
}

type ReportRange struct {
	StartDate string
	EndDate   string
}

func (r ReportRange) query() url.Values {
	q := url.Values{}
	if r.StartDate != "" {
		q.Set("start_date", r.StartDate)
	}
	if r.EndDate != "" {
		q.Set("end_date", r.EndDate)
	}
	return q
}

// Auth

func (c *Client) Login(ctx context.Context, email, password string) (*domain.TokenResponse, error) {
	var out domain.TokenResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.post(ctx, nil, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout tells the backend and always invalidates the local session, even if
// the call fails.
func (c *Client) Logout(ctx context.Context, sess *Session) error {
	err := c.post(ctx, sess, "/auth/logout", nil, nil)
	sess.Invalidate()
	return err
}

func (c *Client) Me(ctx context.Context, sess *Session) (*domain.User, error) {
	var out domain.User
	if err := c.get(ctx, sess, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Restaurants and branches

// ListRestaurants returns the restaurants the caller owns, or every
// restaurant for a super admin.
func (c *Client) ListRestaurants(ctx context.Context, sess *Session) ([]domain.Restaurant, error) {
	out := []domain.Restaurant{}
	err := c.get(ctx, sess, "/restaurants", nil, &out)
	return out, err
}

func (c *Client) CreateRestaurant(ctx context.Context, sess *Session, in RestaurantInput) (*domain.Restaurant, error) {
	var out domain.Restaurant
	if err := c.post(ctx, sess, "/restaurants", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListBranches filters by restaurantID when set; otherwise the backend scopes
// the list to the caller's own restaurant.
func (c *Client) ListBranches(ctx context.Context, sess *Session, restaurantID string) ([]domain.Branch, error) {
	q := url.Values{}
	if restaurantID != "" {
		q.Set("restaurant_id", restaurantID)
	}
	out := []domain.Branch{}
	err := c.get(ctx, sess, "/branches", q, &out)
	return out, err
}

func (c *Client) GetBranch(ctx context.Context, sess *Session, id string) (*domain.Branch, error) {
	var out domain.Branch
	if err := c.get(ctx, sess, pathID("/branches/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBranch(ctx context.Context, sess *Session, in BranchInput) (*domain.Branch, error) {
	var out domain.Branch
	if err := c.post(ctx, sess, "/branches", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tables

func (c *Client) ListTables(ctx context.Context, sess *Session) ([]domain.Table, error) {
	out := []domain.Table{}
	err := c.get(ctx, sess, "/tables", nil, &out)
	return out, err
}

func (c *Client) GetTable(ctx context.Context, sess *Session, id string) (*domain.Table, error) {
	var out domain.Table
	if err := c.get(ctx, sess, pathID("/tables/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTable(ctx context.Context, sess *Session, in TableInput) (*domain.Table, error) {
	var out domain.Table
	if err := c.post(ctx, sess, "/tables", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTable(ctx context.Context, sess *Session, id string, in TableInput) (*domain.Table, error) {
	var out domain.Table
	if err := c.put(ctx, sess, pathID("/tables/%s", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTable(ctx context.Context, sess *Session, id string) error {
	return c.delete(ctx, sess, pathID("/tables/%s", id))
}

// TableQR returns the table's qr_url, usually a PNG data URI.
func (c *Client) TableQR(ctx context.Context, sess *Session, id string) (string, error) {
	var out struct {
		QRURL string `json:"qr_url"`
	}
	if err := c.get(ctx, sess, pathID("/tables/%s/qr", id), nil, &out); err != nil {
		return "", err
	}
	return out.QRURL, nil
}

// Categories

func (c *Client) ListCategories(ctx context.Context, sess *Session, branchID string) ([]domain.Category, error) {
	q := url.Values{}
	if branchID != "" {
		q.Set("branch_id", branchID)
	}
	out := []domain.Category{}
	err := c.get(ctx, sess, "/categories", q, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, sess *Session, in CategoryInput) (*domain.Category, error) {
	var out domain.Category
	if err := c.post(ctx, sess, "/categories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCategory(ctx context.Context, sess *Session, id string, in CategoryInput) (*domain.Category, error) {
	var out domain.Category
	if err := c.put(ctx, sess, pathID("/categories/%s", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCategory(ctx context.Context, sess *Session, id string) error {
	return c.delete(ctx, sess, pathID("/categories/%s", id))
}

// Subcategories

func (c *Client) ListSubCategories(ctx context.Context, sess *Session, categoryID string) ([]domain.SubCategory, error) {
	q := url.Values{}
	if categoryID != "" {
		q.Set("category_id", categoryID)
	}
	out := []domain.SubCategory{}
	err := c.get(ctx, sess, "/subcategories", q, &out)
	return out, err
}

func (c *Client) CreateSubCategory(ctx context.Context, sess *Session, in SubCategoryInput) (*domain.SubCategory, error) {
	var out domain.SubCategory
	if err := c.post(ctx, sess, "/subcategories", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateSubCategory(ctx context.Context, sess *Session, id string, in SubCategoryInput) (*domain.SubCategory, error) {
	var out domain.SubCategory
	if err := c.put(ctx, sess, pathID("/subcategories/%s", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteSubCategory(ctx context.Context, sess *Session, id string) error {
	return c.delete(ctx, sess, pathID("/subcategories/%s", id))
}

// Menu

func (c *Client) ListMenuItems(ctx context.Context, sess *Session, f MenuFilter) ([]domain.MenuItem, error) {
	q := url.Values{}
	if f.CategoryID != "" {
		q.Set("category_id", f.CategoryID)
	}
	if f.AvailableOnly {
		q.Set("available_only", strconv.FormatBool(true))
	}
	out := []domain.MenuItem{}
	err := c.get(ctx, sess, "/menu/items", q, &out)
	return out, err
}

func (c *Client) CreateMenuItem(ctx context.Context, sess *Session, in MenuItemInput) (*domain.MenuItem, error) {
	var out domain.MenuItem
	if err := c.post(ctx, sess, "/menu/item", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, sess *Session, id string, in MenuItemInput) (*domain.MenuItem, error) {
	var out domain.MenuItem
	if err := c.put(ctx, sess, pathID("/menu/item/%s", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, sess *Session, id string) error {
	return c.delete(ctx, sess, pathID("/menu/item/%s", id))
}

// Orders

func (c *Client) ListOrders(ctx context.Context, sess *Session, f OrderFilter) ([]domain.Order, error) {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.TableID != "" {
		q.Set("table_id", f.TableID)
	}
	out := []domain.Order{}
	err := c.get(ctx, sess, "/orders", q, &out)
	return out, err
}

func (c *Client) GetOrder(ctx context.Context, sess *Session, id string) (*domain.Order, error) {
	var out domain.Order
	if err := c.get(ctx, sess, pathID("/orders/%s", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrder(ctx context.Context, sess *Session, in domain.OrderCreate) (*domain.Order, error) {
	var out domain.Order
	if err := c.post(ctx, sess, "/orders", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, sess *Session, id string, status domain.OrderStatus) (*domain.Order, error) {
	var out domain.Order
	body := map[string]domain.OrderStatus{"order_status": status}
	if err := c.patch(ctx, sess, pathID("/orders/%s/status", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Discounts

func (c *Client) ListDiscounts(ctx context.Context, sess *Session) ([]domain.Discount, error) {
	out := []domain.Discount{}
	err := c.get(ctx, sess, "/discounts", nil, &out)
	return out, err
}

func (c *Client) CreateDiscount(ctx context.Context, sess *Session, in DiscountInput) (*domain.Discount, error) {
	var out domain.Discount
	if err := c.post(ctx, sess, "/discounts", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDiscount(ctx context.Context, sess *Session, id string) error {
	return c.delete(ctx, sess, pathID("/discounts/%s", id))
}

// Reservations

func (c *Client) ListReservations(ctx context.Context, sess *Session) ([]domain.Reservation, error) {
	out := []domain.Reservation{}
	err := c.get(ctx, sess, "/reservations", nil, &out)
	return out, err
}

func (c *Client) CreateReservation(ctx context.Context, sess *Session, in ReservationInput) (*domain.Reservation, error) {
	var out domain.Reservation
	if err := c.post(ctx, sess, "/reservations", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReservationStatus(ctx context.Context, sess *Session, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	var out domain.Reservation
	body := map[string]domain.ReservationStatus{"status": status}
	if err := c.patch(ctx, sess, pathID("/reservations/%s/status", id), body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Users

func (c *Client) ListUsers(ctx context.Context, sess *Session) ([]domain.User, error) {
	out := []domain.User{}
	err := c.get(ctx, sess, "/users", nil, &out)
	return out, err
}

func (c *Client) RegisterUser(ctx context.Context, sess *Session, in domain.UserRegister) (*domain.User, error) {
	var out domain.User
	if err := c.post(ctx, sess, "/auth/register", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, sess *Session, id string) error {
	return c.delete(ctx, sess, pathID("/users/%s", id))
}

// Reporting

func (c *Client) DashboardStats(ctx context.Context, sess *Session) (*domain.DashboardStats, error) {
	var out domain.DashboardStats
	if err := c.get(ctx, sess, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SalesReport(ctx context.Context, sess *Session, r ReportRange) (*domain.SalesReport, error) {
	var out domain.SalesReport
	if err := c.get(ctx, sess, "/reports/sales", r.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ItemsReport(ctx context.Context, sess *Session, r ReportRange) (*domain.ItemsReport, error) {
	var out domain.ItemsReport
	if err := c.get(ctx, sess, "/reports/items", r.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
