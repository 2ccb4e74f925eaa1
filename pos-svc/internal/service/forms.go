package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New()

// validateForm reports the first failing field as ErrInvalidInput.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%w: %s %s", ErrInvalidInput, strings.ToLower(fe.Field()), describeTag(fe))
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "datetime":
		return "must be a date formatted as " + fe.Param()
	}
	return "is invalid"
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CustomerForm struct {
	Name  string `json:"customer_name" validate:"max=100"`
	Phone string `json:"customer_phone" validate:"max=20"`
}

type TableForm struct {
	BranchID string `json:"branch_id"`
	Name     string `json:"table_name" validate:"required"`
	Capacity int    `json:"capacity" validate:"gte=1"`
}

func (f TableForm) input() backend.TableInput {
	return backend.TableInput{BranchID: f.BranchID, Name: f.Name, Capacity: f.Capacity}
}

type RestaurantForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Contact string `json:"contact" validate:"max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"max=200"`
}

type BranchForm struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	Name         string `json:"name" validate:"required,max=100"`
	Location     string `json:"location" validate:"max=200"`
	Contact      string `json:"contact" validate:"max=20"`
}

type CategoryForm struct {
	BranchID string `json:"branch_id"`
	Name     string `json:"name" validate:"required"`
	Status   bool   `json:"status"`
}

func (f CategoryForm) input() backend.CategoryInput {
	return backend.CategoryInput{BranchID: f.BranchID, Name: f.Name, Status: f.Status}
}

type SubCategoryForm struct {
	CategoryID string `json:"category_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Status     bool   `json:"status"`
}

type MenuItemForm struct {
	CategoryID    string            `json:"category_id" validate:"required"`
	SubCategoryID string            `json:"sub_category_id"`
	Name          string            `json:"name" validate:"required"`
	Description   string            `json:"description"`
	Price         domain.Money      `json:"price" validate:"gte=0"`
	TakeawayPrice domain.Money      `json:"takeaway_price" validate:"gte=0"`
	DeliveryPrice domain.Money      `json:"delivery_price" validate:"gte=0"`
	Tax           domain.Money      `json:"tax" validate:"gte=0"`
	Availability  bool              `json:"availability"`
	ImageURL      string            `json:"image_url"`
	Modifiers     []domain.Modifier `json:"modifiers"`
}

func (f MenuItemForm) input() backend.MenuItemInput {
	return backend.MenuItemInput{
		CategoryID:    f.CategoryID,
		SubCategoryID: f.SubCategoryID,
		Name:          f.Name,
		Description:   f.Description,
		Price:         f.Price,
		TakeawayPrice: f.TakeawayPrice,
		DeliveryPrice: f.DeliveryPrice,
		Tax:           f.Tax,
		Availability:  f.Availability,
		ImageURL:      f.ImageURL,
		Modifiers:     f.Modifiers,
	}
}

type DiscountForm struct {
	Name      string              `json:"name" validate:"required"`
	Kind      domain.DiscountKind `json:"discount_type" validate:"required,oneof=percentage fixed bogo"`
	Value     decimal.Decimal     `json:"value"`
	Active    bool                `json:"is_active"`
	AppliedOn string              `json:"applied_on"`
}

func (f DiscountForm) check() error {
	if err := validateForm(f); err != nil {
		return err
	}
	if f.Value.IsNegative() {
		return fmt.Errorf("%w: value must not be negative", ErrInvalidInput)
	}
	if f.Kind == domain.DiscountPercentage && f.Value.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%w: percentage must be between 0 and 100", ErrInvalidInput)
	}
	return nil
}

type ReservationForm struct {
	TableID       string    `json:"table_id"`
	CustomerName  string    `json:"customer_name" validate:"required"`
	CustomerPhone string    `json:"customer_phone" validate:"required"`
	PartySize     int       `json:"party_size" validate:"gte=1"`
	ReservedFor   time.Time `json:"reservation_time" validate:"required"`
	Notes         string    `json:"notes"`
}

type StaffForm struct {
	Email        string      `json:"email" validate:"required,email"`
	Password     string      `json:"password" validate:"required,min=6"`
	Name         string      `json:"name" validate:"required"`
	Role         domain.Role `json:"role" validate:"required,oneof=super_admin branch_admin manager staff"`
	RestaurantID string      `json:"restaurant_id"`
	BranchID     string      `json:"branch_id"`
}

type ReportForm struct {
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (f ReportForm) rangeQuery() backend.ReportRange {
	return backend.ReportRange{StartDate: f.StartDate, EndDate: f.EndDate}
}

// DiscountRequest applies either a persisted discount by id or an inline one.
// An empty request removes the cart's discount.
type DiscountRequest struct {
	DiscountID string              `json:"discount_id"`
	Kind       domain.DiscountKind `json:"kind"`
	Value      decimal.Decimal     `json:"value"`
}

func (r DiscountRequest) empty() bool {
	return r.DiscountID == "" && r.Kind == ""
}
