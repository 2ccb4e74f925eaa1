package service

import (
	"context"
	"fmt"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"
)

type CatalogBackend interface {
	ListTables(ctx context.Context, sess *backend.Session) ([]domain.Table, error)
	GetTable(ctx context.Context, sess *backend.Session, id string) (*domain.Table, error)
	CreateTable(ctx context.Context, sess *backend.Session, in backend.TableInput) (*domain.Table, error)
	UpdateTable(ctx context.Context, sess *backend.Session, id string, in backend.TableInput) (*domain.Table, error)
	DeleteTable(ctx context.Context, sess *backend.Session, id string) error

	ListCategories(ctx context.Context, sess *backend.Session, branchID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, sess *backend.Session, in backend.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, sess *backend.Session, id string, in backend.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, sess *backend.Session, id string) error

	ListSubCategories(ctx context.Context, sess *backend.Session, categoryID string) ([]domain.SubCategory, error)
	CreateSubCategory(ctx context.Context, sess *backend.Session, in backend.SubCategoryInput) (*domain.SubCategory, error)
	UpdateSubCategory(ctx context.Context, sess *backend.Session, id string, in backend.SubCategoryInput) (*domain.SubCategory, error)
	DeleteSubCategory(ctx context.Context, sess *backend.Session, id string) error

	ListMenuItems(ctx context.Context, sess *backend.Session, f backend.MenuFilter) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, sess *backend.Session, in backend.MenuItemInput) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, sess *backend.Session, id string, in backend.MenuItemInput) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, sess *backend.Session, id string) error

	ListDiscounts(ctx context.Context, sess *backend.Session) ([]domain.Discount, error)
	CreateDiscount(ctx context.Context, sess *backend.Session, in backend.DiscountInput) (*domain.Discount, error)
	DeleteDiscount(ctx context.Context, sess *backend.Session, id string) error
}

type CatalogServiceInterface interface {
	ListTables(ctx context.Context, sess *backend.Session) ([]domain.Table, error)
	CreateTable(ctx context.Context, sess *backend.Session, form TableForm) (*domain.Table, error)
	UpdateTable(ctx context.Context, sess *backend.Session, id string, form TableForm) (*domain.Table, error)
	DeleteTable(ctx context.Context, sess *backend.Session, id string) error

	ListCategories(ctx context.Context, sess *backend.Session, branchID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, sess *backend.Session, form CategoryForm) (*domain.Category, error)
	UpdateCategory(ctx context.Context, sess *backend.Session, id string, form CategoryForm) (*domain.Category, error)
	DeleteCategory(ctx context.Context, sess *backend.Session, id string) error

	ListSubCategories(ctx context.Context, sess *backend.Session, categoryID string) ([]domain.SubCategory, error)
	CreateSubCategory(ctx context.Context, sess *backend.Session, form SubCategoryForm) (*domain.SubCategory, error)
	UpdateSubCategory(ctx context.Context, sess *backend.Session, id string, form SubCategoryForm) (*domain.SubCategory, error)
	DeleteSubCategory(ctx context.Context, sess *backend.Session, id string) error

	ListMenu(ctx context.Context, sess *backend.Session, f backend.MenuFilter) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, sess *backend.Session, form MenuItemForm) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, sess *backend.Session, id string, form MenuItemForm) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, sess *backend.Session, id string) error

	ListDiscounts(ctx context.Context, sess *backend.Session) ([]domain.Discount, error)
	CreateDiscount(ctx context.Context, sess *backend.Session, form DiscountForm) (*domain.Discount, error)
	DeleteDiscount(ctx context.Context, sess *backend.Session, id string) error

	GuestMenu(ctx context.Context, tableID string) (*GuestMenu, error)
}

// GuestMenu is what a customer sees after scanning a table's QR code.
type GuestMenu struct {
	Table      domain.Table      `json:"table"`
	Categories []domain.Category `json:"categories"`
	Items      []domain.MenuItem `json:"items"`
}

type CatalogService struct {
	repo CatalogBackend
}

func NewCatalogService(repo CatalogBackend) *CatalogService {
	return &CatalogService{repo: repo}
}

var (
	_ CatalogBackend          = (*backend.Client)(nil)
	_ CatalogServiceInterface = (*CatalogService)(nil)
)

func (s *CatalogService) ListTables(ctx context.Context, sess *backend.Session) ([]domain.Table, error) {
	return s.repo.ListTables(ctx, sess)
}

func (s *CatalogService) CreateTable(ctx context.Context, sess *backend.Session, form TableForm) (*domain.Table, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.CreateTable(ctx, sess, form.input())
}

func (s *CatalogService) UpdateTable(ctx context.Context, sess *backend.Session, id string, form TableForm) (*domain.Table, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.UpdateTable(ctx, sess, id, form.input())
}

func (s *CatalogService) DeleteTable(ctx context.Context, sess *backend.Session, id string) error {
	return s.repo.DeleteTable(ctx, sess, id)
}

func (s *CatalogService) ListCategories(ctx context.Context, sess *backend.Session, branchID string) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx, sess, branchID)
}

func (s *CatalogService) CreateCategory(ctx context.Context, sess *backend.Session, form CategoryForm) (*domain.Category, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.CreateCategory(ctx, sess, form.input())
}

func (s *CatalogService) UpdateCategory(ctx context.Context, sess *backend.Session, id string, form CategoryForm) (*domain.Category, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.UpdateCategory(ctx, sess, id, form.input())
}

func (s *CatalogService) DeleteCategory(ctx context.Context, sess *backend.Session, id string) error {
	return s.repo.DeleteCategory(ctx, sess, id)
}

func (s *CatalogService) ListSubCategories(ctx context.Context, sess *backend.Session, categoryID string) ([]domain.SubCategory, error) {
	return s.repo.ListSubCategories(ctx, sess, categoryID)
}

func (s *CatalogService) CreateSubCategory(ctx context.Context, sess *backend.Session, form SubCategoryForm) (*domain.SubCategory, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.CreateSubCategory(ctx, sess, backend.SubCategoryInput{CategoryID: form.CategoryID, Name: form.Name, Status: form.Status})
}

func (s *CatalogService) UpdateSubCategory(ctx context.Context, sess *backend.Session, id string, form SubCategoryForm) (*domain.SubCategory, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.UpdateSubCategory(ctx, sess, id, backend.SubCategoryInput{CategoryID: form.CategoryID, Name: form.Name, Status: form.Status})
}

func (s *CatalogService) DeleteSubCategory(ctx context.Context, sess *backend.Session, id string) error {
	return s.repo.DeleteSubCategory(ctx, sess, id)
}

func (s *CatalogService) ListMenu(ctx context.Context, sess *backend.Session, f backend.MenuFilter) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx, sess, f)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, sess *backend.Session, form MenuItemForm) (*domain.MenuItem, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.CreateMenuItem(ctx, sess, form.input())
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, sess *backend.Session, id string, form MenuItemForm) (*domain.MenuItem, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.UpdateMenuItem(ctx, sess, id, form.input())
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, sess *backend.Session, id string) error {
	return s.repo.DeleteMenuItem(ctx, sess, id)
}

func (s *CatalogService) ListDiscounts(ctx context.Context, sess *backend.Session) ([]domain.Discount, error) {
	return s.repo.ListDiscounts(ctx, sess)
}

func (s *CatalogService) CreateDiscount(ctx context.Context, sess *backend.Session, form DiscountForm) (*domain.Discount, error) {
	if err := form.check(); err != nil {
		return nil, err
	}
	return s.repo.CreateDiscount(ctx, sess, backend.DiscountInput{
		Name:      form.Name,
		Kind:      form.Kind,
		Value:     form.Value.String(),
		Active:    form.Active,
		AppliedOn: form.AppliedOn,
	})
}

func (s *CatalogService) DeleteDiscount(ctx context.Context, sess *backend.Session, id string) error {
	return s.repo.DeleteDiscount(ctx, sess, id)
}

// GuestMenu loads the table and its available menu without credentials.
// Categories are limited to the table's branch when it has one.
func (s *CatalogService) GuestMenu(ctx context.Context, tableID string) (*GuestMenu, error) {
	table, err := s.repo.GetTable(ctx, nil, tableID)
	if err != nil {
		return nil, fmt.Errorf("table %s: %w", tableID, err)
	}
	categories, err := s.repo.ListCategories(ctx, nil, table.BranchID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListMenuItems(ctx, nil, backend.MenuFilter{AvailableOnly: true})
	if err != nil {
		return nil, err
	}

	active := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		if c.Status {
			active = append(active, c)
		}
	}
	return &GuestMenu{Table: *table, Categories: active, Items: items}, nil
}
