package service

import (
	"context"
	"log"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"
)

type OrgBackend interface {
	ListRestaurants(ctx context.Context, sess *backend.Session) ([]domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, sess *backend.Session, in backend.RestaurantInput) (*domain.Restaurant, error)
	ListBranches(ctx context.Context, sess *backend.Session, restaurantID string) ([]domain.Branch, error)
	GetBranch(ctx context.Context, sess *backend.Session, id string) (*domain.Branch, error)
	CreateBranch(ctx context.Context, sess *backend.Session, in backend.BranchInput) (*domain.Branch, error)
}

type OrgServiceInterface interface {
	ListRestaurants(ctx context.Context, sess *backend.Session) ([]domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, sess *backend.Session, form RestaurantForm) (*domain.Restaurant, error)
	ListBranches(ctx context.Context, sess *backend.Session, restaurantID string) ([]domain.Branch, error)
	GetBranch(ctx context.Context, sess *backend.Session, id string) (*domain.Branch, error)
	CreateBranch(ctx context.Context, sess *backend.Session, form BranchForm) (*domain.Branch, error)
}

// OrgService manages the restaurants and branches that tables, categories
// and staff hang off.
type OrgService struct {
	repo OrgBackend
}

func NewOrgService(repo OrgBackend) *OrgService {
	return &OrgService{repo: repo}
}

var (
	_ OrgBackend          = (*backend.Client)(nil)
	_ OrgServiceInterface = (*OrgService)(nil)
)

func (s *OrgService) ListRestaurants(ctx context.Context, sess *backend.Session) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx, sess)
}

func (s *OrgService) CreateRestaurant(ctx context.Context, sess *backend.Session, form RestaurantForm) (*domain.Restaurant, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	restaurant, err := s.repo.CreateRestaurant(ctx, sess, backend.RestaurantInput{
		Name:    form.Name,
		Contact: form.Contact,
		Email:   form.Email,
		Address: form.Address,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[pos-svc] restaurant %s created by %s", restaurant.ID, sess.User.ID)
	return restaurant, nil
}

// ListBranches falls back to the caller's own restaurant when restaurantID
// is empty.
func (s *OrgService) ListBranches(ctx context.Context, sess *backend.Session, restaurantID string) ([]domain.Branch, error) {
	if restaurantID == "" {
		restaurantID = sess.User.RestaurantID
	}
	return s.repo.ListBranches(ctx, sess, restaurantID)
}

func (s *OrgService) GetBranch(ctx context.Context, sess *backend.Session, id string) (*domain.Branch, error) {
	return s.repo.GetBranch(ctx, sess, id)
}

func (s *OrgService) CreateBranch(ctx context.Context, sess *backend.Session, form BranchForm) (*domain.Branch, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	branch, err := s.repo.CreateBranch(ctx, sess, backend.BranchInput{
		RestaurantID: form.RestaurantID,
		Name:         form.Name,
		Location:     form.Location,
		Contact:      form.Contact,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[pos-svc] branch %s created for restaurant %s", branch.ID, branch.RestaurantID)
	return branch, nil
}
