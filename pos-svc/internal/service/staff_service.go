package service

import (
	"context"
	"fmt"
	"time"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"
)

type StaffBackend interface {
	ListUsers(ctx context.Context, sess *backend.Session) ([]domain.User, error)
	RegisterUser(ctx context.Context, sess *backend.Session, in domain.UserRegister) (*domain.User, error)
	DeleteUser(ctx context.Context, sess *backend.Session, id string) error
	ListReservations(ctx context.Context, sess *backend.Session) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, sess *backend.Session, in backend.ReservationInput) (*domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, sess *backend.Session, id string, status domain.ReservationStatus) (*domain.Reservation, error)
}

type StaffServiceInterface interface {
	ListUsers(ctx context.Context, sess *backend.Session) ([]domain.User, error)
	RegisterUser(ctx context.Context, sess *backend.Session, form StaffForm) (*domain.User, error)
	DeleteUser(ctx context.Context, sess *backend.Session, id string) error
	ListReservations(ctx context.Context, sess *backend.Session) ([]domain.Reservation, error)
	CreateReservation(ctx context.Context, sess *backend.Session, form ReservationForm) (*domain.Reservation, error)
	UpdateReservationStatus(ctx context.Context, sess *backend.Session, id string, status domain.ReservationStatus) (*domain.Reservation, error)
}

type StaffService struct {
	repo StaffBackend
}

func NewStaffService(repo StaffBackend) *StaffService {
	return &StaffService{repo: repo}
}

var (
	_ StaffBackend          = (*backend.Client)(nil)
	_ StaffServiceInterface = (*StaffService)(nil)
)

func (s *StaffService) ListUsers(ctx context.Context, sess *backend.Session) ([]domain.User, error) {
	return s.repo.ListUsers(ctx, sess)
}

func (s *StaffService) RegisterUser(ctx context.Context, sess *backend.Session, form StaffForm) (*domain.User, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.RegisterUser(ctx, sess, domain.UserRegister{
		Email:        form.Email,
		Password:     form.Password,
		Name:         form.Name,
		Role:         form.Role,
		RestaurantID: form.RestaurantID,
		BranchID:     form.BranchID,
	})
}

func (s *StaffService) DeleteUser(ctx context.Context, sess *backend.Session, id string) error {
	return s.repo.DeleteUser(ctx, sess, id)
}

func (s *StaffService) ListReservations(ctx context.Context, sess *backend.Session) ([]domain.Reservation, error) {
	return s.repo.ListReservations(ctx, sess)
}

func (s *StaffService) CreateReservation(ctx context.Context, sess *backend.Session, form ReservationForm) (*domain.Reservation, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	return s.repo.CreateReservation(ctx, sess, backend.ReservationInput{
		TableID:       form.TableID,
		CustomerName:  form.CustomerName,
		CustomerPhone: form.CustomerPhone,
		PartySize:     form.PartySize,
		ReservedFor:   form.ReservedFor.UTC().Format(time.RFC3339),
		Notes:         form.Notes,
	})
}

func (s *StaffService) UpdateReservationStatus(ctx context.Context, sess *backend.Session, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown reservation status %q", ErrInvalidInput, status)
	}
	return s.repo.UpdateReservationStatus(ctx, sess, id, status)
}
