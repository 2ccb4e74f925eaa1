package service

import (
	"context"
	"sort"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"
)

type ReportBackend interface {
	DashboardStats(ctx context.Context, sess *backend.Session) (*domain.DashboardStats, error)
	SalesReport(ctx context.Context, sess *backend.Session, r backend.ReportRange) (*domain.SalesReport, error)
	ItemsReport(ctx context.Context, sess *backend.Session, r backend.ReportRange) (*domain.ItemsReport, error)
}

type ReportServiceInterface interface {
	Dashboard(ctx context.Context, sess *backend.Session) (*domain.DashboardStats, error)
	Sales(ctx context.Context, sess *backend.Session, form ReportForm) (*SalesView, error)
	Items(ctx context.Context, sess *backend.Session, form ReportForm) (*domain.ItemsReport, error)
}

type StatusCount struct {
	Status domain.OrderStatus `json:"status"`
	Count  int                `json:"count"`
	Color  string             `json:"color"`
}

type SalesView struct {
	*domain.SalesReport
	Statuses []StatusCount `json:"statuses"`
}

type ReportService struct {
	repo ReportBackend
}

func NewReportService(repo ReportBackend) *ReportService {
	return &ReportService{repo: repo}
}

var (
	_ ReportBackend          = (*backend.Client)(nil)
	_ ReportServiceInterface = (*ReportService)(nil)
)

func (s *ReportService) Dashboard(ctx context.Context, sess *backend.Session) (*domain.DashboardStats, error) {
	return s.repo.DashboardStats(ctx, sess)
}

// Sales adds a status breakdown in workflow order. Statuses the backend did
// not report are listed with a zero count; unknown ones go last.
func (s *ReportService) Sales(ctx context.Context, sess *backend.Session, form ReportForm) (*SalesView, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	report, err := s.repo.SalesReport(ctx, sess, form.rangeQuery())
	if err != nil {
		return nil, err
	}

	known := map[domain.OrderStatus]bool{}
	statuses := []StatusCount{}
	for _, st := range domain.OrderStatuses() {
		known[st] = true
		statuses = append(statuses, StatusCount{Status: st, Count: report.OrdersByStatus[st], Color: st.Color()})
	}

	var extra []StatusCount
	for st, n := range report.OrdersByStatus {
		if !known[st] {
			extra = append(extra, StatusCount{Status: st, Count: n, Color: st.Color()})
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Status < extra[j].Status })

	return &SalesView{SalesReport: report, Statuses: append(statuses, extra...)}, nil
}

// Items returns the best sellers first.
func (s *ReportService) Items(ctx context.Context, sess *backend.Session, form ReportForm) (*domain.ItemsReport, error) {
	if err := validateForm(form); err != nil {
		return nil, err
	}
	report, err := s.repo.ItemsReport(ctx, sess, form.rangeQuery())
	if err != nil {
		return nil, err
	}
	sort.SliceStable(report.Items, func(i, j int) bool {
		if report.Items[i].Quantity != report.Items[j].Quantity {
			return report.Items[i].Quantity > report.Items[j].Quantity
		}
		return report.Items[i].ItemName < report.Items[j].ItemName
	})
	return report, nil
}
