package tests

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"
	"waiterman/pos-svc/internal/mocks"
	"waiterman/pos-svc/internal/service"
	"waiterman/pos-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderBoardService_List(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	orders := mocks.NewOrderBackend(t)
	svc := service.NewOrderBoardService(orders)

	orders.On("ListOrders", ctx, sess, backend.OrderFilter{}).Return([]domain.Order{
		{ID: "o1", OrderStatus: domain.OrderPending},
		{ID: "o2", OrderStatus: domain.OrderCompleted},
		{ID: "o3", OrderStatus: domain.OrderCancelled},
	}, nil).Once()

	board, err := svc.List(ctx, sess, backend.OrderFilter{})

	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, domain.OrderPreparing, board[0].NextStatus)
	assert.True(t, board[0].CanAdvance)
	assert.Equal(t, "amber", board[0].StatusColor)
	assert.False(t, board[1].CanAdvance)
	assert.Empty(t, board[1].NextStatus)
	assert.False(t, board[2].CanAdvance)
}

func TestOrderBoardService_ListRejectsUnknownStatus(t *testing.T) {
	svc := service.NewOrderBoardService(mocks.NewOrderBackend(t))

	_, err := svc.List(context.Background(), liveSession(t), backend.OrderFilter{Status: "lost"})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestOrderBoardService_Advance(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)

	tests := []struct {
		name         string
		current      domain.OrderStatus
		prepareMocks func(m *mocks.OrderBackend)
		expectedErr  error
		wantStatus   domain.OrderStatus
	}{
		{
			name:    "pending to preparing",
			current: domain.OrderPending,
			prepareMocks: func(m *mocks.OrderBackend) {
				m.On("UpdateOrderStatus", ctx, sess, "o1", domain.OrderPreparing).
					Return(&domain.Order{ID: "o1", OrderStatus: domain.OrderPreparing}, nil).Once()
			},
			wantStatus: domain.OrderPreparing,
		},
		{
			name:    "served to completed",
			current: domain.OrderServed,
			prepareMocks: func(m *mocks.OrderBackend) {
				m.On("UpdateOrderStatus", ctx, sess, "o1", domain.OrderCompleted).
					Return(&domain.Order{ID: "o1", OrderStatus: domain.OrderCompleted}, nil).Once()
			},
			wantStatus: domain.OrderCompleted,
		},
		{
			name:         "completed has no action",
			current:      domain.OrderCompleted,
			prepareMocks: func(m *mocks.OrderBackend) {},
			expectedErr:  service.ErrNoTransition,
		},
		{
			name:         "cancelled has no action",
			current:      domain.OrderCancelled,
			prepareMocks: func(m *mocks.OrderBackend) {},
			expectedErr:  service.ErrNoTransition,
		},
		{
			name:    "backend failure",
			current: domain.OrderReady,
			prepareMocks: func(m *mocks.OrderBackend) {
				m.On("UpdateOrderStatus", ctx, sess, "o1", domain.OrderServed).
					Return(nil, &backend.TransportError{Method: "PATCH", Path: "/orders/o1/status", Err: errors.New("timeout")}).Once()
			},
			expectedErr: &backend.TransportError{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderBackend(t)
			testCase.prepareMocks(orders)
			svc := service.NewOrderBoardService(orders)

			order, err := svc.Advance(ctx, sess, "o1", testCase.current)

			if testCase.expectedErr != nil {
				var transportErr *backend.TransportError
				if errors.As(testCase.expectedErr, &transportErr) {
					assert.ErrorAs(t, err, &transportErr)
				} else {
					assert.ErrorIs(t, err, testCase.expectedErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantStatus, order.OrderStatus)
		})
	}
}

func TestKitchenService_SendKOT(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	now := time.Date(2026, 6, 1, 19, 30, 0, 0, time.UTC)
	order := &domain.Order{
		ID:        "o1",
		TableID:   "t2",
		OrderType: domain.ChannelDineIn,
		Items: []domain.OrderItem{
			{ItemName: "Soup", Quantity: 2, Notes: "extra hot"},
			{ItemName: "Bread", Quantity: 1, Modifiers: []string{"Garlic butter"}},
		},
	}

	tests := []struct {
		name         string
		prepareMocks func(p *mocks.TicketPublisher, l *mocks.TicketLog)
	}{
		{
			name: "both sinks succeed",
			prepareMocks: func(p *mocks.TicketPublisher, l *mocks.TicketLog) {
				p.On("PublishTicket", ctx, mock.AnythingOfType("domain.KitchenTicket")).Return(nil).Once()
				l.On("RecordTicket", ctx, mock.AnythingOfType("domain.KitchenTicket")).Return(nil).Once()
			},
		},
		{
			name: "sink failures are swallowed",
			prepareMocks: func(p *mocks.TicketPublisher, l *mocks.TicketLog) {
				p.On("PublishTicket", ctx, mock.Anything).Return(errors.New("broker down")).Once()
				l.On("RecordTicket", ctx, mock.Anything).Return(errors.New("db down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderBackend(t)
			publisher := mocks.NewTicketPublisher(t)
			ticketLog := mocks.NewTicketLog(t)
			orders.On("GetOrder", ctx, sess, "o1").Return(order, nil).Once()
			testCase.prepareMocks(publisher, ticketLog)

			svc := service.NewKitchenService(orders, publisher, ticketLog)
			svc.SetClock(func() time.Time { return now })

			ticket, err := svc.SendKOT(ctx, sess, "o1")

			require.NoError(t, err)
			assert.NotEmpty(t, ticket.ID)
			assert.Equal(t, "o1", ticket.OrderID)
			assert.Equal(t, "t2", ticket.TableID)
			assert.True(t, ticket.CreatedAt.Equal(now))
			assert.Equal(t, []domain.TicketLine{
				{ItemName: "Soup", Quantity: 2, Note: "extra hot"},
				{ItemName: "Bread", Quantity: 1, Modifiers: []string{"Garlic butter"}},
			}, ticket.Lines)
		})
	}
}

func TestKitchenService_WithoutSinks(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	orders := mocks.NewOrderBackend(t)
	orders.On("GetOrder", ctx, sess, "o1").Return(&domain.Order{ID: "o1"}, nil).Once()

	svc := service.NewKitchenService(orders, nil, nil)

	_, err := svc.SendKOT(ctx, sess, "o1")
	require.NoError(t, err)

	tickets, err := svc.Tickets(ctx, "o1")
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestKitchenService_OrderLookupFails(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	orders := mocks.NewOrderBackend(t)
	orders.On("GetOrder", ctx, sess, "o1").Return(nil, &backend.APIError{Status: 404, Detail: "Order not found"}).Once()

	svc := service.NewKitchenService(orders, mocks.NewTicketPublisher(t), mocks.NewTicketLog(t))

	_, err := svc.SendKOT(ctx, sess, "o1")

	var apiErr *backend.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	auth := mocks.NewAuthBackend(t)
	sessions := mocks.NewSessionStore(t)
	carts := mocks.NewCartStore(t)
	svc := service.NewAuthService(auth, sessions, carts, time.Hour)

	auth.On("Login", ctx, "ana@example.com", "secret").
		Return(&domain.TokenResponse{AccessToken: "opaque", User: domain.User{ID: "u1", Email: "ana@example.com"}}, nil).Once()
	sessions.On("SaveSession", ctx, mock.MatchedBy(func(s *backend.Session) bool {
		return s.Token == "opaque" && s.User.ID == "u1"
	})).Return(nil).Once()

	sess, err := svc.Login(ctx, service.LoginForm{Email: "ana@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.True(t, sess.Valid(time.Now()))
}

func TestAuthService_LoginValidation(t *testing.T) {
	svc := service.NewAuthService(mocks.NewAuthBackend(t), mocks.NewSessionStore(t), mocks.NewCartStore(t), time.Hour)

	_, err := svc.Login(context.Background(), service.LoginForm{Email: "not-an-email", Password: "x"})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestAuthService_Session(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		prepareMocks func(sessions *mocks.SessionStore, carts *mocks.CartStore)
		expectedErr  error
	}{
		{
			name: "live session",
			prepareMocks: func(sessions *mocks.SessionStore, carts *mocks.CartStore) {
				sessions.On("LoadSession", ctx, "s1").Return(&backend.Session{ID: "s1", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
			},
		},
		{
			name: "unknown session",
			prepareMocks: func(sessions *mocks.SessionStore, carts *mocks.CartStore) {
				sessions.On("LoadSession", ctx, "s1").Return(nil, storage.ErrNotFound).Once()
			},
			expectedErr: backend.ErrSessionInvalid,
		},
		{
			name: "revoked session is forgotten",
			prepareMocks: func(sessions *mocks.SessionStore, carts *mocks.CartStore) {
				sessions.On("LoadSession", ctx, "s1").Return(&backend.Session{ID: "s1", Token: "tok", ExpiresAt: time.Now().Add(time.Hour), Revoked: true}, nil).Once()
				sessions.On("DeleteSession", ctx, "s1").Return(nil).Once()
				carts.On("DeleteCart", ctx, "pos:s1").Return(nil).Once()
			},
			expectedErr: backend.ErrSessionInvalid,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sessions := mocks.NewSessionStore(t)
			carts := mocks.NewCartStore(t)
			testCase.prepareMocks(sessions, carts)
			svc := service.NewAuthService(mocks.NewAuthBackend(t), sessions, carts, time.Hour)

			sess, err := svc.Session(ctx, "s1")

			if testCase.expectedErr != nil {
				assert.ErrorIs(t, err, testCase.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "s1", sess.ID)
		})
	}
}

func TestAuthService_LogoutForgetsEvenOnFailure(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	auth := mocks.NewAuthBackend(t)
	sessions := mocks.NewSessionStore(t)
	carts := mocks.NewCartStore(t)

	auth.On("Logout", ctx, sess).Return(&backend.TransportError{Method: "POST", Path: "/auth/logout", Err: errors.New("down")}).Once()
	sessions.On("DeleteSession", ctx, sess.ID).Return(nil).Once()
	carts.On("DeleteCart", ctx, "pos:"+sess.ID).Return(nil).Once()

	err := service.NewAuthService(auth, sessions, carts, time.Hour).Logout(ctx, sess)

	var transportErr *backend.TransportError
	assert.ErrorAs(t, err, &transportErr)
}

func TestQRService_TablePNG(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	stored := []byte("\x89PNG stored")

	tests := []struct {
		name         string
		qrURL        string
		prepareMocks func(g *mocks.QRGenerator)
		want         []byte
	}{
		{
			name:         "backend data uri",
			qrURL:        "data:image/png;base64," + base64.StdEncoding.EncodeToString(stored),
			prepareMocks: func(g *mocks.QRGenerator) {},
			want:         stored,
		},
		{
			name:  "missing qr falls back to local render",
			qrURL: "",
			prepareMocks: func(g *mocks.QRGenerator) {
				g.On("Generate", "t1").Return([]byte("local"), nil).Once()
			},
			want: []byte("local"),
		},
		{
			name:  "corrupt data uri falls back",
			qrURL: "data:image/png;base64,@@@",
			prepareMocks: func(g *mocks.QRGenerator) {
				g.On("Generate", "t1").Return([]byte("local"), nil).Once()
			},
			want: []byte("local"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			tables := mocks.NewTableQRBackend(t)
			generator := mocks.NewQRGenerator(t)
			tables.On("TableQR", ctx, sess, "t1").Return(testCase.qrURL, nil).Once()
			testCase.prepareMocks(generator)

			png, err := service.NewQRService(tables, generator).TablePNG(ctx, sess, "t1")

			require.NoError(t, err)
			assert.Equal(t, testCase.want, png)
		})
	}
}

func TestDefaultQRGenerator(t *testing.T) {
	g := service.DefaultQRGenerator{BaseURL: "https://pos.example.com/"}

	assert.Equal(t, "https://pos.example.com/order/t1", g.URL("t1"))
	png, err := g.Generate("t1")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestReportService_Sales(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	repo := mocks.NewReportBackend(t)
	repo.On("SalesReport", ctx, sess, backend.ReportRange{StartDate: "2026-01-01", EndDate: "2026-01-31"}).
		Return(&domain.SalesReport{
			TotalOrders:    4,
			OrdersByStatus: map[domain.OrderStatus]int{domain.OrderCompleted: 3, domain.OrderCancelled: 1, "refunded": 2},
		}, nil).Once()

	view, err := service.NewReportService(repo).Sales(ctx, sess, service.ReportForm{StartDate: "2026-01-01", EndDate: "2026-01-31"})

	require.NoError(t, err)
	require.Len(t, view.Statuses, 7)
	assert.Equal(t, service.StatusCount{Status: domain.OrderPending, Count: 0, Color: "amber"}, view.Statuses[0])
	assert.Equal(t, service.StatusCount{Status: domain.OrderCompleted, Count: 3, Color: "gray"}, view.Statuses[4])
	assert.Equal(t, service.StatusCount{Status: domain.OrderCancelled, Count: 1, Color: "red"}, view.Statuses[5])
	assert.Equal(t, service.StatusCount{Status: "refunded", Count: 2, Color: "slate"}, view.Statuses[6])
}

func TestReportService_RejectsBadDates(t *testing.T) {
	svc := service.NewReportService(mocks.NewReportBackend(t))

	_, err := svc.Items(context.Background(), liveSession(t), service.ReportForm{StartDate: "01/02/2026"})

	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestReportService_ItemsSortedByQuantity(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	repo := mocks.NewReportBackend(t)
	repo.On("ItemsReport", ctx, sess, backend.ReportRange{}).Return(&domain.ItemsReport{Items: []domain.ItemSales{
		{ItemName: "Tea", Quantity: 3},
		{ItemName: "Cake", Quantity: 9},
		{ItemName: "Apple pie", Quantity: 3},
	}}, nil).Once()

	report, err := service.NewReportService(repo).Items(ctx, sess, service.ReportForm{})

	require.NoError(t, err)
	names := []string{}
	for _, it := range report.Items {
		names = append(names, it.ItemName)
	}
	assert.Equal(t, []string{"Cake", "Apple pie", "Tea"}, names)
}

func TestStaffService_Validation(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)

	tests := []struct {
		name string
		call func(svc *service.StaffService) error
	}{
		{
			name: "bad role",
			call: func(svc *service.StaffService) error {
				_, err := svc.RegisterUser(ctx, sess, service.StaffForm{Email: "a@b.co", Password: "secret1", Name: "A", Role: "owner"})
				return err
			},
		},
		{
			name: "short password",
			call: func(svc *service.StaffService) error {
				_, err := svc.RegisterUser(ctx, sess, service.StaffForm{Email: "a@b.co", Password: "123", Name: "A", Role: domain.RoleStaff})
				return err
			},
		},
		{
			name: "reservation without party",
			call: func(svc *service.StaffService) error {
				_, err := svc.CreateReservation(ctx, sess, service.ReservationForm{CustomerName: "B", CustomerPhone: "1", ReservedFor: time.Now()})
				return err
			},
		},
		{
			name: "unknown reservation status",
			call: func(svc *service.StaffService) error {
				_, err := svc.UpdateReservationStatus(ctx, sess, "r1", "no_show")
				return err
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := service.NewStaffService(mocks.NewStaffBackend(t))
			assert.ErrorIs(t, testCase.call(svc), service.ErrInvalidInput)
		})
	}
}

func TestStaffService_CreateReservation(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	repo := mocks.NewStaffBackend(t)
	at := time.Date(2026, 7, 4, 18, 0, 0, 0, time.FixedZone("X", 2*3600))

	repo.On("CreateReservation", ctx, sess, backend.ReservationInput{
		TableID:       "t1",
		CustomerName:  "Bo",
		CustomerPhone: "555",
		PartySize:     4,
		ReservedFor:   "2026-07-04T16:00:00Z",
	}).Return(&domain.Reservation{ID: "r1", Status: domain.ReservationPending}, nil).Once()

	res, err := service.NewStaffService(repo).CreateReservation(ctx, sess, service.ReservationForm{
		TableID: "t1", CustomerName: "Bo", CustomerPhone: "555", PartySize: 4, ReservedFor: at,
	})

	require.NoError(t, err)
	assert.Equal(t, "r1", res.ID)
}

func TestOrgService_ListBranches(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)
	sess.User.RestaurantID = "r-own"
	branches := []domain.Branch{{ID: "b1", RestaurantID: "r-own", Name: "Downtown"}}

	tests := []struct {
		name         string
		restaurantID string
		wantQuery    string
	}{
		{name: "explicit restaurant", restaurantID: "r-other", wantQuery: "r-other"},
		{name: "defaults to own restaurant", wantQuery: "r-own"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrgBackend(t)
			repo.On("ListBranches", ctx, sess, testCase.wantQuery).Return(branches, nil).Once()

			got, err := service.NewOrgService(repo).ListBranches(ctx, sess, testCase.restaurantID)

			require.NoError(t, err)
			assert.Equal(t, branches, got)
		})
	}
}

func TestOrgService_Create(t *testing.T) {
	ctx := context.Background()
	sess := liveSession(t)

	tests := []struct {
		name         string
		call         func(svc *service.OrgService) error
		prepareMocks func(repo *mocks.OrgBackend)
		expectedErr  error
		wantStatus   int
	}{
		{
			name: "restaurant",
			call: func(svc *service.OrgService) error {
				_, err := svc.CreateRestaurant(ctx, sess, service.RestaurantForm{Name: "Bistro", Email: "hi@bistro.test"})
				return err
			},
			prepareMocks: func(repo *mocks.OrgBackend) {
				repo.On("CreateRestaurant", ctx, sess, backend.RestaurantInput{Name: "Bistro", Email: "hi@bistro.test"}).
					Return(&domain.Restaurant{ID: "r1", Name: "Bistro"}, nil).Once()
			},
		},
		{
			name: "restaurant with bad email",
			call: func(svc *service.OrgService) error {
				_, err := svc.CreateRestaurant(ctx, sess, service.RestaurantForm{Name: "Bistro", Email: "nope"})
				return err
			},
			expectedErr: service.ErrInvalidInput,
		},
		{
			name: "branch",
			call: func(svc *service.OrgService) error {
				_, err := svc.CreateBranch(ctx, sess, service.BranchForm{RestaurantID: "r1", Name: "Harbour", Location: "Pier 3"})
				return err
			},
			prepareMocks: func(repo *mocks.OrgBackend) {
				repo.On("CreateBranch", ctx, sess, backend.BranchInput{RestaurantID: "r1", Name: "Harbour", Location: "Pier 3"}).
					Return(&domain.Branch{ID: "b2", RestaurantID: "r1", Name: "Harbour"}, nil).Once()
			},
		},
		{
			name: "branch without restaurant",
			call: func(svc *service.OrgService) error {
				_, err := svc.CreateBranch(ctx, sess, service.BranchForm{Name: "Harbour"})
				return err
			},
			expectedErr: service.ErrInvalidInput,
		},
		{
			name: "backend rejects",
			call: func(svc *service.OrgService) error {
				_, err := svc.CreateBranch(ctx, sess, service.BranchForm{RestaurantID: "missing", Name: "Harbour"})
				return err
			},
			prepareMocks: func(repo *mocks.OrgBackend) {
				repo.On("CreateBranch", ctx, sess, mock.Anything).
					Return(nil, &backend.APIError{Status: 404, Detail: "Restaurant not found"}).Once()
			},
			wantStatus: 404,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrgBackend(t)
			if testCase.prepareMocks != nil {
				testCase.prepareMocks(repo)
			}

			err := testCase.call(service.NewOrgService(repo))

			switch {
			case testCase.expectedErr != nil:
				assert.ErrorIs(t, err, testCase.expectedErr)
			case testCase.wantStatus != 0:
				var apiErr *backend.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, testCase.wantStatus, apiErr.Status)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
