package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"
	"waiterman/pos-svc/internal/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func liveSession(t *testing.T) *backend.Session {
	t.Helper()
	now := time.Now()
	token := signedToken(t, jwt.MapClaims{"sub": "u1", "role": "manager", "exp": now.Add(time.Hour).Unix()})
	return backend.NewSession(domain.TokenResponse{AccessToken: token, TokenType: "bearer"}, time.Hour, now)
}

func TestNewSession_ReadsClaims(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	exp := now.Add(90 * time.Minute)
	token := signedToken(t, jwt.MapClaims{"sub": "user-7", "role": "staff", "exp": exp.Unix()})

	sess := backend.NewSession(domain.TokenResponse{AccessToken: token}, 24*time.Hour, now)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, "user-7", sess.User.ID)
	assert.Equal(t, domain.RoleStaff, sess.User.Role)
	assert.True(t, sess.ExpiresAt.Equal(exp))
	assert.True(t, sess.Valid(now))
	assert.False(t, sess.Valid(exp))
}

func TestNewSession_FallbackTTL(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

	sess := backend.NewSession(domain.TokenResponse{AccessToken: "opaque-token"}, 2*time.Hour, now)

	assert.True(t, sess.ExpiresAt.Equal(now.Add(2*time.Hour)))
	sess.Invalidate()
	assert.False(t, sess.Valid(now))

	var missing *backend.Session
	assert.False(t, missing.Valid(now))
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@example.com", body["email"])

		json.NewEncoder(w).Encode(domain.TokenResponse{
			AccessToken: "tok",
			TokenType:   "bearer",
			User:        domain.User{ID: "u1", Email: "ana@example.com", Role: domain.RoleManager},
		})
	}))
	defer server.Close()

	client := backend.NewClient(backend.Config{BaseURL: server.URL + "/api/"}, nil)
	resp, err := client.Login(context.Background(), "ana@example.com", "pw")

	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, domain.RoleManager, resp.User.Role)
}

func TestClient_SendsBearerAndQuery(t *testing.T) {
	sess := liveSession(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+sess.Token, r.Header.Get("Authorization"))
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "ready", r.URL.Query().Get("status"))
		assert.Equal(t, "t9", r.URL.Query().Get("table_id"))
		w.Write([]byte(`[{"id":"o1","order_status":"ready","grand_total":12.5}]`))
	}))
	defer server.Close()

	client := backend.NewClient(backend.Config{BaseURL: server.URL + "/api"}, nil)
	orders, err := client.ListOrders(context.Background(), sess, backend.OrderFilter{Status: domain.OrderReady, TableID: "t9"})

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.Money(1250), orders[0].GrandTotal)
}

func TestClient_UpdateOrderStatusBody(t *testing.T) {
	sess := liveSession(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/o1/status", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"order_status":"preparing"}`, string(body))
		w.Write([]byte(`{"id":"o1","order_status":"preparing"}`))
	}))
	defer server.Close()

	client := backend.NewClient(backend.Config{BaseURL: server.URL + "/api"}, nil)
	order, err := client.UpdateOrderStatus(context.Background(), sess, "o1", domain.OrderPreparing)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderPreparing, order.OrderStatus)
}

func TestClient_UnauthorizedInvalidatesSession(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	}))
	defer server.Close()

	sess := liveSession(t)
	client := backend.NewClient(backend.Config{BaseURL: server.URL}, nil)

	_, err := client.ListTables(context.Background(), sess)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Could not validate credentials", apiErr.Detail)
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
	assert.False(t, sess.Valid(time.Now()))

	_, err = client.ListTables(context.Background(), sess)
	assert.ErrorIs(t, err, backend.ErrSessionInvalid)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClient_APIErrorDetail(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{name: "string detail", status: http.StatusNotFound, body: `{"detail":"Table not found"}`, wantDetail: "Table not found"},
		{name: "validation list", status: http.StatusUnprocessableEntity, body: `{"detail":[{"loc":["body"],"msg":"field required"}]}`, wantDetail: ""},
		{name: "plain text", status: http.StatusInternalServerError, body: `boom`, wantDetail: ""},
		{name: "empty", status: http.StatusConflict, body: ``, wantDetail: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(testCase.status)
				w.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := backend.NewClient(backend.Config{BaseURL: server.URL}, nil)
			_, err := client.GetTable(context.Background(), nil, "t1")

			var apiErr *backend.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, testCase.status, apiErr.Status)
			assert.Equal(t, testCase.wantDetail, apiErr.Detail)
			assert.NotErrorIs(t, err, backend.ErrUnauthorized)
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	httpClient := mocks.NewHTTPClient(t)
	httpClient.On("Do", mock.AnythingOfType("*http.Request")).Return(nil, errors.New("connection refused")).Once()

	client := backend.NewClient(backend.Config{BaseURL: "http://backend.invalid/api"}, httpClient)
	_, err := client.ListCategories(context.Background(), liveSession(t), "")

	var transportErr *backend.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "/categories", transportErr.Path)
}

func TestClient_RejectsExpiredSessionLocally(t *testing.T) {
	httpClient := mocks.NewHTTPClient(t)
	client := backend.NewClient(backend.Config{BaseURL: "http://backend.invalid"}, httpClient)

	expired := backend.NewSession(domain.TokenResponse{AccessToken: "tok"}, -time.Minute, time.Now())
	_, err := client.ListTables(context.Background(), expired)

	assert.ErrorIs(t, err, backend.ErrSessionInvalid)
	httpClient.AssertNotCalled(t, "Do", mock.Anything)
}

func TestClient_TableQR(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tables/t%201/qr", r.URL.EscapedPath())
		w.Write([]byte(`{"qr_url":"data:image/png;base64,AAAA"}`))
	}))
	defer server.Close()

	client := backend.NewClient(backend.Config{BaseURL: server.URL}, nil)
	qr, err := client.TableQR(context.Background(), nil, "t 1")

	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", qr)
}
