package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/cart"
	"waiterman/pos-svc/internal/service"
)

const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelError   = "error"
)

type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type Envelope struct {
	Data          any            `json:"data"`
	Notifications []Notification `json:"notifications"`
}

func success(message string) Notification {
	return Notification{Level: LevelSuccess, Message: message}
}

func writeJSON(w http.ResponseWriter, status int, data any, notes ...Notification) {
	if notes == nil {
		notes = []Notification{}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Data: data, Notifications: notes}); err != nil {
		log.Printf("[pos-svc] ERROR: failed to encode response: %v", err)
	}
}

func writeOK(w http.ResponseWriter, data any, notes ...Notification) {
	writeJSON(w, http.StatusOK, data, notes...)
}

// writeError logs the failure once and answers with a single error
// notification. A 401 from the backend also ends the local session.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, sess *backend.Session, err error) {
	status, message := classify(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[pos-svc] ERROR: %s %s: %v", r.Method, r.URL.Path, err)
	} else {
		log.Printf("[pos-svc] WARNING: %s %s: %v", r.Method, r.URL.Path, err)
	}

	if status == http.StatusUnauthorized {
		if sess != nil {
			h.Auth.Forget(r.Context(), sess)
		}
		if sess != nil || errors.Is(err, backend.ErrSessionInvalid) {
			clearSessionCookie(w)
		}
	}
	writeJSON(w, status, nil, Notification{Level: LevelError, Message: message})
}

func classify(err error) (int, string) {
	var transportErr *backend.TransportError
	var apiErr *backend.APIError

	switch {
	case errors.As(err, &transportErr):
		return http.StatusBadGateway, "The server could not be reached. Please try again."
	case errors.As(err, &apiErr):
		if apiErr.Detail != "" {
			return apiErr.Status, apiErr.Detail
		}
		return apiErr.Status, fmt.Sprintf("Request failed: %s", http.StatusText(apiErr.Status))
	case errors.Is(err, backend.ErrSessionInvalid):
		return http.StatusUnauthorized, "Your session has ended. Please sign in again."
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, cart.ErrInvalidChannel),
		errors.Is(err, cart.ErrEmpty),
		errors.Is(err, cart.ErrItemUnavailable),
		errors.Is(err, cart.ErrUnknownModifier),
		errors.Is(err, service.ErrDiscountInactive),
		errors.Is(err, service.ErrOverdiscounted):
		return http.StatusBadRequest, capitalize(err.Error())
	case errors.Is(err, service.ErrGuestDiscount):
		return http.StatusForbidden, capitalize(err.Error())
	case errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrDiscountNotFound):
		return http.StatusNotFound, capitalize(err.Error())
	case errors.Is(err, service.ErrNoTransition):
		return http.StatusConflict, capitalize(err.Error())
	}
	return http.StatusInternalServerError, "Something went wrong."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

// decode reads a JSON body into dst. An empty body leaves dst untouched.
func decode(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", service.ErrInvalidInput)
	}
	return nil
}
