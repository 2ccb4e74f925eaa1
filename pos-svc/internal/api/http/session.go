package httpapi

import (
	"net/http"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	SessionCookie = "waiterman_session"
	GuestCookie   = "waiterman_guest"

	guestCookieMaxAge = 30 * 24 * 60 * 60
)

type authedFunc func(w http.ResponseWriter, r *http.Request, sess *backend.Session)

type cartFunc func(w http.ResponseWriter, r *http.Request, ref service.CartRef)

// authed resolves the staff session from its cookie before calling fn.
func (h *Handler) authed(fn authedFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil {
			h.writeError(w, r, nil, backend.ErrSessionInvalid)
			return
		}
		sess, err := h.Auth.Session(r.Context(), cookie.Value)
		if err != nil {
			h.writeError(w, r, nil, err)
			return
		}
		fn(w, r, sess)
	}
}

func (h *Handler) adminCart(fn cartFunc) http.HandlerFunc {
	return h.authed(func(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
		fn(w, r, service.AdminCart(sess))
	})
}

// guestCart identifies the customer's browser by its guest cookie, issuing
// one on the first visit.
func (h *Handler) guestCart(fn cartFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, service.GuestCart(guestID(w, r), mux.Vars(r)["tableId"]))
	}
}

func guestID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(GuestCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     GuestCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   guestCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func setSessionCookie(w http.ResponseWriter, sess *backend.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
