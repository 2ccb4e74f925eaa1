package httpapi

import (
	"fmt"
	"net/http"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	q := r.URL.Query()
	filter := backend.OrderFilter{
		Status:  domain.OrderStatus(q.Get("status")),
		TableID: q.Get("table_id"),
	}
	orders, err := h.Orders.List(r.Context(), sess, filter)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, orders)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var body struct {
		CurrentStatus domain.OrderStatus `json:"current_status"`
	}
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	order, err := h.Orders.Advance(r.Context(), sess, mux.Vars(r)["id"], body.CurrentStatus)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, order, success(fmt.Sprintf("Order marked %s", order.OrderStatus)))
}

func (h *Handler) sendKOT(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	ticket, err := h.Kitchen.SendKOT(r.Context(), sess, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, ticket, success("KOT sent to kitchen"))
}

func (h *Handler) listKOT(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	tickets, err := h.Kitchen.Tickets(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, tickets)
}
