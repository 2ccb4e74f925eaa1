package httpapi

import (
	"net/http"

	"waiterman/pos-svc/internal/domain"
	"waiterman/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

// Cart handlers serve both the POS screen and the customer self-order view;
// only the CartRef differs.

func (h *Handler) viewCart(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	view, err := h.POS.View(r.Context(), ref)
	h.writeCart(w, r, ref, view, err)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	view, err := h.POS.Clear(r.Context(), ref)
	h.writeCart(w, r, ref, view, err)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	var body struct {
		ItemID    string   `json:"item_id"`
		Modifiers []string `json:"modifiers"`
	}
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, ref.Session, err)
		return
	}
	view, err := h.POS.AddItem(r.Context(), ref, body.ItemID, body.Modifiers...)
	if err != nil {
		h.writeError(w, r, ref.Session, err)
		return
	}
	writeOK(w, view, success(addedMessage(view, body.ItemID)))
}

func addedMessage(view *service.CartView, itemID string) string {
	for _, l := range view.Cart.Lines {
		if l.ItemID == itemID {
			return l.Name + " added to cart"
		}
	}
	return "Added to cart"
}

func (h *Handler) changeCartQuantity(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	var body struct {
		Delta int `json:"delta"`
	}
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, ref.Session, err)
		return
	}
	view, err := h.POS.ChangeQuantity(r.Context(), ref, mux.Vars(r)["lineId"], body.Delta)
	h.writeCart(w, r, ref, view, err)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	view, err := h.POS.RemoveItem(r.Context(), ref, mux.Vars(r)["lineId"])
	h.writeCart(w, r, ref, view, err)
}

func (h *Handler) setCartNote(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	var body struct {
		Note string `json:"note"`
	}
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, ref.Session, err)
		return
	}
	view, err := h.POS.SetNote(r.Context(), ref, mux.Vars(r)["lineId"], body.Note)
	h.writeCart(w, r, ref, view, err)
}

func (h *Handler) setCartChannel(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	var body struct {
		Channel domain.Channel `json:"channel"`
	}
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, ref.Session, err)
		return
	}
	view, err := h.POS.SetChannel(r.Context(), ref, body.Channel)
	h.writeCart(w, r, ref, view, err)
}

func (h *Handler) setCartCustomer(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	var form service.CustomerForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, ref.Session, err)
		return
	}
	view, err := h.POS.SetCustomer(r.Context(), ref, form)
	h.writeCart(w, r, ref, view, err)
}

func (h *Handler) setCartDiscount(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	var req service.DiscountRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, ref.Session, err)
		return
	}
	view, err := h.POS.ApplyDiscount(r.Context(), ref, req)
	if err == nil && view.Bill.Overdiscounted {
		writeOK(w, view, Notification{Level: LevelInfo, Message: "Discount exceeds the order total"})
		return
	}
	h.writeCart(w, r, ref, view, err)
}

func (h *Handler) submitCart(w http.ResponseWriter, r *http.Request, ref service.CartRef) {
	order, err := h.POS.Submit(r.Context(), ref)
	if err != nil {
		h.writeError(w, r, ref.Session, err)
		return
	}
	writeJSON(w, http.StatusCreated, order, success("Order placed"))
}

func (h *Handler) writeCart(w http.ResponseWriter, r *http.Request, ref service.CartRef, view *service.CartView, err error) {
	if err != nil {
		h.writeError(w, r, ref.Session, err)
		return
	}
	writeOK(w, view)
}
