package httpapi

import (
	"net/http"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	restaurants, err := h.Org.ListRestaurants(r.Context(), sess)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, restaurants)
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.RestaurantForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	restaurant, err := h.Org.CreateRestaurant(r.Context(), sess, form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeJSON(w, http.StatusCreated, restaurant, success("Restaurant created"))
}

func (h *Handler) listBranches(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	branches, err := h.Org.ListBranches(r.Context(), sess, r.URL.Query().Get("restaurant_id"))
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, branches)
}

func (h *Handler) getBranch(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	branch, err := h.Org.GetBranch(r.Context(), sess, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, branch)
}

func (h *Handler) createBranch(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.BranchForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	branch, err := h.Org.CreateBranch(r.Context(), sess, form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeJSON(w, http.StatusCreated, branch, success("Branch created"))
}
