package httpapi

import (
	"net/http"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"
	"waiterman/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	users, err := h.Staff.ListUsers(r.Context(), sess)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, users)
}

func (h *Handler) registerStaff(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.StaffForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	user, err := h.Staff.RegisterUser(r.Context(), sess, form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeJSON(w, http.StatusCreated, user, success("Staff member added"))
}

func (h *Handler) deleteStaff(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	if err := h.Staff.DeleteUser(r.Context(), sess, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, nil, success("Staff member removed"))
}

func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	reservations, err := h.Staff.ListReservations(r.Context(), sess)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, reservations)
}

func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.ReservationForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	reservation, err := h.Staff.CreateReservation(r.Context(), sess, form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeJSON(w, http.StatusCreated, reservation, success("Reservation created"))
}

func (h *Handler) updateReservationStatus(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var body struct {
		Status domain.ReservationStatus `json:"status"`
	}
	if err := decode(r, &body); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	reservation, err := h.Staff.UpdateReservationStatus(r.Context(), sess, mux.Vars(r)["id"], body.Status)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, reservation, success("Reservation updated"))
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	report, err := h.Reports.Sales(r.Context(), sess, reportForm(r))
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, report)
}

func (h *Handler) itemsReport(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	report, err := h.Reports.Items(r.Context(), sess, reportForm(r))
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, report)
}

func reportForm(r *http.Request) service.ReportForm {
	q := r.URL.Query()
	return service.ReportForm{StartDate: q.Get("start_date"), EndDate: q.Get("end_date")}
}
