package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/domain"
	"waiterman/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Auth    service.AuthInterface
	POS     service.POSServiceInterface
	Catalog service.CatalogServiceInterface
	Org     service.OrgServiceInterface
	Orders  service.OrderBoardInterface
	Kitchen service.KitchenInterface
	Staff   service.StaffServiceInterface
	Reports service.ReportServiceInterface
	QR      service.QRInterface
}

func NewHandler(auth service.AuthInterface, pos service.POSServiceInterface, catalog service.CatalogServiceInterface,
	org service.OrgServiceInterface, orders service.OrderBoardInterface, kitchen service.KitchenInterface, staff service.StaffServiceInterface,
	reports service.ReportServiceInterface, qr service.QRInterface) *Handler {
	return &Handler{
		Auth:    auth,
		POS:     pos,
		Catalog: catalog,
		Org:     org,
		Orders:  orders,
		Kitchen: kitchen,
		Staff:   staff,
		Reports: reports,
		QR:      qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/ui/login", h.login).Methods("POST")
	r.HandleFunc("/ui/logout", h.authed(h.logout)).Methods("POST")
	r.HandleFunc("/ui/me", h.authed(h.me)).Methods("GET")
	r.HandleFunc("/ui/dashboard", h.authed(h.dashboard)).Methods("GET")

	r.HandleFunc("/ui/restaurants", h.authed(h.listRestaurants)).Methods("GET")
	r.HandleFunc("/ui/restaurants", h.authed(h.createRestaurant)).Methods("POST")
	r.HandleFunc("/ui/branches", h.authed(h.listBranches)).Methods("GET")
	r.HandleFunc("/ui/branches", h.authed(h.createBranch)).Methods("POST")
	r.HandleFunc("/ui/branches/{id}", h.authed(h.getBranch)).Methods("GET")

	r.HandleFunc("/ui/tables", h.authed(h.listTables)).Methods("GET")
	r.HandleFunc("/ui/tables", h.authed(h.createTable)).Methods("POST")
	r.HandleFunc("/ui/tables/{id}", h.authed(h.updateTable)).Methods("PUT")
	r.HandleFunc("/ui/tables/{id}", h.authed(h.deleteTable)).Methods("DELETE")
	r.HandleFunc("/ui/tables/{id}/qrcode", h.authed(h.tableQRCode)).Methods("GET")

	r.HandleFunc("/ui/categories", h.authed(h.listCategories)).Methods("GET")
	r.HandleFunc("/ui/categories", h.authed(h.createCategory)).Methods("POST")
	r.HandleFunc("/ui/categories/{id}", h.authed(h.updateCategory)).Methods("PUT")
	r.HandleFunc("/ui/categories/{id}", h.authed(h.deleteCategory)).Methods("DELETE")

	r.HandleFunc("/ui/subcategories", h.authed(h.listSubCategories)).Methods("GET")
	r.HandleFunc("/ui/subcategories", h.authed(h.createSubCategory)).Methods("POST")
	r.HandleFunc("/ui/subcategories/{id}", h.authed(h.updateSubCategory)).Methods("PUT")
	r.HandleFunc("/ui/subcategories/{id}", h.authed(h.deleteSubCategory)).Methods("DELETE")

	r.HandleFunc("/ui/menu/items", h.authed(h.listMenuItems)).Methods("GET")
	r.HandleFunc("/ui/menu/items", h.authed(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/ui/menu/items/{id}", h.authed(h.updateMenuItem)).Methods("PUT")
	r.HandleFunc("/ui/menu/items/{id}", h.authed(h.deleteMenuItem)).Methods("DELETE")

	r.HandleFunc("/ui/discounts", h.authed(h.listDiscounts)).Methods("GET")
	r.HandleFunc("/ui/discounts", h.authed(h.createDiscount)).Methods("POST")
	r.HandleFunc("/ui/discounts/{id}", h.authed(h.deleteDiscount)).Methods("DELETE")

	r.HandleFunc("/ui/reservations", h.authed(h.listReservations)).Methods("GET")
	r.HandleFunc("/ui/reservations", h.authed(h.createReservation)).Methods("POST")
	r.HandleFunc("/ui/reservations/{id}/status", h.authed(h.updateReservationStatus)).Methods("PATCH")

	r.HandleFunc("/ui/staff", h.authed(h.listStaff)).Methods("GET")
	r.HandleFunc("/ui/staff", h.authed(h.registerStaff)).Methods("POST")
	r.HandleFunc("/ui/staff/{id}", h.authed(h.deleteStaff)).Methods("DELETE")

	r.HandleFunc("/ui/reports/sales", h.authed(h.salesReport)).Methods("GET")
	r.HandleFunc("/ui/reports/items", h.authed(h.itemsReport)).Methods("GET")

	r.HandleFunc("/ui/orders", h.authed(h.listOrders)).Methods("GET")
	r.HandleFunc("/ui/orders/{id}/advance", h.authed(h.advanceOrder)).Methods("POST")
	r.HandleFunc("/ui/orders/{id}/kot", h.authed(h.sendKOT)).Methods("POST")
	r.HandleFunc("/ui/orders/{id}/kot", h.authed(h.listKOT)).Methods("GET")

	r.HandleFunc("/ui/pos/cart", h.adminCart(h.viewCart)).Methods("GET")
	r.HandleFunc("/ui/pos/cart", h.adminCart(h.clearCart)).Methods("DELETE")
	r.HandleFunc("/ui/pos/cart/items", h.adminCart(h.addCartItem)).Methods("POST")
	r.HandleFunc("/ui/pos/cart/items/{lineId}", h.adminCart(h.changeCartQuantity)).Methods("PATCH")
	r.HandleFunc("/ui/pos/cart/items/{lineId}", h.adminCart(h.removeCartItem)).Methods("DELETE")
	r.HandleFunc("/ui/pos/cart/items/{lineId}/note", h.adminCart(h.setCartNote)).Methods("PUT")
	r.HandleFunc("/ui/pos/cart/channel", h.adminCart(h.setCartChannel)).Methods("PUT")
	r.HandleFunc("/ui/pos/cart/customer", h.adminCart(h.setCartCustomer)).Methods("PUT")
	r.HandleFunc("/ui/pos/cart/discount", h.adminCart(h.setCartDiscount)).Methods("PUT")
	r.HandleFunc("/ui/pos/submit", h.adminCart(h.submitCart)).Methods("POST")

	r.HandleFunc("/ui/order/{tableId}", h.guestMenu).Methods("GET")
	r.HandleFunc("/ui/order/{tableId}/cart", h.guestCart(h.viewCart)).Methods("GET")
	r.HandleFunc("/ui/order/{tableId}/cart", h.guestCart(h.clearCart)).Methods("DELETE")
	r.HandleFunc("/ui/order/{tableId}/cart/items", h.guestCart(h.addCartItem)).Methods("POST")
	r.HandleFunc("/ui/order/{tableId}/cart/items/{lineId}", h.guestCart(h.changeCartQuantity)).Methods("PATCH")
	r.HandleFunc("/ui/order/{tableId}/cart/items/{lineId}", h.guestCart(h.removeCartItem)).Methods("DELETE")
	r.HandleFunc("/ui/order/{tableId}/cart/items/{lineId}/note", h.guestCart(h.setCartNote)).Methods("PUT")
	r.HandleFunc("/ui/order/{tableId}/cart/customer", h.guestCart(h.setCartCustomer)).Methods("PUT")
	r.HandleFunc("/ui/order/{tableId}/submit", h.guestCart(h.submitCart)).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "pos-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

type sessionView struct {
	User      domain.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var form service.LoginForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, nil, err)
		return
	}

	sess, err := h.Auth.Login(r.Context(), form)
	if err != nil {
		h.writeError(w, r, nil, err)
		return
	}

	setSessionCookie(w, sess)
	writeOK(w, sessionView{User: sess.User, ExpiresAt: sess.ExpiresAt}, success("Signed in"))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	err := h.Auth.Logout(r.Context(), sess)
	clearSessionCookie(w)
	if err != nil {
		h.writeError(w, r, nil, err)
		return
	}
	writeOK(w, nil, success("Signed out"))
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	writeOK(w, sessionView{User: sess.User, ExpiresAt: sess.ExpiresAt})
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	stats, err := h.Reports.Dashboard(r.Context(), sess)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, stats)
}
