package httpapi

import (
	"net/http"

	"waiterman/pos-svc/internal/backend"
	"waiterman/pos-svc/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	tables, err := h.Catalog.ListTables(r.Context(), sess)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, tables)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.TableForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	table, err := h.Catalog.CreateTable(r.Context(), sess, form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeJSON(w, http.StatusCreated, table, success("Table created"))
}

func (h *Handler) updateTable(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.TableForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	table, err := h.Catalog.UpdateTable(r.Context(), sess, mux.Vars(r)["id"], form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, table, success("Table updated"))
}

func (h *Handler) deleteTable(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	if err := h.Catalog.DeleteTable(r.Context(), sess, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, nil, success("Table deleted"))
}

func (h *Handler) tableQRCode(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	png, err := h.QR.TablePNG(r.Context(), sess, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	categories, err := h.Catalog.ListCategories(r.Context(), sess, r.URL.Query().Get("branch_id"))
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.CategoryForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	category, err := h.Catalog.CreateCategory(r.Context(), sess, form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeJSON(w, http.StatusCreated, category, success("Category created"))
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.CategoryForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	category, err := h.Catalog.UpdateCategory(r.Context(), sess, mux.Vars(r)["id"], form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, category, success("Category updated"))
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	if err := h.Catalog.DeleteCategory(r.Context(), sess, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, nil, success("Category deleted"))
}

func (h *Handler) listSubCategories(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	subs, err := h.Catalog.ListSubCategories(r.Context(), sess, r.URL.Query().Get("category_id"))
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, subs)
}

func (h *Handler) createSubCategory(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.SubCategoryForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	sub, err := h.Catalog.CreateSubCategory(r.Context(), sess, form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub, success("Subcategory created"))
}

func (h *Handler) updateSubCategory(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.SubCategoryForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	sub, err := h.Catalog.UpdateSubCategory(r.Context(), sess, mux.Vars(r)["id"], form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, sub, success("Subcategory updated"))
}

func (h *Handler) deleteSubCategory(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	if err := h.Catalog.DeleteSubCategory(r.Context(), sess, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, nil, success("Subcategory deleted"))
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	q := r.URL.Query()
	filter := backend.MenuFilter{
		CategoryID:    q.Get("category_id"),
		AvailableOnly: q.Get("available_only") == "true",
	}
	items, err := h.Catalog.ListMenu(r.Context(), sess, filter)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.MenuItemForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	item, err := h.Catalog.CreateMenuItem(r.Context(), sess, form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeJSON(w, http.StatusCreated, item, success("Menu item created"))
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.MenuItemForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	item, err := h.Catalog.UpdateMenuItem(r.Context(), sess, mux.Vars(r)["id"], form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, item, success("Menu item updated"))
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	if err := h.Catalog.DeleteMenuItem(r.Context(), sess, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, nil, success("Menu item deleted"))
}

func (h *Handler) listDiscounts(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	discounts, err := h.Catalog.ListDiscounts(r.Context(), sess)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, discounts)
}

func (h *Handler) createDiscount(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	var form service.DiscountForm
	if err := decode(r, &form); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	discount, err := h.Catalog.CreateDiscount(r.Context(), sess, form)
	if err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeJSON(w, http.StatusCreated, discount, success("Discount created"))
}

func (h *Handler) deleteDiscount(w http.ResponseWriter, r *http.Request, sess *backend.Session) {
	if err := h.Catalog.DeleteDiscount(r.Context(), sess, mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, sess, err)
		return
	}
	writeOK(w, nil, success("Discount deleted"))
}

func (h *Handler) guestMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Catalog.GuestMenu(r.Context(), mux.Vars(r)["tableId"])
	if err != nil {
		h.writeError(w, r, nil, err)
		return
	}
	guestID(w, r)
	writeOK(w, menu)
}
