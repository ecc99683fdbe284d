package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/go-customers/flash"
	"github.com/diewo77/go-customers/internal/models"
	"github.com/diewo77/go-customers/normalize"
	"github.com/diewo77/go-customers/view"
)

type CustomerHandler struct {
	db    *gorm.DB
	flash *flash.Flash
}

func NewCustomerHandler(db *gorm.DB, fl *flash.Flash) *CustomerHandler {
	return &CustomerHandler{db: db, flash: fl}
}

// customerFromForm builds a Customer from submitted values. Every field goes
// through normalize.Text before validation and storage; none is exempt.
func customerFromForm(r *http.Request) models.Customer {
	return models.Customer{
		Number:     normalize.Text(r.FormValue("number")),
		Name:       normalize.Text(r.FormValue("name")),
		Address:    normalize.Text(r.FormValue("address")),
		PostalCode: normalize.Text(r.FormValue("postal_code")),
		City:       normalize.Text(r.FormValue("city")),
		Country:    normalize.Text(r.FormValue("country")),
		VATNumber:  normalize.Text(r.FormValue("vat_number")),
		Phone:      normalize.Text(r.FormValue("phone")),
		Mobile:     normalize.Text(r.FormValue("mobile")),
		Email:      normalize.Text(r.FormValue("email")),
		Website:    normalize.Text(r.FormValue("website")),
		Notes:      normalize.Text(r.FormValue("notes")),
	}
}

// List shows all active customers ordered by name.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	var customers []models.Customer
	if err := h.db.Where("active = ?", true).Order("name").Find(&customers).Error; err != nil {
		log.Printf("list customers: %v", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	h.render(w, r, "customers/index.html", map[string]any{
		"Customers": customers,
		"Flash":     h.flash.Pop(w, r),
	})
}

// New shows an empty entry form.
func (h *CustomerHandler) New(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "customers/form.html", map[string]any{
		"Customer": models.Customer{},
	})
}

// Create normalizes and validates the submitted form, then persists a new
// active customer. Validation failures and duplicate numbers re-render the
// form with the submitted (normalized) values; nothing is stored.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	customer := customerFromForm(r)

	if v := customer.Validate(); !v.Empty() {
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, r, "customers/form.html", map[string]any{
			"Customer": customer,
			"Errors":   v,
		})
		return
	}

	customer.Active = true
	if err := h.db.Create(&customer).Error; err != nil {
		if isDuplicate(err) {
			w.WriteHeader(http.StatusConflict)
			h.render(w, r, "customers/form.html", map[string]any{
				"Customer": customer,
				"Errors":   []string{"Customer number already exists."},
			})
			return
		}
		log.Printf("create customer: %v", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	h.flash.Set(w, "Customer added.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Edit shows the entry form pre-filled with an existing record.
func (h *CustomerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.find(w, r)
	if !ok {
		return
	}
	h.render(w, r, "customers/form.html", map[string]any{
		"Customer": customer,
	})
}

// Update overwrites all mutable fields of an existing record. ID and the
// active flag are untouched.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	customer, ok := h.find(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	submitted := customerFromForm(r)
	customer.Number = submitted.Number
	customer.Name = submitted.Name
	customer.Address = submitted.Address
	customer.PostalCode = submitted.PostalCode
	customer.City = submitted.City
	customer.Country = submitted.Country
	customer.VATNumber = submitted.VATNumber
	customer.Phone = submitted.Phone
	customer.Mobile = submitted.Mobile
	customer.Email = submitted.Email
	customer.Website = submitted.Website
	customer.Notes = submitted.Notes

	// Customer keeps its ID here so the form posts back to /edit/{id}.
	if v := customer.Validate(); !v.Empty() {
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, r, "customers/form.html", map[string]any{
			"Customer": customer,
			"Errors":   v,
		})
		return
	}

	if err := h.db.Save(&customer).Error; err != nil {
		if isDuplicate(err) {
			w.WriteHeader(http.StatusConflict)
			h.render(w, r, "customers/form.html", map[string]any{
				"Customer": customer,
				"Errors":   []string{"Customer number already exists."},
			})
			return
		}
		log.Printf("update customer %d: %v", customer.ID, err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	h.flash.Set(w, "Customer updated.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// find loads the customer addressed by the {id} path value. On a missing
// record it flashes a notice and redirects to the listing.
func (h *CustomerHandler) find(w http.ResponseWriter, r *http.Request) (models.Customer, bool) {
	id := r.PathValue("id")

	var customer models.Customer
	if err := h.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.flash.Set(w, "Customer not found.")
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return models.Customer{}, false
		}
		log.Printf("load customer %s: %v", id, err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return models.Customer{}, false
	}
	return customer, true
}

func (h *CustomerHandler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if err := view.Render(w, r, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		if _, werr := w.Write([]byte("template render error")); werr != nil {
			_ = werr
		}
	}
}

// isDuplicate recognizes a unique-constraint violation from either driver so
// a racing duplicate customer number surfaces as a form error, not a fault.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
