package rest

import (
	"net/http"
	"time"

	"storefront-be/internal/customer"
	"storefront-be/internal/middleware"
	"storefront-be/internal/validate"
)

type customerRequest struct {
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`
	Membership string `json:"membership"`
}

// params validates the payload and converts it to the service shape.
// birth_date arrives as a plain YYYY-MM-DD date.
func (req *customerRequest) params() (customer.UpdateParams, error) {
	var errs validate.Errors

	params := customer.UpdateParams{
		Phone:      req.Phone,
		Membership: customer.Membership(req.Membership),
	}

	if req.BirthDate != "" {
		d, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			errs.Add("birth_date", "must be a date in YYYY-MM-DD format")
		} else {
			params.BirthDate = &d
		}
	}

	return params, errs.Err()
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	params, err := req.params()
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	c, err := h.Customers.Create(r.Context(), userID, params)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	c, err := h.Customers.GetMe(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	params, err := req.params()
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	c, err := h.Customers.UpdateMe(r.Context(), userID, params)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}

	c, err := h.Customers.GetByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}

	var req customerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	params, err := req.params()
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	c, err := h.Customers.UpdateByID(r.Context(), id, params)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// CustomerHistory lists every order a customer has placed.
func (h *Handler) CustomerHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "customer not found")
		return
	}

	// Resolve the customer first so an unknown id reads as 404, not an
	// empty history.
	if _, err := h.Customers.GetByID(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}

	orders, total, err := h.Orders.GetOrdersByCustomer(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Data: newOrderViews(orders), Total: total})
}
