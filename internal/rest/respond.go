package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/collection"
	"storefront-be/internal/customer"
	"storefront-be/internal/logger"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/review"
	"storefront-be/internal/user"
	"storefront-be/internal/validate"

	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain errors onto the HTTP taxonomy:
// validation and policy violations are the caller's fault (400), unknown
// resources are 404, anything else is a 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validate.Errors
	if errors.As(err, &fieldErrs) {
		respondJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrs})
		return
	}

	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, collection.ErrCollectionNotFound),
		errors.Is(err, review.ErrReviewNotFound),
		errors.Is(err, cart.ErrCartNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, product.ErrProductReferenced),
		errors.Is(err, collection.ErrCollectionHasProducts),
		errors.Is(err, cart.ErrProductNotFound),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrCartNotFound),
		errors.Is(err, order.ErrCartEmpty),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, customer.ErrCustomerExists),
		errors.Is(err, user.ErrEmailExists),
		errors.Is(err, user.ErrUnknownPermission):
		respondError(w, http.StatusBadRequest, err.Error())

	default:
		logger.FromCtx(r.Context()).Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
