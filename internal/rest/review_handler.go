package rest

import (
	"errors"
	"net/http"

	"storefront-be/internal/product"
	"storefront-be/internal/review"
	"storefront-be/internal/validate"
)

type reviewRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "product_id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	reviews, err := h.Reviews.ListByProduct(r.Context(), productID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

func (h *Handler) GetReview(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "product_id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "review not found")
		return
	}

	rev, err := h.Reviews.GetReview(r.Context(), productID, id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rev)
}

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "product_id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rev, err := h.Reviews.CreateReview(r.Context(), review.CreateParams{
		ProductID:   productID,
		Name:        req.Name,
		Description: req.Description,
	})
	if errors.Is(err, product.ErrProductNotFound) {
		// The submitted parent is bad input here, not a missing resource.
		var errs validate.Errors
		errs.Add("product", "no product with the given id")
		respondServiceError(w, r, errs.Err())
		return
	}
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, rev)
}

func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathID(r, "product_id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "review not found")
		return
	}

	if err := h.Reviews.DeleteReview(r.Context(), productID, id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
