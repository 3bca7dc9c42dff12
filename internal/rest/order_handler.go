package rest

import (
	"net/http"
	"time"

	"storefront-be/internal/middleware"
	"storefront-be/internal/order"

	"github.com/shopspring/decimal"
)

type checkoutRequest struct {
	CartID string `json:"cart_id"`
}

type updateOrderRequest struct {
	PaymentStatus string `json:"payment_status"`
}

type orderView struct {
	ID            uint                `json:"id"`
	CustomerID    uint                `json:"customer_id"`
	PlacedAt      time.Time           `json:"placed_at"`
	PaymentStatus order.PaymentStatus `json:"payment_status"`
	Items         []*order.OrderItem  `json:"items"`
	TotalPrice    decimal.Decimal     `json:"total_price"`
}

func newOrderView(o *order.Order) orderView {
	items := o.Items
	if items == nil {
		items = []*order.OrderItem{}
	}
	return orderView{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		PlacedAt:      o.PlacedAt,
		PaymentStatus: o.PaymentStatus,
		Items:         items,
		TotalPrice:    o.TotalPrice(),
	}
}

func newOrderViews(orders []*order.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, newOrderView(o))
	}
	return views
}

// CreateOrder turns the named cart into an order for the calling user.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	var req checkoutRequest
	if !decodeBody(w, r, &req) {
		return
	}

	o, err := h.Orders.Checkout(r.Context(), userID, req.CartID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, newOrderView(o))
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.UserIDFromContext(r.Context())

	orders, total, err := h.Orders.GetOrders(
		r.Context(),
		userID,
		middleware.IsAdmin(r.Context()),
		queryInt32(r, "limit"),
		queryInt32(r, "page"),
	)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Data: newOrderViews(orders), Total: total})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	o, err := h.Orders.GetOrder(r.Context(), userID, middleware.IsAdmin(r.Context()), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newOrderView(o))
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}

	var req updateOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Orders.UpdateStatus(r.Context(), id, order.PaymentStatus(req.PaymentStatus)); err != nil {
		respondServiceError(w, r, err)
		return
	}

	o, err := h.Orders.GetOrder(r.Context(), 0, true, id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newOrderView(o))
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "order not found")
		return
	}

	if err := h.Orders.DeleteOrder(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
