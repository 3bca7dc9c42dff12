package rest

import (
	"net/http"
	"time"

	"storefront-be/internal/cart"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type addCartItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type cartItemView struct {
	ID         uint             `json:"id"`
	Product    cart.ItemProduct `json:"product"`
	Quantity   int              `json:"quantity"`
	TotalPrice decimal.Decimal  `json:"total_price"`
}

type cartView struct {
	ID         uuid.UUID       `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	Items      []cartItemView  `json:"items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

func newCartItemView(item *cart.CartItem) cartItemView {
	return cartItemView{
		ID:         item.ID,
		Product:    item.Product,
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice(),
	}
}

func newCartView(c *cart.Cart) cartView {
	items := make([]cartItemView, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, newCartItemView(item))
	}
	return cartView{
		ID:         c.ID,
		CreatedAt:  c.CreatedAt,
		Items:      items,
		TotalPrice: c.TotalPrice(),
	}
}

// pathCartID parses the cart id segment. Carts are addressed by opaque
// uuids, so a malformed one can never name an existing cart.
func pathCartID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("cart_id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.Carts.CreateCart(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, newCartView(c))
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathCartID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "cart not found")
		return
	}

	c, err := h.Carts.GetCart(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartView(c))
}

func (h *Handler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathCartID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "cart not found")
		return
	}

	if err := h.Carts.DeleteCart(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := pathCartID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "cart not found")
		return
	}

	var req addCartItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.Carts.AddItem(r.Context(), cart.AddItemParams{
		CartID:    cartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, newCartItemView(item))
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := pathCartID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "cart not found")
		return
	}
	itemID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "cart item not found")
		return
	}

	var req updateCartItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.Carts.UpdateItemQuantity(r.Context(), cartID, itemID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newCartItemView(item))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cartID, ok := pathCartID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "cart not found")
		return
	}
	itemID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "cart item not found")
		return
	}

	if err := h.Carts.RemoveItem(r.Context(), cartID, itemID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
