package rest

import (
	"net/http"
	"strconv"

	"storefront-be/internal/cart"
	"storefront-be/internal/collection"
	"storefront-be/internal/customer"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/review"
	"storefront-be/internal/user"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Users       user.Service
	Collections collection.Service
	Products    product.Service
	Reviews     review.Service
	Carts       cart.Service
	Customers   customer.Service
	Orders      order.Service
}

func NewHandler(
	users user.Service,
	collections collection.Service,
	products product.Service,
	reviews review.Service,
	carts cart.Service,
	customers customer.Service,
	orders order.Service,
) *Handler {
	return &Handler{
		Users:       users,
		Collections: collections,
		Products:    products,
		Reviews:     reviews,
		Carts:       carts,
		Customers:   customers,
		Orders:      orders,
	}
}

// pathID reads a numeric path segment. A non-numeric segment means the
// resource cannot exist, so callers should treat the error as a 404.
func pathID(r *http.Request, name string) (uint, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func queryInt32(r *http.Request, name string) *int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil
	}
	v := int32(n)
	return &v
}

// listResponse is the shared envelope for paginated listings.
type listResponse struct {
	Data  any   `json:"data"`
	Total int64 `json:"total"`
}
