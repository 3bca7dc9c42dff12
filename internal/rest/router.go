package rest

import (
	"net/http"

	"storefront-be/internal/user"
)

// NewRouter maps the HTTP surface onto the handler. Read endpoints on
// the catalog are public; catalog writes are admin-only; carts are
// addressed purely by their unguessable id.
func NewRouter(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /auth/register", h.Register)
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /users/{id}/permissions", requireAdmin(h.GrantPermission))

	// Collections
	mux.HandleFunc("GET /collections", h.ListCollections)
	mux.HandleFunc("GET /collections/{id}", h.GetCollection)
	mux.HandleFunc("POST /collections", requireAdmin(h.CreateCollection))
	mux.HandleFunc("PUT /collections/{id}", requireAdmin(h.UpdateCollection))
	mux.HandleFunc("DELETE /collections/{id}", requireAdmin(h.DeleteCollection))

	// Products
	mux.HandleFunc("GET /products", h.ListProducts)
	mux.HandleFunc("GET /products/{id}", h.GetProduct)
	mux.HandleFunc("POST /products", requireAdmin(h.CreateProduct))
	mux.HandleFunc("PUT /products/{id}", requireAdmin(h.UpdateProduct))
	mux.HandleFunc("DELETE /products/{id}", requireAdmin(h.DeleteProduct))

	// Reviews, nested under their product
	mux.HandleFunc("GET /products/{product_id}/reviews", h.ListReviews)
	mux.HandleFunc("GET /products/{product_id}/reviews/{id}", h.GetReview)
	mux.HandleFunc("POST /products/{product_id}/reviews", h.CreateReview)
	mux.HandleFunc("DELETE /products/{product_id}/reviews/{id}", requireAdmin(h.DeleteReview))

	// Carts
	mux.HandleFunc("POST /carts", h.CreateCart)
	mux.HandleFunc("GET /carts/{cart_id}", h.GetCart)
	mux.HandleFunc("DELETE /carts/{cart_id}", h.DeleteCart)
	mux.HandleFunc("POST /carts/{cart_id}/items", h.AddCartItem)
	mux.HandleFunc("PATCH /carts/{cart_id}/items/{id}", h.UpdateCartItem)
	mux.HandleFunc("DELETE /carts/{cart_id}/items/{id}", h.RemoveCartItem)

	// Customers
	mux.HandleFunc("POST /customers", requireAuth(h.CreateCustomer))
	mux.HandleFunc("GET /customers/me", requireAuth(h.GetMe))
	mux.HandleFunc("PUT /customers/me", requireAuth(h.UpdateMe))
	mux.HandleFunc("GET /customers/{id}", requireAdmin(h.GetCustomer))
	mux.HandleFunc("PUT /customers/{id}", requireAdmin(h.UpdateCustomer))
	mux.HandleFunc("GET /customers/{id}/history",
		requirePermission(user.PermViewCustomerHistory, h.CustomerHistory))

	// Orders
	mux.HandleFunc("POST /orders", requireAuth(h.CreateOrder))
	mux.HandleFunc("GET /orders", requireAuth(h.ListOrders))
	mux.HandleFunc("GET /orders/{id}", requireAuth(h.GetOrder))
	mux.HandleFunc("PATCH /orders/{id}", requireAdmin(h.UpdateOrder))
	mux.HandleFunc("DELETE /orders/{id}", requireAdmin(h.DeleteOrder))

	return mux
}
