package rest

import (
	"net/http"
	"strconv"
	"time"

	"storefront-be/internal/product"

	"github.com/shopspring/decimal"
)

type productRequest struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Slug         string          `json:"slug"`
	Inventory    int             `json:"inventory"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CollectionID uint            `json:"collection"`
}

func (req *productRequest) params() product.CreateParams {
	return product.CreateParams{
		Title:        req.Title,
		Description:  req.Description,
		Slug:         req.Slug,
		Inventory:    req.Inventory,
		UnitPrice:    req.UnitPrice,
		CollectionID: req.CollectionID,
	}
}

// productView adds the derived tax-inclusive price to the wire format.
type productView struct {
	ID           uint            `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Slug         string          `json:"slug"`
	Inventory    int             `json:"inventory"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
	LastUpdate   time.Time       `json:"last_update"`
	CollectionID uint            `json:"collection"`
}

func newProductView(p *product.Product) productView {
	return productView{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Slug:         p.Slug,
		Inventory:    p.Inventory,
		UnitPrice:    p.UnitPrice,
		PriceWithTax: p.PriceWithTax(),
		LastUpdate:   p.LastUpdate,
		CollectionID: p.CollectionID,
	}
}

func listFilterFromQuery(r *http.Request) *product.ListFilter {
	q := r.URL.Query()
	filter := &product.ListFilter{
		Limit: queryInt32(r, "limit"),
		Page:  queryInt32(r, "page"),
	}

	if search := q.Get("search"); search != "" {
		filter.Search = &search
	}
	if raw := q.Get("collection"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			cid := uint(id)
			filter.CollectionID = &cid
		}
	}
	if field := q.Get("sort"); field == "unit_price" || field == "last_update" {
		dir := q.Get("dir")
		if dir != "desc" {
			dir = "asc"
		}
		filter.Sort = &product.SortInput{Field: field, Direction: dir}
	}

	return filter
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, total, err := h.Products.ListProducts(r.Context(), listFilterFromQuery(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p))
	}
	respondJSON(w, http.StatusOK, listResponse{Data: views, Total: total})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	p, err := h.Products.GetProduct(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newProductView(p))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.Products.CreateProduct(r.Context(), req.params())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, newProductView(p))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	var req productRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.Products.UpdateProduct(r.Context(), id, req.params())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, newProductView(p))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	if err := h.Products.DeleteProduct(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
