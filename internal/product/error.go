package product

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductReferenced = errors.New("cannot delete product because it is referenced by order items")
)
