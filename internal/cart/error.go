package cart

import "errors"

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductNotFound  = errors.New("no product with the given id")
	ErrInvalidQuantity  = errors.New("quantity must be between 1 and 10")
)
