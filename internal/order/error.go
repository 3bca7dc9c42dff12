package order

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrCartNotFound  = errors.New("no cart with the given id")
	ErrCartEmpty     = errors.New("the cart is empty")
	ErrInvalidStatus = errors.New("payment status must be one of PENDING, COMPLETE, FAILED")
)
