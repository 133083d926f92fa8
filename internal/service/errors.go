package service

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNoCheckout      = errors.New("checkout is not open")
	ErrNotAtPayment    = errors.New("order can only be placed from the payment step")
)
