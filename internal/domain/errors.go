package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateProductCode = errors.New("product code already exists")
	ErrClientNotConfigured  = errors.New("client configuration missing")
	ErrCustomerDisabled     = errors.New("customer is disabled")
	ErrProductDisabled      = errors.New("product is disabled")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrEmptyItems           = errors.New("at least one line item is required")
	ErrOrderNotEditable     = errors.New("order can no longer be edited")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrOrderNotAccepted     = errors.New("order has not been accepted")
	ErrInvoiceExists        = errors.New("invoice already exists for this order")
	ErrOverCollection       = errors.New("collection exceeds outstanding amount")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
)
