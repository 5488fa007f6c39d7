package domain

// UserRole defines the admin role hierarchy.
type UserRole string

const (
	RoleSuperAdmin UserRole = "superadmin"
	RoleAdmin      UserRole = "admin"
)

// OrderStatus represents the fulfilment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ApproveStatus represents the acceptance workflow state of an order.
type ApproveStatus string

const (
	ApprovePending  ApproveStatus = "pending"
	ApproveAccepted ApproveStatus = "accepted"
	ApproveRejected ApproveStatus = "rejected"
)

// ValidOrderStatuses lists the accepted order status filter values.
var ValidOrderStatuses = map[OrderStatus]bool{
	OrderStatusPending:   true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// ValidApproveStatuses lists the accepted approve status filter values.
var ValidApproveStatuses = map[ApproveStatus]bool{
	ApprovePending:  true,
	ApproveAccepted: true,
	ApproveRejected: true,
}

// PaymentMethod represents how a collection was paid.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentUPI    PaymentMethod = "upi"
	PaymentCheque PaymentMethod = "cheque"
)

// ValidPaymentMethods lists the accepted collection payment methods.
var ValidPaymentMethods = map[PaymentMethod]bool{
	PaymentCash:   true,
	PaymentUPI:    true,
	PaymentCheque: true,
}
