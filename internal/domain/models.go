package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Client is the seller configuration record. A deployment carries exactly
// one active client; its gst_method and state feed every tax computation.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	PAN       string    `db:"pan" json:"pan"`
	Address   string    `db:"address" json:"address"`
	State     string    `db:"state" json:"state"`
	Phone     string    `db:"phone" json:"phone"`
	GSTMethod string    `db:"gst_method" json:"gst_method"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an authenticated admin user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Product represents a sellable product from the catalogue.
type Product struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Brand         string    `db:"brand" json:"brand"`
	Category      string    `db:"category" json:"category"`
	HSNCode       string    `db:"hsn_code" json:"hsn_code"`
	ProductCode   string    `db:"product_code" json:"product_code"`
	UOM           string    `db:"uom" json:"uom"`
	Price         float64   `db:"price" json:"price"`
	DiscountPrice float64   `db:"discount_price" json:"discount_price"`
	GSTRate       float64   `db:"gst_rate" json:"gst_rate"`
	IsEnabled     bool      `db:"is_enabled" json:"is_enabled"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// EffectivePrice returns the discount price when set, else the list price.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// Customer represents a buyer. State is the buyer-side jurisdiction used
// for the CGST/SGST vs IGST decision.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Address   string    `db:"address" json:"address"`
	State     string    `db:"state" json:"state"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	Route     string    `db:"route" json:"route"`
	IsEnabled bool      `db:"is_enabled" json:"is_enabled"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Cart is a server-side working cart one admin builds for one customer.
// Checkout converts it into an order and clears it.
type Cart struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	UserID     uuid.UUID  `db:"user_id" json:"user_id"`
	CustomerID uuid.UUID  `db:"customer_id" json:"customer_id"`
	Items      []CartItem `db:"-" json:"items"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// CartItem is one product line in a cart.
type CartItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CartID    uuid.UUID `db:"cart_id" json:"cart_id"`
	ProductID uuid.UUID `db:"product_id" json:"product_id"`
	Quantity  float64   `db:"quantity" json:"quantity"`
	UnitPrice float64   `db:"unit_price" json:"unit_price"`
}

// Order represents a customer order with its acceptance and delivery
// lifecycle. Totals are engine-computed at creation and on every edit.
type Order struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	OrderNumber   string        `db:"order_number" json:"order_number"`
	CustomerID    uuid.UUID     `db:"customer_id" json:"customer_id"`
	PlacedBy      uuid.UUID     `db:"placed_by" json:"placed_by"`
	Status        OrderStatus   `db:"status" json:"status"`
	ApproveStatus ApproveStatus `db:"approve_status" json:"approve_status"`
	Items         []OrderItem   `db:"-" json:"items"`
	Subtotal      float64       `db:"subtotal" json:"subtotal"`
	TotalGST      float64       `db:"total_gst" json:"total_gst"`
	TotalAmount   float64       `db:"total_amount" json:"total_amount"`
	DueOn         *time.Time    `db:"due_on" json:"due_on"`
	CancelReason  string        `db:"cancel_reason" json:"cancel_reason"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// OrderItem is one product line on an order. Name, price, and GST rate are
// captured at order time so later catalogue edits don't rewrite history.
type OrderItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OrderID   uuid.UUID `db:"order_id" json:"order_id"`
	ProductID uuid.UUID `db:"product_id" json:"product_id"`
	Name      string    `db:"name" json:"name"`
	Quantity  float64   `db:"quantity" json:"quantity"`
	UnitPrice float64   `db:"unit_price" json:"unit_price"`
	GSTRate   float64   `db:"gst_rate" json:"gst_rate"`
	LineTotal float64   `db:"line_total" json:"line_total"`
}

// Invoice is a tax invoice, either raised from an order or created
// directly from ad-hoc items. Summary holds the engine's itemized output
// exactly as handed to the PDF renderer.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	OrderID       *uuid.UUID      `db:"order_id" json:"order_id"`
	CustomerID    uuid.UUID       `db:"customer_id" json:"customer_id"`
	CreatedBy     uuid.UUID       `db:"created_by" json:"created_by"`
	InvoiceDate   time.Time       `db:"invoice_date" json:"invoice_date"`
	Summary       json.RawMessage `db:"summary" json:"summary"`
	GrandTotal    float64         `db:"grand_total" json:"grand_total"`
	AmountWords   string          `db:"amount_words" json:"amount_words"`
	BankAccountID *uuid.UUID      `db:"bank_account_id" json:"bank_account_id"`
	Degraded      bool            `db:"degraded" json:"degraded"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// BankAccount holds the seller bank details printed on invoices.
type BankAccount struct {
	ID            uuid.UUID `db:"id" json:"id"`
	BankName      string    `db:"bank_name" json:"bank_name"`
	AccountNumber string    `db:"account_number" json:"account_number"`
	IFSCCode      string    `db:"ifsc_code" json:"ifsc_code"`
	IsDefault     bool      `db:"is_default" json:"is_default"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// CashCollection records a payment collected against an invoice.
type CashCollection struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	InvoiceID   uuid.UUID     `db:"invoice_id" json:"invoice_id"`
	Amount      float64       `db:"amount" json:"amount"`
	Method      PaymentMethod `db:"method" json:"method"`
	Reference   string        `db:"reference" json:"reference"`
	CollectedBy uuid.UUID     `db:"collected_by" json:"collected_by"`
	CollectedAt time.Time     `db:"collected_at" json:"collected_at"`
}
