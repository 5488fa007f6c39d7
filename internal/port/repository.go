package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nicitum/orderappu-sub000/internal/domain"
)

// ClientRepository defines the contract for the seller configuration record.
type ClientRepository interface {
	Get(ctx context.Context) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
}

// UserRepository defines the contract for admin user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
}

// ProductRepository defines the contract for product catalogue persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
	Search(ctx context.Context, query, brand, category string, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, product *domain.Product) error
}

// CustomerRepository defines the contract for customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Search(ctx context.Context, query, route string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, customer *domain.Customer) error
}

// CartRepository defines the contract for server-side cart persistence.
// A cart is keyed by the (admin user, customer) pair.
type CartRepository interface {
	Get(ctx context.Context, userID, customerID uuid.UUID) (*domain.Cart, error)
	ReplaceItems(ctx context.Context, userID, customerID uuid.UUID, items []domain.CartItem) (*domain.Cart, error)
	Clear(ctx context.Context, userID, customerID uuid.UUID) error
}

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status        domain.OrderStatus
	ApproveStatus domain.ApproveStatus
	CustomerID    *uuid.UUID
	From          *time.Time
	To            *time.Time
}

// OrderRepository defines the contract for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, filter OrderFilter, offset, limit int) ([]domain.Order, int, error)
	ReplaceItems(ctx context.Context, order *domain.Order) error
	UpdateStatus(ctx context.Context, order *domain.Order) error
	NextOrderNumber(ctx context.Context, date time.Time) (string, error)
}

// InvoiceRepository defines the contract for invoice persistence and
// atomic invoice-number allocation.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, customerID *uuid.UUID, from, to *time.Time, offset, limit int) ([]domain.Invoice, int, error)
	NextInvoiceNumber(ctx context.Context, prefix string, year int) (string, error)
}

// BankAccountRepository defines the contract for seller bank accounts.
type BankAccountRepository interface {
	Create(ctx context.Context, acct *domain.BankAccount) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error)
	GetDefault(ctx context.Context) (*domain.BankAccount, error)
	List(ctx context.Context) ([]domain.BankAccount, error)
	SetDefault(ctx context.Context, id uuid.UUID) error
}

// CollectionRepository defines the contract for cash collection records.
type CollectionRepository interface {
	Create(ctx context.Context, col *domain.CashCollection) error
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]domain.CashCollection, error)
	List(ctx context.Context, from, to *time.Time, offset, limit int) ([]domain.CashCollection, int, error)
	TotalCollected(ctx context.Context, invoiceID uuid.UUID) (float64, error)
}
