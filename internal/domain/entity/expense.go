package entity

import (
	"time"

	"github.com/google/uuid"
)

// Expense tracks money owed or paid to suppliers. Both references are
// optional: general costs have no event, ad-hoc costs have no supplier.
type Expense struct {
	ID          uuid.UUID
	EventID     *uuid.UUID
	SupplierID  *uuid.UUID
	Description string
	Amount      float64 // Euros.
	Status      ExpenseStatus
	DueDate     *time.Time
	PaidDate    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Supplier *Supplier // Preloaded for list views; nil otherwise.
}

// ExpenseStatus is the payment state of an expense.
type ExpenseStatus string

const (
	ExpensePending ExpenseStatus = "pending"
	ExpensePaid    ExpenseStatus = "paid"
)

// String returns the string representation of the ExpenseStatus.
func (s ExpenseStatus) String() string {
	return string(s)
}

// IsValid checks if the ExpenseStatus is a valid value.
func (s ExpenseStatus) IsValid() bool {
	switch s {
	case ExpensePending, ExpensePaid:
		return true
	default:
		return false
	}
}
