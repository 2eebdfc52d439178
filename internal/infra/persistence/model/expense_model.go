package model

import (
	"time"

	"cumple/internal/domain/entity"

	"github.com/google/uuid"
)

// Expense maps the expenses table. EventID and SupplierID are nullable so
// an expense can exist before it is tied to either.
type Expense struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v7()"`
	EventID     *uuid.UUID `gorm:"column:event_id;type:uuid;index"`
	SupplierID  *uuid.UUID `gorm:"column:supplier_id;type:uuid"`
	Description string     `gorm:"column:description;not null"`
	Amount      float64    `gorm:"column:amount;not null"`
	Status      string     `gorm:"column:status;not null;default:pending"`
	DueDate     *time.Time `gorm:"column:due_date"`
	PaidDate    *time.Time `gorm:"column:paid_date"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	Supplier *Supplier `gorm:"foreignKey:SupplierID;references:ID"`
}

// TableName specifies the table name for Expense model
func (Expense) TableName() string {
	return "expenses"
}

// ToEntity converts the model to a domain entity
func (e *Expense) ToEntity() *entity.Expense {
	expense := &entity.Expense{
		ID:          e.ID,
		EventID:     e.EventID,
		SupplierID:  e.SupplierID,
		Description: e.Description,
		Amount:      e.Amount,
		Status:      entity.ExpenseStatus(e.Status),
		DueDate:     e.DueDate,
		PaidDate:    e.PaidDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Supplier != nil {
		expense.Supplier = e.Supplier.ToEntity()
	}

	return expense
}

// FromExpenseEntity converts a domain entity to the model
func FromExpenseEntity(e *entity.Expense) *Expense {
	return &Expense{
		ID:          e.ID,
		EventID:     e.EventID,
		SupplierID:  e.SupplierID,
		Description: e.Description,
		Amount:      e.Amount,
		Status:      string(e.Status),
		DueDate:     e.DueDate,
		PaidDate:    e.PaidDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
