package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations obtained from the factory use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so multi-step workflows (guest creation, contributions,
// event aggregate deletion) are atomic.
type RepositoryFactory interface {
	// ProfileRepo returns a ProfileRepository bound to the current transaction.
	ProfileRepo() ProfileRepository

	// EventRepo returns an EventRepository bound to the current transaction.
	EventRepo() EventRepository

	// GuestRepo returns a GuestRepository bound to the current transaction.
	GuestRepo() GuestRepository

	// RegistryRepo returns a RegistryRepository bound to the current transaction.
	RegistryRepo() RegistryRepository

	// ExpenseRepo returns an ExpenseRepository bound to the current transaction.
	ExpenseRepo() ExpenseRepository
}
