package postgres

import (
	"context"
	"testing"

	"cumple/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newDryRunDB builds a gorm session that renders SQL without executing it,
// and captures the statement produced by update calls.
func newDryRunDB(t *testing.T) (*gorm.DB, *capturedStatement) {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	captured := &capturedStatement{}
	err = db.Callback().Update().After("gorm:update").Register("capture_update_sql", func(tx *gorm.DB) {
		captured.SQL = tx.Statement.SQL.String()
		captured.Vars = append([]any{}, tx.Statement.Vars...)
	})
	require.NoError(t, err)

	return db, captured
}

type capturedStatement struct {
	SQL  string
	Vars []any
}

// The whole concurrent-contribution guarantee rests on one conditional
// UPDATE: the increment and the fulfilled recomputation must be a single
// statement evaluated against the stored row, not a read-modify-write.
func TestRegistryRepository_ApplyContribution_SingleConditionalUpdate(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewRegistryRepository(db)

	giftID := uuid.New()

	// A dry run reports zero affected rows, which the repository reads as
	// a missing gift; only the rendered statement matters here.
	err := repo.ApplyContribution(context.Background(), giftID, 50)
	assert.ErrorIs(t, err, repository.ErrGiftNotFound)

	require.NotEmpty(t, captured.SQL)
	assert.Contains(t, captured.SQL, "UPDATE `gift_registry` SET")
	assert.Contains(t, captured.SQL, "`current_amount`=current_amount + ?")
	assert.Contains(t, captured.SQL, "`is_fulfilled`=current_amount + ? >= target_amount")
	assert.Contains(t, captured.SQL, "WHERE id = ?")

	assert.Contains(t, captured.Vars, 50.0)
	assert.Contains(t, captured.Vars, giftID)
}

func TestRegistryRepository_UpdateImageURL_TargetsSingleRow(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewRegistryRepository(db)

	giftID := uuid.New()

	err := repo.UpdateImageURL(context.Background(), giftID, "https://cdn.example.com/gifts/x.png")
	assert.ErrorIs(t, err, repository.ErrGiftNotFound)

	assert.Contains(t, captured.SQL, "UPDATE `gift_registry` SET")
	assert.Contains(t, captured.SQL, "`image_url`=?")
	assert.Contains(t, captured.SQL, "WHERE id = ?")
}
