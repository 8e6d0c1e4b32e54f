package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ZaidAbuSamraa/alaml/internal/domain/shared"
)

// newMockGorm wires a gorm postgres dialector onto a sqlmock connection so
// the exact SQL a repository emits can be asserted.
func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormSupplierRepository_FindByNameQueryShape(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewGormSupplierRepository(db)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name", "phone"}).
		AddRow(id.String(), now, now, "Golden Mills", "0591234567")

	// The lookup must be case-insensitive and must trim both the input and
	// the stored name before comparing.
	mock.ExpectQuery(`SELECT \* FROM "suppliers" WHERE LOWER\(TRIM\(name\)\) = LOWER\(\$1\)`).
		WithArgs("golden mills", 1).
		WillReturnRows(rows)

	supplier, err := repo.FindByName(context.Background(), "  golden mills ")
	require.NoError(t, err)
	assert.Equal(t, "Golden Mills", supplier.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormSupplierRepository_DeleteMissingRow(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewGormSupplierRepository(db)

	id := uuid.New()
	mock.ExpectExec(`DELETE FROM "suppliers" WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
