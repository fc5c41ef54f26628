package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/logger"
	itemdomain "github.com/ghuser/orderdesk/services/item/domain"
	"github.com/ghuser/orderdesk/services/item/domain/models"
)

var itemColumns = []string{"id", "name", "price", "created_by", "created_at", "updated_by", "updated_at"}

func newMockRepo(t *testing.T) (*ItemRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewItemRepository(database.New(sqlDB, logger.Discard()), nil), mock
}

func TestItemRepository_SaveCommits(t *testing.T) {
	repo, mock := newMockRepo(t)
	item := models.NewItem("Widget", decimal.RequireFromString("10.00"), "ana@x.com", time.Now())

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO item.items")).
		WithArgs("Widget", sqlmock.AnyArg(), "ana@x.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectCommit()

	require.NoError(t, repo.Save(context.Background(), item))
	assert.Equal(t, int64(4), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_GetByIDScansDecimal(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM item.items")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(int64(1), "Widget", "10.50", "anonymous", created, "bo@x.com", updated))

	item, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("10.5")))
	require.NotNil(t, item.UpdatedBy)
	assert.Equal(t, "bo@x.com", *item.UpdatedBy)
	require.NotNil(t, item.UpdatedAt)
	assert.True(t, item.UpdatedAt.Equal(updated))
}

func TestItemRepository_UpdateMissingRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)
	item := models.NewItem("Widget", decimal.NewFromInt(1), "", time.Now())
	item.ID = 99
	item.Touch("", time.Now())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE item.items")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Update(context.Background(), item)
	assert.ErrorIs(t, err, itemdomain.ErrItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_DeleteReferenced(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM item.items")).
		WillReturnError(&pgconn.PgError{Code: database.PgErrForeignKeyViolation})
	mock.ExpectRollback()

	deleted, err := repo.Delete(context.Background(), 1)
	assert.False(t, deleted)
	assert.ErrorIs(t, err, itemdomain.ErrItemInUse)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_DeleteAbsent(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM item.items")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}
