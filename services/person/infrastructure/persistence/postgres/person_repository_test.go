package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/paging"
	persondomain "github.com/ghuser/orderdesk/services/person/domain"
	"github.com/ghuser/orderdesk/services/person/domain/models"
)

var personColumns = []string{"id", "first_name", "last_name", "email", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*PersonRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return NewPersonRepository(database.New(sqlDB, logger.Discard())), mock
}

func TestPersonRepository_SaveAssignsID(t *testing.T) {
	repo, mock := newMockRepo(t)
	p := models.NewPerson("Ana", "Gomez", "a@x.com")

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO person.persons")).
		WithArgs("Ana", "Gomez", "a@x.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))

	require.NoError(t, repo.Save(context.Background(), p))
	assert.Equal(t, int64(12), p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPersonRepository_SaveDuplicateEmail(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO person.persons")).
		WillReturnError(&pgconn.PgError{Code: database.PgErrUniqueViolation, ConstraintName: emailUniqueConstraint})

	err := repo.Save(context.Background(), models.NewPerson("Ana", "Gomez", "a@x.com"))
	assert.ErrorIs(t, err, persondomain.ErrEmailTaken)
}

func TestPersonRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM person.persons")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(personColumns).AddRow(int64(1), "Ana", "Gomez", "a@x.com", created, nil))

	p, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.FirstName)
	assert.True(t, p.CreatedAt.Equal(created))
	assert.Nil(t, p.UpdatedAt)
}

func TestPersonRepository_GetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM person.persons")).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, persondomain.ErrPersonNotFound)
}

func TestPersonRepository_ListOrdersByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id")).
		WithArgs(int32(2), int32(0)).
		WillReturnRows(sqlmock.NewRows(personColumns).
			AddRow(int64(1), "Ana", "Gomez", "a@x.com", now, nil).
			AddRow(int64(2), "Bo", "Diaz", "b@x.com", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM person.persons")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	persons, total, err := repo.List(context.Background(), paging.Opts{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, persons, 2)
	assert.Equal(t, int64(1), persons[0].ID)
	require.NotNil(t, persons[1].UpdatedAt)
}

func TestPersonRepository_UpdateMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE person.persons")).WillReturnResult(sqlmock.NewResult(0, 0))

	now := time.Now()
	err := repo.Update(context.Background(), &models.Person{ID: 9, FirstName: "a", LastName: "b", Email: "c@d.e", UpdatedAt: &now})
	assert.ErrorIs(t, err, persondomain.ErrPersonNotFound)
}

func TestPersonRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		want    bool
		wantErr bool
		wantIs  error
	}{
		{
			name: "deleted",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("DELETE FROM person.persons")).WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: true,
		},
		{
			name: "absent",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("DELETE FROM person.persons")).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: false,
		},
		{
			name: "still referenced",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("DELETE FROM person.persons")).
					WillReturnError(&pgconn.PgError{Code: database.PgErrForeignKeyViolation})
			},
			wantErr: true,
			wantIs:  persondomain.ErrPersonInUse,
		},
		{
			name: "driver failure",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta("DELETE FROM person.persons")).WillReturnError(errors.New("conn reset"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			tt.setup(mock)

			got, err := repo.Delete(context.Background(), 3)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantIs != nil {
					assert.ErrorIs(t, err, tt.wantIs)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
