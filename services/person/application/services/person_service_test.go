package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghuser/orderdesk/pkg/paging"
	persondomain "github.com/ghuser/orderdesk/services/person/domain"
	"github.com/ghuser/orderdesk/services/person/infrastructure/persistence/memory"
)

func newTestService() *PersonService {
	svc := NewPersonService(memory.NewPersonRepository())
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestPersonService_Create(t *testing.T) {
	svc := newTestService()

	p, err := svc.Create(context.Background(), PersonInput{FirstName: "Ana", LastName: "Gomez", Email: " A@X.com "})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, "a@x.com", p.Email)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Nil(t, p.UpdatedAt)
}

func TestPersonService_CreateInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   PersonInput
	}{
		{"missing first name", PersonInput{LastName: "Gomez", Email: "a@x.com"}},
		{"missing email", PersonInput{FirstName: "Ana", LastName: "Gomez"}},
		{"email without at", PersonInput{FirstName: "Ana", LastName: "Gomez", Email: "ax.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService().Create(context.Background(), tt.in)
			assert.ErrorIs(t, err, persondomain.ErrInvalidPerson)
		})
	}
}

func TestPersonService_CreateDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	_, err := svc.Create(ctx, PersonInput{FirstName: "Ana", LastName: "Gomez", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, PersonInput{FirstName: "Other", LastName: "Person", Email: "A@x.com"})
	assert.ErrorIs(t, err, persondomain.ErrEmailTaken)
}

func TestPersonService_GetByID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	t.Run("absent is nil without error", func(t *testing.T) {
		p, err := svc.GetByID(ctx, 42)
		require.NoError(t, err)
		assert.Nil(t, p)
	})
	t.Run("non-positive id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 0)
		assert.ErrorIs(t, err, persondomain.ErrInvalidPerson)
	})
}

func TestPersonService_Update(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p, err := svc.Create(ctx, PersonInput{FirstName: "Ana", LastName: "Gomez", Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, p.ID, PersonInput{FirstName: "Anna", LastName: "Gomez", Email: "anna@x.com"}))

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Anna", got.FirstName)
	assert.Equal(t, "anna@x.com", got.Email)
	require.NotNil(t, got.UpdatedAt)
	assert.Equal(t, svc.now(), *got.UpdatedAt)
}

func TestPersonService_UpdateMissing(t *testing.T) {
	err := newTestService().Update(context.Background(), 7, PersonInput{FirstName: "A", LastName: "B", Email: "a@b.c"})
	assert.ErrorIs(t, err, persondomain.ErrPersonNotFound)
}

func TestPersonService_Delete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	p, err := svc.Create(ctx, PersonInput{FirstName: "Ana", LastName: "Gomez", Email: "a@x.com"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete finds nothing")
}

func TestPersonService_ListOrderedByID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	for _, e := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		_, err := svc.Create(ctx, PersonInput{FirstName: "N", LastName: "L", Email: e})
		require.NoError(t, err)
	}

	persons, total, err := svc.List(ctx, paging.Opts{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, persons, 3)
	for i, p := range persons {
		assert.Equal(t, int64(i+1), p.ID)
	}

	_, _, err = svc.List(ctx, paging.Opts{Limit: -1})
	assert.ErrorIs(t, err, paging.ErrInvalidPage)
}

func TestPersonService_FindByEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	created, err := svc.Create(ctx, PersonInput{FirstName: "Ana", LastName: "Gomez", Email: "a@x.com"})
	require.NoError(t, err)

	p, err := svc.FindByEmail(ctx, "A@X.COM")
	require.NoError(t, err)
	assert.Equal(t, created.ID, p.ID)

	_, err = svc.FindByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, persondomain.ErrPersonNotFound)
}
