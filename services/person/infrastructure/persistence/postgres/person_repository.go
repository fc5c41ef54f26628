package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/paging"
	persondomain "github.com/ghuser/orderdesk/services/person/domain"
	"github.com/ghuser/orderdesk/services/person/domain/models"
	"github.com/ghuser/orderdesk/services/person/infrastructure/persistence/postgres/db"
)

const emailUniqueConstraint = "persons_email_key"

// PersonRepository implements repositories.PersonRepository against PostgreSQL.
type PersonRepository struct {
	db *database.Database
}

// NewPersonRepository returns a PersonRepository backed by the given pool.
func NewPersonRepository(database *database.Database) *PersonRepository {
	return &PersonRepository{db: database}
}

// Save inserts p and assigns its generated id.
func (r *PersonRepository) Save(ctx context.Context, p *models.Person) error {
	id, err := db.New(r.db.DB()).InsertPerson(ctx, db.InsertPersonParams{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		if database.IsUniqueViolation(err, emailUniqueConstraint) {
			return fmt.Errorf("%w: %s", persondomain.ErrEmailTaken, p.Email)
		}
		return fmt.Errorf("insert person: %w", err)
	}
	p.ID = id
	return nil
}

// GetByID retrieves a Person by id. Returns ErrPersonNotFound if not found.
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	row, err := db.New(r.db.DB()).GetPersonByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persondomain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("query person: %w", err)
	}
	return rowToPerson(row), nil
}

// GetByEmail retrieves a Person by normalized email.
func (r *PersonRepository) GetByEmail(ctx context.Context, email string) (*models.Person, error) {
	row, err := db.New(r.db.DB()).GetPersonByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persondomain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("query person by email: %w", err)
	}
	return rowToPerson(row), nil
}

// List retrieves a page of persons ordered by id and the total count.
func (r *PersonRepository) List(ctx context.Context, opts paging.Opts) ([]*models.Person, int, error) {
	q := db.New(r.db.DB())

	rows, err := q.ListPersons(ctx, db.ListPersonsParams{
		Limit:  int32(opts.Limit),
		Offset: int32(opts.Offset),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("query persons: %w", err)
	}

	total, err := q.CountPersons(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count persons: %w", err)
	}

	persons := make([]*models.Person, len(rows))
	for i, row := range rows {
		persons[i] = rowToPerson(row)
	}
	return persons, int(total), nil
}

// Update persists every mutable field of p.
func (r *PersonRepository) Update(ctx context.Context, p *models.Person) error {
	n, err := db.New(r.db.DB()).UpdatePerson(ctx, db.UpdatePersonParams{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		UpdatedAt: database.NullTime(p.UpdatedAt),
	})
	if err != nil {
		if database.IsUniqueViolation(err, emailUniqueConstraint) {
			return fmt.Errorf("%w: %s", persondomain.ErrEmailTaken, p.Email)
		}
		return fmt.Errorf("update person: %w", err)
	}
	if n == 0 {
		return persondomain.ErrPersonNotFound
	}
	return nil
}

// Delete removes a person by id.
func (r *PersonRepository) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := db.New(r.db.DB()).DeletePerson(ctx, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: person %d", persondomain.ErrPersonInUse, id)
		}
		return false, fmt.Errorf("delete person: %w", err)
	}
	return n > 0, nil
}

// rowToPerson maps a db.PersonPerson to a domain models.Person.
func rowToPerson(row db.PersonPerson) *models.Person {
	return &models.Person{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: database.TimePtr(row.UpdatedAt),
	}
}
