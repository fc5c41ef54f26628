package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/orderdesk/pkg/paging"
	persondomain "github.com/ghuser/orderdesk/services/person/domain"
	"github.com/ghuser/orderdesk/services/person/domain/models"
	"github.com/ghuser/orderdesk/services/person/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/person/domain/services"
)

// PersonInput carries the mutable fields of a Person.
type PersonInput struct {
	FirstName string
	LastName  string
	Email     string
}

// PersonService orchestrates Person CRUD.
type PersonService struct {
	repo repositories.PersonRepository
	now  func() time.Time
}

// NewPersonService returns a PersonService backed by repo.
func NewPersonService(repo repositories.PersonRepository) *PersonService {
	return &PersonService{repo: repo, now: time.Now}
}

// Create validates and persists a new Person.
func (s *PersonService) Create(ctx context.Context, in PersonInput) (*models.Person, error) {
	p := models.NewPerson(in.FirstName, in.LastName, in.Email)
	if err := domainsvcs.ValidatePerson(p); err != nil {
		return nil, fmt.Errorf("%w: %w", persondomain.ErrInvalidPerson, err)
	}
	if err := s.repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save person: %w", err)
	}
	return p, nil
}

// GetByID returns the person, or nil when none is stored under id.
func (s *PersonService) GetByID(ctx context.Context, id int64) (*models.Person, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", persondomain.ErrInvalidPerson)
	}
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, persondomain.ErrPersonNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

// Exists reports whether a person with id is stored.
func (s *PersonService) Exists(ctx context.Context, id int64) (bool, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// List returns one page of persons ordered by id and the total count.
func (s *PersonService) List(ctx context.Context, opts paging.Opts) ([]*models.Person, int, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, 0, err
	}
	persons, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list persons: %w", err)
	}
	return persons, total, nil
}

// Update replaces every mutable field of the person. Returns
// ErrPersonNotFound when id is absent.
func (s *PersonService) Update(ctx context.Context, id int64, in PersonInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", persondomain.ErrInvalidPerson)
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get person: %w", err)
	}
	p.Replace(in.FirstName, in.LastName, in.Email, s.now())
	if err := domainsvcs.ValidatePerson(p); err != nil {
		return fmt.Errorf("%w: %w", persondomain.ErrInvalidPerson, err)
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	return nil
}

// Delete removes the person and reports whether a row existed.
func (s *PersonService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: id must be positive", persondomain.ErrInvalidPerson)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete person: %w", err)
	}
	return deleted, nil
}

// FindByEmail returns the person registered under email. Returns
// ErrPersonNotFound when none is.
func (s *PersonService) FindByEmail(ctx context.Context, email string) (*models.Person, error) {
	p, err := s.repo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("find person: %w", err)
	}
	return p, nil
}
