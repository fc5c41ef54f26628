package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/orderdesk/pkg/paging"
	invoicingdomain "github.com/ghuser/orderdesk/services/invoicing/domain"
	"github.com/ghuser/orderdesk/services/invoicing/domain/models"
	"github.com/ghuser/orderdesk/services/invoicing/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/invoicing/domain/services"
)

// ClientInput carries the mutable fields of a Client. Phone is optional.
type ClientInput struct {
	Name  string
	Email string
	Phone *string
}

// ClientService orchestrates Client CRUD.
type ClientService struct {
	repo repositories.ClientRepository
	now  func() time.Time
}

func NewClientService(repo repositories.ClientRepository) *ClientService {
	return &ClientService{repo: repo, now: time.Now}
}

func (s *ClientService) Create(ctx context.Context, actor string, in ClientInput) (*models.Client, error) {
	c := models.NewClient(in.Name, in.Email, in.Phone, actor, s.now())
	if err := domainsvcs.ValidateClient(c); err != nil {
		return nil, fmt.Errorf("%w: %w", invoicingdomain.ErrInvalidClient, err)
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}
	return c, nil
}

// GetByID returns the client, or nil when none is stored under id.
func (s *ClientService) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", invoicingdomain.ErrInvalidClient)
	}
	c, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, invoicingdomain.ErrClientNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (s *ClientService) List(ctx context.Context, opts paging.Opts) ([]*models.Client, int, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, 0, err
	}
	clients, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list clients: %w", err)
	}
	return clients, total, nil
}

func (s *ClientService) Update(ctx context.Context, id int64, actor string, in ClientInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", invoicingdomain.ErrInvalidClient)
	}
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get client: %w", err)
	}
	c.Replace(in.Name, in.Email, in.Phone, actor, s.now())
	if err := domainsvcs.ValidateClient(c); err != nil {
		return fmt.Errorf("%w: %w", invoicingdomain.ErrInvalidClient, err)
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (s *ClientService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: id must be positive", invoicingdomain.ErrInvalidClient)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete client: %w", err)
	}
	return deleted, nil
}
