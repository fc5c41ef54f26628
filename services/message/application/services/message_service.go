package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/orderdesk/pkg/paging"
	messagedomain "github.com/ghuser/orderdesk/services/message/domain"
	"github.com/ghuser/orderdesk/services/message/domain/models"
	"github.com/ghuser/orderdesk/services/message/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/message/domain/services"
)

// MessageService orchestrates Message CRUD.
type MessageService struct {
	repo repositories.MessageRepository
	now  func() time.Time
}

func NewMessageService(repo repositories.MessageRepository) *MessageService {
	return &MessageService{repo: repo, now: time.Now}
}

func (s *MessageService) Create(ctx context.Context, actor, content string) (*models.Message, error) {
	m := models.NewMessage(content, actor, s.now())
	if err := domainsvcs.ValidateMessage(m); err != nil {
		return nil, fmt.Errorf("%w: %w", messagedomain.ErrInvalidMessage, err)
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}
	return m, nil
}

// GetByID returns the message, or nil when none is stored under id.
func (s *MessageService) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", messagedomain.ErrInvalidMessage)
	}
	m, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, messagedomain.ErrMessageNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	return m, nil
}

func (s *MessageService) List(ctx context.Context, opts paging.Opts) ([]*models.Message, int, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, 0, err
	}
	messages, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list messages: %w", err)
	}
	return messages, total, nil
}

func (s *MessageService) Update(ctx context.Context, id int64, actor, content string) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", messagedomain.ErrInvalidMessage)
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get message: %w", err)
	}
	m.Replace(content, actor, s.now())
	if err := domainsvcs.ValidateMessage(m); err != nil {
		return fmt.Errorf("%w: %w", messagedomain.ErrInvalidMessage, err)
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return fmt.Errorf("update message: %w", err)
	}
	return nil
}

func (s *MessageService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: id must be positive", messagedomain.ErrInvalidMessage)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}
	return deleted, nil
}
