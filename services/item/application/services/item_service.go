package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ghuser/orderdesk/pkg/audit"
	pkgcache "github.com/ghuser/orderdesk/pkg/cache"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/paging"
	"github.com/ghuser/orderdesk/pkg/telemetry"
	itemdomain "github.com/ghuser/orderdesk/services/item/domain"
	"github.com/ghuser/orderdesk/services/item/domain/models"
	"github.com/ghuser/orderdesk/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/orderdesk/services/item/domain/services"
)

const cacheWarmTimeout = 2 * time.Second

// ItemInput carries the mutable fields of an Item.
type ItemInput struct {
	Name  string
	Price decimal.Decimal
}

// ItemService orchestrates Item CRUD.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available.
type ItemService struct {
	repo    repositories.ItemRepository
	cache   *pkgcache.ItemCache
	metrics *telemetry.Metrics
	log     logger.Logger
	now     func() time.Time
}

// NewItemService returns an ItemService wired with the given repository and
// cache. A nil cache sends every read to the repository.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache, metrics *telemetry.Metrics, log logger.Logger) *ItemService {
	return &ItemService{repo: repo, cache: itemCache, metrics: metrics, log: log, now: time.Now}
}

// Create validates and persists an Item. The repository publishes ItemChangedEvent.
func (s *ItemService) Create(ctx context.Context, actor string, in ItemInput) (*models.Item, error) {
	name, err := models.NewItemName(in.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	item := models.NewItem(name, in.Price, actor, s.now())
	if err := domainsvcs.ValidateItem(item); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously fill the cache with the Postgres result, unless a
//     write has stored a newer entry in the meantime.
//
// Returns nil without error when the item does not exist.
func (s *ItemService) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", itemdomain.ErrInvalidItem)
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err == nil {
			s.metrics.ItemCacheLookup(ctx, true)
			return fromCached(cached), nil
		}
		if !errors.Is(err, redis.Nil) {
			s.log.WarnContext(ctx, "item cache read failed", "item_id", id, "error", err)
		}
		s.metrics.ItemCacheLookup(ctx, false)
	}

	item, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, itemdomain.ErrItemNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go s.warm(context.WithoutCancel(ctx), item)
	}
	return item, nil
}

// List returns a paginated slice of items plus total count.
func (s *ItemService) List(ctx context.Context, opts paging.Opts) ([]*models.Item, int, error) {
	opts, err := opts.Normalize()
	if err != nil {
		return nil, 0, err
	}
	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list items: %w", err)
	}
	return items, total, nil
}

// Update replaces name and price. Returns ErrItemNotFound if no item has id.
// Orders already written keep the price they snapshotted.
func (s *ItemService) Update(ctx context.Context, id int64, actor string, in ItemInput) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", itemdomain.ErrInvalidItem)
	}
	name, err := models.NewItemName(in.Name)
	if err != nil {
		return fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get item: %w", err)
	}
	item.Replace(name, in.Price, actor, s.now())
	if err := domainsvcs.ValidateItem(item); err != nil {
		return fmt.Errorf("%w: %w", itemdomain.ErrInvalidItem, err)
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	s.store(ctx, item)
	return nil
}

// CurrentPrice reads the item's price from the repository, bypassing the
// cache. ok is false when the item does not exist.
func (s *ItemService) CurrentPrice(ctx context.Context, id int64) (decimal.Decimal, bool, error) {
	item, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, itemdomain.ErrItemNotFound) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("get item price: %w", err)
	}
	return item.Price, true, nil
}

// Delete removes an item and reports whether it existed.
func (s *ItemService) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("%w: id must be positive", itemdomain.ErrInvalidItem)
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	if deleted {
		s.evict(ctx, id)
	}
	return deleted, nil
}

// Refresh reloads id from Postgres into the cache, or evicts it when the item
// no longer exists. Called by the worker for every ItemChangedEvent.
func (s *ItemService) Refresh(ctx context.Context, id int64) error {
	if s.cache == nil {
		return nil
	}
	item, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, itemdomain.ErrItemNotFound) {
		return s.cache.Delete(ctx, id)
	}
	if err != nil {
		return fmt.Errorf("reload item: %w", err)
	}
	return s.cache.Set(ctx, toCached(item))
}

func (s *ItemService) warm(ctx context.Context, item *models.Item) {
	ctx, cancel := context.WithTimeout(ctx, cacheWarmTimeout)
	defer cancel()
	if _, err := s.cache.Add(ctx, toCached(item)); err != nil {
		s.log.WarnContext(ctx, "item cache warm failed", "item_id", item.ID, "error", err)
	}
}

// store overwrites the cached copy after a write. When that fails the entry
// is evicted so readers fall back to Postgres.
func (s *ItemService) store(ctx context.Context, item *models.Item) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, toCached(item)); err != nil {
		s.log.WarnContext(ctx, "item cache write failed", "item_id", item.ID, "error", err)
		s.evict(ctx, item.ID)
	}
}

func (s *ItemService) evict(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		s.log.WarnContext(ctx, "item cache evict failed", "item_id", id, "error", err)
	}
}

func toCached(item *models.Item) *pkgcache.CachedItem {
	return &pkgcache.CachedItem{
		ID:        item.ID,
		Name:      item.Name.String(),
		Price:     item.Price,
		CreatedBy: item.CreatedBy,
		CreatedAt: item.CreatedAt,
		UpdatedBy: item.UpdatedBy,
		UpdatedAt: item.UpdatedAt,
	}
}

func fromCached(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:    c.ID,
		Name:  models.ItemName(c.Name),
		Price: c.Price,
		Stamp: audit.Stamp{
			CreatedBy: c.CreatedBy,
			CreatedAt: c.CreatedAt,
			UpdatedBy: c.UpdatedBy,
			UpdatedAt: c.UpdatedAt,
		},
	}
}
