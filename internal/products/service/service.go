package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"product-catalog/internal/products"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type Repository interface {
	Create(ctx context.Context, p products.Product) (products.Product, error)
	GetByID(ctx context.Context, id int64) (products.Product, error)
	Update(ctx context.Context, p products.Product) (products.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]products.Product, error)
}

type Cache interface {
	Get(ctx context.Context, id int64) (products.Product, error)
	Set(ctx context.Context, p products.Product) error
	Delete(ctx context.Context, id int64) error
}

type Publisher interface {
	Publish(ctx context.Context, event products.ProductEvent) <-chan error
}

// Service sequences every mutation as store write, then cache
// update/eviction, then publish initiation. Events are best-effort: the
// store commit is never rolled back on a publish failure.
type Service struct {
	repo      Repository
	cache     Cache
	publisher Publisher
	logger    *slog.Logger
	created   prometheus.Counter
	updated   prometheus.Counter
	deleted   prometheus.Counter
}

func New(repo Repository, cache Cache, publisher Publisher, logger *slog.Logger, created, updated, deleted prometheus.Counter) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		logger:    logger,
		created:   created,
		updated:   updated,
		deleted:   deleted,
	}
}

// CreateProduct persists the product and announces it. The cache is not
// written on create; it fills lazily on the first read.
func (s *Service) CreateProduct(ctx context.Context, p products.Product) (products.Product, error) {
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return products.Product{}, fmt.Errorf("repo create: %w", err)
	}

	s.publish(ctx, products.ActionCreated, created)
	s.created.Inc()
	return created, nil
}

// GetProduct is cache-aside: a hit never touches the store, a miss reads
// the store and back-fills the cache. Cache errors count as misses.
func (s *Service) GetProduct(ctx context.Context, id int64) (products.Product, error) {
	cached, err := s.cache.Get(ctx, id)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, products.ErrCacheMiss) {
		s.logger.Warn("cache read failed, falling back to store", "product_id", id, "error", err)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return products.Product{}, fmt.Errorf("repo get: %w", err)
	}

	if err := s.cache.Set(ctx, p); err != nil {
		s.logger.Warn("cache populate failed", "product_id", id, "error", err)
	}

	return p, nil
}

// UpdateProduct overwrites the stored record while preserving the
// original created_at from the existing row, refreshes the cache with
// the saved value, and announces the update.
func (s *Service) UpdateProduct(ctx context.Context, id int64, p products.Product) (products.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return products.Product{}, fmt.Errorf("repo get: %w", err)
	}

	p.ID = id
	p.CreatedAt = existing.CreatedAt

	saved, err := s.repo.Update(ctx, p)
	if err != nil {
		return products.Product{}, fmt.Errorf("repo update: %w", err)
	}

	if err := s.cache.Set(ctx, saved); err != nil {
		s.logger.Warn("cache refresh failed", "product_id", id, "error", err)
	}

	s.publish(ctx, products.ActionUpdated, saved)
	s.updated.Inc()
	return saved, nil
}

// DeleteProduct pre-fetches the row so the emitted event still carries
// the deleted entity's data, then removes it from store and cache.
func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("repo get: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("repo delete: %w", err)
	}

	if err := s.cache.Delete(ctx, id); err != nil {
		s.logger.Warn("cache evict failed", "product_id", id, "error", err)
	}

	s.publish(ctx, products.ActionDeleted, existing)
	s.deleted.Inc()
	return nil
}

// ListProducts passes through to the store. Pages are zero-based; list
// results are never cached.
func (s *Service) ListProducts(ctx context.Context, page, size int) ([]products.Product, error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	items, err := s.repo.List(ctx, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("repo list: %w", err)
	}

	return items, nil
}

// publish initiates delivery and attaches a logging-only continuation.
// The publish context is detached from the request so cancellation after
// the response does not abort an in-flight send.
func (s *Service) publish(ctx context.Context, action string, p products.Product) {
	event := products.NewProductEvent(action, p)

	done := s.publisher.Publish(context.WithoutCancel(ctx), event)
	go func() {
		if err := <-done; err != nil {
			s.logger.Error("publish product event failed",
				"product_id", event.ID,
				"message", event.Message,
				"error", err,
			)
		}
	}()
}
