package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/utils"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	LatestOrderIDs(ctx context.Context, count int) ([]string, error)

	SaveOrder(ctx context.Context, o entities.Order) error
	SaveAddress(ctx context.Context, orderID string, kind entities.AddressKind, addr entities.Address) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error

	// UpdateStatus fails with ErrInvalidTransition unless the order is
	// currently in status from.
	UpdateStatus(ctx context.Context, orderID string, from, to entities.OrderStatus, transactionID string) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger *slog.Logger
	repo   OrderRepo
	cache  Cache
	retry  utils.RetryConfig
}

func NewOrderService(logger *slog.Logger, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		repo:   repo,
		cache:  cache,
		retry:  utils.DefaultRetry,
	}
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal order", slog.String("order_id", orderID), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(ctx, s.retry, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	s.store(order)
	return order, nil
}

// WarmUpCache loads the most recent orders into the cache.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	ids, err := s.repo.LatestOrderIDs(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to list latest orders: %w", err)
	}

	loaded := 0
	for _, id := range ids {
		order, err := s.repo.GetOrderByID(ctx, id)
		if errors.Is(err, entities.ErrOrderNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load order %s: %w", id, err)
		}
		s.store(order)
		loaded++
	}

	s.logger.Info("cache warmed up", slog.Int("orders", loaded))
	return nil
}

func (s *orderService) store(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", order.ID), slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}
