package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/trm"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/utils"
	"github.com/shopspring/decimal"
)

const completeTimeout = 5 * time.Second

var completeRetry = utils.RetryConfig{
	MaxAttempts:  4,
	InitialDelay: 20 * time.Millisecond,
	MaxDelay:     500 * time.Millisecond,
	Multiplier:   2,
}

type OrderAssembler interface {
	Assemble(d checkout.Draft) (entities.Order, error)
}

type PaymentURLBuilder interface {
	Build(req entities.PaymentRequest) (string, error)
}

// IdempotencyStore deduplicates checkout submissions sharing a client key.
type IdempotencyStore interface {
	Reserve(ctx context.Context, key string) (orderID string, err error)
	Complete(ctx context.Context, key, orderID string) error
	Release(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, evt entities.OrderEvent) error
}

type CheckoutRequest struct {
	IdempotencyKey string
	Draft          checkout.Draft
}

type CheckoutResult struct {
	OrderID    string
	Status     entities.OrderStatus
	Total      decimal.Decimal
	PaymentURL string
	Replayed   bool
}

type checkoutService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	idem      IdempotencyStore
	assembler OrderAssembler
	payments  PaymentURLBuilder
	events    EventPublisher
}

func NewCheckoutService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	idem IdempotencyStore,
	assembler OrderAssembler,
	payments PaymentURLBuilder,
	events EventPublisher,
) *checkoutService {
	return &checkoutService{
		logger:    logger.With(slog.String("service", "checkout")),
		txManager: txManager,
		repo:      repo,
		idem:      idem,
		assembler: assembler,
		payments:  payments,
		events:    events,
	}
}

// ValidateStep runs the guard of a single wizard step.
func (s *checkoutService) ValidateStep(step checkout.Step, d checkout.Draft) error {
	return checkout.ValidateStep(step, d)
}

// Submit places an order and returns the KNET page the shopper must be sent
// to. A submission is never retried automatically; on failure the key is
// released so the shopper can submit again.
func (s *checkoutService) Submit(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	draft := req.Draft
	switch draft.PaymentMethod {
	case entities.PaymentCard:
		return CheckoutResult{}, entities.ErrCardNotSupported
	case entities.PaymentKNET:
	default:
		return CheckoutResult{}, entities.NewValidationError("Please choose a payment method", "payment_method")
	}

	wizard := checkout.NewWizard(&draft)
	for wizard.Step() != checkout.StepPayment {
		if err := wizard.Next(); err != nil {
			return CheckoutResult{}, err
		}
	}
	// the wizard lives for one request; the idempotency key guards across requests

	order, err := s.assembler.Assemble(draft)
	if err != nil {
		return CheckoutResult{}, err
	}

	if req.IdempotencyKey != "" {
		existing, err := s.idem.Reserve(ctx, req.IdempotencyKey)
		if err != nil {
			return CheckoutResult{}, err
		}
		if existing != "" {
			s.logger.Info("replaying checkout", slog.String("order_id", existing))
			return s.replay(ctx, existing)
		}
	}

	result, err := s.place(ctx, order)
	if err != nil {
		s.release(ctx, req.IdempotencyKey)
		return CheckoutResult{}, err
	}

	s.complete(ctx, req.IdempotencyKey, order.ID)

	publish(ctx, s.logger, s.events, entities.OrderEvent{
		Type:    entities.EventOrderCreated,
		OrderID: order.ID,
		Status:  order.Status,
		Total:   order.Total,
	})

	s.logger.Info("order placed", slog.String("order_id", order.ID), slog.String("total", money.Format(order.Total)))
	return result, nil
}

func (s *checkoutService) place(ctx context.Context, order entities.Order) (CheckoutResult, error) {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := s.repo.SaveAddress(ctx, order.ID, entities.AddressShipping, order.ShippingAddress); err != nil {
			return fmt.Errorf("failed to save shipping address: %w", err)
		}
		if order.BillingAddress != nil {
			if err := s.repo.SaveAddress(ctx, order.ID, entities.AddressBilling, *order.BillingAddress); err != nil {
				return fmt.Errorf("failed to save billing address: %w", err)
			}
		}
		if err := s.repo.SaveItems(ctx, order.ID, order.Items); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}
		return nil
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	paymentURL, err := s.payments.Build(paymentRequest(order))
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to build payment url: %w", err)
	}

	return CheckoutResult{
		OrderID:    order.ID,
		Status:     order.Status,
		Total:      order.Total,
		PaymentURL: paymentURL,
	}, nil
}

// replay returns the result of an earlier submission. The payment URL is
// rebuilt, which yields the same URL, and only while the order is unpaid.
func (s *checkoutService) replay(ctx context.Context, orderID string) (CheckoutResult, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to load order %s: %w", orderID, err)
	}

	result := CheckoutResult{
		OrderID:  order.ID,
		Status:   order.Status,
		Total:    order.Total,
		Replayed: true,
	}
	if order.Status == entities.StatusPending {
		result.PaymentURL, err = s.payments.Build(paymentRequest(order))
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("failed to build payment url: %w", err)
		}
	}
	return result, nil
}

// complete records the placed order under the key. The order is committed at
// this point, so the request context being cancelled must not leave the key
// pending until it expires.
func (s *checkoutService) complete(ctx context.Context, key, orderID string) {
	if key == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), completeTimeout)
	defer cancel()

	err := utils.Retry(ctx, completeRetry, func() error {
		return s.idem.Complete(ctx, key, orderID)
	})
	if err != nil {
		s.logger.Error("failed to complete idempotency key", slog.String("order_id", orderID), slog.Any("error", err))
	}
}

func (s *checkoutService) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	// the request context may already be cancelled
	ctx = context.WithoutCancel(ctx)
	if err := s.idem.Release(ctx, key); err != nil {
		s.logger.Error("failed to release idempotency key", slog.Any("error", err))
	}
}

// publish is best effort: the order is already stored, so a broker outage
// only costs the event.
func publish(ctx context.Context, logger *slog.Logger, events EventPublisher, evt entities.OrderEvent) {
	if err := events.Publish(ctx, evt); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("failed to publish order event",
			slog.String("type", string(evt.Type)),
			slog.String("order_id", evt.OrderID),
			slog.Any("error", err),
		)
	}
}

func paymentRequest(o entities.Order) entities.PaymentRequest {
	return entities.PaymentRequest{
		OrderID:       o.ID,
		Amount:        o.Total,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		Description:   "Order " + o.ID,
	}
}
