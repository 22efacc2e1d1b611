package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/internal/knet"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/shopspring/decimal"
)

type PaymentVerifier interface {
	Verify(resp entities.PaymentResponse) (knet.Verification, error)
}

type PaymentResult string

const (
	ResultPaid       PaymentResult = "paid"
	ResultFailed     PaymentResult = "failed"
	ResultUnverified PaymentResult = "unverified"
)

// PaymentOutcome is what the shopper's browser is told after returning
// from the gateway. ClearCart is only set once the order is paid.
type PaymentOutcome struct {
	OrderID       string
	Result        PaymentResult
	Status        entities.OrderStatus
	TransactionID string
	Total         decimal.Decimal
	Message       string
	ClearCart     bool
}

type paymentService struct {
	logger   *slog.Logger
	verifier PaymentVerifier
	repo     OrderRepo
	cache    Cache
	events   EventPublisher
}

func NewPaymentService(logger *slog.Logger, verifier PaymentVerifier, repo OrderRepo, cache Cache, events EventPublisher) *paymentService {
	return &paymentService{
		logger:   logger.With(slog.String("service", "payment")),
		verifier: verifier,
		repo:     repo,
		cache:    cache,
		events:   events,
	}
}

// HandleReturn settles an order from the gateway's return parameters.
// Responses that fail verification yield an unverified outcome together with
// an error wrapping ErrPaymentUnverified; the order is left untouched.
func (s *paymentService) HandleReturn(ctx context.Context, resp entities.PaymentResponse) (PaymentOutcome, error) {
	v, err := s.verifier.Verify(resp)
	if err != nil {
		s.logger.Warn("payment response rejected", slog.String("order_id", resp.OrderID), slog.Any("error", err))
		outcome := PaymentOutcome{
			OrderID: resp.OrderID,
			Result:  ResultUnverified,
			Message: "We could not verify your payment. Please contact support if you were charged.",
		}
		return outcome, fmt.Errorf("%w: %w", entities.ErrPaymentUnverified, err)
	}

	order, err := s.repo.GetOrderByID(ctx, v.OrderID)
	if err != nil {
		return PaymentOutcome{}, fmt.Errorf("failed to load order %s: %w", v.OrderID, err)
	}
	if order.Status.Terminal() {
		return outcomeFor(order), nil
	}

	target := entities.StatusPaid
	switch {
	case !v.Paid:
		target = entities.StatusFailed
	case !v.Amount.Equal(order.Total):
		s.logger.Warn("payment amount mismatch",
			slog.String("order_id", order.ID),
			slog.String("expected", money.Format(order.Total)),
			slog.String("got", money.Format(v.Amount)),
		)
		target = entities.StatusFailed
	}

	err = s.repo.UpdateStatus(ctx, order.ID, entities.StatusPending, target, v.TransactionID)
	if errors.Is(err, entities.ErrInvalidTransition) {
		// another return for the same order won the race
		s.cache.Delete(order.ID)
		current, err := s.repo.GetOrderByID(ctx, order.ID)
		if err != nil {
			return PaymentOutcome{}, fmt.Errorf("failed to reload order %s: %w", order.ID, err)
		}
		return outcomeFor(current), nil
	}
	if err != nil {
		return PaymentOutcome{}, fmt.Errorf("failed to update order %s: %w", order.ID, err)
	}
	s.cache.Delete(order.ID)

	order.Status = target
	order.TransactionID = v.TransactionID

	evtType := entities.EventOrderPaid
	if target == entities.StatusFailed {
		evtType = entities.EventOrderFailed
	}
	publish(ctx, s.logger, s.events, entities.OrderEvent{
		Type:          evtType,
		OrderID:       order.ID,
		Status:        order.Status,
		Total:         order.Total,
		TransactionID: order.TransactionID,
	})

	s.logger.Info("payment settled",
		slog.String("order_id", order.ID),
		slog.String("status", string(order.Status)),
		slog.String("gateway_status", v.Status),
	)
	return outcomeFor(order), nil
}

func outcomeFor(o entities.Order) PaymentOutcome {
	out := PaymentOutcome{
		OrderID:       o.ID,
		Status:        o.Status,
		TransactionID: o.TransactionID,
		Total:         o.Total,
	}
	switch o.Status {
	case entities.StatusPaid:
		out.Result = ResultPaid
		out.Message = "Payment received. Thank you for your order!"
		out.ClearCart = true
	case entities.StatusFailed:
		out.Result = ResultFailed
		out.Message = "Your payment was not completed. Please try again."
	default:
		out.Result = ResultUnverified
		out.Message = "Your payment is still being processed."
	}
	return out
}
