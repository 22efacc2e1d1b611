package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/internal/knet"
	"github.com/SergeyBogomolovv/knet-checkout/internal/repo"
	"github.com/SergeyBogomolovv/knet-checkout/internal/service"
	mocks "github.com/SergeyBogomolovv/knet-checkout/internal/service/mocks"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	txMocks "github.com/SergeyBogomolovv/knet-checkout/pkg/trm/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testMerchant = "M-100"
	testSecret   = "s3cret-s3cret-s3cret"
)

func newTestURLBuilder(t *testing.T) *knet.URLBuilder {
	b, err := knet.NewURLBuilder(knet.Config{
		GatewayURL:  "https://kpay.example.com/kpg/PaymentHTTP.htm",
		MerchantID:  testMerchant,
		Secret:      testSecret,
		ResponseURL: "https://shop.example.com/api/v1/payments/knet/return",
	})
	require.NoError(t, err)
	return b
}

func testDraft() checkout.Draft {
	var cart entities.Cart
	cart.Add(entities.CartItem{ProductID: "apple-iphone-15", Name: "iPhone 15", SKU: "APL-15-128", Quantity: 1, UnitPrice: money.MustParse("399.500")})
	return checkout.Draft{
		Customer: entities.CustomerInfo{Name: "Ali", Email: "ali@example.com", Phone: "+96551234567"},
		ShippingAddress: entities.Address{
			Governorate: entities.GovernorateHawalli,
			Area:        "Salmiya",
			Block:       "10",
			Street:      "Salem Al Mubarak",
			Building:    "5",
		},
		PaymentMethod: entities.PaymentKNET,
		Cart:          cart,
	}
}

type checkoutSvc interface {
	Submit(ctx context.Context, req service.CheckoutRequest) (service.CheckoutResult, error)
	ValidateStep(step checkout.Step, d checkout.Draft) error
}

type checkoutDeps struct {
	tx     *txMocks.MockManager
	repo   *mocks.MockOrderRepo
	idem   *mocks.MockIdempotencyStore
	events *mocks.MockEventPublisher
}

func newCheckoutService(t *testing.T) (checkoutSvc, checkoutDeps) {
	deps := checkoutDeps{
		tx:     txMocks.NewMockManager(t),
		repo:   mocks.NewMockOrderRepo(t),
		idem:   mocks.NewMockIdempotencyStore(t),
		events: mocks.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assembler := checkout.NewAssembler(checkout.NewFeeResolver(money.MustParse("3.000"), decimal.Zero))

	svc := service.NewCheckoutService(logger, deps.tx, deps.repo, deps.idem, assembler, newTestURLBuilder(t), deps.events)
	return svc, deps
}

func passThroughTx(tx *txMocks.MockManager) {
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		})
}

func TestCheckoutService_Submit(t *testing.T) {
	svc, deps := newCheckoutService(t)
	passThroughTx(deps.tx)

	var saved entities.Order
	deps.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o entities.Order) { saved = o }).
		Return(nil).Once()
	deps.repo.EXPECT().SaveAddress(mock.Anything, mock.Anything, entities.AddressShipping, mock.Anything).Return(nil).Once()
	deps.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	deps.events.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(evt entities.OrderEvent) bool {
			return evt.Type == entities.EventOrderCreated && evt.Status == entities.StatusPending
		})).
		Return(nil).Once()

	res, err := svc.Submit(context.Background(), service.CheckoutRequest{Draft: testDraft()})
	require.NoError(t, err)

	assert.Equal(t, saved.ID, res.OrderID)
	assert.Equal(t, entities.StatusPending, res.Status)
	assert.Equal(t, "402.000", money.Format(res.Total))
	assert.False(t, res.Replayed)

	u, err := url.Parse(res.PaymentURL)
	require.NoError(t, err)
	assert.Equal(t, "kpay.example.com", u.Host)
	assert.Equal(t, saved.ID, u.Query().Get("orderId"))
	assert.Equal(t, "402.000", u.Query().Get("amount"))
	assert.Equal(t, "414", u.Query().Get("currency"))
	assert.Equal(t, "Order "+saved.ID, u.Query().Get("description"))
}

func TestCheckoutService_Submit_CardIsRejectedBeforeStore(t *testing.T) {
	svc, _ := newCheckoutService(t)

	draft := testDraft()
	draft.PaymentMethod = entities.PaymentCard

	_, err := svc.Submit(context.Background(), service.CheckoutRequest{IdempotencyKey: "k", Draft: draft})
	require.ErrorIs(t, err, entities.ErrCardNotSupported)
	assert.Equal(t, "Credit card payments are not yet supported.", err.Error())
}

func TestCheckoutService_Submit_GuardsBlockSubmission(t *testing.T) {
	testCases := []struct {
		name       string
		modify     func(d *checkout.Draft)
		wantFields []string
	}{
		{
			name:       "missing customer email",
			modify:     func(d *checkout.Draft) { d.Customer.Email = "" },
			wantFields: []string{"email"},
		},
		{
			name:       "missing shipping block",
			modify:     func(d *checkout.Draft) { d.ShippingAddress.Block = "" },
			wantFields: []string{"shipping.block"},
		},
		{
			name: "incomplete billing address",
			modify: func(d *checkout.Draft) {
				d.BillingAddress = &entities.Address{Governorate: entities.GovernorateCapital}
			},
			wantFields: []string{"billing.area", "billing.block", "billing.street", "billing.building"},
		},
		{
			name:       "unknown payment method",
			modify:     func(d *checkout.Draft) { d.PaymentMethod = "" },
			wantFields: []string{"payment_method"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newCheckoutService(t)

			draft := testDraft()
			tc.modify(&draft)

			_, err := svc.Submit(context.Background(), service.CheckoutRequest{IdempotencyKey: "k", Draft: draft})

			var verr *entities.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.wantFields, verr.Fields)
		})
	}
}

func TestCheckoutService_Submit_EmptyCart(t *testing.T) {
	svc, _ := newCheckoutService(t)

	draft := testDraft()
	draft.Cart.Clear()

	_, err := svc.Submit(context.Background(), service.CheckoutRequest{Draft: draft})
	var verr *entities.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Your cart is empty", verr.Message)
}

func TestCheckoutService_Submit_WithBillingAddress(t *testing.T) {
	svc, deps := newCheckoutService(t)
	passThroughTx(deps.tx)

	draft := testDraft()
	billing := draft.ShippingAddress
	billing.Governorate = entities.GovernorateJahra
	draft.BillingAddress = &billing

	deps.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
	deps.repo.EXPECT().SaveAddress(mock.Anything, mock.Anything, entities.AddressShipping, draft.ShippingAddress).Return(nil).Once()
	deps.repo.EXPECT().SaveAddress(mock.Anything, mock.Anything, entities.AddressBilling, billing).Return(nil).Once()
	deps.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	deps.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	res, err := svc.Submit(context.Background(), service.CheckoutRequest{Draft: draft})
	require.NoError(t, err)
	// fee follows the shipping governorate
	assert.Equal(t, "402.000", money.Format(res.Total))
}

func TestCheckoutService_Submit_Idempotency(t *testing.T) {
	svc, deps := newCheckoutService(t)
	passThroughTx(deps.tx)

	var orderID string
	deps.idem.EXPECT().Reserve(mock.Anything, "key-1").Return("", nil).Once()
	deps.repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o entities.Order) { orderID = o.ID }).
		Return(nil).Once()
	deps.repo.EXPECT().SaveAddress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	deps.repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	deps.idem.EXPECT().
		Complete(mock.Anything, "key-1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, id string) error {
			assert.Equal(t, orderID, id)
			return nil
		}).Once()
	deps.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	res, err := svc.Submit(context.Background(), service.CheckoutRequest{IdempotencyKey: "key-1", Draft: testDraft()})
	require.NoError(t, err, "publish failures must not fail the checkout")
	assert.Equal(t, orderID, res.OrderID)
}

// flakyCompleteStore fails the first Complete call and records whether the
// context it got was still usable.
type flakyCompleteStore struct {
	service.IdempotencyStore
	calls     int
	ctxErrors []error
}

func (s *flakyCompleteStore) Complete(ctx context.Context, key, orderID string) error {
	s.calls++
	s.ctxErrors = append(s.ctxErrors, ctx.Err())
	if s.calls == 1 {
		return errors.New("redis: connection reset")
	}
	return s.IdempotencyStore.Complete(ctx, key, orderID)
}

func TestCheckoutService_Submit_CancelledRequestStillCompletesKey(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	store := &flakyCompleteStore{IdempotencyStore: repo.NewIdempotencyStore(rdb, time.Hour)}

	tx := txMocks.NewMockManager(t)
	orders := mocks.NewMockOrderRepo(t)
	events := mocks.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	assembler := checkout.NewAssembler(checkout.NewFeeResolver(money.MustParse("3.000"), decimal.Zero))
	svc := service.NewCheckoutService(logger, tx, orders, store, assembler, newTestURLBuilder(t), events)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var orderID string
	// the client goes away right after the order is committed
	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			err := cb(ctx)
			cancel()
			return err
		}).Once()
	orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).
		Run(func(_ context.Context, o entities.Order) { orderID = o.ID }).
		Return(nil).Once()
	orders.EXPECT().SaveAddress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	orders.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	events.EXPECT().Publish(mock.Anything, mock.Anything).Return(context.Canceled).Maybe()

	res, err := svc.Submit(ctx, service.CheckoutRequest{IdempotencyKey: "key-1", Draft: testDraft()})
	require.NoError(t, err)
	assert.Equal(t, orderID, res.OrderID)

	assert.Equal(t, 2, store.calls)
	for _, ctxErr := range store.ctxErrors {
		assert.NoError(t, ctxErr)
	}

	existing, err := store.Reserve(context.Background(), "key-1")
	require.NoError(t, err, "a retry must not see the key as in progress")
	assert.Equal(t, orderID, existing)
}

func TestCheckoutService_Submit_ReplaysCompletedKey(t *testing.T) {
	svc, deps := newCheckoutService(t)

	stored := entities.Order{
		ID:            "0b8e2b1c-4a4f-4bb4-9d59-7d0e0f3a1a11",
		CustomerEmail: "ali@example.com",
		CustomerPhone: "+96551234567",
		Status:        entities.StatusPending,
		Total:         money.MustParse("402.000"),
	}
	deps.idem.EXPECT().Reserve(mock.Anything, "key-1").Return(stored.ID, nil).Twice()
	deps.repo.EXPECT().GetOrderByID(mock.Anything, stored.ID).Return(stored, nil).Twice()

	first, err := svc.Submit(context.Background(), service.CheckoutRequest{IdempotencyKey: "key-1", Draft: testDraft()})
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), service.CheckoutRequest{IdempotencyKey: "key-1", Draft: testDraft()})
	require.NoError(t, err)

	assert.True(t, first.Replayed)
	assert.Equal(t, stored.ID, first.OrderID)
	assert.NotEmpty(t, first.PaymentURL)
	assert.Equal(t, first.PaymentURL, second.PaymentURL)
}

func TestCheckoutService_Submit_ReplayOfPaidOrderHasNoPaymentURL(t *testing.T) {
	svc, deps := newCheckoutService(t)

	stored := entities.Order{ID: "order-1", Status: entities.StatusPaid, Total: money.MustParse("402.000")}
	deps.idem.EXPECT().Reserve(mock.Anything, "key-1").Return(stored.ID, nil).Once()
	deps.repo.EXPECT().GetOrderByID(mock.Anything, stored.ID).Return(stored, nil).Once()

	res, err := svc.Submit(context.Background(), service.CheckoutRequest{IdempotencyKey: "key-1", Draft: testDraft()})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusPaid, res.Status)
	assert.Empty(t, res.PaymentURL)
}

func TestCheckoutService_Submit_KeyInProgress(t *testing.T) {
	svc, deps := newCheckoutService(t)
	deps.idem.EXPECT().Reserve(mock.Anything, "key-1").Return("", entities.ErrCheckoutInProgress).Once()

	_, err := svc.Submit(context.Background(), service.CheckoutRequest{IdempotencyKey: "key-1", Draft: testDraft()})
	assert.ErrorIs(t, err, entities.ErrCheckoutInProgress)
}

func TestCheckoutService_Submit_StoreFailureReleasesKey(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockOrderRepo)
	}{
		{
			name: "SaveOrder fails",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbErr).Once()
			},
		},
		{
			name: "SaveAddress fails",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
				repo.EXPECT().SaveAddress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(dbErr).Once()
			},
		},
		{
			name: "SaveItems fails",
			mockBehavior: func(repo *mocks.MockOrderRepo) {
				repo.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
				repo.EXPECT().SaveAddress(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				repo.EXPECT().SaveItems(mock.Anything, mock.Anything, mock.Anything).Return(dbErr).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, deps := newCheckoutService(t)
			passThroughTx(deps.tx)

			deps.idem.EXPECT().Reserve(mock.Anything, "key-1").Return("", nil).Once()
			tc.mockBehavior(deps.repo)
			deps.idem.EXPECT().Release(mock.Anything, "key-1").Return(nil).Once()

			_, err := svc.Submit(context.Background(), service.CheckoutRequest{IdempotencyKey: "key-1", Draft: testDraft()})
			assert.ErrorIs(t, err, dbErr)
		})
	}
}

func TestCheckoutService_ValidateStep(t *testing.T) {
	svc, _ := newCheckoutService(t)

	draft := testDraft()
	assert.NoError(t, svc.ValidateStep(checkout.StepInfo, draft))
	assert.NoError(t, svc.ValidateStep(checkout.StepAddress, draft))
	assert.NoError(t, svc.ValidateStep(checkout.StepPayment, checkout.Draft{}))

	draft.ShippingAddress.Street = ""
	var verr *entities.ValidationError
	require.ErrorAs(t, svc.ValidateStep(checkout.StepAddress, draft), &verr)
	assert.Equal(t, []string{"shipping.street"}, verr.Fields)
}
