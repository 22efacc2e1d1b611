package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/knet-checkout/docs"
	"github.com/SergeyBogomolovv/knet-checkout/internal/app"
	"github.com/SergeyBogomolovv/knet-checkout/internal/catalog"
	"github.com/SergeyBogomolovv/knet-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/knet-checkout/internal/config"
	"github.com/SergeyBogomolovv/knet-checkout/internal/events"
	"github.com/SergeyBogomolovv/knet-checkout/internal/handler"
	"github.com/SergeyBogomolovv/knet-checkout/internal/knet"
	"github.com/SergeyBogomolovv/knet-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/knet-checkout/internal/redisx"
	"github.com/SergeyBogomolovv/knet-checkout/internal/repo"
	"github.com/SergeyBogomolovv/knet-checkout/internal/service"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           KNET Checkout API
// @version         1.0
// @description     Checkout, KNET payment and catalog import API of the phone store.
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to migrate db", postgres.Migrate(db))
	logger.Info("postgres connected")

	rdb, err := redisx.New(conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer rdb.Close()
	logger.Info("redis connected")

	storeRepo := repo.NewPostgresRepo(db)
	idempotency := repo.NewIdempotencyStore(rdb, conf.Redis.IdempotencyTTL)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache[[]byte](conf.Cache.Capacity, conf.Cache.TTL)

	publisher := events.NewKafkaPublisher(conf.Kafka)
	defer publisher.Close()

	fees := checkout.NewFeeResolver(conf.Delivery.DefaultFee, conf.Delivery.FreeThreshold)
	payments, err := knet.NewURLBuilder(knet.Config{
		GatewayURL:  conf.KNET.GatewayURL,
		MerchantID:  conf.KNET.MerchantID,
		Secret:      conf.KNET.Secret,
		ResponseURL: conf.KNET.ResponseURL,
		ErrorURL:    conf.KNET.ErrorURL,
		Lang:        conf.KNET.Lang,
	})
	panicIfErr("invalid knet config", err)
	verifier := knet.NewVerifier(conf.KNET.MerchantID, conf.KNET.Secret)

	gsmarena := catalog.NewGSMArenaClient(logger, conf.Catalog.GSMArenaURL, conf.Catalog.HTTPTimeout)
	smartprix := catalog.NewSmartprixScraper(logger, conf.Catalog.HTTPTimeout, conf.Catalog.ScrapeInterval, conf.Catalog.INRToKWD)

	orderService := service.NewOrderService(logger, storeRepo, orderCache)
	checkoutService := service.NewCheckoutService(logger, txManager, storeRepo, idempotency, checkout.NewAssembler(fees), payments, publisher)
	paymentService := service.NewPaymentService(logger, verifier, storeRepo, orderCache, publisher)
	catalogService := service.NewCatalogService(logger, storeRepo, gsmarena, smartprix, conf.Catalog.FetchWorkers)

	handler.RegisterMetrics()
	catalogFeed := handler.NewKafkaHandler(logger, conf.Kafka, catalogService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewHTTPHandler(logger, orderService),
		handler.NewCheckoutHandler(logger, checkoutService),
		handler.NewPaymentHandler(logger, paymentService),
		handler.NewDeliveryHandler(fees),
		handler.NewCatalogHandler(logger, catalogService),
	)
	app.SetConsumers(catalogFeed)
	app.SetStarters(orderCache, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
