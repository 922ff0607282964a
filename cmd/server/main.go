package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront-checkout/docs"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/app"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/handler"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/outbox"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/payment"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

// @title           Storefront Checkout API
// @version         1.0
// @description     Оформление заказов и сверка оплат
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	logger.Info("postgres connected")

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	service.RegisterMetrics(prometheus.DefaultRegisterer)
	handler.RegisterMetrics(prometheus.DefaultRegisterer)
	outbox.RegisterMetrics(prometheus.DefaultRegisterer)
	middleware.RegisterMetrics(prometheus.DefaultRegisterer)

	app := app.New(logger, conf, prometheus.DefaultGatherer, pgRepo)

	var orderCache service.Cache
	switch conf.Cache.Backend {
	case "redis":
		redisCache, err := cache.NewRedisCache(ctx, logger, conf.Cache.RedisURL, "order:", conf.Cache.TTL)
		panicIfErr("failed to connect to redis", err)
		app.SetClosers(redisCache)
		orderCache = redisCache
	default:
		lruCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
		app.SetStarters(lruCache)
		orderCache = lruCache
	}

	gateway := payment.NewStripeGateway(logger, payment.Config{
		SecretKey:     conf.Stripe.SecretKey,
		WebhookSecret: conf.Stripe.WebhookSecret,
		Currency:      conf.Stripe.Currency,
		Timeout:       conf.Stripe.Timeout,
		Tolerance:     conf.Stripe.WebhookTolerance,
	})

	checkoutService := service.NewCheckoutService(logger, txManager, pgRepo, pgRepo, pgRepo, gateway, checkoutConfig(conf))

	var outboxTopic string
	if len(conf.Kafka.Brokers) > 0 {
		outboxTopic = conf.Kafka.Topic
		publisher := outbox.NewKafkaPublisher(conf.Kafka.Brokers, conf.Kafka.BatchTimeout)
		relay := outbox.NewRelay(logger, txManager, pgRepo, publisher, conf.Outbox.Interval, conf.Outbox.BatchSize)
		app.SetStarters(relay)
		app.SetClosers(publisher)
	} else {
		logger.Warn("kafka brokers are not configured, paid order events will not be published")
	}

	reconciler := service.NewReconciler(logger, service.ReconcilerDeps{
		TxManager: txManager,
		Orders:    pgRepo,
		Inventory: pgRepo,
		Customers: pgRepo,
		Carts:     pgRepo,
		Ledger:    pgRepo,
		Verifier:  gateway,
		Cache:     orderCache,
	}, outboxTopic)

	orderService := service.NewOrderService(logger, txManager, pgRepo, orderCache)

	app.SetHTTPHandlers(handler.NewWebhookHandler(logger, reconciler))
	app.SetProtectedHTTPHandlers(
		handler.NewPaymentHandler(logger, checkoutService),
		handler.NewOrderHandler(logger, orderService),
	)
	app.SetStarters(cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity, logger: logger})
	app.SetClosers(db)

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

func checkoutConfig(conf config.Config) service.CheckoutConfig {
	frontend := strings.TrimRight(conf.Stripe.FrontendURL, "/")
	return service.CheckoutConfig{
		SuccessURL:         frontend + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:          frontend + "/cart",
		PremiumSuccessURL:  frontend + "/premium/success?session_id={CHECKOUT_SESSION_ID}",
		PremiumCancelURL:   frontend + "/tryonyou",
		PremiumPriceCents:  conf.Premium.PriceCents,
		PremiumName:        conf.Premium.Name,
		PremiumDescription: conf.Premium.Description,
		ProviderTimeout:    conf.Stripe.Timeout,
	}
}

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

// cacheWarmUpAdapter не останавливает приложение при ошибке прогрева, кэш наполнится по запросам.
type cacheWarmUpAdapter struct {
	svc    warmUpper
	count  int
	logger *slog.Logger
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	if err := a.svc.WarmUpCache(ctx, a.count); err != nil {
		a.logger.Warn("failed to warm up cache", slog.Any("error", err))
	}
	return nil
}
