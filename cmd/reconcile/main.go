package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/payment"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/repo"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/service"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/trm"

	"github.com/joho/godotenv"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitSetup  = 2
)

type options struct {
	olderThan time.Duration
	limit     int
	dryRun    bool
}

// Сверка заказов, по которым не пришел вебхук: статус сессии запрашивается у Stripe
// и проходит тот же путь, что и событие из вебхука.
func main() {
	var opts options
	flag.DurationVar(&opts.olderThan, "older-than", 15*time.Minute, "минимальный возраст заказа в статусе PENDING")
	flag.IntVar(&opts.limit, "limit", 100, "максимальное число заказов за запуск")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "только показать статус сессий, ничего не менять")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	os.Exit(run(logger, opts))
}

// run возвращает код выхода, чтобы все defer отработали до os.Exit.
func run(logger *slog.Logger, opts options) int {
	conf := config.New()
	if err := conf.Validate(); err != nil {
		logger.Error("invalid config", slog.Any("error", err))
		return exitSetup
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	if err != nil {
		logger.Error("failed to connect to db", slog.Any("error", err))
		return exitSetup
	}
	defer db.Close()

	pgRepo := repo.NewPostgresRepo(db)

	var orderCache service.Cache = cache.NewLRUCache(1, time.Minute)
	if conf.Cache.Backend == "redis" {
		redisCache, err := cache.NewRedisCache(ctx, logger, conf.Cache.RedisURL, "order:", conf.Cache.TTL)
		if err != nil {
			logger.Error("failed to connect to redis", slog.Any("error", err))
			return exitSetup
		}
		defer redisCache.Close()
		orderCache = redisCache
	}

	gateway := payment.NewStripeGateway(logger, payment.Config{
		SecretKey:     conf.Stripe.SecretKey,
		WebhookSecret: conf.Stripe.WebhookSecret,
		Currency:      conf.Stripe.Currency,
		Timeout:       conf.Stripe.Timeout,
		Tolerance:     conf.Stripe.WebhookTolerance,
	})

	var outboxTopic string
	if len(conf.Kafka.Brokers) > 0 {
		outboxTopic = conf.Kafka.Topic
	}

	reconciler := service.NewReconciler(logger, service.ReconcilerDeps{
		TxManager: trm.NewManager(db),
		Orders:    pgRepo,
		Inventory: pgRepo,
		Customers: pgRepo,
		Carts:     pgRepo,
		Ledger:    pgRepo,
		Verifier:  gateway,
		Cache:     orderCache,
	}, outboxTopic)

	orders, err := pgRepo.PendingOrders(ctx, time.Now().Add(-opts.olderThan), opts.limit)
	if err != nil {
		logger.Error("failed to load pending orders", slog.Any("error", err))
		return exitSetup
	}
	logger.Info("pending orders loaded", slog.Int("count", len(orders)))

	sum := sweep(ctx, logger, orders, gateway, reconciler, opts.dryRun)
	if sum.failed > 0 {
		return exitFailed
	}
	return exitOK
}

type sessionFetcher interface {
	SessionEvent(ctx context.Context, sessionID string) (entities.CheckoutCompleted, error)
}

type eventReconciler interface {
	Reconcile(ctx context.Context, event entities.PaymentEvent) (service.Result, error)
}

type summary struct {
	applied int
	failed  int
}

func sweep(ctx context.Context, logger *slog.Logger, orders []entities.Order, sessions sessionFetcher, reconciler eventReconciler, dryRun bool) summary {
	var sum summary
	for _, order := range orders {
		log := logger.With(slog.String("order_id", order.ID), slog.String("session_id", order.SessionID))

		event, err := sessions.SessionEvent(ctx, order.SessionID)
		if err != nil {
			sum.failed++
			log.Error("failed to fetch session", slog.Any("error", err))
			continue
		}

		if dryRun {
			log.Info("session status", slog.String("payment_status", event.PaymentStatus))
			continue
		}

		res, err := reconciler.Reconcile(ctx, event)
		if err != nil {
			sum.failed++
			log.Error("failed to reconcile order", slog.Any("error", err))
			continue
		}
		if res.Outcome == service.OutcomeApplied {
			sum.applied++
		}
		log.Info("order reconciled", slog.String("outcome", string(res.Outcome)))
	}

	logger.Info("reconciliation finished",
		slog.Int("total", len(orders)),
		slog.Int("applied", sum.applied),
		slog.Int("failed", sum.failed),
	)
	return sum
}

func init() {
	godotenv.Load()
}
