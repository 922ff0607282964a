package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	mw "github.com/SergeyBogomolovv/storefront-checkout/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router  chi.Router
	httpSrv *http.Server
	limiter *mw.RateLimiter
	secret  []byte

	public    []HTTPHandler
	protected []HTTPHandler
	starters  []Starter
	closers   []Closer

	cancel context.CancelFunc
	group  *errgroup.Group
}

func New(logger *slog.Logger, cfg config.Config, gatherer prometheus.Gatherer, pinger Pinger) *application {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	if cfg.Http.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(mw.Logger(logger))
	router.Use(mw.Metrics)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/health", healthHandler(pinger))
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
		limiter: mw.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		secret:  []byte(cfg.Auth.JWTSecret),
	}
}

type HTTPHandler interface {
	Init(r chi.Router)
}

// SetHTTPHandlers регистрирует обработчики, доступные без токена (вебхуки платежной системы).
func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	a.public = append(a.public, handlers...)
}

// SetProtectedHTTPHandlers регистрирует обработчики, требующие JWT покупателя.
func (a *application) SetProtectedHTTPHandlers(handlers ...HTTPHandler) {
	a.protected = append(a.protected, handlers...)
}

// Starter фоновая задача, живущая до отмены контекста.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = append(a.starters, starters...)
}

type Closer interface {
	Close() error
}

// SetClosers регистрирует ресурсы, закрываемые после остановки сервера и фоновых задач.
func (a *application) SetClosers(closers ...Closer) {
	a.closers = append(a.closers, closers...)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

func (a *application) Start(ctx context.Context) error {
	a.mount()

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	a.group, ctx = errgroup.WithContext(ctx)

	a.group.Go(func() error {
		return a.limiter.Start(ctx)
	})
	for _, s := range a.starters {
		a.group.Go(func() error {
			return s.Start(ctx)
		})
	}

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to listen: %w", err)
	}

	a.group.Go(func() error {
		a.logger.Info("starting http server", slog.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	a.logger.Info("application started")
	return nil
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	if a.cancel != nil {
		a.cancel()
	}
	if a.group != nil {
		if err := a.group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			errs = append(errs, err)
		}
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}

// mount собирает дерево маршрутов /api: публичные обработчики и группа под JWT.
func (a *application) mount() {
	a.router.Route("/api", func(r chi.Router) {
		r.Use(a.limiter.Handler)
		for _, h := range a.public {
			h.Init(r)
		}
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(a.secret))
			for _, h := range a.protected {
				h.Init(r)
			}
		})
	})
}

func healthHandler(pinger Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			utils.WriteJSON(w, map[string]string{"status": "unavailable"}, http.StatusServiceUnavailable)
			return
		}
		utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}
