package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bazaar-be/internal/admin"
	"bazaar-be/internal/assistant"
	"bazaar-be/internal/cart"
	"bazaar-be/internal/catalog"
	"bazaar-be/internal/config"
	"bazaar-be/internal/db"
	"bazaar-be/internal/handler"
	"bazaar-be/internal/logger"
	"bazaar-be/internal/metrics"
	"bazaar-be/internal/middleware"
	"bazaar-be/internal/order"
	"bazaar-be/internal/pricing"
	"bazaar-be/internal/seller"
	"bazaar-be/internal/session"
	"bazaar-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	janitorInterval = time.Minute
	shutdownTimeout = 10 * time.Second
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = startServer
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	var database *sql.DB
	if cfg.CatalogSource == config.CatalogSourcePostgres {
		database = initDBFunc(cfg)
		defer database.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := newServer(ctx, cfg, database)
	if err != nil {
		return err
	}

	logger.L().Info("storefront API listening", zap.String("addr", "http://localhost:"+cfg.AppPort))
	return startServerFunc(ctx, ":"+cfg.AppPort, router)
}

// newServer wires the storefront services and returns the root handler.
// Background maintenance goroutines stop when ctx is done.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) (http.Handler, error) {
	log := logger.L()

	products := catalog.SeedProducts()
	if cfg.CatalogSource == config.CatalogSourcePostgres {
		loaded, err := catalog.LoadFromPostgres(ctx, database)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		products = loaded
	}
	productRepo := catalog.NewMemoryRepository(products)

	ids := order.NewIDGenerator()
	ids.Reserve(order.DemoOrderIDs...)

	opts := session.Options{TTL: cfg.SessionTTL}
	if cfg.SeedDemoOrders {
		opts.Seed = func() order.History { return order.DemoOrders(products) }
	}
	store := session.NewStore(opts)

	secret := cfg.JWTSecret
	if secret == "" {
		generated, err := user.RandomSecret()
		if err != nil {
			return nil, err
		}
		secret = generated
		log.Warn("JWT_SECRET is not set; sessions will not survive a restart")
	}
	tokens, err := user.NewTokenIssuer(secret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	gen := assistant.Unavailable()
	if cfg.GeminiAPIKey != "" {
		gemini, err := assistant.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Warn("gemini client unavailable, generated text will use fallbacks", zap.Error(err))
		} else {
			gen = gemini
		}
	} else {
		log.Info("GEMINI_API_KEY is not set, generated text will use fallbacks")
	}
	ai := assistant.NewService(gen)

	calc := pricing.NewCalculator(cfg.ShippingFee)

	api := handler.NewRouter(&handler.Handler{
		Catalog:       catalog.NewService(productRepo, catalog.SeedCategories()),
		Carts:         cart.NewService(store, productRepo),
		Pricing:       calc,
		Orders:        order.NewService(store, order.NewBuilder(calc, ids)),
		Users:         user.NewService(store),
		Sellers:       seller.NewService(productRepo, ai),
		Admin:         admin.NewService(admin.NewMemoryRepository(admin.SeedSellers()), productRepo, ai),
		Summarizer:    ai,
		Tokens:        tokens,
		TokenTTL:      cfg.SessionTTL,
		SecureCookies: cfg.AppEnv == "production",
	})

	sessions := &middleware.Sessions{
		Store:  store,
		Tokens: tokens,
		TTL:    cfg.SessionTTL,
		Secure: cfg.AppEnv == "production",
	}
	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	limiter.SessionKey = middleware.TokenSessionKey(tokens)

	go store.RunJanitor(ctx, janitorInterval)
	go limiter.RunCleanup(ctx)

	// Limit before resolving sessions so token-less floods are keyed by
	// device or IP and never reach session creation.
	return setupRouter(limiter.Middleware(sessions.Middleware(api)), cfg.CORSOrigin), nil
}

// setupRouter mounts the API next to the operational endpoints and applies
// the middleware shared by every route.
func setupRouter(api http.Handler, corsOrigin string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/api/", api)

	return logger.RequestIDMiddleware(
		middleware.LoggingMiddleware(
			middleware.CORS(corsOrigin)(mux),
		),
	)
}

func startServer(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.L().Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
