package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/cinebook/internal/auth"
	"github.com/mmynk/cinebook/internal/booking"
	"github.com/mmynk/cinebook/internal/catalog"
	"github.com/mmynk/cinebook/internal/config"
	"github.com/mmynk/cinebook/internal/metrics"
	"github.com/mmynk/cinebook/internal/queue"
	"github.com/mmynk/cinebook/internal/service"
	"github.com/mmynk/cinebook/internal/session"
	"github.com/mmynk/cinebook/internal/storage/sqlite"
	"github.com/mmynk/cinebook/internal/tickets"
	"github.com/mmynk/cinebook/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	key, err := session.LoadKey(cfg.SessionKey, filepath.Join(filepath.Dir(cfg.SessionDir), "session.key"))
	if err != nil {
		return err
	}
	vault, err := session.OpenVault(cfg.SessionDir, key)
	if err != nil {
		return err
	}
	defer vault.Close()
	sessions := session.NewManager(vault, store)

	// Startup cross-check of session marker and cached profile.
	if profile, err := sessions.Restore(ctx); err != nil {
		slog.Warn("Session restore failed", "error", err)
	} else if profile != nil {
		slog.Info("Signed in from previous run", "email", profile.Email)
	}

	publisher := newPublisher(cfg)
	defer publisher.Close()

	m := metrics.New()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewLocalAuthenticator(store, store, auth.DefaultHasher())
	engine := booking.NewEngine(store, store, publisher)
	catalogClient := catalog.New(catalog.Config{
		APIKey:       cfg.Catalog.APIKey,
		BaseURL:      cfg.Catalog.BaseURL,
		ImageBaseURL: cfg.Catalog.ImageBaseURL,
		Language:     cfg.Catalog.Language,
		Region:       cfg.Catalog.Region,
		Timeout:      cfg.Catalog.Timeout,
		CacheTTL:     cfg.Catalog.CacheTTL,
	}, newCatalogCache(ctx, cfg))

	mux := http.NewServeMux()
	service.Mount(mux, service.Services{
		Account: service.NewAccountService(authenticator, sessions, jwtManager, m, logger),
		Booking: service.NewBookingService(engine, cfg.UnitPrice, m, logger),
		Tickets: service.NewTicketService(tickets.NewService(store), logger),
		Catalog: service.NewCatalogService(catalogClient, logger),
	}, jwtManager, sessions, m)
	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", healthHandler(store))

	// h2c serves HTTP/2 without TLS for Connect clients.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(loggingMiddleware(corsMiddleware(mux)), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newPublisher(cfg *config.Config) queue.Publisher {
	if cfg.RabbitMQURL == "" {
		slog.Info("RABBITMQ_URL not set, booking events disabled")
		return queue.NopPublisher{}
	}
	return queue.NewAMQPPublisher(cfg.RabbitMQURL)
}

// newCatalogCache returns a Redis cache, or NopCache when Redis is not
// configured or unreachable.
func newCatalogCache(ctx context.Context, cfg *config.Config) catalog.Cache {
	if cfg.RedisAddr == "" {
		return catalog.NopCache{}
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	rdb, err := catalog.DialRedis(pingCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		slog.Warn("Catalog cache disabled", "error", err)
		return catalog.NopCache{}
	}
	slog.Info("Catalog cache enabled", "redis", cfg.RedisAddr, "ttl", cfg.Catalog.CacheTTL)
	return catalog.NewRedisCache(rdb, "catalog")
}

func healthHandler(store *sqlite.SQLiteStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK
		if err := store.Ping(r.Context()); err != nil {
			slog.Error("Health check failed", "error", err)
			status, code = "unavailable", http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{"status": status})
	}
}

// loggingMiddleware logs all incoming requests at debug level.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for the UI shell.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
