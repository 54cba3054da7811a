package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dealshop/accounts/auth"
	"github.com/dealshop/accounts/config"
	"github.com/dealshop/accounts/httpapi"
	"github.com/dealshop/accounts/logger"
	"github.com/dealshop/accounts/postgres"
	"github.com/dealshop/accounts/ratelimit"
	"github.com/dealshop/accounts/server"
	"github.com/dealshop/accounts/session"
	"github.com/dealshop/accounts/sessiontransport"
)

// cleanupInterval controls how often expired sessions are purged from the
// database. Expired rows are also removed lazily on presentation, so this
// only bounds table growth from abandoned sessions.
const cleanupInterval = time.Hour

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	logOpt := logger.WithDevelopment(cfg.AppName)
	if cfg.isProduction() {
		logOpt = logger.WithProduction(cfg.AppName)
	}
	log := logger.New(logOpt)

	db, err := postgres.Connect(ctx, cfg.DB)
	if err != nil {
		log.Error("failed to connect to database", logger.Component("postgres"), logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, log.With(logger.Component("migrations"))); err != nil {
		log.Error("failed to apply migrations", logger.Component("postgres"), logger.Error(err))
		os.Exit(1)
	}

	sessionStore := postgres.NewSessionStore(db)

	sessions, err := session.NewFromConfig(cfg.Session, sessionStore)
	if err != nil {
		log.Error("failed to create session manager", logger.Component("session"), logger.Error(err))
		os.Exit(1)
	}

	if cfg.isProduction() {
		cfg.Cookie.Secure = true
	}
	cookies := sessiontransport.NewFromConfig(cfg.Cookie)

	svc := auth.NewService(postgres.NewUserRepository(db), sessions, cookies)

	limiter, err := ratelimit.New(rateLimitStore(cfg, log), cfg.RateLimit)
	if err != nil {
		log.Error("failed to create login limiter", logger.Component("ratelimit"), logger.Error(err))
		os.Exit(1)
	}

	apiOpts := []httpapi.Option{
		httpapi.WithLogger(log.With(logger.Component("http"))),
		httpapi.WithLoginLimiter(limiter),
		httpapi.WithHealthcheck(postgres.Healthcheck(db)),
	}
	if len(cfg.AllowedOrigins) > 0 {
		apiOpts = append(apiOpts, httpapi.WithAllowedOrigins(cfg.AllowedOrigins...))
	}
	api := httpapi.New(svc, apiOpts...)

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log.With(logger.Component("server"))))
	if err != nil {
		log.Error("failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, api.Handler()))
	eg.Go(cleanupLoop(ctx, sessions, log.With(logger.Component("session.cleanup"))))

	if err := eg.Wait(); err != nil {
		log.Error("service stopped with error", logger.Error(err))
		os.Exit(1)
	}

	log.Info("service stopped")
}

// rateLimitStore prefers Redis so limits hold across replicas, and falls
// back to the in-process store for single-instance deployments.
func rateLimitStore(cfg Config, log *slog.Logger) ratelimit.Store {
	if cfg.RedisURL == "" {
		return ratelimit.NewMemoryStore()
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Error("invalid redis url, using in-memory rate limiting", logger.Error(err))
		return ratelimit.NewMemoryStore()
	}
	return ratelimit.NewRedisStore(redis.NewClient(opts))
}

func cleanupLoop(ctx context.Context, sessions *session.Manager, log *slog.Logger) func() error {
	return func() error {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				n, err := sessions.CleanupExpired(ctx)
				if err != nil {
					log.Error("session cleanup failed", logger.Error(err))
					continue
				}
				if n > 0 {
					log.Info("purged expired sessions", slog.Int64("count", n))
				}
			}
		}
	}
}
