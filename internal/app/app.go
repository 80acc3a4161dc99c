package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dukedan/consensus-backend/internal/adapter/postgres"
	argumentrepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/argument"
	commentrepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/comment"
	resetcoderepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/resetcode"
	topicrepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/topic"
	userrepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/user"
	voterepo "github.com/dukedan/consensus-backend/internal/adapter/postgres/vote"
	"github.com/dukedan/consensus-backend/internal/auth"
	"github.com/dukedan/consensus-backend/internal/config"
	"github.com/dukedan/consensus-backend/internal/notify"
	"github.com/dukedan/consensus-backend/internal/service/account"
	"github.com/dukedan/consensus-backend/internal/service/debate"
	"github.com/dukedan/consensus-backend/internal/transport/middleware"
	"github.com/dukedan/consensus-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into services and starts the HTTP server.
// It blocks until ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	topics := topicrepo.New(pool)
	arguments := argumentrepo.New(pool)
	comments := commentrepo.New(pool)
	votes := voterepo.New(pool)
	resetCodes := resetcoderepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	sessions := auth.NewSessionManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	mailer := notify.NewLogMailer(logger)
	voteSink := notify.NewLogSink(logger)

	accountSvc := account.NewService(
		logger, users, resetCodes, sessions, txManager, mailer,
		cfg.Auth.PasswordHashCost, cfg.Auth.ResetCodeTTL,
	)
	debateSvc := debate.NewService(
		logger, topics, arguments, comments, users, votes, txManager, voteSink,
	)

	var authLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		authLimit = limiter.Limit(cfg.RateLimit.AuthPerMinute)
	}

	router := rest.NewRouter(rest.RouterDeps{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Account: rest.NewAccountHandler(accountSvc, logger),
		Debate:  rest.NewDebateHandler(debateSvc, logger),
		Base: []middleware.Middleware{
			middleware.Recovery(logger),
			middleware.RequestID,
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(accountSvc),
		},
		AuthLimit: authLimit,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout),
	)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
