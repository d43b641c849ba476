// Package app wires configuration, storage, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SoloAk21/library-manager-backend/internal/adapter/postgres"
	bookrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/book"
	borrowrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/borrow"
	genrerepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/genre"
	memberrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/member"
	staffrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/staff"
	tokenrepo "github.com/SoloAk21/library-manager-backend/internal/adapter/postgres/token"
	"github.com/SoloAk21/library-manager-backend/internal/auth"
	"github.com/SoloAk21/library-manager-backend/internal/config"
	authsvc "github.com/SoloAk21/library-manager-backend/internal/service/auth"
	booksvc "github.com/SoloAk21/library-manager-backend/internal/service/book"
	borrowsvc "github.com/SoloAk21/library-manager-backend/internal/service/borrow"
	genresvc "github.com/SoloAk21/library-manager-backend/internal/service/genre"
	membersvc "github.com/SoloAk21/library-manager-backend/internal/service/member"
	staffsvc "github.com/SoloAk21/library-manager-backend/internal/service/staff"
	"github.com/SoloAk21/library-manager-backend/internal/transport/middleware"
	"github.com/SoloAk21/library-manager-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories and services, and serves HTTP until the
// context is cancelled, then shuts down gracefully.
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

	books := bookrepo.New(pool)
	genres := genrerepo.New(pool)
	members := memberrepo.New(pool)
	records := borrowrepo.New(pool)
	staff := staffrepo.New(pool)
	tokens := tokenrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	authService := authsvc.NewService(logger, staff, tokens, jwtManager, hasher, cfg.Auth)
	bookService := booksvc.NewService(logger, books, genres, records, cfg.Library)
	genreService := genresvc.NewService(logger, genres, books)
	memberService := membersvc.NewService(logger, members, records)
	staffService := staffsvc.NewService(logger, staff)
	borrowService := borrowsvc.NewService(logger, books, members, records, txManager, cfg.Library)

	handlers := rest.Handlers{
		Auth:   rest.NewAuthHandler(authService, logger),
		Book:   rest.NewBookHandler(bookService, logger),
		Genre:  rest.NewGenreHandler(genreService, logger),
		Member: rest.NewMemberHandler(memberService, logger),
		Staff:  rest.NewStaffHandler(staffService, logger),
		Borrow: rest.NewBorrowHandler(borrowService, logger),
		Health: rest.NewHealthHandler(pool, BuildVersion()),
	}

	router := rest.NewRouter(handlers, middleware.Auth(authService))

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.RequestsPerMin))
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down",
		slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
