package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/lunchvote/internal/adapters/handler/http"
	"github.com/vncsmyrnk/lunchvote/internal/adapters/metrics"
	"github.com/vncsmyrnk/lunchvote/internal/adapters/oauth/google"
	"github.com/vncsmyrnk/lunchvote/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/lunchvote/internal/config"
	"github.com/vncsmyrnk/lunchvote/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	db, err := sql.Open("postgres", cfg.DB.ConnString())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		slog.Error("failed to reach database", "error", err)
		os.Exit(1)
	}

	userRepo := postgres.NewUserRepository(db)
	restaurantRepo := postgres.NewRestaurantRepository(db)
	menuRepo := postgres.NewMenuRepository(db)
	employeeRepo := postgres.NewEmployeeRepository(db)
	voteRepo := postgres.NewVoteRepository(db)

	m := metrics.New()

	authService := services.NewAuthService(userRepo, postgres.NewAuthRepository(db), google.NewVerifier(), services.AuthConfig{
		JWTSecret:       []byte(cfg.JWTSecret),
		GoogleClientID:  cfg.GoogleClientID,
		AccessTokenTTL:  cfg.AccessTokenTTL,
		RefreshTokenTTL: cfg.RefreshTokenTTL,
	})

	handler := http.NewHandler(http.Handlers{
		Auth: http.NewAuthHandler(authService, cfg.OAuthRedirectURL, http.CookieConfig{
			Domain:     cfg.CookieDomain,
			SameSite:   cfg.CookieSameSite,
			Secure:     cfg.CookieSecure,
			AccessTTL:  cfg.AccessTokenTTL,
			RefreshTTL: cfg.RefreshTokenTTL,
		}),
		Users:       http.NewUserHandler(services.NewUserService(userRepo)),
		Restaurants: http.NewRestaurantHandler(services.NewRestaurantService(restaurantRepo, userRepo)),
		Menus:       http.NewMenuHandler(services.NewMenuService(menuRepo, restaurantRepo), cfg.Today),
		Employees:   http.NewEmployeeHandler(services.NewEmployeeService(employeeRepo, userRepo)),
		Votes:       http.NewVoteHandler(services.NewVoteService(menuRepo, voteRepo, employeeRepo, m), cfg.Today),
	}, http.RouterConfig{
		AuthService:    authService,
		AllowedOrigins: cfg.AllowedOrigins,
		Instrument:     m.Middleware,
		MetricsHandler: m.Handler(),
	})

	server := &stdhttp.Server{
		Addr:              "0.0.0.0:" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
