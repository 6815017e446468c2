package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	httpctx "github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/context"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/handler"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/router"
	httpServer "github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/api/http/server"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/config"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/logger"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/model"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/password"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/repository/postgres"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/server"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/service"
	"github.com/maximesimoncelli/todo-nestjs-vue3-pinia/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.DSN())
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	bookmarkRepo := postgres.NewBookmarkRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewArgon2(password.Params{
		Time:   cfg.KDF.Time,
		MemKiB: cfg.KDF.MemKiB,
		Par:    cfg.KDF.Par,
	})

	tokenService := service.NewTokenService(tokenManager, cfg.JWT.AccessTTL, logger)
	authService := service.NewAuth(userRepo, hasher, tokenService, logger)

	r := router.New(
		router.Services{
			Auth:          authService,
			Users:         service.NewUsers(userRepo, logger),
			Bookmarks:     service.NewBookmarks(bookmarkRepo, logger),
			Authenticator: tokenService,
			Guard:         service.NewBookmarkGuard(bookmarkRepo, logger),
			Health:        db,
		},
		router.Options{
			Cookie:         handler.CookieOptions{TTL: tokenService.TTL(), Secure: cfg.Cookie.Secure},
			AllowedOrigins: cfg.HTTP.AllowedOrigins,
		},
		httpctx.NewManager(),
		logger,
	)

	var srv model.Server = httpServer.NewHTTPServer(r.Register(), cfg.HTTP.Address)
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	logAppVersion()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting server on", "address", srv.Address(), "https", cfg.HTTP.EnableHTTPS)
		return srv.Start(sl)
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("received interruption signal, shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("error during server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err, "address", srv.Address())
	}
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
