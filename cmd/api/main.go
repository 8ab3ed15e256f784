package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mobile-wallet-core/config"
	httpHandler "mobile-wallet-core/internal/adapter/http/handler"
	pgStorage "mobile-wallet-core/internal/adapter/storage/postgres"
	redisStorage "mobile-wallet-core/internal/adapter/storage/redis"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/internal/service"
	"mobile-wallet-core/pkg/logger"
)

const tokenIssuer = "mobile-wallet-core"

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Mobile Wallet Core")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	refreshRepo := pgStorage.NewRefreshTokenRepo(pool)
	pendingRepo := pgStorage.NewPendingTokenRepo(pool)
	credRepo := pgStorage.NewCredentialRepo(pool)
	deviceRepo := pgStorage.NewDeviceRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	walletTxRepo := pgStorage.NewWalletTransactionRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)
	challengeStore := redisStorage.NewChallengeStore(rdb)
	idempotencyCache := redisStorage.NewIdempotencyCache(rdb)

	// Initialize core services
	accessTTL, err := cfg.Auth.AccessTokenTTL()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid access token TTL")
	}
	refreshTTL, err := cfg.Auth.RefreshTokenTTL()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid refresh token TTL")
	}

	hashSvc := service.NewArgon2HashService()
	tokenSvc := service.NewJWTTokenService(
		cfg.Auth.AccessSecret,
		cfg.Auth.RefreshSecret,
		tokenIssuer,
		accessTTL,
		refreshTTL,
		cfg.Auth.StepUpTokenTTL(),
	)
	pendingSvc := service.NewPendingTokenService(pendingRepo, hashSvc, log)

	var mailSvc ports.MailSender
	if cfg.Mail.SendGridAPIKey != "" {
		mailSvc, err = service.NewSendGridMailService(cfg.Mail.SendGridAPIKey, cfg.Mail.FromAddress, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize mail service")
		}
	} else {
		log.Warn().Msg("SENDGRID_API_KEY not set, logging emails instead of sending")
		mailSvc = service.NewLogMailService(log)
	}

	waProvider, err := service.NewGoWebAuthnProvider(cfg.WebAuthn)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize WebAuthn provider")
	}

	// Initialize business services
	passwordSvc := service.NewPasswordAuthService(
		userRepo, refreshRepo, hashSvc, tokenSvc, pendingSvc, mailSvc,
		rateLimitStore, refreshTTL, log,
	)
	credSvc := service.NewCredentialService(
		credRepo, deviceRepo, ports.SignCountMode(cfg.WebAuthn.SignCountMode), log,
	)
	biometricSvc := service.NewBiometricAuthService(
		userRepo, credRepo, deviceRepo, refreshRepo, hashSvc, tokenSvc,
		credSvc, waProvider, challengeStore, rateLimitStore, log,
	)
	enrollmentSvc := service.NewEnrollmentService(
		userRepo, credRepo, deviceRepo, waProvider, challengeStore,
		rateLimitStore, transactor, log,
	)
	walletSvc := service.NewWalletService(
		walletRepo, walletTxRepo, userRepo, cfg.Transfer,
		cfg.Wallet.DefaultCurrency, log,
	)
	transferSvc := service.NewTransferService(
		userRepo, walletRepo, walletTxRepo, walletSvc, tokenSvc, transactor,
		cfg.Transfer, cfg.Wallet.DefaultCurrency, log,
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PasswordSvc:    passwordSvc,
		BiometricSvc:   biometricSvc,
		EnrollmentSvc:  enrollmentSvc,
		CredentialSvc:  credSvc,
		WalletSvc:      walletSvc,
		TransferSvc:    transferSvc,
		TokenSvc:       tokenSvc,
		IdempotencyC:   idempotencyCache,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
