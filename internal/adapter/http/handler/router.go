package handler

import (
	"mobile-wallet-core/internal/adapter/http/middleware"
	"mobile-wallet-core/internal/core/ports"
	"mobile-wallet-core/pkg/apperror"
	"mobile-wallet-core/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PasswordSvc    ports.PasswordAuthService
	BiometricSvc   ports.BiometricAuthService
	EnrollmentSvc  ports.EnrollmentService
	CredentialSvc  ports.CredentialService
	WalletSvc      ports.WalletService
	TransferSvc    ports.TransferService
	TokenSvc       ports.TokenService
	IdempotencyC   ports.IdempotencyCache // nil = idempotency gate disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.NoRoute(func(c *gin.Context) {
		response.WriteProblem(c, apperror.NotFound("resource"))
	})

	// Health check (deep: verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/v1")

	// Idempotency gate fronts every POST/DELETE under /v1; the
	// middleware itself filters on method and the Idempotency-Key
	// header.
	if deps.IdempotencyC != nil {
		v1.Use(middleware.Idempotency(deps.IdempotencyC, deps.Logger))
	}

	// --- Public routes (no session) ---
	authHandler := NewAuthHandler(deps.PasswordSvc)
	password := v1.Group("/auth/password")
	{
		password.POST("/register", authHandler.Register)
		password.POST("/login", authHandler.Login)
		password.POST("/refresh", authHandler.Refresh)
		password.POST("/logout", authHandler.Logout)
		password.POST("/verify/request", authHandler.RequestVerification)
		password.POST("/verify/confirm", authHandler.ConfirmVerification)
		password.POST("/reset/request", authHandler.RequestPasswordReset)
		password.POST("/reset/confirm", authHandler.ConfirmPasswordReset)
	}

	passkeyHandler := NewPasskeyHandler(deps.BiometricSvc)
	v1.POST("/auth/challenge", passkeyHandler.Challenge)
	v1.POST("/auth/verify", passkeyHandler.Verify)

	// Enrollment verify is public: the enrolling user is carried by the
	// one-shot challenge state minted under a session.
	enrollHandler := NewEnrollHandler(deps.EnrollmentSvc)
	v1.POST("/enroll/verify", enrollHandler.Verify)

	// --- Session routes (Bearer access token) ---
	bearerAuth := middleware.BearerAuth(deps.TokenSvc)

	stepUp := v1.Group("/auth/step-up", bearerAuth)
	{
		stepUp.POST("/challenge", passkeyHandler.StepUpChallenge)
		stepUp.POST("/verify", passkeyHandler.StepUpVerify)
	}

	v1.POST("/enroll/challenge", bearerAuth, enrollHandler.Challenge)

	deviceHandler := NewDeviceHandler(deps.CredentialSvc)
	devices := v1.Group("/devices", bearerAuth)
	{
		devices.GET("", deviceHandler.List)
		devices.DELETE("/:id", deviceHandler.Revoke)
	}

	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallets := v1.Group("/wallets/me", bearerAuth)
	{
		wallets.GET("", walletHandler.GetWallet)
		wallets.GET("/transactions", walletHandler.ListTransactions)
	}

	transferHandler := NewTransferHandler(deps.TransferSvc)
	transactions := v1.Group("/transactions", bearerAuth)
	{
		transactions.POST("/transfer", transferHandler.Transfer)
		transactions.POST("/recipients/resolve", transferHandler.ResolveRecipient)
		transactions.GET("/:id", transferHandler.Get)
	}

	return r
}
