package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	_ "registro_inpi/docs" // generated by swag init
	"registro_inpi/internal/adapter/http/handlers"
	"registro_inpi/internal/adapter/http/middleware"
	"registro_inpi/internal/infrastructure/config"
	"registro_inpi/internal/infrastructure/identity"
	"registro_inpi/internal/infrastructure/payments"
	"registro_inpi/internal/infrastructure/registry"
	"registro_inpi/internal/usecase"
	"registro_inpi/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the adapters the router is built on.
type Dependencies struct {
	Stores         Stores
	Identity       interfaces.IIdentityProvider
	Gateway        interfaces.IPaymentGateway
	Registry       interfaces.IRegistrySearchProvider
	GatewayTimeout time.Duration
}

// Run will start the server
func Run(cfg config.Config) {
	ctx := context.Background()

	stores, closeStores, err := OpenStores(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open the %s store: %v", cfg.StoreDriver, err)
	}
	defer closeStores()

	provider, err := newIdentityProvider(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to configure authentication: %v", err)
	}

	router := NewRouter(Dependencies{
		Stores:         stores,
		Identity:       provider,
		Gateway:        payments.NewSimulatedGateway(cfg.PaymentGatewayDelay),
		Registry:       registry.NewCachedProvider(registry.NewStubProvider(), cfg.RegistryCacheSize, cfg.RegistryCacheTTL),
		GatewayTimeout: cfg.PaymentGatewayTimeout,
	})

	log.Printf("[http][routes] listening port=%d store=%s", cfg.Port, cfg.StoreDriver)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires use cases and handlers over deps.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s := deps.Stores
	consultationUseCase := usecase.NewConsultationUseCase(s.Consultations, deps.Registry)
	processUseCase := usecase.NewProcessUseCase(s.Processes)
	billingUseCase := usecase.NewBillingUseCase(s.Billing, deps.Gateway, deps.GatewayTimeout)
	adminUseCase := usecase.NewAdminUseCase(s.Profiles, s.Consultations, s.Processes, s.Billing)
	profileUseCase := usecase.NewProfileUseCase(s.Profiles)

	healthHandler := handlers.NewHealthHandler(s.Ready)
	router.GET("/health/ready", healthHandler.Ready)

	v1 := router.Group("/v1")
	addPingRoutes(v1, healthHandler)

	// Rotas autenticadas
	authed := v1.Group("", middleware.Auth(deps.Identity))
	addConsultationRoutes(authed, handlers.NewConsultationHandler(consultationUseCase))
	addProcessRoutes(authed, handlers.NewProcessHandler(processUseCase))
	addBillingRoutes(authed, handlers.NewBillingHandler(billingUseCase))
	addProfileRoutes(authed, handlers.NewProfileHandler(profileUseCase))
	addAdminRoutes(authed, handlers.NewAdminHandler(adminUseCase))

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.Metrics())
}

// newIdentityProvider prefers JWKS when both a key set URL and a secret are set.
func newIdentityProvider(ctx context.Context, cfg config.Config) (interfaces.IIdentityProvider, error) {
	if cfg.JWTJWKSURL != "" {
		return identity.NewJWKSProvider(ctx, cfg.JWTJWKSURL, cfg.JWTIssuer, cfg.AdminRole)
	}
	if cfg.JWTSecret != "" {
		return identity.NewHMACProvider(cfg.JWTSecret, cfg.JWTIssuer, cfg.AdminRole)
	}
	return nil, fmt.Errorf("routes: neither JWT_JWKS_URL nor JWT_SECRET is set")
}
