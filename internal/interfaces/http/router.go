package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	actorusecases "depot/internal/application/actor/usecases"
	palletusecases "depot/internal/application/pallet/usecases"
	systemusecases "depot/internal/application/system/usecases"
	"depot/internal/infrastructure/auth"
	"depot/internal/infrastructure/config"
	"depot/internal/infrastructure/repository"
	"depot/internal/infrastructure/sequence"
	authhandlers "depot/internal/interfaces/http/handlers/auth"
	pallethandlers "depot/internal/interfaces/http/handlers/pallet"
	systemhandlers "depot/internal/interfaces/http/handlers/system"
	"depot/internal/interfaces/http/middleware"
	"depot/internal/interfaces/http/routes"
	sharedDB "depot/internal/shared/db"
	"depot/internal/shared/logger"
)

// Router wires repositories, use cases, and handlers onto a Gin engine.
type Router struct {
	engine         *gin.Engine
	palletHandler  *pallethandlers.Handler
	systemHandler  *systemhandlers.Handler
	authHandler    *authhandlers.Handler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	cfg            *config.Config
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	palletRepo := repository.NewPalletRepository(db)
	ledger := repository.NewMembershipLedgerRepository(db)
	systemRepo := repository.NewSystemRepository(db)
	historyRepo := repository.NewLocationHistoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	factoryRepo := repository.NewFactoryRepository(db)
	partNumberRepo := repository.NewPartNumberRepository(db)
	actorRepo := repository.NewActorRepository(db, cfg.Depot.DeletedActorID)

	txManager := sharedDB.NewTransactionManager(db)
	numberAllocator := sequence.NewPalletNumberAllocator(db)

	createPalletUC := palletusecases.NewCreatePalletUseCase(palletRepo, factoryRepo, partNumberRepo, numberAllocator, txManager, log)
	getPalletUC := palletusecases.NewGetPalletUseCase(palletRepo, ledger, systemRepo, log)
	listPalletsUC := palletusecases.NewListPalletsUseCase(palletRepo, ledger, systemRepo, log)
	setLockUC := palletusecases.NewSetPalletLockUseCase(palletRepo, ledger, systemRepo, txManager, log)
	releaseUC := palletusecases.NewReleasePalletUseCase(palletRepo, ledger, systemRepo, txManager, log)
	moveMemberUC := palletusecases.NewMovePalletMemberUseCase(palletRepo, ledger, systemRepo, locationRepo, txManager, log)
	addMemberUC := palletusecases.NewAddPalletMemberUseCase(palletRepo, ledger, systemRepo, locationRepo, txManager, log)
	removeMemberUC := palletusecases.NewRemovePalletMemberUseCase(palletRepo, ledger, systemRepo, txManager, log)
	deletePalletUC := palletusecases.NewDeletePalletUseCase(palletRepo, ledger, txManager, log)

	appendHistoryUC := systemusecases.NewAppendLocationHistoryUseCase(systemRepo, historyRepo, locationRepo, txManager, log)
	undoHistoryUC := systemusecases.NewUndoLocationHistoryUseCase(systemRepo, historyRepo, txManager, cfg.Depot.DeletedActorID, log)
	getHistoryUC := systemusecases.NewGetSystemHistoryUseCase(systemRepo, historyRepo, log)

	palletHandler := pallethandlers.NewHandler(
		createPalletUC, getPalletUC, listPalletsUC, setLockUC, releaseUC,
		moveMemberUC, addMemberUC, removeMemberUC, deletePalletUC,
	)
	systemHandler := systemhandlers.NewHandler(appendHistoryUC, undoHistoryUC, getHistoryUC)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	loginUC := actorusecases.NewLoginUseCase(actorRepo, hasher, jwtService, log)
	authHandler := authhandlers.NewHandler(loginUC)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rateLimiter = middleware.NewRateLimiter(
			redisClient,
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
	}

	return &Router{
		engine:         engine,
		palletHandler:  palletHandler,
		systemHandler:  systemHandler,
		authHandler:    authHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		cfg:            cfg,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
		RateLimiter: r.rateLimiter,
	})

	routes.SetupPalletRoutes(r.engine, &routes.PalletRouteConfig{
		PalletHandler:  r.palletHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupSystemRoutes(r.engine, &routes.SystemRouteConfig{
		SystemHandler:  r.systemHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
