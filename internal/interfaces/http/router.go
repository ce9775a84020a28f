package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	briefingUC "briefing/internal/application/briefing/usecases"
	followupUC "briefing/internal/application/followup/usecases"
	requestUC "briefing/internal/application/request/usecases"
	"briefing/internal/domain/reconciliation"
	"briefing/internal/infrastructure/config"
	"briefing/internal/infrastructure/ratelimit"
	"briefing/internal/infrastructure/repository"
	"briefing/internal/infrastructure/zendesk"
	briefinghandlers "briefing/internal/interfaces/http/handlers/briefing"
	followuphandlers "briefing/internal/interfaces/http/handlers/followup"
	requesthandlers "briefing/internal/interfaces/http/handlers/request"
	"briefing/internal/interfaces/http/middleware"
	"briefing/internal/interfaces/http/routes"
	"briefing/internal/shared/db"
	"briefing/internal/shared/logger"
)

// Router holds the HTTP engine and the wired handlers.
type Router struct {
	engine          *gin.Engine
	briefingHandler *briefinghandlers.BriefingHandler
	prefsHandler    *briefinghandlers.PrefsHandler
	followUpHandler *followuphandlers.FollowUpHandler
	requestHandler  *requesthandlers.RequestHandler
	apiKeyMW        *middleware.APIKeyMiddleware
	rateLimitMW     *middleware.RateLimitMiddleware
}

// NewRouter wires repositories, use cases and handlers onto a fresh
// Gin engine.
func NewRouter(gdb *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	stateRepo := repository.NewChannelStateRepository(gdb)
	seenRepo := repository.NewSeenRepository(gdb)
	followUpRepo := repository.NewFollowUpRepository(gdb)
	requestRepo := repository.NewRequestRepository(gdb)
	prefRepo := repository.NewPrefRepository(gdb)
	memoryRepo := repository.NewMemoryRepository(gdb)

	txManager := db.NewTransactionManager(gdb)

	var gateway reconciliation.ZendeskGateway
	if cfg.Zendesk.IsConfigured() {
		gateway = zendesk.NewClient(&cfg.Zendesk, log)
	} else {
		log.Warn("zendesk credentials not set, ticket reconciliation will report failures")
		gateway = zendesk.NewDisabledGateway()
	}
	reconEngine := reconciliation.NewEngine(gateway, log)

	staleWindow := time.Duration(cfg.Briefing.StaleAfterHours) * time.Hour
	retention := time.Duration(cfg.Briefing.GmailRetentionDays) * 24 * time.Hour

	getSummaryUC := briefingUC.NewGetSummaryUseCase(stateRepo, staleWindow, log)
	getChannelStateUC := briefingUC.NewGetChannelStateUseCase(stateRepo, seenRepo, log)
	markBriefedUC := briefingUC.NewMarkBriefedUseCase(stateRepo, seenRepo, txManager, log)
	checkNewUC := briefingUC.NewCheckNewUseCase(seenRepo, log)
	resetChannelUC := briefingUC.NewResetChannelUseCase(stateRepo, seenRepo, txManager, log)
	pruneSeenUC := briefingUC.NewPruneSeenUseCase(seenRepo, retention, log)
	getPrefsUC := briefingUC.NewGetPrefsUseCase(prefRepo, log)
	setPrefUC := briefingUC.NewSetPrefUseCase(prefRepo, log)
	deletePrefUC := briefingUC.NewDeletePrefUseCase(prefRepo, log)
	getMemoryUC := briefingUC.NewGetMemoryUseCase(memoryRepo, log)
	setMemoryUC := briefingUC.NewSetMemoryUseCase(memoryRepo, log)

	addFollowUpUC := followupUC.NewAddFollowUpUseCase(followUpRepo, log)
	listFollowUpsUC := followupUC.NewListFollowUpsUseCase(followUpRepo, log)
	resolveFollowUpUC := followupUC.NewResolveFollowUpUseCase(followUpRepo, log)

	createRequestUC := requestUC.NewCreateRequestUseCase(requestRepo, log)
	getRequestUC := requestUC.NewGetRequestUseCase(requestRepo, log)
	linkItemUC := requestUC.NewLinkItemUseCase(requestRepo, log)
	listRequestsUC := requestUC.NewListRequestsUseCase(requestRepo, log)
	searchRequestsUC := requestUC.NewSearchRequestsUseCase(requestRepo, log)
	setStatusUC := requestUC.NewSetStatusUseCase(requestRepo, reconEngine, log)
	reconcileUC := requestUC.NewReconcileUseCase(requestRepo, reconEngine, log)
	approveZendeskUC := requestUC.NewApproveZendeskUpdateUseCase(requestRepo, gateway, log)
	deleteRequestUC := requestUC.NewDeleteRequestUseCase(requestRepo, log)

	briefingHandler := briefinghandlers.NewBriefingHandler(
		getSummaryUC, getChannelStateUC, markBriefedUC, checkNewUC, resetChannelUC, pruneSeenUC,
	)
	prefsHandler := briefinghandlers.NewPrefsHandler(
		getPrefsUC, setPrefUC, deletePrefUC, getMemoryUC, setMemoryUC,
	)
	followUpHandler := followuphandlers.NewFollowUpHandler(
		addFollowUpUC, listFollowUpsUC, resolveFollowUpUC,
	)
	requestHandler := requesthandlers.NewRequestHandler(
		createRequestUC, getRequestUC, linkItemUC, listRequestsUC, searchRequestsUC,
		setStatusUC, reconcileUC, approveZendeskUC, deleteRequestUC,
	)

	apiKeyMW := middleware.NewAPIKeyMiddleware(cfg.Auth.APIKey, log)

	var rateLimitMW *middleware.RateLimitMiddleware
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter := ratelimit.NewRedisRateLimiter(redisClient)
		rateLimitMW = middleware.NewRateLimitMiddleware(limiter, &cfg.RateLimit, log)
	}

	return &Router{
		engine:          engine,
		briefingHandler: briefingHandler,
		prefsHandler:    prefsHandler,
		followUpHandler: followUpHandler,
		requestHandler:  requestHandler,
		apiKeyMW:        apiKeyMW,
		rateLimitMW:     rateLimitMW,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())

	api := r.engine.Group("/api/briefing")

	// Health stays open so probes work without credentials.
	api.GET("/health", healthCheck)

	api.Use(r.apiKeyMW.RequireAPIKey())
	if r.rateLimitMW != nil {
		api.Use(r.rateLimitMW.Limit())
	}

	routes.SetupBriefingRoutes(api, &routes.BriefingRouteConfig{
		BriefingHandler: r.briefingHandler,
		PrefsHandler:    r.prefsHandler,
	})
	routes.SetupFollowUpRoutes(api, &routes.FollowUpRouteConfig{
		FollowUpHandler: r.followUpHandler,
	})
	routes.SetupRequestRoutes(api, &routes.RequestRouteConfig{
		RequestHandler: r.requestHandler,
	})
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
