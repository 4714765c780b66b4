package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brinquelab/toystore/internal/audit"
	"github.com/brinquelab/toystore/internal/cache"
	"github.com/brinquelab/toystore/internal/config"
	dbpkg "github.com/brinquelab/toystore/internal/db"
	"github.com/brinquelab/toystore/internal/handlers"
	"github.com/brinquelab/toystore/internal/httpresp"
	infraRepo "github.com/brinquelab/toystore/internal/infra/repository"
	"github.com/brinquelab/toystore/internal/logger"
	"github.com/brinquelab/toystore/internal/middleware"
	ucclient "github.com/brinquelab/toystore/internal/usecase/client"
	ucstats "github.com/brinquelab/toystore/internal/usecase/stats"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, statsCache *cache.StatsCache) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	statsRepo := infraRepo.NewStatsGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	dailySalesUC := ucstats.NewDailySales(statsRepo)
	topClientsUC := ucstats.NewTopClientsStats(statsRepo)
	createClientUC := ucclient.NewCreateClient(clientRepo)
	updateClientUC := ucclient.NewUpdateClient(clientRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db, statsRepo, createClientUC, updateClientUC, auditDispatcher, statsCache)
	saleHandler := handlers.NewSaleHandler(db, auditDispatcher, statsCache)
	statsHandler := handlers.NewStatsHandler(dailySalesUC, topClientsUC, statsCache)
	healthHandler := handlers.NewHealthHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	appWebHandler := handlers.NewAppWebHandler()

	// ======================================================
	// ROTAS WEB (HTML)
	// ======================================================
	webApp := r.Group("/web/app")
	{
		webApp.GET("/login", appWebHandler.LoginPage)
		webApp.GET("/dashboard", appWebHandler.Dashboard)
		webApp.GET("/clients", appWebHandler.Clients)
		webApp.GET("/stats", appWebHandler.Stats)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	r.GET("/health", healthHandler.Check)

	r.POST("/auth/login", authHandler.Login)
	r.POST("/auth/register", authHandler.Register)

	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg))
	{
		secured.GET("/clients", clientHandler.List)
		secured.GET("/clients/:id", clientHandler.GetByID)
		secured.POST("/clients", clientHandler.Create)
		secured.PUT("/clients/:id", clientHandler.Update)
		secured.DELETE("/clients/:id", clientHandler.Delete)

		secured.GET("/sales/stats", statsHandler.DailyStats)
		secured.GET("/sales/top-clients", statsHandler.TopClients)
		secured.GET("/sales", saleHandler.List)
		secured.POST("/sales", saleHandler.Create)

		secured.GET("/audit-logs", auditLogsHandler.List)
	}

	// ======================================================
	// DEV ONLY
	// ======================================================
	if cfg.IsDevelopment() {
		r.POST("/reset-database", func(c *gin.Context) {
			if err := dbpkg.Reset(db); err != nil {
				lg := logger.Get()
				lg.Error().Err(err).Msg("database reset failed")
				c.JSON(500, gin.H{"success": false, "error": "Erro interno do servidor"})
				return
			}
			httpresp.Message(c, "Banco de dados resetado com sucesso")
		})
	}
}
