package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/brinquelab/toystore/internal/cache"
	"github.com/brinquelab/toystore/internal/config"
	dbpkg "github.com/brinquelab/toystore/internal/db"
	"github.com/brinquelab/toystore/internal/logger"
	"github.com/brinquelab/toystore/internal/middleware"
	"github.com/brinquelab/toystore/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	db := dbpkg.NewDB(cfg)

	var statsCache *cache.StatsCache
	if cfg.RedisAddr != "" {
		client, err := cache.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, stats cache disabled")
		} else {
			statsCache = cache.NewStatsCache(client)
		}
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())

	r.LoadHTMLGlob("web/templates/*.html")
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/web/app/login")
	})

	routes.RegisterRoutes(r, db, cfg, statsCache)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
