package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brinquelab/toystore/internal/cache"
	domain "github.com/brinquelab/toystore/internal/domain/stats"
	"github.com/brinquelab/toystore/internal/httperr"
	"github.com/brinquelab/toystore/internal/httpresp"
	"github.com/brinquelab/toystore/internal/logger"
	ucstats "github.com/brinquelab/toystore/internal/usecase/stats"
)

type StatsHandler struct {
	daily *ucstats.DailySales
	top   *ucstats.TopClientsStats
	cache *cache.StatsCache
}

func NewStatsHandler(
	daily *ucstats.DailySales,
	top *ucstats.TopClientsStats,
	statsCache *cache.StatsCache,
) *StatsHandler {
	return &StatsHandler{daily: daily, top: top, cache: statsCache}
}

// ======================================================
// VENDAS POR DIA (≤30, mais recente primeiro)
// ======================================================

func (h *StatsHandler) DailyStats(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []domain.DailyTotal
	if h.cache.Get(ctx, cache.KeyDailyStats, &cached) {
		httpresp.OK(c, cached)
		return
	}

	stats, err := h.daily.Execute(ctx)
	if err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("daily stats failed")
		httperr.Internal(c)
		return
	}

	h.cache.Set(ctx, cache.KeyDailyStats, stats)
	httpresp.OK(c, stats)
}

// ======================================================
// TOP CLIENTES
// ======================================================

func (h *StatsHandler) TopClients(c *gin.Context) {
	ctx := c.Request.Context()

	var cached domain.TopClients
	if h.cache.Get(ctx, cache.KeyTopClients, &cached) {
		httpresp.OK(c, cached)
		return
	}

	stats, err := h.top.Execute(ctx)
	if err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("top clients stats failed")
		httperr.Internal(c)
		return
	}

	h.cache.Set(ctx, cache.KeyTopClients, stats)
	httpresp.OK(c, stats)
}
