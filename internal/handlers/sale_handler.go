package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brinquelab/toystore/internal/audit"
	"github.com/brinquelab/toystore/internal/cache"
	"github.com/brinquelab/toystore/internal/httperr"
	"github.com/brinquelab/toystore/internal/httpresp"
	"github.com/brinquelab/toystore/internal/logger"
	"github.com/brinquelab/toystore/internal/middleware"
	"github.com/brinquelab/toystore/internal/models"
	"github.com/brinquelab/toystore/internal/validators"
)

type SaleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
	cache *cache.StatsCache
}

func NewSaleHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher, statsCache *cache.StatsCache) *SaleHandler {
	return &SaleHandler{db: db, audit: auditDispatcher, cache: statsCache}
}

// --------- Requests ---------

type CreateSaleRequest struct {
	ClientID uint     `json:"clientId" binding:"required"`
	Valor    *float64 `json:"valor" binding:"required,gte=0"`
	Data     string   `json:"data" binding:"required"`
}

// ======================================================
// LIST
// ======================================================

func (h *SaleHandler) List(c *gin.Context) {
	// slice já alocado: sem vendas a resposta é [], não null
	sales := make([]models.Sale, 0)
	if err := h.db.
		Order("data DESC").
		Find(&sales).Error; err != nil {

		lg := logger.Get()
		lg.Error().Err(err).Msg("sale list failed")
		httperr.Internal(c)
		return
	}

	httpresp.OK(c, sales)
}

// ======================================================
// CREATE
// ======================================================

func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	if !validators.IsCalendarDate(req.Data) {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	// A FK também barraria, mas checar antes devolve 400 em vez de 500.
	var count int64
	if err := h.db.Model(&models.Client{}).
		Where("id = ?", req.ClientID).
		Count(&count).Error; err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("sale client lookup failed")
		httperr.Internal(c)
		return
	}
	if count == 0 {
		httperr.BadRequest(c, "Cliente não encontrado")
		return
	}

	sale := models.Sale{
		ClientID: req.ClientID,
		Valor:    *req.Valor,
		Data:     req.Data,
	}

	if err := h.db.Create(&sale).Error; err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("sale create failed")
		httperr.Internal(c)
		return
	}

	h.cache.Invalidate(c.Request.Context())

	var userID *uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if uid, ok := v.(uint); ok {
			userID = &uid
		}
	}
	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "sale_created",
		Entity:   "sale",
		EntityID: &sale.ID,
		Metadata: gin.H{"clientId": sale.ClientID, "valor": sale.Valor},
	})

	httpresp.Created(c, sale, "Venda registrada com sucesso")
}
