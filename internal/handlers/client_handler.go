package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brinquelab/toystore/internal/audit"
	"github.com/brinquelab/toystore/internal/cache"
	domain "github.com/brinquelab/toystore/internal/domain/stats"
	"github.com/brinquelab/toystore/internal/httperr"
	"github.com/brinquelab/toystore/internal/httpresp"
	"github.com/brinquelab/toystore/internal/logger"
	"github.com/brinquelab/toystore/internal/middleware"
	"github.com/brinquelab/toystore/internal/models"
	ucclient "github.com/brinquelab/toystore/internal/usecase/client"
)

type ClientHandler struct {
	db       *gorm.DB
	sales    domain.Repository
	createUC *ucclient.CreateClient
	updateUC *ucclient.UpdateClient
	audit    *audit.Dispatcher
	cache    *cache.StatsCache
}

func NewClientHandler(
	db *gorm.DB,
	salesRepo domain.Repository,
	createUC *ucclient.CreateClient,
	updateUC *ucclient.UpdateClient,
	auditDispatcher *audit.Dispatcher,
	statsCache *cache.StatsCache,
) *ClientHandler {
	return &ClientHandler{
		db:       db,
		sales:    salesRepo,
		createUC: createUC,
		updateUC: updateUC,
		audit:    auditDispatcher,
		cache:    statsCache,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Nome           string `json:"nome" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	DataNascimento string `json:"dataNascimento" binding:"required"`
}

// Campos ausentes e strings vazias significam "não alterar".
type UpdateClientRequest struct {
	Nome           *string `json:"nome,omitempty"`
	Email          *string `json:"email,omitempty"`
	DataNascimento *string `json:"dataNascimento,omitempty"`
}

// Traduz os códigos de negócio dos casos de uso para o contrato HTTP.
func clientError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "client_not_found"):
		httperr.NotFound(c, "Cliente não encontrado")
	case httperr.IsBusiness(err, "duplicate_email"):
		httperr.BadRequest(c, "Email já cadastrado")
	case httperr.IsBusiness(err, "no_changes"):
		httperr.BadRequest(c, "Nenhuma alteração realizada")
	case httperr.IsBusiness(err, "invalid_email"), httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "Dados inválidos")
	default:
		lg := logger.Get()
		lg.Error().Err(err).Msg("client operation failed")
		httperr.Internal(c)
	}
}

// ======================================================
// LIST
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit <= 0 {
		limit = 10
	}

	search := strings.TrimSpace(c.Query("search"))

	q := h.db.Model(&models.Client{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("client count failed")
		httperr.Internal(c)
		return
	}

	var clients []models.Client
	if err := q.
		Order("nome ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&clients).Error; err != nil {

		lg := logger.Get()
		lg.Error().Err(err).Msg("client list failed")
		httperr.Internal(c)
		return
	}

	envelopes := make([]ClientEnvelope, 0, len(clients))
	for _, client := range clients {
		vendas, err := h.sales.ListSalesByClient(c.Request.Context(), client.ID)
		if err != nil {
			lg := logger.Get()
			lg.Error().Err(err).Uint("client_id", client.ID).Msg("client sales lookup failed")
			httperr.Internal(c)
			return
		}
		envelopes = append(envelopes, NewClientEnvelope(client, vendas))
	}

	// Sem campo success de propósito: o formato da listagem é contrato
	// fechado com o app web, campos decorativos incluídos.
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"clientes": envelopes,
		},
		"meta": ClientListMeta{
			RegistroTotal: total,
			Pagina:        page,
		},
		"redundante": gin.H{
			"status": "ok",
		},
	})
}

// ======================================================
// GET BY ID
// ======================================================

func (h *ClientHandler) GetByID(c *gin.Context) {
	// id fora do formato nunca corresponde a um registro
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Cliente não encontrado")
			return
		}
		lg := logger.Get()
		lg.Error().Err(err).Msg("client lookup failed")
		httperr.Internal(c)
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	client, err := h.createUC.Execute(c.Request.Context(), ucclient.CreateInput{
		Nome:           req.Nome,
		Email:          req.Email,
		DataNascimento: req.DataNascimento,
	})
	if err != nil {
		clientError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	h.dispatchAudit(c, "client_created", &client.ID, nil)

	httpresp.Created(c, NewClientEnvelope(client, nil), "Cliente criado com sucesso")
}

// ======================================================
// UPDATE (parcial)
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	client, err := h.updateUC.Execute(c.Request.Context(), uint(id), ucclient.UpdateInput{
		Nome:           req.Nome,
		Email:          req.Email,
		DataNascimento: req.DataNascimento,
	})
	if err != nil {
		clientError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context())
	h.dispatchAudit(c, "client_updated", &client.ID, nil)

	httpresp.OKMessage(c, NewClientEnvelope(client, nil), "Cliente atualizado com sucesso")
}

// ======================================================
// DELETE (cascade nas vendas)
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "Cliente não encontrado")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "Cliente não encontrado")
			return
		}
		lg := logger.Get()
		lg.Error().Err(err).Msg("client lookup failed")
		httperr.Internal(c)
		return
	}

	// As vendas caem junto pela FK ON DELETE CASCADE.
	result := h.db.Delete(&client)
	if result.Error != nil {
		lg := logger.Get()
		lg.Error().Err(result.Error).Msg("client delete failed")
		httperr.Internal(c)
		return
	}
	if result.RowsAffected == 0 {
		httperr.BadRequest(c, "Erro ao excluir cliente")
		return
	}

	h.cache.Invalidate(c.Request.Context())
	h.dispatchAudit(c, "client_deleted", &client.ID, gin.H{"email": client.Email})

	httpresp.Message(c, "Cliente excluído com sucesso")
}

func (h *ClientHandler) dispatchAudit(c *gin.Context, action string, entityID *uint, meta any) {
	var userID *uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if uid, ok := v.(uint); ok {
			userID = &uid
		}
	}

	h.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   "client",
		EntityID: entityID,
		Metadata: meta,
	})
}
