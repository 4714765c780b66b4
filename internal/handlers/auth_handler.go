package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/brinquelab/toystore/internal/audit"
	"github.com/brinquelab/toystore/internal/config"
	"github.com/brinquelab/toystore/internal/httperr"
	"github.com/brinquelab/toystore/internal/logger"
	"github.com/brinquelab/toystore/internal/models"
	"github.com/brinquelab/toystore/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, auditDispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: auditDispatcher}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "Email ou senha inválidos")
			return
		}
		lg := logger.Get()
		lg.Error().Err(err).Msg("login lookup failed")
		httperr.Internal(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Email ou senha inválidos")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("token generation failed")
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID: &user.ID,
		Action: "user_logged_in",
		Entity: "user",
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"id":    user.ID,
				"email": user.Email,
			},
		},
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("register lookup failed")
		httperr.Internal(c)
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "Email já cadastrado")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("password hash failed")
		httperr.Internal(c)
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&user).Error; err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("user create failed")
		httperr.Internal(c)
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Msg("token generation failed")
		httperr.Internal(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"id":    user.ID,
				"email": user.Email,
			},
		},
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
