package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppWebHandler serve as páginas do app de gestão da loja. Toda a lógica
// fica no navegador, falando com a API JSON; aqui só entrega o template.
type AppWebHandler struct{}

func NewAppWebHandler() *AppWebHandler {
	return &AppWebHandler{}
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "login",
	})
}

func (h *AppWebHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "dashboard",
	})
}

func (h *AppWebHandler) Clients(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "clients",
	})
}

func (h *AppWebHandler) Stats(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "stats",
	})
}
