package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-web/internal/session"
)

type HomeHandler struct {
	sessions *session.Manager
}

func NewHomeHandler(sessions *session.Manager) *HomeHandler {
	return &HomeHandler{sessions: sessions}
}

func (h *HomeHandler) Index(c *gin.Context) {
	_, signedIn := h.sessions.Current(c)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"SignedIn": signedIn,
	})
}
