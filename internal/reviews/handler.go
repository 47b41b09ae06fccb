package reviews

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo *Repo
}

func NewHandler(repo *Repo) *Handler {
	return &Handler{Repo: repo}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/cards/:id/reviews", h.listByCard)
}

func (h *Handler) listByCard(c *gin.Context) {
	cardID := strings.TrimSpace(c.Param("id"))
	if cardID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card id required"})
		return
	}

	limit := parseInt(c.Query("limit"), defaultLimit)
	offset := parseInt(c.Query("offset"), 0)

	page, ok := h.Repo.ListByCard(cardID, limit, offset)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}

	c.JSON(http.StatusOK, page)
}

func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
