package assistant

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cardcompare/internal/cards"
	"cardcompare/pkg/logger"
	"cardcompare/pkg/models"
)

// Handler serves the generation endpoints. Validation failures are the only
// non-200 responses; everything else degrades to fallback text.
type Handler struct {
	Svc  *Service
	Repo *cards.Repo
	Log  *logger.Logger
}

func NewHandler(svc *Service, repo *cards.Repo, log *logger.Logger) *Handler {
	return &Handler{Svc: svc, Repo: repo, Log: logger.OrNop(log)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-summary", h.generateSummary) // POST /api/generate-summary
}

// RegisterPriceTrendRoutes is gated by the price-history feature.
func (h *Handler) RegisterPriceTrendRoutes(rg *gin.RouterGroup) {
	rg.POST("/price-trend", h.priceTrend) // POST /api/price-trend
}

type summaryReq struct {
	Card *models.Card `json:"card"`
}

func (h *Handler) generateSummary(c *gin.Context) {
	defer h.recoverWith(c, "summary", gin.H{"error": SummaryErrorMessage, "summary": GenericSummary})

	var req summaryReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Card == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card data is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": h.Svc.Summary(c.Request.Context(), *req.Card)})
}

type trendReq struct {
	Card   *models.Card `json:"card"`
	CardID string       `json:"cardId"`
}

func (h *Handler) priceTrend(c *gin.Context) {
	defer h.recoverWith(c, "price_trend", gin.H{"error": TrendErrorMessage, "analysis": TrendUnavailable})

	var req trendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card or cardId is required"})
		return
	}

	card := req.Card
	if card == nil && strings.TrimSpace(req.CardID) != "" && h.Repo != nil {
		card = h.Repo.GetByID(strings.TrimSpace(req.CardID))
		if card == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
			return
		}
	}
	if card == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "card or cardId is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analysis": h.Svc.PriceTrend(c.Request.Context(), *card)})
}

// recoverWith turns a panic into a 200 response carrying payload.
func (h *Handler) recoverWith(c *gin.Context, op string, payload gin.H) {
	if r := recover(); r != nil {
		h.Log.Error("generation handler panic", "op", op, "panic", r)
		c.JSON(http.StatusOK, payload)
	}
}
