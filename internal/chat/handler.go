package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cardcompare/internal/assistant"
	"cardcompare/pkg/logger"
	"cardcompare/pkg/models"
)

type Handler struct {
	Svc *Service
	Hub *Hub
	Log *logger.Logger
}

func NewHandler(svc *Service, hub *Hub, log *logger.Logger) *Handler {
	if hub == nil {
		hub = NewHub()
	}
	return &Handler{Svc: svc, Hub: hub, Log: logger.OrNop(log)}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/chat", h.chat) // POST /api/chat
}

// RegisterWSRoutes mounts the websocket transport, e.g. on /ws.
func (h *Handler) RegisterWSRoutes(rg *gin.RouterGroup) {
	rg.GET("/chat", WSHandler(h.Svc, h.Hub, h.Log)) // GET /ws/chat
}

type chatReq struct {
	Message *string `json:"message"`
}

func (h *Handler) chat(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			h.Log.Error("chat handler panic", "panic", r, "path", c.Request.URL.Path)
			c.JSON(http.StatusOK, apology())
		}
	}()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required and must be a string"})
		return
	}

	reply, err := h.Svc.Answer(c.Request.Context(), *req.Message)
	if errors.Is(err, ErrEmptyMessage) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required and must be a string"})
		return
	}
	if err != nil {
		h.Log.Error("chat failed", "error", err)
		c.JSON(http.StatusOK, apology())
		return
	}
	c.JSON(http.StatusOK, reply)
}

// apology is the success-status payload for unexpected failures.
func apology() gin.H {
	return gin.H{
		"error": assistant.ChatErrorMessage,
		"text":  assistant.ChatApology,
		"cards": []models.Card{},
	}
}
