package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"cardcompare/internal/assistant"
	"cardcompare/internal/cards"
	"cardcompare/internal/chat"
	"cardcompare/internal/middleware"
	"cardcompare/internal/reviews"
	"cardcompare/internal/web"
	"cardcompare/pkg/logger"
	"cardcompare/pkg/utils"
)

// Deps is everything the HTTP surface needs. Cards, Assistant and Chat are
// required; Hub defaults to a fresh one.
type Deps struct {
	App       utils.AppConfig
	Cards     *cards.Repo
	Assistant *assistant.Service
	Chat      *chat.Service
	Hub       *chat.Hub
	Log       *logger.Logger
	// ServiceName labels the request spans.
	ServiceName string
}

// NewRouter assembles the pages, the JSON API and the websocket transport.
// Feature toggles decide which optional routes exist at all.
func NewRouter(d Deps) *gin.Engine {
	log := logger.OrNop(d.Log)
	if d.ServiceName == "" {
		d.ServiceName = "cardcompare-api"
	}
	if d.Hub == nil {
		d.Hub = chat.NewHub()
	}
	features := d.App.Features

	router := gin.New()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})
	router.Use(
		gin.Recovery(),
		otelgin.Middleware(d.ServiceName),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.CORS(d.App.URL),
	)
	router.SetHTMLTemplate(web.Templates())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/ready", func(c *gin.Context) {
		total := len(d.Cards.ListAll())
		if total == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "cards": 0})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "ready",
			"cards":      total,
			"generator":  d.Assistant.Gen.Name(),
			"ws_clients": d.Hub.Count(),
		})
	})

	api := router.Group("/api")
	api.GET("/config", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        d.App.Name,
			"description": d.App.Description,
			"url":         d.App.URL,
			"features":    features,
		})
	})

	cardHandler := cards.NewHandler(d.Cards)
	cardHandler.RegisterRoutes(api)
	if features.CardComparison {
		cardHandler.RegisterCompareRoutes(api)
	}
	if features.UserReviews {
		reviews.NewHandler(reviews.NewRepo(d.Cards)).RegisterPublicRoutes(api)
	}

	genHandler := assistant.NewHandler(d.Assistant, d.Cards, log)
	genHandler.RegisterRoutes(api)
	if features.PriceHistory {
		genHandler.RegisterPriceTrendRoutes(api)
	}

	chatHandler := chat.NewHandler(d.Chat, d.Hub, log)
	if features.AIChat {
		chatHandler.RegisterRoutes(api)
		chatHandler.RegisterWSRoutes(router.Group("/ws"))
	}

	pages := web.NewPages(d.Cards, d.App)
	pages.RegisterRoutes(router)
	router.NoRoute(pages.NotFound)

	return router
}
