package cards

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cards", h.list)                 // GET /api/cards?bank=&tags=&limit=
	rg.GET("/cards/slug/:slug", h.getBySlug) // GET /api/cards/slug/:slug
	rg.GET("/cards/:id", h.getByID)          // GET /api/cards/:id
	rg.GET("/cards/:id/similar", h.similar)  // GET /api/cards/:id/similar
	rg.GET("/search", h.search)              // GET /api/search?q=
	rg.GET("/filters", h.filters)            // GET /api/filters
}

// RegisterCompareRoutes is separate so the comparison feature can be toggled.
func (h *Handler) RegisterCompareRoutes(rg *gin.RouterGroup) {
	rg.GET("/compare", h.compare) // GET /api/compare?ids=a,b
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		Bank:  c.Query("bank"),
		Tags:  SplitList(c.QueryArray("tags")),
		Limit: parseInt(c.Query("limit"), 0),
	}
	items := h.Repo.List(q)
	c.JSON(http.StatusOK, gin.H{
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	card := h.Repo.GetByID(c.Param("id"))
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) getBySlug(c *gin.Context) {
	card := h.Repo.GetBySlug(c.Param("slug"))
	if card == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "card not found"})
		return
	}
	c.JSON(http.StatusOK, card)
}

func (h *Handler) similar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Repo.GetSimilar(c.Param("id"))})
}

func (h *Handler) search(c *gin.Context) {
	q := c.Query("q")
	items := h.Repo.Search(q)
	c.JSON(http.StatusOK, gin.H{
		"query": q,
		"total": len(items),
		"items": items,
	})
}

func (h *Handler) filters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"banks": h.Repo.Banks(),
		"tags":  h.Repo.Tags(),
	})
}

func (h *Handler) compare(c *gin.Context) {
	ids := SplitList(c.QueryArray("ids"))
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids is required"})
		return
	}
	c.JSON(http.StatusOK, h.Repo.Compare(ids))
}

// SplitList accepts both repeated params (tags=a&tags=b) and comma lists
// (tags=a,b), trims entries and drops empty ones.
func SplitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
