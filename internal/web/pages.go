// Package web renders the HTML pages of the catalog: home, filtered grid,
// card details, comparison and search results.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cardcompare/internal/assistant"
	"cardcompare/internal/cards"
	"cardcompare/pkg/models"
	"cardcompare/pkg/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	topCards     = 3
	shownTags    = 3
	reviewsShown = 5
)

// Templates parses the embedded page set. Each page is a named template
// ("home", "cards", "card", "compare", "search", "notfound").
func Templates() *template.Template {
	return template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}

type Pages struct {
	Repo *cards.Repo
	App  utils.AppConfig
}

func NewPages(repo *cards.Repo, app utils.AppConfig) *Pages {
	return &Pages{Repo: repo, App: app}
}

// RegisterRoutes mounts the pages. The engine must have Templates() set.
func (p *Pages) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", p.home)
	r.GET("/cards", p.list)
	r.GET("/cards/:slug", p.detail)
	r.GET("/search", p.search)
	if p.App.Features.CardComparison {
		r.GET("/compare", p.compare)
	}
}

// NotFound renders the 404 page; used as the engine's NoRoute handler.
func (p *Pages) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound", p.base("Page not found"))
}

type base struct {
	App   utils.AppConfig
	Title string
}

func (p *Pages) base(title string) base {
	if title == "" {
		title = p.App.Name
	} else {
		title += " | " + p.App.Name
	}
	return base{App: p.App, Title: title}
}

func (p *Pages) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home", gin.H{
		"Base": p.base(""),
		"Top":  p.Repo.Top(topCards),
		"All":  p.Repo.ListAll(),
	})
}

type listView struct {
	Base     base
	Bank     string
	Selected map[string]bool
	Banks    []string
	Tags     []string
	Items    []models.Card
}

func (p *Pages) list(c *gin.Context) {
	q := cards.ListQuery{
		Bank: strings.TrimSpace(c.Query("bank")),
		Tags: cards.SplitList(c.QueryArray("tags")),
	}
	selected := make(map[string]bool, len(q.Tags))
	for _, t := range q.Tags {
		selected[t] = true
	}
	c.HTML(http.StatusOK, "cards", listView{
		Base:     p.base("All Credit Cards"),
		Bank:     q.Bank,
		Selected: selected,
		Banks:    p.Repo.Banks(),
		Tags:     p.Repo.Tags(),
		Items:    p.Repo.List(q),
	})
}

type detailView struct {
	Base         base
	Card         models.Card
	Summary      string
	Categories   []categoryRow
	Fees         []feeRow
	History      []cards.HistoryRow
	TrendText    string
	ActiveOffers []models.Offer
	PastOffers   []models.Offer
	Reviews      []models.Review
	MoreReviews  int
	Similar      []models.Card
}

type categoryRow struct {
	Name  string
	Items []string
}

type feeRow struct {
	Name  string
	Value string
}

func (p *Pages) detail(c *gin.Context) {
	card := p.Repo.GetBySlug(c.Param("slug"))
	if card == nil {
		p.NotFound(c)
		return
	}

	v := detailView{
		Base:    p.base(card.Name),
		Card:    *card,
		Summary: cardSummary(*card),
		Similar: p.Repo.GetSimilar(card.ID),
	}
	for _, k := range cards.SortedKeys(card.BenefitCategories) {
		v.Categories = append(v.Categories, categoryRow{Name: k, Items: card.BenefitCategories[k]})
	}
	for _, k := range cards.SortedKeys(card.Fees) {
		v.Fees = append(v.Fees, feeRow{Name: k, Value: card.Fees[k]})
	}
	if p.App.Features.PriceHistory {
		v.History = cards.HistoryRows(card.PriceHistory)
		v.TrendText = cards.DescribeTrend(card.PriceHistory)
	}
	for _, o := range card.OfferHistory {
		if o.IsActive {
			v.ActiveOffers = append(v.ActiveOffers, o)
		} else {
			v.PastOffers = append(v.PastOffers, o)
		}
	}
	if p.App.Features.UserReviews {
		v.Reviews = card.Reviews
		if len(v.Reviews) > reviewsShown {
			v.MoreReviews = len(v.Reviews) - reviewsShown
			v.Reviews = v.Reviews[:reviewsShown]
		}
	}
	c.HTML(http.StatusOK, "card", v)
}

// cardSummary prefers authored text and falls back to the template.
func cardSummary(card models.Card) string {
	if s := card.NarrativeSummary(); strings.TrimSpace(s) != "" {
		return s
	}
	return assistant.RenderSummary(card)
}

type compareView struct {
	Base       base
	Comparison cards.Comparison
	IDs        string
	Full       bool
	Remaining  []models.Card
}

func (p *Pages) compare(c *gin.Context) {
	ids := cards.SplitList(c.QueryArray("cards"))
	cmp := p.Repo.Compare(ids)

	chosen := make(map[string]bool, len(cmp.Items))
	picked := make([]string, 0, len(cmp.Items))
	for _, card := range cmp.Items {
		chosen[card.ID] = true
		picked = append(picked, card.ID)
	}
	var remaining []models.Card
	for _, card := range p.Repo.ListAll() {
		if !chosen[card.ID] {
			remaining = append(remaining, card)
		}
	}

	c.HTML(http.StatusOK, "compare", compareView{
		Base:       p.base("Compare Credit Cards"),
		Comparison: cmp,
		IDs:        strings.Join(picked, ","),
		Full:       len(cmp.Items) >= cards.MaxCompare,
		Remaining:  remaining,
	})
}

func (p *Pages) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	c.HTML(http.StatusOK, "search", gin.H{
		"Base":  p.base("Search"),
		"Query": q,
		"Items": p.Repo.Search(q),
	})
}
