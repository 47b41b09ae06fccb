package reviews

import (
	"cardcompare/internal/cards"
	"cardcompare/pkg/models"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Repo pages through the reviews stored on catalog cards. Reviews are
// catalog data; there is no write path.
type Repo struct {
	Cards *cards.Repo
}

func NewRepo(c *cards.Repo) *Repo {
	return &Repo{Cards: c}
}

type Page struct {
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
	Items  []models.Review `json:"items"`
}

// ListByCard returns one page of the card's reviews in authored order.
// found is false when the card does not exist.
func (r *Repo) ListByCard(cardID string, limit, offset int) (page Page, found bool) {
	card := r.Cards.GetByID(cardID)
	if card == nil {
		return Page{}, false
	}

	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}

	all := card.Reviews
	page = Page{Total: len(all), Limit: limit, Offset: offset, Items: []models.Review{}}
	if offset >= len(all) {
		return page, true
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	page.Items = append(page.Items, all[offset:end]...)
	return page, true
}
