package cards

import (
	"strings"

	"cardcompare/pkg/catalog"
	"cardcompare/pkg/models"
)

// Repo answers read-only questions against the catalog. None of its methods
// fail: "not found" is a nil card or an empty slice.
type Repo struct {
	Catalog *catalog.Catalog
}

type ListQuery struct {
	Bank  string   // case-insensitive substring of the issuing bank
	Tags  []string // any-match, exact tag labels
	Limit int      // applied last; <= 0 means no limit
}

const similarLimit = 3

func NewRepo(c *catalog.Catalog) *Repo {
	return &Repo{Catalog: c}
}

// ListAll returns every card in catalog order.
func (r *Repo) ListAll() []models.Card {
	return r.Catalog.Cards()
}

// List applies the query filters. Bank and Tags compose with AND; tags
// within the field match with OR.
func (r *Repo) List(q ListQuery) []models.Card {
	bank := strings.ToLower(strings.TrimSpace(q.Bank))
	tags := make(map[string]struct{}, len(q.Tags))
	for _, t := range q.Tags {
		tags[t] = struct{}{}
	}

	out := make([]models.Card, 0)
	for _, c := range r.Catalog.Cards() {
		if bank != "" && !strings.Contains(strings.ToLower(c.Bank), bank) {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(c, tags) {
			continue
		}
		out = append(out, c)
	}
	return truncate(out, q.Limit)
}

// Top returns the first n cards of the catalog.
func (r *Repo) Top(n int) []models.Card {
	return truncate(r.Catalog.Cards(), n)
}

func (r *Repo) GetByID(id string) *models.Card {
	i, ok := r.Catalog.IndexOfID(id)
	if !ok {
		return nil
	}
	c := r.Catalog.At(i)
	return &c
}

func (r *Repo) GetBySlug(slug string) *models.Card {
	i, ok := r.Catalog.IndexOfSlug(slug)
	if !ok {
		return nil
	}
	c := r.Catalog.At(i)
	return &c
}

// GetManyByIDs returns the cards whose id is in ids, in catalog order
// regardless of the order of ids. Unknown ids are ignored.
func (r *Repo) GetManyByIDs(ids []string) []models.Card {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]models.Card, 0, len(want))
	for _, c := range r.Catalog.Cards() {
		if _, ok := want[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

// GetSimilar returns up to three other cards from the same bank or sharing
// at least one tag with the card id. Unknown ids yield an empty slice.
func (r *Repo) GetSimilar(id string) []models.Card {
	ref := r.GetByID(id)
	if ref == nil {
		return []models.Card{}
	}
	refTags := make(map[string]struct{}, len(ref.Tags))
	for _, t := range ref.Tags {
		refTags[t] = struct{}{}
	}

	out := make([]models.Card, 0, similarLimit)
	for _, c := range r.Catalog.Cards() {
		if len(out) == similarLimit {
			break
		}
		if c.ID == ref.ID {
			continue
		}
		if c.Bank == ref.Bank || hasAnyTag(c, refTags) {
			out = append(out, c)
		}
	}
	return out
}

// Search matches the trimmed, lowercased query as a substring of the name,
// bank, any tag, any benefit or the narrative summary. Results keep catalog
// order; a blank query matches nothing.
func (r *Repo) Search(query string) []models.Card {
	term := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Card, 0)
	if term == "" {
		return out
	}
	for _, c := range r.Catalog.Cards() {
		if matches(c, term) {
			out = append(out, c)
		}
	}
	return out
}

// Banks lists distinct issuing banks in catalog order.
func (r *Repo) Banks() []string {
	return distinct(r.Catalog.Cards(), func(c models.Card) []string { return []string{c.Bank} })
}

// Tags lists distinct tags in first-seen order.
func (r *Repo) Tags() []string {
	return distinct(r.Catalog.Cards(), func(c models.Card) []string { return c.Tags })
}

func matches(c models.Card, term string) bool {
	if containsFold(c.Name, term) || containsFold(c.Bank, term) {
		return true
	}
	for _, t := range c.Tags {
		if containsFold(t, term) {
			return true
		}
	}
	for _, b := range c.Benefits {
		if containsFold(b, term) {
			return true
		}
	}
	return containsFold(c.AISummary, term) || containsFold(c.Summary, term)
}

// containsFold expects term to be lowercased already.
func containsFold(s, term string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), term)
}

func hasAnyTag(c models.Card, set map[string]struct{}) bool {
	for _, t := range c.Tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func truncate(cards []models.Card, limit int) []models.Card {
	if limit > 0 && len(cards) > limit {
		return cards[:limit]
	}
	return cards
}

func distinct(cards []models.Card, values func(models.Card) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range cards {
		for _, v := range values(c) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
