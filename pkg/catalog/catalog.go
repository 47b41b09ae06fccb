// Package catalog holds the immutable card catalog. A Catalog is built once
// at startup and shared read-only by every request; nothing mutates it.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"cardcompare/pkg/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type Catalog struct {
	cards  []models.Card
	byID   map[string]int
	bySlug map[string]int
}

// New validates cards and returns a catalog that owns a private copy of them.
func New(cards []models.Card) (*Catalog, error) {
	c := &Catalog{
		cards:  make([]models.Card, len(cards)),
		byID:   make(map[string]int, len(cards)),
		bySlug: make(map[string]int, len(cards)),
	}
	copy(c.cards, cards)

	var errs []error
	for i, card := range c.cards {
		if err := validateCard(card); err != nil {
			errs = append(errs, fmt.Errorf("card %d (%q): %w", i, card.ID, err))
			continue
		}
		if _, dup := c.byID[card.ID]; dup {
			errs = append(errs, fmt.Errorf("card %d: duplicate id %q", i, card.ID))
		}
		if _, dup := c.bySlug[card.Slug]; dup {
			errs = append(errs, fmt.Errorf("card %d: duplicate slug %q", i, card.Slug))
		}
		c.byID[card.ID] = i
		c.bySlug[card.Slug] = i
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return c, nil
}

// MustNew is New for fixtures and embedded data; it panics on invalid input.
func MustNew(cards []models.Card) *Catalog {
	c, err := New(cards)
	if err != nil {
		panic(err)
	}
	return c
}

func validateCard(c models.Card) error {
	switch {
	case strings.TrimSpace(c.ID) == "":
		return errors.New("empty id")
	case strings.TrimSpace(c.Name) == "":
		return errors.New("empty name")
	case strings.TrimSpace(c.Bank) == "":
		return errors.New("empty bank")
	case !slugPattern.MatchString(c.Slug):
		return fmt.Errorf("slug %q is not URL-safe", c.Slug)
	case c.Rating < 0 || c.Rating > 5:
		return fmt.Errorf("rating %v out of range [0,5]", c.Rating)
	case c.ReviewCount < 0:
		return fmt.Errorf("negative reviewCount %d", c.ReviewCount)
	}
	for _, r := range c.Reviews {
		if r.Rating < 0 || r.Rating > 5 {
			return fmt.Errorf("review %q rating %v out of range [0,5]", r.ID, r.Rating)
		}
	}
	for _, o := range c.OfferHistory {
		if !o.Category.Valid() {
			return fmt.Errorf("offer %q has unknown category %q", o.ID, o.Category)
		}
	}
	return nil
}

// Len is the number of cards.
func (c *Catalog) Len() int { return len(c.cards) }

// Cards returns all cards in catalog order. The slice is a copy; the records
// share nested slices with the catalog and must be treated as read-only.
func (c *Catalog) Cards() []models.Card {
	out := make([]models.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// At returns the card at catalog position i.
func (c *Catalog) At(i int) models.Card { return c.cards[i] }

func (c *Catalog) IndexOfID(id string) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

func (c *Catalog) IndexOfSlug(slug string) (int, bool) {
	i, ok := c.bySlug[slug]
	return i, ok
}
