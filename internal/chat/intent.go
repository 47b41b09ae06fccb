package chat

import (
	"strings"

	"cardcompare/pkg/models"
)

// intentRule narrows search matches when the message mentions one of its
// keywords. Rules are checked in order and the first hit wins.
type intentRule struct {
	name     string
	keywords []string
	keep     func(models.Card) bool
}

var intentRules = []intentRule{
	{
		name:     "lounge",
		keywords: []string{"lounge", "airport"},
		keep: func(c models.Card) bool {
			return hasTag(c, "Airport Lounge") || anyContains(c.Benefits, "lounge")
		},
	},
	{
		name:     "fuel",
		keywords: []string{"fuel", "petrol"},
		keep: func(c models.Card) bool {
			return hasTag(c, "Fuel") || anyContains(c.Benefits, "fuel")
		},
	},
	{
		name:     "cashback",
		keywords: []string{"cashback"},
		keep: func(c models.Card) bool {
			return hasTag(c, "Cashback") || strings.Contains(strings.ToLower(c.RewardsRate), "cashback")
		},
	},
	{
		name:     "no_annual_fee",
		keywords: []string{"no annual fee", "free"},
		keep: func(c models.Card) bool {
			return hasTag(c, "No Annual Fee") || strings.Contains(strings.ToLower(c.AnnualFee), "waived")
		},
	},
	{
		name:     "beginner",
		keywords: []string{"first time", "beginner"},
		keep: func(c models.Card) bool {
			return hasTag(c, "Entry Level") || anyContains(c.Eligibility, "first-time")
		},
	},
	{
		name:     "travel",
		keywords: []string{"travel"},
		keep:     func(c models.Card) bool { return hasTag(c, "Travel") },
	},
	{
		name:     "premium",
		keywords: []string{"premium", "luxury"},
		keep:     func(c models.Card) bool { return hasTag(c, "Premium") },
	},
}

// narrow applies the first matching intent rule to matches. Messages with no
// recognised intent (comparisons included) keep every match.
func narrow(message string, matches []models.Card) (string, []models.Card) {
	msg := strings.ToLower(message)
	for _, rule := range intentRules {
		if !containsAny(msg, rule.keywords) {
			continue
		}
		out := make([]models.Card, 0, len(matches))
		for _, c := range matches {
			if rule.keep(c) {
				out = append(out, c)
			}
		}
		return rule.name, out
	}
	return "general", matches
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasTag(c models.Card, tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func anyContains(items []string, sub string) bool {
	for _, s := range items {
		if strings.Contains(strings.ToLower(s), sub) {
			return true
		}
	}
	return false
}
