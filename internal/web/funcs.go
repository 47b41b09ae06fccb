package web

import (
	"html/template"
	"strings"

	"cardcompare/internal/cards"
)

var funcs = template.FuncMap{
	"headTags": func(tags []string) []string {
		if len(tags) > shownTags {
			return tags[:shownTags]
		}
		return tags
	},
	"moreTags": func(tags []string) int {
		if len(tags) > shownTags {
			return len(tags) - shownTags
		}
		return 0
	},
	"trendArrow": func(t cards.Trend) string {
		switch t {
		case cards.TrendUp:
			return "▲"
		case cards.TrendDown:
			return "▼"
		case cards.TrendFlat:
			return "–"
		}
		return ""
	},
	"join": strings.Join,
	"appendID": func(ids, id string) string {
		if ids == "" {
			return id
		}
		return ids + "," + id
	},
	"plural": func(n int, one, many string) string {
		if n == 1 {
			return one
		}
		return many
	},
}
