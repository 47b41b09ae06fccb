package cards

import (
	"sort"

	"cardcompare/pkg/models"
)

// MaxCompare is the number of cards shown side by side.
const MaxCompare = 4

// Comparison is a side-by-side view of up to MaxCompare cards. The row sets
// are the sorted unions of every card's benefit categories and fee names.
type Comparison struct {
	Items             []models.Card `json:"items"`
	BenefitCategories []string      `json:"benefitCategories"`
	FeeNames          []string      `json:"feeNames"`
}

// Compare resolves ids against the catalog (catalog order, unknown ids
// dropped) and builds the comparison rows.
func (r *Repo) Compare(ids []string) Comparison {
	items := truncate(r.GetManyByIDs(ids), MaxCompare)

	cats := map[string]struct{}{}
	fees := map[string]struct{}{}
	for _, c := range items {
		for k := range c.BenefitCategories {
			cats[k] = struct{}{}
		}
		for k := range c.Fees {
			fees[k] = struct{}{}
		}
	}
	return Comparison{
		Items:             items,
		BenefitCategories: SortedKeys(cats),
		FeeNames:          SortedKeys(fees),
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
