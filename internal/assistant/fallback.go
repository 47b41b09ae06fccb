package assistant

import (
	"fmt"
	"strings"

	"cardcompare/pkg/models"
)

// Fixed strings returned to clients. They are part of the client contract.
const (
	ChatErrorMessage    = "Failed to process your request"
	ChatApology         = "I'm sorry, I couldn't process your request at the moment. Please try again later."
	SummaryErrorMessage = "Failed to generate summary"
	TrendErrorMessage   = "Failed to analyze price trend"
	InsufficientHistory = "Insufficient price history data for trend analysis."
	TrendUnavailable    = "Unable to generate price trend analysis at this time."
	GenericSummary      = "This credit card offers a competitive rewards program and benefits package tailored to its target audience. With its annual fee structure and welcome bonus, it provides good value for the right user profile. Consider your spending habits and lifestyle needs when evaluating this card."
)

// RenderSummary formats a card into a three-sentence narrative. It is pure and
// total: missing tags or benefits drop their clause instead of failing.
func RenderSummary(card models.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The %s by %s offers %s rewards with an annual fee of %s.",
		card.Name, card.Bank, card.RewardsRate, card.AnnualFee)

	tags := strings.ToLower(joinFirst(card.Tags, 2))
	benefits := joinFirst(card.Benefits, 2)
	switch {
	case tags != "" && benefits != "":
		fmt.Fprintf(&b, " This card is ideal for users seeking %s benefits, with standout features including %s.", tags, benefits)
	case tags != "":
		fmt.Fprintf(&b, " This card is ideal for users seeking %s benefits.", tags)
	case benefits != "":
		fmt.Fprintf(&b, " Standout features include %s.", benefits)
	}

	fmt.Fprintf(&b, " %s customers enjoy additional ecosystem benefits and preferential treatment across banking services.", card.Bank)
	return b.String()
}

// ChatFallbackText is the answer used when no generated text is available.
// matches is the number of search results, before narrowing.
func ChatFallbackText(message string, matches int) string {
	return fmt.Sprintf("Here's some information about credit cards that match your query: \"%s\". I've found %d cards that might be relevant for you.", message, matches)
}

func joinFirst(items []string, n int) string {
	var picked []string
	for _, s := range items {
		if len(picked) == n {
			break
		}
		if s = strings.TrimSpace(s); s != "" {
			picked = append(picked, s)
		}
	}
	return strings.Join(picked, " and ")
}
