package models

// Card is one credit-card product as it appears in the catalog.
//
// JSON and YAML field names match the public client contract, so the same
// struct is used for the data file, the HTTP API and the gRPC codec.
type Card struct {
	ID           string   `json:"id" yaml:"id"`     // stable opaque id
	Slug         string   `json:"slug" yaml:"slug"` // URL-safe lookup key, distinct from ID
	Name         string   `json:"name" yaml:"name"`
	Bank         string   `json:"bank" yaml:"bank"`       // issuing bank
	Network      string   `json:"network" yaml:"network"` // "Visa", "Mastercard", ...
	AnnualFee    string   `json:"annualFee" yaml:"annualFee"`
	RewardsRate  string   `json:"rewardsRate" yaml:"rewardsRate"`
	WelcomeBonus string   `json:"welcomeBonus" yaml:"welcomeBonus"`
	Tags         []string `json:"tags" yaml:"tags"` // ordered; order drives "top N" display

	Summary     string  `json:"summary,omitempty" yaml:"summary,omitempty"`
	AISummary   string  `json:"aiSummary,omitempty" yaml:"aiSummary,omitempty"`
	Rating      float64 `json:"rating,omitempty" yaml:"rating,omitempty"` // 0-5
	ReviewCount int     `json:"reviewCount,omitempty" yaml:"reviewCount,omitempty"`

	Benefits             []string            `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	BenefitCategories    map[string][]string `json:"benefitCategories,omitempty" yaml:"benefitCategories,omitempty"`
	Fees                 map[string]string   `json:"fees,omitempty" yaml:"fees,omitempty"`
	Eligibility          []string            `json:"eligibility,omitempty" yaml:"eligibility,omitempty"`
	BankSpecificBenefits []string            `json:"bankSpecificBenefits,omitempty" yaml:"bankSpecificBenefits,omitempty"`
	Reviews              []Review            `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	ApplyLink            string              `json:"applyLink,omitempty" yaml:"applyLink,omitempty"`
	LastUpdated          string              `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`

	PriceHistory           []PriceChange   `json:"priceHistory,omitempty" yaml:"priceHistory,omitempty"`
	OfferHistory           []Offer         `json:"offerHistory,omitempty" yaml:"offerHistory,omitempty"`
	BankSpecificHighlights []BankHighlight `json:"bankSpecificHighlights,omitempty" yaml:"bankSpecificHighlights,omitempty"`
}

// NarrativeSummary returns the precomputed narrative text, preferring aiSummary.
func (c Card) NarrativeSummary() string {
	if c.AISummary != "" {
		return c.AISummary
	}
	return c.Summary
}

// PriceChange is one dated entry of a card's fee history, newest first.
type PriceChange struct {
	Date         string   `json:"date" yaml:"date"`
	AnnualFee    string   `json:"annualFee" yaml:"annualFee"`
	WelcomeBonus string   `json:"welcomeBonus" yaml:"welcomeBonus"`
	Changes      []string `json:"changes" yaml:"changes"`
}

type OfferCategory string

const (
	OfferWelcomeBonus OfferCategory = "welcome-bonus"
	OfferCashback     OfferCategory = "cashback"
	OfferRewards      OfferCategory = "rewards"
	OfferFeeWaiver    OfferCategory = "fee-waiver"
	OfferSpecial      OfferCategory = "special-offer"
)

// Valid reports whether c is one of the known offer categories.
func (c OfferCategory) Valid() bool {
	switch c {
	case OfferWelcomeBonus, OfferCashback, OfferRewards, OfferFeeWaiver, OfferSpecial:
		return true
	}
	return false
}

// Offer is a promotional offer. IsActive is authored data and is never
// recomputed from ValidFrom/ValidTo.
type Offer struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	ValidFrom   string        `json:"validFrom" yaml:"validFrom"`
	ValidTo     string        `json:"validTo" yaml:"validTo"`
	IsActive    bool          `json:"isActive" yaml:"isActive"`
	Category    OfferCategory `json:"category" yaml:"category"`
}

type BankHighlight struct {
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Benefits    []string `json:"benefits" yaml:"benefits"`
}
