package cards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"cardcompare/pkg/catalog"
	"cardcompare/pkg/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func fixtureCards() []models.Card {
	return []models.Card{
		{
			ID: "hdfc-regalia", Slug: "hdfc-regalia", Name: "Regalia Credit Card", Bank: "HDFC Bank",
			AnnualFee: "₹2,500", RewardsRate: "4 points per ₹150 spent",
			Tags:      []string{"Travel", "Airport Lounge", "Premium"},
			Benefits:  []string{"Complimentary airport lounge access", "1% fuel surcharge waiver"},
			AISummary: "A premium card for frequent flyers.",
		},
		{
			ID: "axis-magnus", Slug: "axis-magnus", Name: "Magnus Credit Card", Bank: "Axis Bank",
			AnnualFee: "₹12,500", RewardsRate: "12 EDGE points per ₹200",
			Tags:     []string{"Premium", "Golf"},
			Benefits: []string{"Unlimited lounge visits"},
		},
		{
			ID: "sbi-elite", Slug: "sbi-card-elite", Name: "SBI Card ELITE", Bank: "SBI Card",
			AnnualFee: "₹4,999", RewardsRate: "5X on dining",
			Tags:    []string{"Movies"},
			Summary: "Good for weekend movies and dining.",
		},
		{
			ID: "hdfc-millennia", Slug: "hdfc-millennia", Name: "Millennia Credit Card", Bank: "HDFC Bank",
			AnnualFee: "₹1,000", RewardsRate: "5% cashback",
			Tags: []string{"Cashback", "Entry Level"},
		},
		{
			ID: "axis-ace", Slug: "axis-ace", Name: "ACE Credit Card", Bank: "Axis Bank",
			AnnualFee: "₹499", RewardsRate: "5% cashback on bill payments",
			Tags: []string{"Cashback", "No Annual Fee"},
		},
	}
}

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	c, err := catalog.New(fixtureCards())
	require.NoError(t, err)
	return NewRepo(c)
}

func ids(cards []models.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestListAllPreservesOrder(t *testing.T) {
	r := newTestRepo(t)
	assert.Equal(t, []string{"hdfc-regalia", "axis-magnus", "sbi-elite", "hdfc-millennia", "axis-ace"}, ids(r.ListAll()))
}

func TestListFilters(t *testing.T) {
	r := newTestRepo(t)

	tests := []struct {
		name string
		q    ListQuery
		want []string
	}{
		{"no constraints", ListQuery{}, []string{"hdfc-regalia", "axis-magnus", "sbi-elite", "hdfc-millennia", "axis-ace"}},
		{"bank substring case-insensitive", ListQuery{Bank: "hdfc"}, []string{"hdfc-regalia", "hdfc-millennia"}},
		{"tags any-match", ListQuery{Tags: []string{"Golf", "Movies"}}, []string{"axis-magnus", "sbi-elite"}},
		{"bank and tags compose", ListQuery{Bank: "axis", Tags: []string{"Cashback"}}, []string{"axis-ace"}},
		{"limit applied last", ListQuery{Tags: []string{"Cashback", "Premium"}, Limit: 2}, []string{"hdfc-regalia", "axis-magnus"}},
		{"tags are exact", ListQuery{Tags: []string{"cashback"}}, []string{}},
		{"unknown bank", ListQuery{Bank: "icici"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(r.List(tt.q)))
		})
	}
}

func TestGetByIDAndSlug(t *testing.T) {
	r := newTestRepo(t)

	c := r.GetByID("sbi-elite")
	require.NotNil(t, c)
	assert.Equal(t, "SBI Card ELITE", c.Name)

	assert.Nil(t, r.GetByID("sbi-card-elite"), "slug is not an id")
	assert.Nil(t, r.GetByID("missing"))

	c = r.GetBySlug("sbi-card-elite")
	require.NotNil(t, c)
	assert.Equal(t, "sbi-elite", c.ID)
	assert.Nil(t, r.GetBySlug("sbi-elite"))
}

func TestGetManyByIDsUsesCatalogOrder(t *testing.T) {
	r := newTestRepo(t)
	got := r.GetManyByIDs([]string{"axis-magnus", "hdfc-regalia", "nope", "axis-magnus"})
	assert.Equal(t, []string{"hdfc-regalia", "axis-magnus"}, ids(got))
	assert.Empty(t, r.GetManyByIDs(nil))
}

func TestGetSimilar(t *testing.T) {
	r := newTestRepo(t)

	for _, card := range r.ListAll() {
		got := r.GetSimilar(card.ID)
		assert.LessOrEqual(t, len(got), 3)
		for _, s := range got {
			assert.NotEqual(t, card.ID, s.ID)
			sharesTag := false
			for _, tag := range s.Tags {
				for _, ref := range card.Tags {
					sharesTag = sharesTag || tag == ref
				}
			}
			assert.True(t, s.Bank == card.Bank || sharesTag, "%s is not similar to %s", s.ID, card.ID)
		}
	}

	// same bank (millennia) or shared Premium tag (magnus)
	assert.Equal(t, []string{"axis-magnus", "hdfc-millennia"}, ids(r.GetSimilar("hdfc-regalia")))
	assert.Equal(t, []string{}, ids(r.GetSimilar("unknown")))
}

func TestSearch(t *testing.T) {
	r := newTestRepo(t)

	assert.Empty(t, r.Search(""))
	assert.Empty(t, r.Search("   "))

	assert.Equal(t, []string{"hdfc-regalia", "hdfc-millennia"}, ids(r.Search("HDFC")))
	assert.Equal(t, []string{"hdfc-regalia", "axis-magnus"}, ids(r.Search("lounge")), "tag or benefit")
	assert.Equal(t, []string{"hdfc-regalia"}, ids(r.Search("frequent FLYERS")), "aiSummary")
	assert.Equal(t, []string{"sbi-elite"}, ids(r.Search("weekend movies")), "summary")
	assert.Equal(t, []string{"hdfc-regalia"}, ids(r.Search("  fuel surcharge ")))
	assert.Empty(t, r.Search("mortgage"))
}

func TestSearchFindsEverySubstring(t *testing.T) {
	r := newTestRepo(t)
	for _, card := range r.ListAll() {
		fields := append([]string{card.Name, card.Bank, card.NarrativeSummary()}, card.Tags...)
		fields = append(fields, card.Benefits...)
		for _, f := range fields {
			if len(f) < 4 {
				continue
			}
			q := strings.ToUpper(f[1:4])
			assert.Contains(t, ids(r.Search(q)), card.ID, "query %q", q)
		}
	}
}

func TestTopBanksTags(t *testing.T) {
	r := newTestRepo(t)
	assert.Equal(t, []string{"hdfc-regalia", "axis-magnus", "sbi-elite"}, ids(r.Top(3)))
	assert.Len(t, r.Top(0), 5)
	assert.Equal(t, []string{"HDFC Bank", "Axis Bank", "SBI Card"}, r.Banks())
	assert.Equal(t, []string{"Travel", "Airport Lounge", "Premium", "Golf", "Movies", "Cashback", "Entry Level", "No Annual Fee"}, r.Tags())
}

func TestCompare(t *testing.T) {
	cards := fixtureCards()
	cards[0].BenefitCategories = map[string][]string{"Travel": {"a"}, "Dining": {"b"}}
	cards[1].BenefitCategories = map[string][]string{"Golf": {"c"}}
	cards[0].Fees = map[string]string{"Annual Fee": "₹2,500"}
	cards[1].Fees = map[string]string{"Late Payment Fee": "₹750", "Annual Fee": "₹12,500"}
	r := NewRepo(catalog.MustNew(cards))

	cmp := r.Compare([]string{"axis-magnus", "hdfc-regalia"})
	assert.Equal(t, []string{"hdfc-regalia", "axis-magnus"}, ids(cmp.Items))
	assert.Equal(t, []string{"Dining", "Golf", "Travel"}, cmp.BenefitCategories)
	assert.Equal(t, []string{"Annual Fee", "Late Payment Fee"}, cmp.FeeNames)

	all := r.Compare(ids(r.ListAll()))
	assert.Len(t, all.Items, MaxCompare)
}
