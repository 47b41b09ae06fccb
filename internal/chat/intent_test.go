package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardcompare/pkg/models"
)

func TestNarrow(t *testing.T) {
	all := []models.Card{
		{ID: "lounge-benefit", Benefits: []string{"Unlimited Lounge visits"}},
		{ID: "cashback-rate", RewardsRate: "5% Cashback on bills"},
		{ID: "waived", AnnualFee: "₹500 (Waived on ₹2L spend)"},
		{ID: "first-timer", Eligibility: []string{"Open to first-time card holders"}},
		{ID: "travel", Tags: []string{"Travel"}},
		{ID: "premium", Tags: []string{"Premium"}},
		{ID: "fuel", Tags: []string{"Fuel"}},
	}

	tests := []struct {
		message string
		intent  string
		want    []string
	}{
		{"Airport access please", "lounge", []string{"lounge-benefit"}},
		{"best PETROL card", "fuel", []string{"fuel"}},
		{"cashback", "cashback", []string{"cashback-rate"}},
		{"lifetime free card", "no_annual_fee", []string{"waived"}},
		{"beginner card", "beginner", []string{"first-timer"}},
		{"travel", "travel", []string{"travel"}},
		{"luxury", "premium", []string{"premium"}},
		{"travel lounge", "lounge", []string{"lounge-benefit"}},
		{"compare a vs b", "general", []string{"lounge-benefit", "cashback-rate", "waived", "first-timer", "travel", "premium", "fuel"}},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent, got := narrow(tt.message, all)
			assert.Equal(t, tt.intent, intent)
			var ids []string
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
