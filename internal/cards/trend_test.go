package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardcompare/pkg/models"
)

func TestParseFeeAmount(t *testing.T) {
	assert.Equal(t, 2500, ParseFeeAmount("₹2,500 (Waived on spending ₹3,00,000/year)"))
	assert.Equal(t, 300000, ParseFeeAmount("₹3,00,000"))
	assert.Equal(t, 0, ParseFeeAmount("Lifetime free"))
	assert.Equal(t, 0, ParseFeeAmount(""))
}

func TestFormatRupees(t *testing.T) {
	assert.Equal(t, "500", formatRupees(500))
	assert.Equal(t, "2,500", formatRupees(2500))
	assert.Equal(t, "12,500", formatRupees(12500))
	assert.Equal(t, "3,00,000", formatRupees(300000))
	assert.Equal(t, "1,00,00,000", formatRupees(10000000))
}

func history() []models.PriceChange {
	return []models.PriceChange{
		{Date: "2024-01-01", AnnualFee: "₹2,000 (Waived on spending ₹2,50,000/year)"},
		{Date: "2025-01-01", AnnualFee: "₹2,500 (Waived on spending ₹3,00,000/year)"},
		{Date: "2024-07-01", AnnualFee: "₹2,500 (Waived on spending ₹2,50,000/year)"},
	}
}

func TestHistoryRows(t *testing.T) {
	rows := HistoryRows(history())
	if assert.Len(t, rows, 3) {
		assert.Equal(t, "2025-01-01", rows[0].Date)
		assert.True(t, rows[0].Current)
		assert.Equal(t, TrendFlat, rows[0].Trend)
		assert.Equal(t, TrendUp, rows[1].Trend)
		assert.Equal(t, Trend(""), rows[2].Trend)
		assert.False(t, rows[2].Current)
	}
}

func TestDescribeTrend(t *testing.T) {
	assert.Equal(t, "", DescribeTrend(history()[:1]))
	assert.Equal(t, "Over the past 12 months, the annual fee has increased from ₹2,000 to ₹2,500.", DescribeTrend(history()))

	down := []models.PriceChange{
		{Date: "2024-06-01", AnnualFee: "₹999"},
		{Date: "2024-01-01", AnnualFee: "₹1,499"},
	}
	assert.Equal(t, "Over the past 5 months, the annual fee has decreased from ₹1,499 to ₹999.", DescribeTrend(down))

	undated := []models.PriceChange{
		{Date: "recently", AnnualFee: "₹500"},
		{Date: "long ago", AnnualFee: "₹500"},
	}
	assert.Equal(t, "Since long ago, the annual fee has remained stable.", DescribeTrend(undated))
}
