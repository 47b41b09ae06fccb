package cards

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"cardcompare/pkg/models"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

var feeAmountPattern = regexp.MustCompile(`₹([\d,]+)`)

// ParseFeeAmount returns the first rupee amount in a fee display string,
// or 0 when there is none. "₹2,500 (Waived on ...)" parses as 2500.
func ParseFeeAmount(fee string) int {
	m := feeAmountPattern.FindStringSubmatch(fee)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// FeeTrend compares the annual fee of current against previous.
func FeeTrend(current, previous models.PriceChange) Trend {
	cur, prev := ParseFeeAmount(current.AnnualFee), ParseFeeAmount(previous.AnnualFee)
	switch {
	case cur > prev:
		return TrendUp
	case cur < prev:
		return TrendDown
	default:
		return TrendFlat
	}
}

// SortedHistory returns a copy of the price history, newest first. Entries
// with unparseable dates keep their relative order at the end.
func SortedHistory(history []models.PriceChange) []models.PriceChange {
	out := make([]models.PriceChange, len(history))
	copy(out, history)
	sort.SliceStable(out, func(i, j int) bool {
		ti, okI := parseDate(out[i].Date)
		tj, okJ := parseDate(out[j].Date)
		switch {
		case okI && okJ:
			return ti.After(tj)
		default:
			return okI && !okJ
		}
	})
	return out
}

// HistoryRow is one price-history entry with its trend against the next
// older entry. Trend is empty for the oldest entry.
type HistoryRow struct {
	models.PriceChange
	Trend   Trend
	Current bool
}

func HistoryRows(history []models.PriceChange) []HistoryRow {
	sorted := SortedHistory(history)
	rows := make([]HistoryRow, len(sorted))
	for i, h := range sorted {
		rows[i] = HistoryRow{PriceChange: h, Current: i == 0}
		if i < len(sorted)-1 {
			rows[i].Trend = FeeTrend(h, sorted[i+1])
		}
	}
	return rows
}

// DescribeTrend renders a one-sentence, deterministic description of the
// annual fee movement between the oldest and newest entries. It returns ""
// when fewer than two entries exist.
func DescribeTrend(history []models.PriceChange) string {
	if len(history) < 2 {
		return ""
	}
	sorted := SortedHistory(history)
	newest, oldest := sorted[0], sorted[len(sorted)-1]

	var direction string
	switch FeeTrend(newest, oldest) {
	case TrendUp:
		direction = fmt.Sprintf("increased from ₹%s to ₹%s", formatRupees(ParseFeeAmount(oldest.AnnualFee)), formatRupees(ParseFeeAmount(newest.AnnualFee)))
	case TrendDown:
		direction = fmt.Sprintf("decreased from ₹%s to ₹%s", formatRupees(ParseFeeAmount(oldest.AnnualFee)), formatRupees(ParseFeeAmount(newest.AnnualFee)))
	default:
		direction = "remained stable"
	}

	tNew, okNew := parseDate(newest.Date)
	tOld, okOld := parseDate(oldest.Date)
	if okNew && okOld {
		months := int(math.Round(tNew.Sub(tOld).Hours() / (24 * 30)))
		return fmt.Sprintf("Over the past %d months, the annual fee has %s.", months, direction)
	}
	return fmt.Sprintf("Since %s, the annual fee has %s.", oldest.Date, direction)
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	return t, err == nil
}

// formatRupees groups digits the Indian way: 300000 -> 3,00,000.
func formatRupees(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
