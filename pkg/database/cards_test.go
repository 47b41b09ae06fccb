package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"cardcompare/pkg/models"
)

func TestSaveAndLoadCardsRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	db, err := Open(Config{Path: path})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	cards := []models.Card{
		{
			ID: "b", Slug: "b-card", Name: "B", Bank: "Axis Bank", Tags: []string{"Travel"},
			Fees:         map[string]string{"Annual Fee": "₹500"},
			OfferHistory: []models.Offer{{ID: "o1", IsActive: true, Category: models.OfferCashback}},
		},
		{ID: "a", Slug: "a-card", Name: "A", Bank: "HDFC Bank", Tags: []string{"Cashback"}, Rating: 4.2},
	}
	require.NoError(t, SaveCards(ctx, db, cards))
	// saving twice replaces rather than duplicates
	require.NoError(t, SaveCards(ctx, db, cards))
	require.NoError(t, db.Close())

	ro, err := Open(Config{Path: path, ReadOnly: true})
	require.NoError(t, err)
	defer ro.Close()

	got, err := LoadCards(ctx, ro)
	require.NoError(t, err)
	if diff := cmp.Diff(cards, got); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenReadOnlyMissingFile(t *testing.T) {
	_, err := Open(Config{Path: filepath.Join(t.TempDir(), "missing.db"), ReadOnly: true})
	require.Error(t, err)
}
