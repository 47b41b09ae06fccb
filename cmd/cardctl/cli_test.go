package main

import (
	"bytes"
	"encoding/csv"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardcompare/internal/server"
	"cardcompare/pkg/catalog"
	"cardcompare/pkg/utils"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CARDCOMPARE_CATALOG", "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateEmbeddedCatalog(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog ok: 6 cards, 4 banks")
}

func TestValidateRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"x","slug":"Not A Slug","name":"X","bank":"B"}]`), 0o644))

	_, err := run(t, "validate", "--catalog", path)
	assert.Error(t, err)
}

func TestSearchCommand(t *testing.T) {
	out, err := run(t, "search", "lounge")
	require.NoError(t, err)
	assert.Contains(t, out, "hdfc-regalia")
	assert.Contains(t, out, "4 cards found")

	out, err = run(t, "search", "--bank", "axis")
	require.NoError(t, err)
	assert.Contains(t, out, "axis-magnus")
	assert.Contains(t, out, "axis-ace")
	assert.NotContains(t, out, "hdfc-regalia")
}

func TestExportCSV(t *testing.T) {
	out, err := run(t, "export", "csv", "--out", "-")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "hdfc-regalia", records[1][0])
	assert.Equal(t, "Travel|Airport Lounge|Dining|Premium", records[1][8])
}

func TestExportSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap", "catalog.db")

	out, err := run(t, "export", "sqlite", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 6 cards")

	out, err = run(t, "validate", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "catalog ok: 6 cards")

	def, err := catalog.Default()
	require.NoError(t, err)
	snap, err := catalog.Load(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, def.Cards(), snap.Cards())
}

func TestAskOverWebsocket(t *testing.T) {
	t.Setenv("CARDCOMPARE_LLM_PROVIDER", "none")
	t.Setenv("CARDCOMPARE_REDIS_ADDR", "")
	gin.SetMode(gin.TestMode)

	app, err := server.Bootstrap(t.Context(), "", nil)
	require.NoError(t, err)
	srv := httptest.NewServer(server.NewRouter(server.Deps{
		App:       utils.AppConfig{Name: "CardCompare", Features: utils.AllFeatures()},
		Cards:     app.Cards,
		Assistant: app.Assistant,
		Chat:      app.Chat,
	}))
	defer srv.Close()

	out, err := run(t, "ask", "--server", srv.URL, "cashback")
	require.NoError(t, err)
	assert.Contains(t, out, `match your query: "cashback"`)
	assert.Contains(t, out, "Millennia Credit Card (HDFC Bank)")

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetIn(strings.NewReader("lounge\n\n   \n"))
	cmd.SetArgs([]string{"ask", "--server", srv.URL})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, strings.Count(buf.String(), "match your query"))
}

func TestWebsocketURL(t *testing.T) {
	u, err := websocketURL("https://cards.example.com/base", "/ws/chat")
	require.NoError(t, err)
	assert.Equal(t, "wss://cards.example.com/ws/chat", u)

	u, err = websocketURL("http://localhost:8080", "/ws/chat")
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:8080/ws/chat", u)

	_, err = websocketURL("localhost", "/ws/chat")
	assert.Error(t, err)
}
