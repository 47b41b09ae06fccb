package chat

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardcompare/internal/assistant"
)

func TestWSChatSession(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, assistant.Disabled()))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	require.NoError(t, conn.WriteJSON(map[string]string{"message": "premium"}))
	var reply Reply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.NotEmpty(t, reply.Text)
	require.Len(t, reply.Cards, 2)
	assert.Equal(t, "t2", reply.Cards[0].ID)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"message":42}`)))
	var bad map[string]string
	require.NoError(t, conn.ReadJSON(&bad))
	assert.NotEmpty(t, bad["error"])

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("fuel")))
	require.NoError(t, conn.ReadJSON(&reply))
	require.Len(t, reply.Cards, 1)
	assert.Equal(t, "f1", reply.Cards[0].ID)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`"fuel"`)))
	require.NoError(t, conn.ReadJSON(&reply))
	require.Len(t, reply.Cards, 1)
	assert.Equal(t, "f1", reply.Cards[0].ID)
	assert.Equal(t, assistant.ChatFallbackText("fuel", 1), reply.Text)
}

func TestParseFrame(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    *string
	}{
		{"object", `{"message":"travel"}`, ptr("travel")},
		{"json string", `"hello"`, ptr("hello")},
		{"json string keeps spaces", `"   "`, ptr("   ")},
		{"plain text", "  lounge cards ", ptr("lounge cards")},
		{"object wrong type", `{"message":42}`, nil},
		{"object missing message", `{"text":"hi"}`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseFrame([]byte(tc.payload))
			assert.Equal(t, tc.want, got.Message)
		})
	}
}

func ptr(s string) *string { return &s }

func TestHubCloseAll(t *testing.T) {
	hub := NewHub()
	assert.Equal(t, 0, hub.Count())
	hub.CloseAll()
	assert.False(t, hub.Join(nil), "closed hub refuses sessions")
}
