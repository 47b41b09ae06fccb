package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"cardcompare/internal/assistant"
	"cardcompare/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const maxFrameBytes = 16 << 10

type incomingMessage struct {
	Message *string `json:"message"`
}

type errorFrame struct {
	Error string `json:"error"`
	Text  string `json:"text,omitempty"`
}

// WSHandler serves one chat session per connection. Each text frame carries
// {"message": "..."} and gets exactly one JSON frame back.
func WSHandler(svc *Service, hub *Hub, log *logger.Logger) gin.HandlerFunc {
	log = logger.OrNop(log)
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warn("websocket upgrade failed", "error", err)
			return
		}
		if !hub.Join(ws) {
			_ = ws.Close()
			return
		}
		defer hub.Leave(ws)
		ws.SetReadLimit(maxFrameBytes)

		for {
			_, payload, err := ws.ReadMessage()
			if err != nil {
				break
			}

			incoming := parseFrame(payload)
			if incoming.Message == nil {
				if err := ws.WriteJSON(errorFrame{Error: "message is required and must be a string"}); err != nil {
					break
				}
				continue
			}

			reply, err := svc.Answer(c.Request.Context(), *incoming.Message)
			switch {
			case errors.Is(err, ErrEmptyMessage):
				err = ws.WriteJSON(errorFrame{Error: "message is required and must be a string"})
			case err != nil:
				log.Error("ws chat failed", "error", err)
				err = ws.WriteJSON(errorFrame{Error: assistant.ChatErrorMessage, Text: assistant.ChatApology})
			default:
				err = ws.WriteJSON(reply)
			}
			if err != nil {
				break
			}
		}
	}
}

// parseFrame accepts {"message": "..."}, a bare JSON string or plain text.
// A JSON object without a string message yields a nil Message.
func parseFrame(payload []byte) incomingMessage {
	var incoming incomingMessage
	text := strings.TrimSpace(string(payload))
	if strings.HasPrefix(text, "{") {
		_ = json.Unmarshal(payload, &incoming)
		return incoming
	}

	var s string
	if err := json.Unmarshal(payload, &s); err == nil {
		incoming.Message = &s
		return incoming
	}
	incoming.Message = &text
	return incoming
}
