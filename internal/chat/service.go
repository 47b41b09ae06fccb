package chat

import (
	"context"
	"errors"

	"cardcompare/internal/assistant"
	"cardcompare/internal/cards"
	"cardcompare/pkg/logger"
	"cardcompare/pkg/models"
)

// MaxCards is the most cards a chat reply carries.
const MaxCards = 3

var ErrEmptyMessage = errors.New("message is required and must be a string")

type Reply struct {
	Text  string        `json:"text"`
	Cards []models.Card `json:"cards"`
}

// Service answers free-text questions with search results plus advisor text.
// It is shared by the HTTP, websocket and gRPC transports.
type Service struct {
	Repo      *cards.Repo
	Assistant *assistant.Service
	Log       *logger.Logger
}

func NewService(repo *cards.Repo, asst *assistant.Service, log *logger.Logger) *Service {
	return &Service{Repo: repo, Assistant: asst, Log: logger.OrNop(log)}
}

// Answer returns ErrEmptyMessage for an empty message; every other path yields
// a reply, with generation failures already replaced by fallback text. A
// whitespace-only message is a normal query that matches no cards.
func (s *Service) Answer(ctx context.Context, message string) (Reply, error) {
	if message == "" {
		return Reply{}, ErrEmptyMessage
	}

	matches := s.Repo.Search(message)
	intent, picked := narrow(message, matches)
	if len(picked) > MaxCards {
		picked = picked[:MaxCards]
	}
	s.Log.Debug("chat query", "intent", intent, "matches", len(matches), "returned", len(picked))

	return Reply{
		Text:  s.Assistant.ChatAnswer(ctx, message, matches),
		Cards: picked,
	}, nil
}
