package grpcserver

import "cardcompare/pkg/models"

type ListCardsRequest struct {
	Bank  string   `json:"bank,omitempty"`
	Tags  []string `json:"tags,omitempty"`
	Limit int32    `json:"limit,omitempty"`
}

type ListCardsResponse struct {
	Total int32         `json:"total"`
	Items []models.Card `json:"items"`
}

// GetCardRequest looks a card up by ID, or by Slug when ID is empty.
type GetCardRequest struct {
	ID   string `json:"id,omitempty"`
	Slug string `json:"slug,omitempty"`
}

type GetCardResponse struct {
	Card *models.Card `json:"card"`
}

type SearchCardsRequest struct {
	Query string `json:"query"`
}

type SearchCardsResponse struct {
	Query string        `json:"query"`
	Total int32         `json:"total"`
	Items []models.Card `json:"items"`
}

type SimilarCardsRequest struct {
	ID string `json:"id"`
}

type SimilarCardsResponse struct {
	Items []models.Card `json:"items"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Text  string        `json:"text"`
	Cards []models.Card `json:"cards"`
}
