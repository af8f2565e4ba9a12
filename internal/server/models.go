package server

import "github.com/mohammad-safakhou/newsmind/internal/search/model"

// AskRequest is the inbound /ask payload.
type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is always returned with HTTP 200; degraded pipelines produce
// a well-formed payload rather than an error status.
type AskResponse struct {
	Answer  string          `json:"answer"`
	Sources []model.Article `json:"sources"`
}

// EmptyQuestionAnswer is returned when the question is missing or blank.
const EmptyQuestionAnswer = "Please provide a question."
