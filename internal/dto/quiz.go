package dto

import "learnpath/internal/domain"

// QuestionResponse represents one quiz question in the API response
// @Description Quiz question with its answer options
type QuestionResponse struct {
	Question string          `json:"question"`
	Answers  []domain.Answer `json:"answers"`
}

