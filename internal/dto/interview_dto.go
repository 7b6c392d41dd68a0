package dto

import (
	"github.com/google/uuid"
)

type InterviewDTO struct {
	ID     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type QuestionDTO struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
}
