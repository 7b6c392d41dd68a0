package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is one recorded question/answer pair. The row is written only
// once the candidate has answered, so both sides are always present together.
type Question struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID uuid.UUID `gorm:"type:uuid;index" json:"interview_id"`
	Question    string    `gorm:"type:text" json:"question"`
	Answer      string    `gorm:"type:text" json:"answer"`
	CreatedAt   time.Time `json:"created_at"`
}

func (q *Question) TableName() string {
	return "questions"
}
