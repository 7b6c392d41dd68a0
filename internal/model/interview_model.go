package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusTodo           = "TODO"
	StatusResumeUploaded = "RESUME_UPLOADED"
	StatusInterviewDone  = "CHATBOT_INTERVIEW_DONE"
)

type Interview struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Status     string     `gorm:"type:varchar(50);default:'TODO'" json:"status"`
	ResumeText string     `gorm:"type:text" json:"resume_text"`
	Questions  []Question `gorm:"foreignKey:InterviewID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (i *Interview) TableName() string {
	return "interviews"
}
