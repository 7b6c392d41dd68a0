package repository

import (
	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	return r.db.Create(question).Error
}

// FindAllByInterviewID returns the interview's pairs in recording order.
func (r *QuestionRepository) FindAllByInterviewID(interviewID string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("interview_id = ?", interviewID).
		Order("created_at").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) DeleteByInterviewID(interviewID string) error {
	return r.db.Where("interview_id = ?", interviewID).Delete(&model.Question{}).Error
}
