package repository

import (
	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) Create(interview *model.Interview) error {
	if interview.ID == uuid.Nil {
		interview.ID = uuid.New()
	}
	if interview.Status == "" {
		interview.Status = model.StatusTodo
	}
	return r.db.Create(interview).Error
}

func (r *InterviewRepository) Save(interview *model.Interview) error {
	return r.db.Save(interview).Error
}

func (r *InterviewRepository) FindByID(id string) (*model.Interview, error) {
	var interview model.Interview
	err := r.db.First(&interview, "id = ?", id).Error
	return &interview, err
}

func (r *InterviewRepository) List(page, pageSize int) ([]model.Interview, int64, error) {
	var interviews []model.Interview
	var total int64
	if err := r.db.Model(&model.Interview{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&interviews).Error
	return interviews, total, err
}
