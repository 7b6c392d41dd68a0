package usecase

import (
	"context"
	"log"
	"math"

	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/fadilmartias/interview-coach/internal/repository"
	"github.com/fadilmartias/interview-coach/internal/response"
	"github.com/fadilmartias/interview-coach/internal/service"
)

type InterviewUsecase struct {
	interviewRepo *repository.InterviewRepository
	questionRepo  *repository.QuestionRepository
	completion    service.CompletionService
	turnLimit     int
}

func NewInterviewUsecase(interviewRepo *repository.InterviewRepository, questionRepo *repository.QuestionRepository, completion service.CompletionService, turnLimit int) *InterviewUsecase {
	if turnLimit < 1 {
		turnLimit = 3
	}
	return &InterviewUsecase{interviewRepo: interviewRepo, questionRepo: questionRepo, completion: completion, turnLimit: turnLimit}
}

func (uc *InterviewUsecase) CreateInterview() (*model.Interview, error) {
	interview := &model.Interview{Status: model.StatusTodo}
	if err := uc.interviewRepo.Create(interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (uc *InterviewUsecase) GetInterview(id string) (*model.Interview, error) {
	return uc.interviewRepo.FindByID(id)
}

func (uc *InterviewUsecase) ListInterviews(page, pageSize int) ([]model.Interview, *response.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	interviews, total, err := uc.interviewRepo.List(page, pageSize)
	if err != nil {
		return nil, nil, err
	}
	from, to := 0, 0
	if len(interviews) > 0 {
		from = (page-1)*pageSize + 1
		to = from + len(interviews) - 1
	}
	pagination := &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int64(math.Ceil(float64(total) / float64(pageSize))),
		TotalItems: total,
		HasMore:    int64(page*pageSize) < total,
		From:       from,
		To:         to,
	}
	return interviews, pagination, nil
}

// UploadResume stores the extracted text wholesale and moves the interview to
// RESUME_UPLOADED. Re-uploading replaces the previous text.
func (uc *InterviewUsecase) UploadResume(id string, resumeText string) (*model.Interview, error) {
	interview, err := uc.interviewRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	interview.ResumeText = resumeText
	// status only moves forward; re-uploading after completion keeps the
	// interview completed
	if interview.Status == model.StatusTodo {
		interview.Status = model.StatusResumeUploaded
	}
	if err := uc.interviewRepo.Save(interview); err != nil {
		return nil, err
	}
	return interview, nil
}

func (uc *InterviewUsecase) GetQuestions(id string) ([]model.Question, error) {
	return uc.questionRepo.FindAllByInterviewID(id)
}

// complete invokes the backend and degrades leniently: a failed call becomes
// an empty completion so the session keeps going instead of aborting.
func (uc *InterviewUsecase) complete(ctx context.Context, prompt string) string {
	text, err := uc.completion.Complete(ctx, prompt)
	if err != nil {
		log.Printf("completion backend error: %v", err)
		return ""
	}
	return text
}
