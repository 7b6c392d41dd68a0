package handler

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/interview-coach/internal/dto"
	"github.com/fadilmartias/interview-coach/internal/middleware"
	"github.com/fadilmartias/interview-coach/internal/usecase"
	"github.com/fadilmartias/interview-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/interview", h.Create)
	app.Get("/interviews", h.List)
	app.Get("/interview/:id", h.Get)
	app.Get("/interview/:id/questions", h.Questions)
	app.Post("/upload_resume/:id", middleware.RateLimiter(5, 10*time.Second), h.UploadResume)
}

func (h *InterviewHandler) Create(c *fiber.Ctx) error {
	interview, err := h.uc.CreateInterview()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create interview",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create interview",
		Data:    dto.InterviewDTO{ID: interview.ID, Status: interview.Status},
	})
}

func (h *InterviewHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	interview, err := h.uc.GetInterview(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "interview not found",
		}, nil)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interview",
		Data:    dto.InterviewDTO{ID: interview.ID, Status: interview.Status},
	})
}

func (h *InterviewHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	interviews, pagination, err := h.uc.ListInterviews(page, pageSize)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list interviews",
		}, err)
	}

	data := make([]dto.InterviewDTO, 0, len(interviews))
	for _, interview := range interviews {
		data = append(data, dto.InterviewDTO{ID: interview.ID, Status: interview.Status})
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success list interviews",
		Data:       data,
		Pagination: pagination,
	})
}

func (h *InterviewHandler) Questions(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.uc.GetInterview(id); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "interview not found",
		}, nil)
	}

	questions, err := h.uc.GetQuestions(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load questions",
		}, err)
	}

	data := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		data = append(data, dto.QuestionDTO{ID: q.ID, Question: q.Question, Answer: q.Answer})
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get questions",
		Data:    data,
	})
}

func (h *InterviewHandler) UploadResume(c *fiber.Ctx) error {
	id := c.Params("id")

	file, err := c.FormFile("file")
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file is required",
		}, err)
	}

	if file.Size > 5*1024*1024 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "file size is too large (max 5MB)",
		}, nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".pdf" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: fmt.Sprintf("unsupported file type %s", ext),
		}, nil)
	}

	savePath := filepath.Join("./uploads/resume/", file.Filename)
	if err := c.SaveFile(file, savePath); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "cannot save file",
		}, err)
	}

	resumeText, err := util.ExtractPDFText(savePath)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to extract resume text",
		}, err)
	}

	interview, err := h.uc.UploadResume(id, resumeText)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "interview not found",
		}, nil)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success upload resume",
		Data:    dto.InterviewDTO{ID: interview.ID, Status: interview.Status},
	})
}
