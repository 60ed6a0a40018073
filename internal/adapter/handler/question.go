package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-coach/internal/adapter/dto/question"
	"github.com/interview-coach-team/interview-coach/internal/adapter/presenter"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	"github.com/interview-coach-team/interview-coach/internal/domain/repositories"
	questionUsecase "github.com/interview-coach-team/interview-coach/internal/usecase/question"
)

// Question handles question-bank HTTP requests
type Question struct {
	questionService questionUsecase.Service
	logger          *zap.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService questionUsecase.Service, logger *zap.Logger) *Question {
	return &Question{
		questionService: questionService,
		logger:          logger,
	}
}

// ListQuestions handles GET /questions
// @Summary      Browse the question bank
// @Description  Gets a paginated list of interview questions with optional filters
// @Tags         Questions
// @Produce      json
// @Param        category    query     string  false  "Category filter (behavioral/technical/situational/general)"
// @Param        difficulty  query     string  false  "Difficulty filter (easy/medium/hard)"
// @Param        page        query     int     false  "Page number (default: 1)"
// @Param        page_size   query     int     false  "Items per page (default: 20)"
// @Success      200         {object}  question.QuestionListResponse  "List of questions"
// @Failure      400         {object}  map[string]interface{}  "Invalid request"
// @Router       /questions [get]
func (h *Question) ListQuestions(c echo.Context) error {
	var req question.ListQuestionsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	// Set defaults
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	filters := repositories.QuestionFilters{
		Category:   req.Category,
		Difficulty: req.Difficulty,
		Limit:      req.PageSize,
		Offset:     (req.Page - 1) * req.PageSize,
	}

	questions, total, err := h.questionService.ListQuestions(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToQuestionListResponse(questions, total, req.Page, req.PageSize))
}

// GetQuestion handles GET /questions/:id
// @Summary      Get question details
// @Description  Gets a single question including its reference answer and keywords
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "Question ID (UUID)"
// @Success      200  {object}  question.QuestionResponse  "Question details"
// @Failure      400  {object}  map[string]interface{}  "Invalid question ID"
// @Failure      404  {object}  map[string]interface{}  "Question not found"
// @Router       /questions/{id} [get]
func (h *Question) GetQuestion(c echo.Context) error {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_question_id",
			"message": "question ID must be a valid UUID",
		})
	}

	q, err := h.questionService.GetQuestion(c.Request().Context(), questionID)
	if err != nil {
		if errors.Is(err, entities.ErrQuestionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "question_not_found",
				"message": err.Error(),
			})
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToQuestionResponse(q, true))
}
