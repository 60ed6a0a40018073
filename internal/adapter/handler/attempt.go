package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-coach/internal/adapter/dto/attempt"
	"github.com/interview-coach-team/interview-coach/internal/adapter/presenter"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	attemptUsecase "github.com/interview-coach-team/interview-coach/internal/usecase/attempt"
)

// Attempt handles answer submission and report HTTP requests
type Attempt struct {
	attemptService attemptUsecase.Service
	logger         *zap.Logger
}

// NewAttemptHandler creates a new attempt handler
func NewAttemptHandler(attemptService attemptUsecase.Service, logger *zap.Logger) *Attempt {
	return &Attempt{
		attemptService: attemptService,
		logger:         logger,
	}
}

// SubmitAttempt handles POST /attempts
// @Summary      Submit an answer
// @Description  Scores an answer against its question and returns the full report. Accepts a JSON body with a ready transcript, or multipart/form-data with the same fields plus a recorded clip under "audio".
// @Tags         Attempts
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        request  body      attempt.SubmitAttemptRequest  true  "Answer submission"
// @Success      201      {object}  attempt.AttemptResponse  "Scored attempt with feedback"
// @Failure      400      {object}  map[string]interface{}  "Invalid request or validation failed"
// @Failure      404      {object}  map[string]interface{}  "Session or question not found"
// @Failure      502      {object}  map[string]interface{}  "Audio transcription failed"
// @Router       /attempts [post]
func (h *Attempt) SubmitAttempt(c echo.Context) error {
	var req attempt.SubmitAttemptRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	clip, err := h.readClip(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_audio",
			"message": err.Error(),
		})
	}

	// Multipart submissions carry the acoustic summary as a JSON form value
	if raw := c.FormValue("audio_features"); raw != "" && req.Audio == nil {
		var features attempt.AudioFeaturesRequest
		if err := json.Unmarshal([]byte(raw), &features); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid_audio_features",
				"message": "audio_features must be a JSON object",
			})
		}
		req.Audio = &features
	}

	// Validate request
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_session_id",
			"message": "session ID must be a valid UUID",
		})
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_question_id",
			"message": "question ID must be a valid UUID",
		})
	}

	input := attemptUsecase.SubmitInput{
		SessionID:  sessionID,
		QuestionID: questionID,
		Transcript: entities.Transcript{
			Text:            req.TranscriptText,
			DurationSeconds: req.DurationSeconds,
		},
		Clip: clip,
	}

	if req.Audio != nil {
		input.Audio = &entities.AudioFeatures{
			PitchMean:    req.Audio.PitchMean,
			PitchStdev:   req.Audio.PitchStdev,
			EnergyMean:   req.Audio.EnergyMean,
			EnergyStdev:  req.Audio.EnergyStdev,
			SilenceRatio: req.Audio.SilenceRatio,
		}
	}

	a, err := h.attemptService.Submit(c.Request().Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrSessionNotFound):
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "session_not_found",
				"message": err.Error(),
			})
		case errors.Is(err, entities.ErrQuestionNotFound):
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "question_not_found",
				"message": err.Error(),
			})
		default:
			return HandleError(h.logger, c, err)
		}
	}

	return c.JSON(http.StatusCreated, presenter.ToAttemptResponse(a, h.audioURL(c, a)))
}

// GetAttempt handles GET /attempts/:id
// @Summary      Get a scored attempt
// @Description  Gets a single attempt with its report, feedback and playback link
// @Tags         Attempts
// @Produce      json
// @Param        id   path      string  true  "Attempt ID (UUID)"
// @Success      200  {object}  attempt.AttemptResponse  "Attempt details"
// @Failure      400  {object}  map[string]interface{}  "Invalid attempt ID"
// @Failure      404  {object}  map[string]interface{}  "Attempt not found"
// @Router       /attempts/{id} [get]
func (h *Attempt) GetAttempt(c echo.Context) error {
	attemptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_attempt_id",
			"message": "attempt ID must be a valid UUID",
		})
	}

	a, err := h.attemptService.GetAttempt(c.Request().Context(), attemptID)
	if err != nil {
		if errors.Is(err, entities.ErrAttemptNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "attempt_not_found",
				"message": err.Error(),
			})
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToAttemptResponse(a, h.audioURL(c, a)))
}

// ListSessionAttempts handles GET /sessions/:id/attempts
// @Summary      List a session's attempts
// @Description  Gets the paginated attempt history of a practice session, newest first
// @Tags         Attempts
// @Produce      json
// @Param        id         path      string  true   "Session ID (UUID)"
// @Param        page       query     int     false  "Page number (default: 1)"
// @Param        page_size  query     int     false  "Items per page (default: 20)"
// @Success      200        {object}  attempt.AttemptListResponse  "Attempt history"
// @Failure      400        {object}  map[string]interface{}  "Invalid session ID"
// @Failure      404        {object}  map[string]interface{}  "Session not found"
// @Router       /sessions/{id}/attempts [get]
func (h *Attempt) ListSessionAttempts(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_session_id",
			"message": "session ID must be a valid UUID",
		})
	}

	var req attempt.ListAttemptsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
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

	attempts, total, err := h.attemptService.ListBySession(c.Request().Context(), sessionID, req.PageSize, (req.Page-1)*req.PageSize)
	if err != nil {
		if errors.Is(err, entities.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "session_not_found",
				"message": err.Error(),
			})
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToAttemptListResponse(attempts, total, req.Page, req.PageSize))
}

// readClip pulls the uploaded audio file out of a multipart submission.
// JSON submissions and multipart bodies without a file return nil.
func (h *Attempt) readClip(c echo.Context) (*attemptUsecase.AudioClip, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return nil, nil
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	return &attemptUsecase.AudioClip{
		Data:        data,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}, nil
}

// audioURL resolves the presigned playback link for an attempt, empty when
// no clip was stored or the store is unreachable
func (h *Attempt) audioURL(c echo.Context, a *entities.Attempt) string {
	url, err := h.attemptService.AudioURL(c.Request().Context(), a)
	if err != nil {
		return ""
	}
	return url
}
