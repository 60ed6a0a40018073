package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-coach/internal/adapter/dto/common"
	"github.com/interview-coach-team/interview-coach/internal/adapter/dto/session"
	"github.com/interview-coach-team/interview-coach/internal/adapter/presenter"
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	sessionUsecase "github.com/interview-coach-team/interview-coach/internal/usecase/session"
)

// Session handles practice-session HTTP requests
type Session struct {
	sessionService sessionUsecase.Service
	logger         *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService sessionUsecase.Service, logger *zap.Logger) *Session {
	return &Session{
		sessionService: sessionService,
		logger:         logger,
	}
}

// CreateSession handles POST /sessions
// @Summary      Open a practice session
// @Description  Creates a new practice session that groups scored attempts
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        request  body      session.CreateSessionRequest  true  "Session creation request"
// @Success      201      {object}  session.SessionResponse  "Session created successfully"
// @Failure      400      {object}  map[string]interface{}  "Invalid request or validation failed"
// @Router       /sessions [post]
func (h *Session) CreateSession(c echo.Context) error {
	var req session.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_request",
			"message": err.Error(),
		})
	}

	// Validate request
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	input := sessionUsecase.CreateSessionInput{
		Candidate:  req.Candidate,
		TargetRole: req.TargetRole,
		Notes:      req.Notes,
	}

	s, err := h.sessionService.CreateSession(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyCandidate) {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error":   "invalid_candidate",
				"message": err.Error(),
			})
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusCreated, presenter.ToSessionResponse(s))
}

// GetSession handles GET /sessions/:id
// @Summary      Get session details
// @Description  Gets a single practice session by ID
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID (UUID)"
// @Success      200  {object}  session.SessionResponse  "Session details"
// @Failure      400  {object}  map[string]interface{}  "Invalid session ID"
// @Failure      404  {object}  map[string]interface{}  "Session not found"
// @Router       /sessions/{id} [get]
func (h *Session) GetSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_session_id",
			"message": "session ID must be a valid UUID",
		})
	}

	s, err := h.sessionService.GetSession(c.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, entities.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "session_not_found",
				"message": err.Error(),
			})
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToSessionResponse(s))
}

// ListSessions handles GET /sessions
// @Summary      List sessions
// @Description  Gets a paginated list of practice sessions, newest first
// @Tags         Sessions
// @Produce      json
// @Param        page       query     int  false  "Page number (default: 1)"
// @Param        page_size  query     int  false  "Items per page (default: 20)"
// @Success      200        {object}  session.SessionListResponse  "List of sessions"
// @Failure      400        {object}  map[string]interface{}  "Invalid request"
// @Router       /sessions [get]
func (h *Session) ListSessions(c echo.Context) error {
	var req session.ListSessionsRequest
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

	sessions, total, err := h.sessionService.ListSessions(c.Request().Context(), req.PageSize, (req.Page-1)*req.PageSize)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToSessionListResponse(sessions, total, req.Page, req.PageSize))
}

// DeleteSession handles DELETE /sessions/:id
// @Summary      Delete a session
// @Description  Removes a practice session, its attempts, and any stored audio clips
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID (UUID)"
// @Success      200  {object}  common.SuccessResponse  "Session deleted"
// @Failure      400  {object}  map[string]interface{}  "Invalid session ID"
// @Failure      404  {object}  map[string]interface{}  "Session not found"
// @Router       /sessions/{id} [delete]
func (h *Session) DeleteSession(c echo.Context) error {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error":   "invalid_session_id",
			"message": "session ID must be a valid UUID",
		})
	}

	if err := h.sessionService.DeleteSession(c.Request().Context(), sessionID); err != nil {
		if errors.Is(err, entities.ErrSessionNotFound) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"error":   "session_not_found",
				"message": err.Error(),
			})
		}
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, common.SuccessResponse{Message: "session deleted"})
}
