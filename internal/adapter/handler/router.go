package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/interview-coach-team/interview-coach/docs"
	"github.com/interview-coach-team/interview-coach/internal/usecase/feedback"
	"github.com/interview-coach-team/interview-coach/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	sessionHandler  *Session
	questionHandler *Question
	attemptHandler  *Attempt
	credentialPool  *feedback.CredentialPool
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, sessionHandler *Session, questionHandler *Question, attemptHandler *Attempt, credentialPool *feedback.CredentialPool) *Router {
	return &Router{
		cfg:             cfg,
		sessionHandler:  sessionHandler,
		questionHandler: questionHandler,
		attemptHandler:  attemptHandler,
		credentialPool:  credentialPool,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	// Setup route groups
	rt.setupSessionRoutes(v1)
	rt.setupQuestionRoutes(v1)
	rt.setupAttemptRoutes(v1)
}

// setupSessionRoutes configures practice-session routes
func (rt *Router) setupSessionRoutes(g *echo.Group) {
	sessionGroup := g.Group("/sessions")

	sessionGroup.POST("", rt.sessionHandler.CreateSession)
	sessionGroup.GET("", rt.sessionHandler.ListSessions)
	sessionGroup.GET("/:id", rt.sessionHandler.GetSession)
	sessionGroup.DELETE("/:id", rt.sessionHandler.DeleteSession)
	sessionGroup.GET("/:id/attempts", rt.attemptHandler.ListSessionAttempts)
}

// setupQuestionRoutes configures question-bank routes
func (rt *Router) setupQuestionRoutes(g *echo.Group) {
	questionGroup := g.Group("/questions")

	questionGroup.GET("", rt.questionHandler.ListQuestions)
	questionGroup.GET("/:id", rt.questionHandler.GetQuestion)
}

// setupAttemptRoutes configures answer submission routes
func (rt *Router) setupAttemptRoutes(g *echo.Group) {
	attemptGroup := g.Group("/attempts")

	attemptGroup.POST("", rt.attemptHandler.SubmitAttempt)
	attemptGroup.GET("/:id", rt.attemptHandler.GetAttempt)
}

// healthCheck returns health status plus feedback-credential availability
func (rt *Router) healthCheck(c echo.Context) error {
	body := map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	}
	if rt.credentialPool != nil {
		body["feedback_credentials"] = rt.credentialPool.Stats()
	}
	return c.JSON(http.StatusOK, body)
}
