package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/qboard/qboard/cmd/qboard/container"
	"github.com/qboard/qboard/cmd/qboard/handlers"
)

// RegisterQuestionRoutes registers question endpoints
func RegisterQuestionRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewQuestionHandler(c.QuestionService, c.Components.Logger)
	writeLimit := c.WriteRateLimit()

	g := e.Group("/api/v1/questions")
	g.GET("", h.ListQuestions)
	g.GET("/:id", h.GetQuestion)
	g.POST("", h.AskQuestion, writeLimit)
	g.PATCH("/:id", h.PatchQuestion, writeLimit)
}
