package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/qboard/qboard/cmd/qboard/container"
	"github.com/qboard/qboard/cmd/qboard/handlers"
)

// RegisterAnswerRoutes registers answer endpoints
func RegisterAnswerRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewAnswerHandler(c.AnswerService, c.Components.Logger)

	e.POST("/api/v1/questions/:id/answers", h.PostAnswer, c.WriteRateLimit())
}
