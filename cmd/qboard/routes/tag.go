package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/qboard/qboard/cmd/qboard/container"
	"github.com/qboard/qboard/cmd/qboard/handlers"
)

// RegisterTagRoutes registers tag endpoints
func RegisterTagRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewTagHandler(c.TagService, c.Components.Logger)

	e.GET("/api/v1/tags", h.ListTags)
}
