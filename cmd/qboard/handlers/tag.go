package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/qboard/qboard/cmd/qboard/service"
	"github.com/qboard/qboard/common/logger"
)

// TagHandler handles tag-related requests
type TagHandler struct {
	tags *service.TagService
	log  *logger.Logger
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tags *service.TagService, log *logger.Logger) *TagHandler {
	return &TagHandler{
		tags: tags,
		log:  log,
	}
}

// ListTags lists all tags with their question counts
// GET /api/v1/tags
func (h *TagHandler) ListTags(c echo.Context) error {
	tags, err := h.tags.List(c.Request().Context())
	if err != nil {
		h.log.Error("list tags failed", "error", err)
		return internalError(c)
	}

	if tags == nil {
		tags = []models.TagCount{}
	}
	return c.JSON(http.StatusOK, tags)
}
