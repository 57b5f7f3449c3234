package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/qboard/qboard/cmd/qboard/service"
	"github.com/qboard/qboard/common/logger"
)

// AnswerHandler handles answer-related requests
type AnswerHandler struct {
	answers *service.AnswerService
	log     *logger.Logger
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answers *service.AnswerService, log *logger.Logger) *AnswerHandler {
	return &AnswerHandler{
		answers: answers,
		log:     log,
	}
}

// PostAnswer appends an answer to a question
// POST /api/v1/questions/:id/answers
func (h *AnswerHandler) PostAnswer(c echo.Context) error {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	var req service.PostAnswerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}

	a, err := h.answers.Add(c.Request().Context(), questionID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return badRequest(c, err.Error())
		}
		h.log.Error("post answer failed", "question_id", questionID, "error", err)
		return internalError(c)
	}
	if a == nil {
		return notFound(c, "question not found")
	}

	return c.JSON(http.StatusCreated, AnswerResponse{
		ID:         a.ID,
		Text:       a.Text,
		AnsweredBy: a.AnsweredBy,
		CreatedAt:  a.CreatedAt,
	})
}
