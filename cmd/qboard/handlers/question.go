package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/qboard/qboard/cmd/qboard/service"
	"github.com/qboard/qboard/common/logger"
)

// QuestionHandler handles question-related requests
type QuestionHandler struct {
	questions *service.QuestionService
	log       *logger.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questions *service.QuestionService, log *logger.Logger) *QuestionHandler {
	return &QuestionHandler{
		questions: questions,
		log:       log,
	}
}

// ListQuestions lists questions for an order key and search string
// GET /api/v1/questions?order=active&search=[react]+router
func (h *QuestionHandler) ListQuestions(c echo.Context) error {
	order := c.QueryParam("order")
	search := c.QueryParam("search")

	questions, err := h.questions.List(c.Request().Context(), order, search)
	if err != nil {
		h.log.Error("list questions failed", "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusOK, newQuestionListResponse(questions))
}

// GetQuestion retrieves a single question and counts the view
// GET /api/v1/questions/:id
func (h *QuestionHandler) GetQuestion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	q, err := h.questions.Get(c.Request().Context(), id)
	if err != nil {
		h.log.Error("get question failed", "question_id", id, "error", err)
		return internalError(c)
	}
	if q == nil {
		return notFound(c, "question not found")
	}

	return c.JSON(http.StatusOK, newQuestionResponse(q))
}

// AskQuestion creates a new question
// POST /api/v1/questions
func (h *QuestionHandler) AskQuestion(c echo.Context) error {
	var req service.AskQuestionRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}

	q, err := h.questions.Ask(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return badRequest(c, err.Error())
		}
		h.log.Error("ask question failed", "error", err)
		return internalError(c)
	}

	return c.JSON(http.StatusCreated, newQuestionResponse(q))
}

// PatchQuestion edits a question's title/text via JSON Patch
// PATCH /api/v1/questions/:id
func (h *QuestionHandler) PatchQuestion(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid question id")
	}

	patch, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return badRequest(c, "unreadable request body")
	}

	q, err := h.questions.Patch(c.Request().Context(), id, patch)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return badRequest(c, err.Error())
		}
		h.log.Error("patch question failed", "question_id", id, "error", err)
		return internalError(c)
	}
	if q == nil {
		return notFound(c, "question not found")
	}

	return c.JSON(http.StatusOK, newQuestionResponse(q))
}

// Shared error responses

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]interface{}{
		"error":   "bad_request",
		"message": msg,
	})
}

func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, map[string]interface{}{
		"error":   "not_found",
		"message": msg,
	})
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":   "internal_error",
		"message": "Something went wrong. Please try again.",
	})
}
