package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/qboard/qboard/cmd/qboard/repository"
	"github.com/qboard/qboard/cmd/qboard/search"
	"github.com/qboard/qboard/common/logger"
	"github.com/qboard/qboard/common/validation"
)

// ErrInvalidInput marks request-shaped failures the HTTP layer maps to 400
var ErrInvalidInput = errors.New("invalid input")

// maxTagsPerQuestion bounds how many tags a question may carry
const maxTagsPerQuestion = 5

// AskQuestionRequest carries the fields for a new question
type AskQuestionRequest struct {
	Title   string   `json:"title"`
	Text    string   `json:"text"`
	AskedBy string   `json:"asked_by"`
	Tags    []string `json:"tags"`
}

// QuestionService handles question operations
type QuestionService struct {
	repo      *repository.QuestionRepository
	tags      *TagService
	engine    *search.Engine
	validator *validation.PatchValidator
	log       *logger.Logger
}

// NewQuestionService creates a new question service
func NewQuestionService(
	repo *repository.QuestionRepository,
	tags *TagService,
	engine *search.Engine,
	log *logger.Logger,
) *QuestionService {
	return &QuestionService{
		repo:      repo,
		tags:      tags,
		engine:    engine,
		validator: validation.NewPatchValidator(),
		log:       log,
	}
}

// List returns questions matching the search string, sorted by the order
// key. This is a straight pass-through to the retrieval engine.
func (s *QuestionService) List(ctx context.Context, order, searchStr string) ([]*models.Question, error) {
	questions, err := s.engine.GetQuestions(ctx, order, searchStr)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// Ask creates a new question, creating any missing tags first
func (s *QuestionService) Ask(ctx context.Context, req AskQuestionRequest) (*models.Question, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.AskedBy) == "" {
		return nil, fmt.Errorf("%w: asked_by is required", ErrInvalidInput)
	}

	if len(NormalizeTagNames(req.Tags)) > maxTagsPerQuestion {
		return nil, fmt.Errorf("%w: at most %d tags per question", ErrInvalidInput, maxTagsPerQuestion)
	}

	tags, err := s.tags.EnsureTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	q := &models.Question{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(req.Title),
		Text:      req.Text,
		AskedBy:   strings.TrimSpace(req.AskedBy),
		CreatedAt: time.Now().UTC(),
		Tags:      tags,
	}

	if err := s.repo.Create(ctx, q, q.TagIDs()); err != nil {
		return nil, fmt.Errorf("failed to ask question: %w", err)
	}

	s.log.Info("question asked",
		"question_id", q.ID,
		"title", q.Title,
		"tags", len(tags),
	)

	return q, nil
}

// Get fetches a question by id and counts the view. Returns (nil, nil)
// when the question does not exist.
func (s *QuestionService) Get(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	q, err := s.repo.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}

// Patch edits a question's title/text via an RFC 6902 JSON Patch
// document. Returns (nil, nil) when the question does not exist.
func (s *QuestionService) Patch(ctx context.Context, id uuid.UUID, patch []byte) (*models.Question, error) {
	var operations []map[string]interface{}
	if err := json.Unmarshal(patch, &operations); err != nil {
		return nil, fmt.Errorf("%w: malformed patch document: %v", ErrInvalidInput, err)
	}

	if err := s.validator.ValidateOperations(operations); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load question: %w", err)
	}
	if q == nil {
		return nil, nil
	}

	title, text, err := applyContentPatch(q.Title, q.Text, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.UpdateContent(ctx, id, title, text); err != nil {
		return nil, fmt.Errorf("failed to update question: %w", err)
	}

	s.log.Info("question edited", "question_id", id)

	q.Title = title
	q.Text = text
	return q, nil
}

// questionContent is the patchable view of a question
type questionContent struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// applyContentPatch applies a JSON Patch document to the editable fields
func applyContentPatch(title, text string, patch []byte) (string, string, error) {
	doc, err := json.Marshal(questionContent{Title: title, Text: text})
	if err != nil {
		return "", "", fmt.Errorf("failed to encode question content: %w", err)
	}

	p, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode patch: %w", err)
	}

	patched, err := p.Apply(doc)
	if err != nil {
		return "", "", fmt.Errorf("failed to apply patch: %w", err)
	}

	var out questionContent
	if err := json.Unmarshal(patched, &out); err != nil {
		return "", "", fmt.Errorf("failed to decode patched content: %w", err)
	}

	return out.Title, out.Text, nil
}
