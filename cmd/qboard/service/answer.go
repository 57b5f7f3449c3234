package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/qboard/qboard/cmd/qboard/repository"
	"github.com/qboard/qboard/common/logger"
)

// PostAnswerRequest carries the fields for a new answer
type PostAnswerRequest struct {
	Text       string `json:"text"`
	AnsweredBy string `json:"answered_by"`
}

// AnswerService handles answer operations
type AnswerService struct {
	repo      *repository.AnswerRepository
	questions *repository.QuestionRepository
	log       *logger.Logger
}

// NewAnswerService creates a new answer service
func NewAnswerService(repo *repository.AnswerRepository, questions *repository.QuestionRepository, log *logger.Logger) *AnswerService {
	return &AnswerService{
		repo:      repo,
		questions: questions,
		log:       log,
	}
}

// Add appends an answer to a question. Returns (nil, nil) when the
// question does not exist.
func (s *AnswerService) Add(ctx context.Context, questionID uuid.UUID, req PostAnswerRequest) (*models.Answer, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.AnsweredBy) == "" {
		return nil, fmt.Errorf("%w: answered_by is required", ErrInvalidInput)
	}

	exists, err := s.questions.Exists(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check question: %w", err)
	}
	if !exists {
		return nil, nil
	}

	a := &models.Answer{
		ID:         uuid.New(),
		Text:       req.Text,
		AnsweredBy: strings.TrimSpace(req.AnsweredBy),
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, questionID, a); err != nil {
		return nil, fmt.Errorf("failed to post answer: %w", err)
	}

	s.log.Info("answer posted",
		"question_id", questionID,
		"answer_id", a.ID,
	)

	return a, nil
}
