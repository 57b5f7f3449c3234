package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/qboard/qboard/common/db"
)

// AnswerRepository handles database operations for answers
type AnswerRepository struct {
	db *db.DB
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *db.DB) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// Create appends an answer to a question. Insertion order is preserved by
// the seq column.
func (r *AnswerRepository) Create(ctx context.Context, questionID uuid.UUID, a *models.Answer) error {
	query := `
		INSERT INTO answers (id, question_id, text, answered_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, a.ID, questionID, a.Text, a.AnsweredBy, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create answer: %w", err)
	}

	return nil
}
