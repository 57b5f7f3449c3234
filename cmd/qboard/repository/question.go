package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/qboard/qboard/cmd/qboard/search"
	"github.com/qboard/qboard/common/db"
)

// ErrNotFound is returned when a record the caller asked to mutate does
// not exist
var ErrNotFound = errors.New("not found")

const questionColumns = "q.id, q.title, q.text, q.asked_by, q.created_at, q.views"

// QuestionRepository handles database operations for questions. It is the
// storage collaborator behind the retrieval engine: questions come back
// with answers and tags populated.
type QuestionRepository struct {
	db *db.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *db.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a new question and its tag references
func (r *QuestionRepository) Create(ctx context.Context, q *models.Question, tagIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO questions (id, title, text, asked_by, created_at, views)
		VALUES ($1, $2, $3, $4, $5, 0)
	`

	if _, err := tx.Exec(ctx, query, q.ID, q.Title, q.Text, q.AskedBy, q.CreatedAt); err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO question_tags (question_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			q.ID, tagID,
		); err != nil {
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit question: %w", err)
	}

	return nil
}

// GetByID retrieves a question with answers and tags, or (nil, nil) when
// absent
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions q WHERE q.id = $1`

	q, err := r.scanOne(ctx, query, id)
	if q == nil || err != nil {
		return nil, err
	}

	if err := r.populate(ctx, []*models.Question{q}); err != nil {
		return nil, err
	}
	return q, nil
}

// IncrementViews atomically bumps the view counter and returns the
// updated question with answers and tags, or (nil, nil) when absent.
// Exactly one increment per successful call.
func (r *QuestionRepository) IncrementViews(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	query := `
		UPDATE questions q SET views = views + 1
		WHERE q.id = $1
		RETURNING ` + questionColumns

	q, err := r.scanOne(ctx, query, id)
	if q == nil || err != nil {
		return nil, err
	}

	if err := r.populate(ctx, []*models.Question{q}); err != nil {
		return nil, err
	}
	return q, nil
}

// UpdateContent replaces a question's title and body
func (r *QuestionRepository) UpdateContent(ctx context.Context, id uuid.UUID, title, text string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE questions SET title = $2, text = $3 WHERE id = $1`,
		id, title, text,
	)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, ErrNotFound)
	}

	return nil
}

// QuestionsMatching returns every question the filter accepts, with
// answers and tags populated, in a stable creation-time order
func (r *QuestionRepository) QuestionsMatching(ctx context.Context, f search.Filter) ([]*models.Question, error) {
	where, args := buildQuestionWhere(f)
	query := `SELECT ` + questionColumns + ` FROM questions q` + where + ` ORDER BY q.created_at DESC, q.id ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		q := &models.Question{}
		if err := rows.Scan(&q.ID, &q.Title, &q.Text, &q.AskedBy, &q.CreatedAt, &q.Views); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}

	if err := r.populate(ctx, questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// QuestionByTitle retrieves a question by exact title, or (nil, nil) when
// absent
func (r *QuestionRepository) QuestionByTitle(ctx context.Context, title string) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions q WHERE q.title = $1 LIMIT 1`

	q, err := r.scanOne(ctx, query, title)
	if q == nil || err != nil {
		return nil, err
	}

	if err := r.populate(ctx, []*models.Question{q}); err != nil {
		return nil, err
	}
	return q, nil
}

// Exists checks if a question exists
func (r *QuestionRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM questions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check question existence: %w", err)
	}
	return exists, nil
}

// scanOne runs a single-row question query, mapping no-rows to (nil, nil)
func (r *QuestionRepository) scanOne(ctx context.Context, query string, args ...any) (*models.Question, error) {
	q := &models.Question{}
	err := r.db.QueryRow(ctx, query, args...).Scan(&q.ID, &q.Title, &q.Text, &q.AskedBy, &q.CreatedAt, &q.Views)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}

// populate loads answers (in insertion order) and tags for a batch of
// questions with one query per relation
func (r *QuestionRepository) populate(ctx context.Context, questions []*models.Question) error {
	if len(questions) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*models.Question, len(questions))
	ids := make([]uuid.UUID, 0, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
		ids = append(ids, q.ID)
	}

	answerRows, err := r.db.Query(ctx, `
		SELECT question_id, id, text, answered_by, created_at
		FROM answers
		WHERE question_id = ANY($1)
		ORDER BY seq ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to query answers: %w", err)
	}
	defer answerRows.Close()

	for answerRows.Next() {
		var questionID uuid.UUID
		a := &models.Answer{}
		if err := answerRows.Scan(&questionID, &a.ID, &a.Text, &a.AnsweredBy, &a.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan answer: %w", err)
		}
		if q, ok := byID[questionID]; ok {
			q.Answers = append(q.Answers, a)
		}
	}
	if err := answerRows.Err(); err != nil {
		return fmt.Errorf("error iterating answers: %w", err)
	}

	tagRows, err := r.db.Query(ctx, `
		SELECT qt.question_id, t.id, t.name
		FROM question_tags qt
		JOIN tags t ON t.id = qt.tag_id
		WHERE qt.question_id = ANY($1)
		ORDER BY t.name ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to query question tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var questionID uuid.UUID
		var tag models.Tag
		if err := tagRows.Scan(&questionID, &tag.ID, &tag.Name); err != nil {
			return fmt.Errorf("failed to scan tag: %w", err)
		}
		if q, ok := byID[questionID]; ok {
			q.Tags = append(q.Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return fmt.Errorf("error iterating question tags: %w", err)
	}

	return nil
}
