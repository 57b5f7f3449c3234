package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/qboard/qboard/common/db"
)

// TagRepository handles database operations for tags
type TagRepository struct {
	db *db.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *db.DB) *TagRepository {
	return &TagRepository{db: db}
}

// TagsByNames retrieves the tags whose names appear in the given set.
// Names are matched exactly as stored; callers normalize case first.
// Missing names are simply absent from the result.
func (r *TagRepository) TagsByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	query := `SELECT id, name FROM tags WHERE name = ANY($1)`

	rows, err := r.db.Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return tags, nil
}

// EnsureByNames creates any missing tags and returns all of them. Names
// must already be normalized (lower-cased, deduplicated).
func (r *TagRepository) EnsureByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	for _, name := range names {
		if _, err := r.db.Exec(ctx,
			`INSERT INTO tags (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			uuid.New(), name,
		); err != nil {
			return nil, fmt.Errorf("failed to create tag %q: %w", name, err)
		}
	}

	return r.TagsByNames(ctx, names)
}

// ListWithCounts retrieves all tags with their question counts
func (r *TagRepository) ListWithCounts(ctx context.Context) ([]models.TagCount, error) {
	query := `
		SELECT t.id, t.name, COUNT(qt.question_id) AS question_count
		FROM tags t
		LEFT JOIN question_tags qt ON qt.tag_id = t.id
		GROUP BY t.id, t.name
		ORDER BY t.name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []models.TagCount
	for rows.Next() {
		var tc models.TagCount
		if err := rows.Scan(&tc.ID, &tc.Name, &tc.QuestionCount); err != nil {
			return nil, fmt.Errorf("failed to scan tag count: %w", err)
		}
		tags = append(tags, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag counts: %w", err)
	}

	return tags, nil
}
