package models

import (
	"time"

	"github.com/google/uuid"
)

// Question represents a question posted to the board
// Maps to: questions table (answers and tags loaded from their own tables)
type Question struct {
	ID uuid.UUID `db:"id" json:"id"`

	// Display title, matched exactly by the curated-result lookups
	Title string `db:"title" json:"title"`

	// Question body
	Text string `db:"text" json:"text"`

	// Author display name (no accounts on this board)
	AskedBy string `db:"asked_by" json:"asked_by"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`

	// View counter, incremented once per successful fetch-by-id
	Views int64 `db:"views" json:"views"`

	// Answers in insertion order (chronological)
	Answers []*Answer `json:"answers"`

	// Tags attached at creation time
	Tags []Tag `json:"tags"`
}

// HasAnswers reports whether the question has at least one answer
func (q *Question) HasAnswers() bool {
	return len(q.Answers) > 0
}

// TagIDs returns the identifiers of the question's tags
func (q *Question) TagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(q.Tags))
	for _, t := range q.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}
