package models

import (
	"time"

	"github.com/google/uuid"
)

// Answer represents an answer to a question. Immutable after creation.
// Maps to: answers table
type Answer struct {
	ID uuid.UUID `db:"id" json:"id"`

	// Answer body
	Text string `db:"text" json:"text"`

	// Author display name
	AnsweredBy string `db:"answered_by" json:"answered_by"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
