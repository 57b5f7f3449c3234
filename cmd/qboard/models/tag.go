package models

import "github.com/google/uuid"

// Tag labels questions by topic. Names are unique and stored lower-cased
// so lookups never miss on case.
// Maps to: tags table
type Tag struct {
	ID   uuid.UUID `db:"id" json:"id"`
	Name string    `db:"name" json:"name"`
}

// TagCount pairs a tag with the number of questions carrying it
type TagCount struct {
	Tag
	QuestionCount int64 `db:"question_count" json:"question_count"`
}
