package repository

import (
	"context"
	"fmt"

	"github.com/qboard/qboard/common/db"
)

// schema creates the board tables. Idempotent; run at startup through the
// bootstrap DB init hook.
const schema = `
CREATE TABLE IF NOT EXISTS questions (
	id         UUID PRIMARY KEY,
	title      TEXT NOT NULL,
	text       TEXT NOT NULL,
	asked_by   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	views      BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS answers (
	id          UUID PRIMARY KEY,
	question_id UUID NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
	text        TEXT NOT NULL,
	answered_by TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	seq         BIGSERIAL
);

CREATE TABLE IF NOT EXISTS tags (
	id   UUID PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS question_tags (
	question_id UUID NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
	tag_id      UUID NOT NULL REFERENCES tags(id),
	PRIMARY KEY (question_id, tag_id)
);

CREATE INDEX IF NOT EXISTS idx_answers_question ON answers(question_id, seq);
CREATE INDEX IF NOT EXISTS idx_question_tags_tag ON question_tags(tag_id);
CREATE INDEX IF NOT EXISTS idx_questions_created ON questions(created_at DESC);
`

// EnsureSchema creates the tables if they do not exist
func EnsureSchema(database *db.DB) error {
	if _, err := database.Exec(context.Background(), schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
