package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestionResponse_MapsFields(t *testing.T) {
	asked := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	q := &models.Question{
		ID:        uuid.New(),
		Title:     "Object storage for a web application",
		Text:      "Where should uploads live?",
		AskedBy:   "mia",
		CreatedAt: asked,
		Views:     7,
		Tags: []models.Tag{
			{ID: uuid.New(), Name: "storage"},
			{ID: uuid.New(), Name: "web"},
		},
		Answers: []*models.Answer{
			{ID: uuid.New(), Text: "Use a bucket", AnsweredBy: "sam", CreatedAt: asked.Add(time.Hour)},
		},
	}

	resp := newQuestionResponse(q)

	assert.Equal(t, q.ID, resp.ID)
	assert.Equal(t, q.Title, resp.Title)
	assert.Equal(t, int64(7), resp.Views)
	assert.Equal(t, []string{"storage", "web"}, resp.Tags)
	assert.Equal(t, 1, resp.AnswerCount)
	require.Len(t, resp.Answers, 1)
	assert.Equal(t, "Use a bucket", resp.Answers[0].Text)
}

func TestNewQuestionResponse_NoRelations(t *testing.T) {
	resp := newQuestionResponse(&models.Question{ID: uuid.New()})

	// Empty relations serialize as [] rather than null
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tags":[]`)
	assert.Contains(t, string(data), `"answers":[]`)
	assert.Contains(t, string(data), `"answer_count":0`)
}

func TestNewQuestionListResponse_EmptyIsArray(t *testing.T) {
	out := newQuestionListResponse(nil)

	require.NotNil(t, out)
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
