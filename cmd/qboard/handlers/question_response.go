package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
)

// QuestionResponse is the wire shape of a question
type QuestionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Text        string           `json:"text"`
	AskedBy     string           `json:"asked_by"`
	CreatedAt   time.Time        `json:"created_at"`
	Views       int64            `json:"views"`
	Tags        []string         `json:"tags"`
	AnswerCount int              `json:"answer_count"`
	Answers     []AnswerResponse `json:"answers"`
}

// AnswerResponse is the wire shape of an answer
type AnswerResponse struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	AnsweredBy string    `json:"answered_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func newQuestionResponse(q *models.Question) QuestionResponse {
	tags := make([]string, 0, len(q.Tags))
	for _, t := range q.Tags {
		tags = append(tags, t.Name)
	}

	answers := make([]AnswerResponse, 0, len(q.Answers))
	for _, a := range q.Answers {
		answers = append(answers, AnswerResponse{
			ID:         a.ID,
			Text:       a.Text,
			AnsweredBy: a.AnsweredBy,
			CreatedAt:  a.CreatedAt,
		})
	}

	return QuestionResponse{
		ID:          q.ID,
		Title:       q.Title,
		Text:        q.Text,
		AskedBy:     q.AskedBy,
		CreatedAt:   q.CreatedAt,
		Views:       q.Views,
		Tags:        tags,
		AnswerCount: len(answers),
		Answers:     answers,
	}
}

// newQuestionListResponse maps a question list, keeping empty results as
// an empty JSON array rather than null
func newQuestionListResponse(questions []*models.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, newQuestionResponse(q))
	}
	return out
}
