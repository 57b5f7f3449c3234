package search

import (
	"sort"
	"strings"
	"time"

	"github.com/qboard/qboard/cmd/qboard/models"
)

// Order selects how matching questions are sorted
type Order string

const (
	// OrderNewest sorts by creation time, newest first. It is also the
	// default for absent or unrecognized order keys.
	OrderNewest Order = "newest"

	// OrderUnanswered keeps only questions with zero answers, newest first
	OrderUnanswered Order = "unanswered"

	// OrderActive sorts by most recent activity: the question's own post
	// date or its latest answer, whichever is later
	OrderActive Order = "active"
)

// ParseOrder maps an order key to an Order, defaulting to newest
func ParseOrder(s string) Order {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case OrderUnanswered:
		return OrderUnanswered
	case OrderActive:
		return OrderActive
	default:
		return OrderNewest
	}
}

// ActivityTime returns the question's most recent activity: the maximum
// of its own creation time and all of its answers' creation times. A
// question with no answers is exactly as active as it is old, so the
// result is never earlier than CreatedAt.
func ActivityTime(q *models.Question) time.Time {
	latest := q.CreatedAt
	for _, a := range q.Answers {
		if a.CreatedAt.After(latest) {
			latest = a.CreatedAt
		}
	}
	return latest
}

// applyOrder filters and sorts questions for the given order. The input
// slice is not modified. Ties fall back to creation time descending, then
// question ID ascending, so every ordering is deterministic regardless of
// the order storage returned the candidates in.
func applyOrder(questions []*models.Question, order Order) []*models.Question {
	out := make([]*models.Question, 0, len(questions))
	for _, q := range questions {
		if order == OrderUnanswered && q.HasAnswers() {
			continue
		}
		out = append(out, q)
	}

	switch order {
	case OrderActive:
		sort.Slice(out, func(i, j int) bool {
			ai, aj := ActivityTime(out[i]), ActivityTime(out[j])
			if !ai.Equal(aj) {
				return ai.After(aj)
			}
			return newerFirst(out[i], out[j])
		})
	default:
		// newest and unanswered share the creation-time ordering
		sort.Slice(out, func(i, j int) bool {
			return newerFirst(out[i], out[j])
		})
	}

	return out
}

func newerFirst(a, b *models.Question) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID.String() < b.ID.String()
}
