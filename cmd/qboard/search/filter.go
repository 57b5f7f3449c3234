package search

import (
	"strings"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
)

// Filter is the question predicate built from a resolved search query.
// Its two clauses are independent and AND'ed when both are present:
//
//   - tag clause (TagIDs non-empty): the question's tag set intersects
//     TagIDs
//   - text clause (Terms non-empty): the question's title or body
//     contains ANY of the terms, case-insensitively
//
// A zero Filter is unconditional and matches every question. Matches is
// the reference semantics; the repository's SQL compilation must agree
// with it.
type Filter struct {
	TagIDs []uuid.UUID
	Terms  []string
}

// IsUnconditional reports whether the filter matches everything
func (f Filter) IsUnconditional() bool {
	return len(f.TagIDs) == 0 && len(f.Terms) == 0
}

// Matches evaluates the filter against a question in memory
func (f Filter) Matches(q *models.Question) bool {
	return f.matchesTags(q) && f.matchesText(q)
}

func (f Filter) matchesTags(q *models.Question) bool {
	if len(f.TagIDs) == 0 {
		return true
	}

	for _, want := range f.TagIDs {
		for _, tag := range q.Tags {
			if tag.ID == want {
				return true
			}
		}
	}
	return false
}

func (f Filter) matchesText(q *models.Question) bool {
	if len(f.Terms) == 0 {
		return true
	}

	title := strings.ToLower(q.Title)
	text := strings.ToLower(q.Text)

	for _, term := range f.Terms {
		if strings.Contains(title, term) || strings.Contains(text, term) {
			return true
		}
	}
	return false
}
