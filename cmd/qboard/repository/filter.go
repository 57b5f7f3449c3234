package repository

import (
	"fmt"
	"strings"

	"github.com/qboard/qboard/cmd/qboard/search"
)

// buildQuestionWhere compiles a search filter into a WHERE clause over
// the questions table (aliased q) plus its positional arguments. The
// compiled SQL must agree with search.Filter.Matches: tag clause = tag
// set intersects, text clause = any term is a case-insensitive substring
// of title or body, clauses AND'ed. An unconditional filter compiles to
// an empty clause.
func buildQuestionWhere(f search.Filter) (string, []any) {
	var clauses []string
	var args []any

	if len(f.TagIDs) > 0 {
		args = append(args, f.TagIDs)
		clauses = append(clauses, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM question_tags qt WHERE qt.question_id = q.id AND qt.tag_id = ANY($%d))",
			len(args),
		))
	}

	if len(f.Terms) > 0 {
		patterns := make([]string, len(f.Terms))
		for i, term := range f.Terms {
			patterns[i] = "%" + escapeLike(term) + "%"
		}
		args = append(args, patterns)
		clauses = append(clauses, fmt.Sprintf(
			"(q.title ILIKE ANY($%d) OR q.text ILIKE ANY($%d))",
			len(args), len(args),
		))
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

// escapeLike escapes LIKE metacharacters so search terms match literally
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
