package search

import "strings"

// Query is a raw search string split into tag terms and plain terms.
// A token is a tag term iff it is wrapped in [brackets]; everything else
// is a plain term. Both kinds are lower-cased. Any string parses; a lone
// bracket is just a plain term.
type Query struct {
	TagTerms []string
	Terms    []string
}

// ParseQuery splits a search string on whitespace and partitions the
// tokens into tag terms and plain terms
func ParseQuery(s string) Query {
	var q Query

	for _, token := range strings.Fields(s) {
		if len(token) >= 2 && strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
			name := strings.ToLower(token[1 : len(token)-1])
			q.TagTerms = append(q.TagTerms, name)
			continue
		}
		q.Terms = append(q.Terms, strings.ToLower(token))
	}

	return q
}

// Empty reports whether the query carries no terms at all
func (q Query) Empty() bool {
	return len(q.TagTerms) == 0 && len(q.Terms) == 0
}

// curated-result easter egg: the exact terms that trigger the fixed
// question list instead of a normal search
var (
	curatedPlainTerms = []string{"40", "million", "documents"}
	curatedTagTerm    = "javascript"
)

// IsCurated reports whether the query is the hard-coded curated lookup:
// all of "40", "million", "documents" as plain terms (any order) plus the
// [javascript] tag term
func (q Query) IsCurated() bool {
	for _, want := range curatedPlainTerms {
		if !containsTerm(q.Terms, want) {
			return false
		}
	}
	return containsTerm(q.TagTerms, curatedTagTerm)
}

func containsTerm(terms []string, want string) bool {
	for _, t := range terms {
		if t == want {
			return true
		}
	}
	return false
}
