package search

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/qboard/qboard/common/logger"
)

// QuestionSource is the question read surface the engine needs. Questions
// must come back with their answers populated (at least creation times),
// since active ordering is computed from them.
type QuestionSource interface {
	// QuestionsMatching returns every question the filter accepts, in
	// any stable order
	QuestionsMatching(ctx context.Context, f Filter) ([]*models.Question, error)

	// QuestionByTitle returns the question with the exact title, or
	// (nil, nil) when absent
	QuestionByTitle(ctx context.Context, title string) (*models.Question, error)
}

// TagSource resolves lower-cased tag names to stored tags
type TagSource interface {
	TagsByNames(ctx context.Context, names []string) ([]models.Tag, error)
}

// DefaultCuratedTitles are the questions returned for the curated query.
// The result order puts the last title's question first, then the rest in
// listed order; titles missing from storage are silently skipped.
var DefaultCuratedTitles = []string{
	"Quick question about storage on android",
	"Object storage for a web application",
	"Handling 40 million documents in MongoDB",
}

// Engine selects and runs a retrieval strategy for a search request. It
// holds no mutable state; concurrent requests need no coordination.
type Engine struct {
	questions     QuestionSource
	tags          TagSource
	curatedTitles []string
	log           *logger.Logger
}

// Option configures the engine
type Option func(*Engine)

// WithCuratedTitles overrides the curated-result titles (tests substitute
// fixtures here)
func WithCuratedTitles(titles []string) Option {
	return func(e *Engine) {
		e.curatedTitles = titles
	}
}

// NewEngine creates a retrieval engine over the given sources
func NewEngine(questions QuestionSource, tags TagSource, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		questions:     questions,
		tags:          tags,
		curatedTitles: DefaultCuratedTitles,
		log:           log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// strategyKind enumerates the retrieval paths
type strategyKind int

const (
	strategyDefault strategyKind = iota
	strategyCurated
	strategyFiltered
)

// strategy is the outcome of selection: which path to run, and the parsed
// query for the filtered path
type strategy struct {
	kind  strategyKind
	query Query
}

// selectStrategy picks the retrieval path for a search string. Pure: the
// only inputs are the string and the parser/detector outputs.
func selectStrategy(search string) strategy {
	if strings.TrimSpace(search) == "" {
		return strategy{kind: strategyDefault}
	}

	q := ParseQuery(search)
	if q.IsCurated() {
		return strategy{kind: strategyCurated, query: q}
	}

	return strategy{kind: strategyFiltered, query: q}
}

// GetQuestions is the engine's sole entry point: it returns the questions
// matching the search string, sorted by the order key. Empty results are
// an empty slice, never an error; storage failures propagate unchanged.
func (e *Engine) GetQuestions(ctx context.Context, order, search string) ([]*models.Question, error) {
	key := ParseOrder(order)
	strat := selectStrategy(search)

	switch strat.kind {
	case strategyCurated:
		// Order key is deliberately ignored on this path
		e.log.Debug("running curated lookup", "search", search)
		return e.runCurated(ctx)
	case strategyFiltered:
		return e.runFiltered(ctx, key, strat.query)
	default:
		return e.runDefault(ctx, key)
	}
}

// runDefault retrieves all questions and sorts them
func (e *Engine) runDefault(ctx context.Context, key Order) ([]*models.Question, error) {
	questions, err := e.questions.QuestionsMatching(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	return applyOrder(questions, key), nil
}

// runFiltered resolves tag terms, builds the filter, and sorts the result
func (e *Engine) runFiltered(ctx context.Context, key Order, q Query) ([]*models.Question, error) {
	tagIDs, resolution, err := e.resolveTags(ctx, q.TagTerms)
	if err != nil {
		return nil, err
	}

	// Searching for a tag nobody has ever used matches nothing; it must
	// not degrade into an unfiltered listing.
	if resolution == tagNoneMatched {
		e.log.Debug("tag terms matched no tags", "terms", q.TagTerms)
		return []*models.Question{}, nil
	}

	filter := Filter{TagIDs: tagIDs, Terms: q.Terms}

	questions, err := e.questions.QuestionsMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	return applyOrder(questions, key), nil
}

// runCurated looks up the fixed titles concurrently and assembles them in
// the defined order, skipping any that are missing from storage
func (e *Engine) runCurated(ctx context.Context) ([]*models.Question, error) {
	titles := e.curatedTitles

	found := make([]*models.Question, len(titles))
	errs := make([]error, len(titles))

	var wg sync.WaitGroup
	for i, title := range titles {
		wg.Add(1)
		go func(i int, title string) {
			defer wg.Done()
			found[i], errs[i] = e.questions.QuestionByTitle(ctx, title)
		}(i, title)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make([]*models.Question, 0, len(titles))
	for _, i := range curatedResultOrder(len(titles)) {
		if found[i] != nil {
			out = append(out, found[i])
		}
	}
	return out, nil
}

// curatedResultOrder returns indices with the last title first, then the
// remaining titles in listed order
func curatedResultOrder(n int) []int {
	if n == 0 {
		return nil
	}
	order := make([]int, 0, n)
	order = append(order, n-1)
	for i := 0; i < n-1; i++ {
		order = append(order, i)
	}
	return order
}

// tagResolution distinguishes "no tag filter requested" from "tag filter
// requested but nothing matched". Conflating the two would turn a search
// for a nonexistent tag into an unfiltered listing.
type tagResolution int

const (
	tagNoFilter tagResolution = iota
	tagNoneMatched
	tagMatched
)

// resolveTags maps tag-name terms to stored tag IDs with a single lookup.
// A partial match (some names exist, some don't) is still a match and
// filters by the IDs that resolved.
func (e *Engine) resolveTags(ctx context.Context, names []string) ([]uuid.UUID, tagResolution, error) {
	if len(names) == 0 {
		return nil, tagNoFilter, nil
	}

	tags, err := e.tags.TagsByNames(ctx, names)
	if err != nil {
		return nil, tagNoFilter, err
	}

	if len(tags) == 0 {
		return nil, tagNoneMatched, nil
	}

	ids := make([]uuid.UUID, 0, len(tags))
	for _, t := range tags {
		ids = append(ids, t.ID)
	}
	return ids, tagMatched, nil
}
