package search

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/qboard/qboard/common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSources implements QuestionSource and TagSource in memory, using
// Filter.Matches as the storage-side predicate semantics
type fakeSources struct {
	questions []*models.Question
	tags      []models.Tag

	questionsErr error
	tagsErr      error
	titleErr     error

	seenFilters []Filter
}

func (s *fakeSources) QuestionsMatching(ctx context.Context, f Filter) ([]*models.Question, error) {
	if s.questionsErr != nil {
		return nil, s.questionsErr
	}
	s.seenFilters = append(s.seenFilters, f)

	var out []*models.Question
	for _, q := range s.questions {
		if f.Matches(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeSources) QuestionByTitle(ctx context.Context, title string) (*models.Question, error) {
	if s.titleErr != nil {
		return nil, s.titleErr
	}
	for _, q := range s.questions {
		if q.Title == title {
			return q, nil
		}
	}
	return nil, nil
}

func (s *fakeSources) TagsByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	if s.tagsErr != nil {
		return nil, s.tagsErr
	}
	var out []models.Tag
	for _, tag := range s.tags {
		for _, name := range names {
			if tag.Name == name {
				out = append(out, tag)
			}
		}
	}
	return out, nil
}

func newTestEngine(src *fakeSources, opts ...Option) *Engine {
	return NewEngine(src, src, logger.New("error", "json"), opts...)
}

func TestGetQuestions_NoSearchRunsUnfiltered(t *testing.T) {
	src := &fakeSources{questions: []*models.Question{
		questionAt("first", testEpoch),
		questionAt("second", testEpoch.Add(time.Hour)),
	}}
	e := newTestEngine(src)

	got, err := e.GetQuestions(context.Background(), "", "")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Title)
	require.Len(t, src.seenFilters, 1)
	assert.True(t, src.seenFilters[0].IsUnconditional())
}

func TestGetQuestions_WhitespaceSearchIsNoSearch(t *testing.T) {
	src := &fakeSources{questions: []*models.Question{questionAt("only", testEpoch)}}
	e := newTestEngine(src)

	got, err := e.GetQuestions(context.Background(), "newest", "   ")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGetQuestions_NonexistentTagYieldsEmptyRegardlessOfOrder(t *testing.T) {
	src := &fakeSources{
		questions: []*models.Question{questionAt("anything", testEpoch)},
		tags:      []models.Tag{{ID: uuid.New(), Name: "react"}},
	}
	e := newTestEngine(src)

	for _, order := range []string{"", "newest", "unanswered", "active"} {
		got, err := e.GetQuestions(context.Background(), order, "[nonexistent-tag]")

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}

	// the question query was never issued; resolution short-circuited
	assert.Empty(t, src.seenFilters)
}

func TestGetQuestions_PartialTagMatchFiltersByResolvedSubset(t *testing.T) {
	react := models.Tag{ID: uuid.New(), Name: "react"}
	reactQ := tagged(questionAt("react q", testEpoch), react)

	src := &fakeSources{
		questions: []*models.Question{reactQ, questionAt("untagged", testEpoch)},
		tags:      []models.Tag{react},
	}
	e := newTestEngine(src)

	// only one of the two searched tags exists; that is still a match
	got, err := e.GetQuestions(context.Background(), "newest", "[react] [no-such-tag]")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "react q", got[0].Title)
	require.Len(t, src.seenFilters, 1)
	assert.Equal(t, []uuid.UUID{react.ID}, src.seenFilters[0].TagIDs)
}

func TestGetQuestions_TextSearchIsCaseInsensitive(t *testing.T) {
	q := questionAt("Quick question", testEpoch)
	q.Text = "trouble with android studio"

	src := &fakeSources{questions: []*models.Question{q, questionAt("other", testEpoch)}}
	e := newTestEngine(src)

	got, err := e.GetQuestions(context.Background(), "newest", "Android")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Quick question", got[0].Title)
}

func TestGetQuestions_UnansweredTagSearch(t *testing.T) {
	react := models.Tag{ID: uuid.New(), Name: "react"}

	answered1 := withAnswers(tagged(questionAt("answered 1", testEpoch), react), testEpoch.Add(time.Hour))
	answered2 := withAnswers(tagged(questionAt("answered 2", testEpoch.Add(time.Minute)), react), testEpoch.Add(time.Hour))
	answered3 := withAnswers(tagged(questionAt("answered 3", testEpoch.Add(2*time.Minute)), react), testEpoch.Add(time.Hour))
	quietOld := tagged(questionAt("quiet old", testEpoch.Add(3*time.Minute)), react)
	quietNew := tagged(questionAt("quiet new", testEpoch.Add(4*time.Minute)), react)

	src := &fakeSources{
		questions: []*models.Question{answered1, answered2, answered3, quietOld, quietNew},
		tags:      []models.Tag{react},
	}
	e := newTestEngine(src)

	got, err := e.GetQuestions(context.Background(), "unanswered", "[react]")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "quiet new", got[0].Title)
	assert.Equal(t, "quiet old", got[1].Title)
}

func TestGetQuestions_ActiveOrdersByActivity(t *testing.T) {
	// oldest question, but answered most recently
	revived := withAnswers(questionAt("revived", testEpoch), testEpoch.Add(96*time.Hour))
	fresh := questionAt("fresh", testEpoch.Add(48*time.Hour))
	middling := withAnswers(questionAt("middling", testEpoch.Add(24*time.Hour)), testEpoch.Add(72*time.Hour))

	src := &fakeSources{questions: []*models.Question{fresh, middling, revived}}
	e := newTestEngine(src)

	got, err := e.GetQuestions(context.Background(), "active", "")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "revived", got[0].Title)
	assert.Equal(t, "middling", got[1].Title)
	assert.Equal(t, "fresh", got[2].Title)
}

func TestGetQuestions_CuratedLookup(t *testing.T) {
	titles := []string{"alpha", "beta", "gamma"}

	alpha := questionAt("alpha", testEpoch)
	beta := questionAt("beta", testEpoch.Add(time.Hour))
	gamma := questionAt("gamma", testEpoch.Add(2*time.Hour))

	src := &fakeSources{questions: []*models.Question{alpha, beta, gamma}}
	e := newTestEngine(src, WithCuratedTitles(titles))

	// order key is ignored on this path; last title's question comes first
	for _, order := range []string{"", "newest", "active", "unanswered"} {
		got, err := e.GetQuestions(context.Background(), order, "[javascript] 40 million documents")

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "gamma", got[0].Title)
		assert.Equal(t, "alpha", got[1].Title)
		assert.Equal(t, "beta", got[2].Title)
	}

	// no tag resolution or predicate query happens on this path
	assert.Empty(t, src.seenFilters)
}

func TestGetQuestions_CuratedOmitsMissingTitles(t *testing.T) {
	beta := questionAt("beta", testEpoch)

	src := &fakeSources{questions: []*models.Question{beta}}
	e := newTestEngine(src, WithCuratedTitles([]string{"alpha", "beta", "gamma"}))

	got, err := e.GetQuestions(context.Background(), "", "40 million documents [javascript]")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "beta", got[0].Title)
}

func TestGetQuestions_StorageFailuresPropagate(t *testing.T) {
	boom := errors.New("storage down")

	t.Run("question query", func(t *testing.T) {
		src := &fakeSources{questionsErr: boom}
		_, err := newTestEngine(src).GetQuestions(context.Background(), "", "")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("tag resolution", func(t *testing.T) {
		src := &fakeSources{tagsErr: boom}
		_, err := newTestEngine(src).GetQuestions(context.Background(), "", "[react]")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("curated title lookup", func(t *testing.T) {
		src := &fakeSources{titleErr: boom}
		_, err := newTestEngine(src).GetQuestions(context.Background(), "", "40 million documents [javascript]")
		assert.ErrorIs(t, err, boom)
	})
}
