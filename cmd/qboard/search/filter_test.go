package search

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/models"
	"github.com/stretchr/testify/assert"
)

func tagged(q *models.Question, tags ...models.Tag) *models.Question {
	q.Tags = append(q.Tags, tags...)
	return q
}

func TestFilter_UnconditionalMatchesEverything(t *testing.T) {
	f := Filter{}
	assert.True(t, f.IsUnconditional())

	questions := []*models.Question{
		questionAt("plain", testEpoch),
		tagged(questionAt("tagged", testEpoch), models.Tag{ID: uuid.New(), Name: "go"}),
		withAnswers(questionAt("answered", testEpoch), testEpoch.Add(time.Hour)),
	}

	for _, q := range questions {
		assert.True(t, f.Matches(q), q.Title)
	}
}

func TestFilter_TagClauseIntersects(t *testing.T) {
	react := models.Tag{ID: uuid.New(), Name: "react"}
	android := models.Tag{ID: uuid.New(), Name: "android"}
	storage := models.Tag{ID: uuid.New(), Name: "storage"}

	f := Filter{TagIDs: []uuid.UUID{react.ID, storage.ID}}

	assert.True(t, f.Matches(tagged(questionAt("react q", testEpoch), react)))
	assert.True(t, f.Matches(tagged(questionAt("both", testEpoch), android, storage)))
	assert.False(t, f.Matches(tagged(questionAt("android only", testEpoch), android)))
	assert.False(t, f.Matches(questionAt("untagged", testEpoch)))
}

func TestFilter_TextClauseIsCaseInsensitiveSubstring(t *testing.T) {
	q := questionAt("Quick question", testEpoch)
	q.Text = "I installed Android Studio yesterday"

	// terms arrive lower-cased from the parser; fields match regardless
	// of their own casing
	assert.True(t, Filter{Terms: []string{"android"}}.Matches(q))
	assert.True(t, Filter{Terms: []string{"quick"}}.Matches(q))

	// ANY term may hit, in either field
	assert.True(t, Filter{Terms: []string{"nomatch", "studio"}}.Matches(q))
	assert.False(t, Filter{Terms: []string{"kotlin", "gradle"}}.Matches(q))
}

func TestFilter_ClausesAreANDed(t *testing.T) {
	react := models.Tag{ID: uuid.New(), Name: "react"}

	matchBoth := tagged(questionAt("react router", testEpoch), react)
	matchTagOnly := tagged(questionAt("hooks", testEpoch), react)
	matchTextOnly := questionAt("router without the tag", testEpoch)

	f := Filter{TagIDs: []uuid.UUID{react.ID}, Terms: []string{"router"}}

	assert.True(t, f.Matches(matchBoth))
	assert.False(t, f.Matches(matchTagOnly))
	assert.False(t, f.Matches(matchTextOnly))
}
