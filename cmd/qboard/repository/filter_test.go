package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/qboard/qboard/cmd/qboard/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuestionWhere_Unconditional(t *testing.T) {
	where, args := buildQuestionWhere(search.Filter{})

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildQuestionWhere_TagClauseOnly(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	where, args := buildQuestionWhere(search.Filter{TagIDs: ids})

	assert.Equal(t,
		" WHERE EXISTS (SELECT 1 FROM question_tags qt WHERE qt.question_id = q.id AND qt.tag_id = ANY($1))",
		where,
	)
	require.Len(t, args, 1)
	assert.Equal(t, ids, args[0])
}

func TestBuildQuestionWhere_TextClauseOnly(t *testing.T) {
	where, args := buildQuestionWhere(search.Filter{Terms: []string{"android", "studio"}})

	assert.Equal(t, " WHERE (q.title ILIKE ANY($1) OR q.text ILIKE ANY($1))", where)
	require.Len(t, args, 1)
	assert.Equal(t, []string{"%android%", "%studio%"}, args[0])
}

func TestBuildQuestionWhere_BothClausesANDed(t *testing.T) {
	ids := []uuid.UUID{uuid.New()}

	where, args := buildQuestionWhere(search.Filter{TagIDs: ids, Terms: []string{"router"}})

	assert.Equal(t,
		" WHERE EXISTS (SELECT 1 FROM question_tags qt WHERE qt.question_id = q.id AND qt.tag_id = ANY($1))"+
			" AND (q.title ILIKE ANY($2) OR q.text ILIKE ANY($2))",
		where,
	)
	require.Len(t, args, 2)
}

func TestBuildQuestionWhere_EscapesLikeMetacharacters(t *testing.T) {
	_, args := buildQuestionWhere(search.Filter{Terms: []string{`50%_done\now`}})

	assert.Equal(t, []string{`%50\%\_done\\now%`}, args[0])
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `plain`, escapeLike(`plain`))
	assert.Equal(t, `\%`, escapeLike(`%`))
	assert.Equal(t, `\_`, escapeLike(`_`))
	assert.Equal(t, `\\`, escapeLike(`\`))
}
