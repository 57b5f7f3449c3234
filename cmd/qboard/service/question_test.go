package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyContentPatch_ReplacesFields(t *testing.T) {
	patch := []byte(`[
		{"op": "replace", "path": "/title", "value": "A sharper title"},
		{"op": "replace", "path": "/text", "value": "A clearer body"}
	]`)

	title, text, err := applyContentPatch("old title", "old body", patch)

	require.NoError(t, err)
	assert.Equal(t, "A sharper title", title)
	assert.Equal(t, "A clearer body", text)
}

func TestApplyContentPatch_SingleField(t *testing.T) {
	patch := []byte(`[{"op": "replace", "path": "/title", "value": "Only the title"}]`)

	title, text, err := applyContentPatch("old title", "old body", patch)

	require.NoError(t, err)
	assert.Equal(t, "Only the title", title)
	assert.Equal(t, "old body", text)
}

func TestApplyContentPatch_MalformedDocument(t *testing.T) {
	_, _, err := applyContentPatch("t", "b", []byte(`{"not": "a patch"}`))

	assert.Error(t, err)
}

func TestNormalizeTagNames(t *testing.T) {
	got := NormalizeTagNames([]string{" React ", "REACT", "android", "", "  ", "react", "Storage"})

	assert.Equal(t, []string{"react", "android", "storage"}, got)
}

func TestNormalizeTagNames_Empty(t *testing.T) {
	assert.Empty(t, NormalizeTagNames(nil))
	assert.Empty(t, NormalizeTagNames([]string{"", "   "}))
}
