package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOperations_ReplaceTitleAndText(t *testing.T) {
	v := NewPatchValidator()

	ops := []map[string]interface{}{
		{"op": "replace", "path": "/title", "value": "Better title"},
		{"op": "replace", "path": "/text", "value": "Clarified body"},
	}

	assert.NoError(t, v.ValidateOperations(ops))
}

func TestValidateOperations_Rejections(t *testing.T) {
	v := NewPatchValidator()

	tests := []struct {
		name string
		ops  []map[string]interface{}
	}{
		{
			name: "empty patch",
			ops:  []map[string]interface{}{},
		},
		{
			name: "missing op field",
			ops:  []map[string]interface{}{{"path": "/title", "value": "x"}},
		},
		{
			name: "missing path field",
			ops:  []map[string]interface{}{{"op": "replace", "value": "x"}},
		},
		{
			name: "path outside editable fields",
			ops:  []map[string]interface{}{{"op": "replace", "path": "/views", "value": "9000"}},
		},
		{
			name: "remove is not supported",
			ops:  []map[string]interface{}{{"op": "remove", "path": "/title"}},
		},
		{
			name: "replace without value",
			ops:  []map[string]interface{}{{"op": "replace", "path": "/title"}},
		},
		{
			name: "non-string value",
			ops:  []map[string]interface{}{{"op": "replace", "path": "/title", "value": 42}},
		},
		{
			name: "empty string value",
			ops:  []map[string]interface{}{{"op": "replace", "path": "/text", "value": ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, v.ValidateOperations(tt.ops))
		})
	}
}

func TestValidateOperations_TooManyOperations(t *testing.T) {
	v := NewPatchValidator()

	ops := make([]map[string]interface{}, 0, maxOperations+1)
	for i := 0; i <= maxOperations; i++ {
		ops = append(ops, map[string]interface{}{"op": "replace", "path": "/title", "value": "t"})
	}

	assert.Error(t, v.ValidateOperations(ops))
}
