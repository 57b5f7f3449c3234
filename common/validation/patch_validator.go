package validation

import (
	"fmt"
)

// maxOperations bounds how many operations a single patch may carry
const maxOperations = 16

// patchablePaths are the question fields a client may edit
var patchablePaths = map[string]bool{
	"/title": true,
	"/text":  true,
}

// PatchValidator validates JSON Patch operations for question edits
type PatchValidator struct{}

// NewPatchValidator creates a new patch validator
func NewPatchValidator() *PatchValidator {
	return &PatchValidator{}
}

// ValidateOperations validates all patch operations
func (v *PatchValidator) ValidateOperations(operations []map[string]interface{}) error {
	if len(operations) == 0 {
		return fmt.Errorf("patch validation failed: no operations")
	}

	if len(operations) > maxOperations {
		return fmt.Errorf("patch validation failed: too many operations (%d, max %d)", len(operations), maxOperations)
	}

	for i, op := range operations {
		if err := v.validateOperation(op, i); err != nil {
			return err
		}
	}

	return nil
}

// validateOperation validates a single operation
func (v *PatchValidator) validateOperation(op map[string]interface{}, index int) error {
	// Check required fields
	opType, ok := op["op"].(string)
	if !ok {
		return fmt.Errorf("operation %d: missing or invalid 'op' field", index)
	}

	path, ok := op["path"].(string)
	if !ok {
		return fmt.Errorf("operation %d: missing or invalid 'path' field", index)
	}

	if !patchablePaths[path] {
		return fmt.Errorf("operation %d: path %q is not editable", index, path)
	}

	switch opType {
	case "replace":
		value, ok := op["value"]
		if !ok {
			return fmt.Errorf("operation %d: 'value' required for replace operation", index)
		}

		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("operation %d: value for %s must be a string", index, path)
		}

		if str == "" {
			return fmt.Errorf("operation %d: value for %s must not be empty", index, path)
		}

	default:
		return fmt.Errorf("operation %d: unsupported operation type %q", index, opType)
	}

	return nil
}
