package application

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts request field names to readable words
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":   "path",
		"docID":  "document ID",
		"doc_id": "document ID",
		"query":  "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ParseDocumentID converts a raw document id to its integer form.
// Non-numeric or negative input yields a DocumentError wrapping ErrInvalidID.
func ParseDocumentID(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	id, err := strconv.Atoi(trimmed)
	if err != nil || id < 0 {
		return 0, &DocumentError{RawID: raw, Err: ErrInvalidID}
	}
	return id, nil
}
