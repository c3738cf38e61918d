package validation

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors aggregates every violation from one Check pass, keyed by
// field_code. It is returned whole so callers can render all problems at once.
type FieldErrors struct {
	Fields map[string][]string `json:"errors"`
}

func NewFieldErrors() *FieldErrors {
	return &FieldErrors{Fields: map[string][]string{}}
}

func (e *FieldErrors) Add(fieldCode, message string) {
	e.Fields[fieldCode] = append(e.Fields[fieldCode], message)
}

func (e *FieldErrors) Empty() bool {
	return len(e.Fields) == 0
}

func (e *FieldErrors) Error() string {
	codes := make([]string, 0, len(e.Fields))
	for code := range e.Fields {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		parts = append(parts, fmt.Sprintf("%s: %s", code, strings.Join(e.Fields[code], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
