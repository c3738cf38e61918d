package validation

import (
	"strconv"

	"github.com/goccy/go-json"
	"github.com/opstrack/forms-go/internal/domain/form"
	"gorm.io/datatypes"
)

// MaxFileSize is the upload ceiling for file fields, in bytes.
const MaxFileSize = 10485760

// AllowedFileExts are the upload extensions accepted for file fields.
var AllowedFileExts = []string{"pdf", "png", "jpg", "jpeg", "xlsx", "csv", "txt"}

// BaseConstraints returns the constraint a field's type implies. Pure lookup,
// no I/O. The switch is exhaustive over form.FieldType.
func BaseConstraints(f form.FormField) []Constraint {
	switch f.Type {
	case form.FieldTypeText, form.FieldTypeTextarea:
		return nil
	case form.FieldTypeNumber:
		return []Constraint{Numeric()}
	case form.FieldTypeDate:
		return []Constraint{DateISO()}
	case form.FieldTypeTime:
		return []Constraint{TimeHHMM()}
	case form.FieldTypeDatetime:
		return []Constraint{DateTimeISO()}
	case form.FieldTypeSelect, form.FieldTypeRadio:
		return []Constraint{OneOf(NormalizeOptions(f.Options))}
	case form.FieldTypeCheckbox, form.FieldTypeMultiselect:
		return []Constraint{EachOneOf(NormalizeOptions(f.Options))}
	case form.FieldTypeFile:
		return []Constraint{FileUpload(MaxFileSize, AllowedFileExts)}
	}
	return nil
}

// NormalizeOptions flattens a declared option list to plain values. Both bare
// scalars and {value: ...} records are accepted.
func NormalizeOptions(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}

	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		case map[string]any:
			if inner, ok := v["value"]; ok {
				if s, ok := scalarString(inner); ok {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

// CustomTokens decodes the opaque rule tokens declared on a field.
func CustomTokens(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var tokens []string
	if err := json.Unmarshal(raw, &tokens); err != nil {
		return nil
	}
	return tokens
}
