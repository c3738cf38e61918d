package submission

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/opstrack/forms-go/internal/domain/form"
)

type ValueKind int

const (
	KindText ValueKind = iota
	KindNumber
	KindChoice
	KindChoices
	KindFileRef
)

// StoredValue is the in-memory form of one answer. The kind travels with the
// value so readers never have to sniff whether a stored string is JSON.
type StoredValue struct {
	Kind    ValueKind
	Text    string
	Choices []string
}

func TextValue(s string) StoredValue    { return StoredValue{Kind: KindText, Text: s} }
func NumberValue(s string) StoredValue  { return StoredValue{Kind: KindNumber, Text: s} }
func ChoiceValue(s string) StoredValue  { return StoredValue{Kind: KindChoice, Text: s} }
func FileRefValue(p string) StoredValue { return StoredValue{Kind: KindFileRef, Text: p} }

func ChoicesValue(vs []string) StoredValue {
	return StoredValue{Kind: KindChoices, Choices: vs}
}

// EncodeRow flattens the value into the two row columns. Multi-valued answers
// become a JSON array string, file references go to the file_path column.
func (v StoredValue) EncodeRow() (value, filePath string) {
	switch v.Kind {
	case KindChoices:
		b, err := json.Marshal(v.Choices)
		if err != nil {
			return strings.Join(v.Choices, ", "), ""
		}
		return string(b), ""
	case KindFileRef:
		return "", v.Text
	default:
		return v.Text, ""
	}
}

// DecodeRow re-tags a stored row using the field's declared type.
func DecodeRow(t form.FieldType, value, filePath string) StoredValue {
	switch {
	case t == form.FieldTypeFile:
		if filePath != "" {
			return FileRefValue(filePath)
		}
		return FileRefValue(value)
	case t.Multi():
		var vs []string
		if err := json.Unmarshal([]byte(value), &vs); err == nil {
			return ChoicesValue(vs)
		}
		return TextValue(value)
	case t == form.FieldTypeNumber:
		return NumberValue(value)
	case t.HasOptions():
		return ChoiceValue(value)
	default:
		return TextValue(value)
	}
}

// FromInput tags a validated submitted value with the field's type. The
// second return is false when the value has no sensible encoding for the type.
func FromInput(t form.FieldType, v any) (StoredValue, bool) {
	if t.Multi() {
		switch items := v.(type) {
		case []string:
			return ChoicesValue(items), true
		case []any:
			vs := make([]string, 0, len(items))
			for _, item := range items {
				s, ok := inputString(item)
				if !ok {
					return StoredValue{}, false
				}
				vs = append(vs, s)
			}
			return ChoicesValue(vs), true
		}
		return StoredValue{}, false
	}

	s, ok := inputString(v)
	if !ok {
		return StoredValue{}, false
	}
	switch {
	case t == form.FieldTypeNumber:
		return NumberValue(s), true
	case t.HasOptions():
		return ChoiceValue(s), true
	default:
		return TextValue(s), true
	}
}

func inputString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}

// Display renders the value as a single report cell.
func (v StoredValue) Display() string {
	if v.Kind == KindChoices {
		return strings.Join(v.Choices, ", ")
	}
	return v.Text
}

// Logical returns the value as it was submitted: a string for scalars, a
// []string for multi-valued answers.
func (v StoredValue) Logical() any {
	if v.Kind == KindChoices {
		return v.Choices
	}
	return v.Text
}
