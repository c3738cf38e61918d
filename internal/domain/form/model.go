package form

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FieldType string

const (
	FieldTypeText        FieldType = "text"
	FieldTypeTextarea    FieldType = "textarea"
	FieldTypeNumber      FieldType = "number"
	FieldTypeDate        FieldType = "date"
	FieldTypeTime        FieldType = "time"
	FieldTypeDatetime    FieldType = "datetime"
	FieldTypeSelect      FieldType = "select"
	FieldTypeRadio       FieldType = "radio"
	FieldTypeCheckbox    FieldType = "checkbox"
	FieldTypeMultiselect FieldType = "multiselect"
	FieldTypeFile        FieldType = "file"
)

// FieldTypes lists every supported type, used for input validation on field creation.
var FieldTypes = []FieldType{
	FieldTypeText, FieldTypeTextarea, FieldTypeNumber,
	FieldTypeDate, FieldTypeTime, FieldTypeDatetime,
	FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox,
	FieldTypeMultiselect, FieldTypeFile,
}

func (t FieldType) Valid() bool {
	for _, ft := range FieldTypes {
		if t == ft {
			return true
		}
	}
	return false
}

// HasOptions reports whether the type draws its allowed values from Options.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldTypeSelect, FieldTypeRadio, FieldTypeCheckbox, FieldTypeMultiselect:
		return true
	}
	return false
}

// Multi reports whether submitted values must be array-shaped.
func (t FieldType) Multi() bool {
	return t == FieldTypeCheckbox || t == FieldTypeMultiselect
}

type Form struct {
	gorm.Model
	Name         string      `json:"name"`
	Code         string      `json:"code" gorm:"uniqueIndex"`
	Description  string      `json:"description"`
	Version      int         `json:"version" gorm:"default:1"`
	Active       bool        `json:"active" gorm:"default:true"`
	DisplayOrder int         `json:"display_order"`
	Fields       []FormField `json:"fields" gorm:"foreignKey:FormID"`
}

type FormField struct {
	gorm.Model
	FormID      uint           `json:"form_id" gorm:"index;uniqueIndex:idx_form_field_code"`
	Label       string         `json:"label"`
	FieldCode   string         `json:"field_code" gorm:"uniqueIndex:idx_form_field_code"`
	Type        FieldType      `json:"type"`
	Required    bool           `json:"required"`
	Options     datatypes.JSON `json:"options"`      // array of scalars or {value: ...} records
	CustomRules datatypes.JSON `json:"custom_rules"` // array of opaque token strings, e.g. "max:500"
	FieldOrder  int            `json:"field_order"`
	Active      bool           `json:"active" gorm:"default:true"`
}
