package form

type CreateFormDTO struct {
	Name         string           `json:"name" binding:"required"`
	Code         string           `json:"code" binding:"required"`
	Description  string           `json:"description"`
	DisplayOrder int              `json:"display_order"`
	Fields       []CreateFieldDTO `json:"fields"`
}

type UpdateFormDTO struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Active       *bool   `json:"active"`
	DisplayOrder *int    `json:"display_order"`
}

type CreateFieldDTO struct {
	Label       string   `json:"label" binding:"required"`
	FieldCode   string   `json:"field_code" binding:"required"`
	Type        string   `json:"type" binding:"required"`
	Required    bool     `json:"required"`
	Options     []any    `json:"options"`
	CustomRules []string `json:"custom_rules"`
	FieldOrder  int      `json:"field_order"`
}

type UpdateFieldDTO struct {
	Label       *string  `json:"label"`
	Required    *bool    `json:"required"`
	Options     []any    `json:"options"`
	CustomRules []string `json:"custom_rules"`
	FieldOrder  *int     `json:"field_order"`
	Active      *bool    `json:"active"`
}

// FieldSchema is the read-only projection served to clients that want to
// pre-validate before submitting.
type FieldSchema struct {
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
	Rules    []string `json:"rules"`
}
