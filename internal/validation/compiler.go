package validation

import (
	"fmt"

	"github.com/opstrack/forms-go/internal/domain/form"
)

// UploadMeta describes one binary upload accompanying a submission. Uploads
// arrive out-of-band from scalar values, keyed by field_code.
type UploadMeta struct {
	Filename string
	Size     int64
}

type CompileOptions struct {
	// Uploads holds the binary uploads present on the request, by field_code.
	Uploads map[string]UploadMeta
	// HasStoredFile probes whether a file field already has a stored value,
	// which waives its required rule on re-submission.
	HasStoredFile func(fieldCode string) bool
	// Updating marks the update path; required file rules on the create path
	// are governed by RequireFileOnCreate instead.
	Updating bool
	// RequireFileOnCreate enforces required file fields on first submission.
	RequireFileOnCreate bool
	// Registry evaluates custom tokens. Nil means DefaultRegistry.
	Registry Registry
}

// FieldRules is the compiled constraint list for one field.
type FieldRules struct {
	Field       form.FormField
	Constraints []Constraint
}

// RuleSet is the concrete constraint set compiled from a form's schema.
// Checking the same values against the same rule set is idempotent.
type RuleSet struct {
	rules    []FieldRules
	uploads  map[string]UploadMeta
	registry Registry
}

// Compile builds the rule set for every active field. Inactive fields are
// skipped entirely: their values are neither validated nor rejected.
func Compile(fields []form.FormField, opts CompileOptions) RuleSet {
	reg := opts.Registry
	if reg == nil {
		reg = DefaultRegistry()
	}

	rs := RuleSet{uploads: opts.Uploads, registry: reg}
	for _, f := range fields {
		if !f.Active {
			continue
		}

		var cs []Constraint
		if f.Required && requireField(f, opts) {
			cs = append(cs, Required())
		}
		cs = append(cs, BaseConstraints(f)...)
		for _, token := range CustomTokens(f.CustomRules) {
			cs = append(cs, ParseCustomToken(token))
		}

		rs.rules = append(rs.rules, FieldRules{Field: f, Constraints: cs})
	}
	return rs
}

// requireField applies the file-field waiver: a required file is satisfied by
// an already-stored value, and on first submission the rule is enforced only
// when configured to be.
func requireField(f form.FormField, opts CompileOptions) bool {
	if f.Type != form.FieldTypeFile {
		return true
	}
	if opts.HasStoredFile != nil && opts.HasStoredFile(f.FieldCode) {
		return false
	}
	if !opts.Updating {
		return opts.RequireFileOnCreate
	}
	return true
}

// Check runs every field's constraints over the submitted values and
// accumulates all violations. No field short-circuits another. A nil return
// means the values satisfy the schema. Field codes present in values but
// absent from the schema are ignored.
func (rs RuleSet) Check(values map[string]any) *FieldErrors {
	errs := NewFieldErrors()

	for _, fr := range rs.rules {
		code := fr.Field.FieldCode
		label := fieldLabel(fr.Field)

		if fr.Field.Type == form.FieldTypeFile {
			rs.checkFile(fr, code, label, errs)
			continue
		}

		value, present := values[code]
		if !present || emptyValue(value) {
			if hasKind(fr.Constraints, KindRequired) {
				errs.Add(code, fmt.Sprintf("%s is required", label))
			}
			// Absence is explicitly permitted for optional fields.
			continue
		}

		for _, c := range fr.Constraints {
			if c.Kind == KindRequired || c.Kind == KindFileUpload {
				continue
			}
			if msg := c.check(label, value, rs.registry); msg != "" {
				errs.Add(code, msg)
			}
		}
	}

	if errs.Empty() {
		return nil
	}
	return errs
}

// checkFile validates a file field against its upload, if any. A plain string
// value under a file field's code is not validated as a file; attachments
// arrive out-of-band from scalar values.
func (rs RuleSet) checkFile(fr FieldRules, code, label string, errs *FieldErrors) {
	up, hasUpload := rs.uploads[code]
	if !hasUpload {
		if hasKind(fr.Constraints, KindRequired) {
			errs.Add(code, fmt.Sprintf("%s is required", label))
		}
		return
	}
	for _, c := range fr.Constraints {
		if msg := c.checkUpload(label, up); msg != "" {
			errs.Add(code, msg)
		}
	}
}

// Schema projects the compiled rule shape for remote pre-validation.
func (rs RuleSet) Schema() map[string]form.FieldSchema {
	out := make(map[string]form.FieldSchema, len(rs.rules))
	for _, fr := range rs.rules {
		tokens := make([]string, 0, len(fr.Constraints))
		for _, c := range fr.Constraints {
			tokens = append(tokens, c.Token())
		}
		schema := form.FieldSchema{
			Label:    fr.Field.Label,
			Type:     string(fr.Field.Type),
			Required: fr.Field.Required,
			Rules:    tokens,
		}
		if fr.Field.Type.HasOptions() {
			schema.Options = NormalizeOptions(fr.Field.Options)
		}
		out[fr.Field.FieldCode] = schema
	}
	return out
}

func fieldLabel(f form.FormField) string {
	if f.Label != "" {
		return f.Label
	}
	return f.FieldCode
}

func hasKind(cs []Constraint, k Kind) bool {
	for _, c := range cs {
		if c.Kind == k {
			return true
		}
	}
	return false
}

func emptyValue(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return s == ""
	case []any:
		return len(s) == 0
	case []string:
		return len(s) == 0
	}
	return false
}
