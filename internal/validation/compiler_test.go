package validation_test

import (
	"testing"

	"github.com/opstrack/forms-go/internal/domain/form"
	"github.com/opstrack/forms-go/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func textField(code string, required bool) form.FormField {
	return form.FormField{
		Label:     code,
		FieldCode: code,
		Type:      form.FieldTypeText,
		Required:  required,
		Active:    true,
	}
}

func selectField(code string, required bool, options string) form.FormField {
	return form.FormField{
		Label:     code,
		FieldCode: code,
		Type:      form.FieldTypeSelect,
		Required:  required,
		Options:   datatypes.JSON(options),
		Active:    true,
	}
}

func TestCheckRequiredMissing(t *testing.T) {
	fields := []form.FormField{
		textField("operator_name", true),
		selectField("shift", true, `["morning","evening"]`),
		{Label: "defects", FieldCode: "defects", Type: form.FieldTypeNumber, Active: true},
	}

	rs := validation.Compile(fields, validation.CompileOptions{})

	errs := rs.Check(map[string]any{"shift": "night"})
	require.NotNil(t, errs)
	assert.Contains(t, errs.Fields, "operator_name")
	assert.Contains(t, errs.Fields, "shift")
	assert.NotContains(t, errs.Fields, "defects")
}

func TestCheckValidSubmission(t *testing.T) {
	fields := []form.FormField{
		textField("operator_name", true),
		selectField("shift", true, `["morning","evening"]`),
		{Label: "defects", FieldCode: "defects", Type: form.FieldTypeNumber, Active: true},
	}

	rs := validation.Compile(fields, validation.CompileOptions{})

	errs := rs.Check(map[string]any{"operator_name": "Ana", "shift": "morning"})
	assert.Nil(t, errs)
}

func TestCheckAccumulatesAllViolations(t *testing.T) {
	fields := []form.FormField{
		textField("a", true),
		textField("b", true),
		{Label: "c", FieldCode: "c", Type: form.FieldTypeNumber, Required: true, Active: true},
	}

	rs := validation.Compile(fields, validation.CompileOptions{})

	errs := rs.Check(map[string]any{"c": "not-a-number"})
	require.NotNil(t, errs)
	assert.Len(t, errs.Fields, 3)
}

func TestCheckIdempotent(t *testing.T) {
	fields := []form.FormField{
		textField("a", true),
		selectField("shift", false, `["morning","evening"]`),
	}
	values := map[string]any{"shift": "night"}

	rs := validation.Compile(fields, validation.CompileOptions{})

	first := rs.Check(values)
	second := rs.Check(values)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.Fields, second.Fields)
}

func TestOptionalSelectOutsideOptionsFails(t *testing.T) {
	fields := []form.FormField{selectField("shift", false, `["morning","evening"]`)}

	rs := validation.Compile(fields, validation.CompileOptions{})

	errs := rs.Check(map[string]any{"shift": "night"})
	require.NotNil(t, errs)
	assert.Contains(t, errs.Fields, "shift")
}

func TestOptionalAbsenceAllowed(t *testing.T) {
	fields := []form.FormField{selectField("shift", false, `["morning","evening"]`)}

	rs := validation.Compile(fields, validation.CompileOptions{})
	assert.Nil(t, rs.Check(map[string]any{}))
}

func TestOptionRecordsNormalize(t *testing.T) {
	fields := []form.FormField{
		selectField("shift", true, `[{"value":"morning","label":"Morning"},{"value":"evening","label":"Evening"}]`),
	}

	rs := validation.Compile(fields, validation.CompileOptions{})

	assert.Nil(t, rs.Check(map[string]any{"shift": "morning"}))
	assert.NotNil(t, rs.Check(map[string]any{"shift": "night"}))
}

func TestMultiselectDemandsArray(t *testing.T) {
	fields := []form.FormField{{
		Label:     "tags",
		FieldCode: "tags",
		Type:      form.FieldTypeMultiselect,
		Options:   datatypes.JSON(`["x","y","z"]`),
		Active:    true,
	}}

	rs := validation.Compile(fields, validation.CompileOptions{})

	errs := rs.Check(map[string]any{"tags": "x"})
	require.NotNil(t, errs)
	assert.Contains(t, errs.Fields["tags"][0], "must be a list")

	assert.Nil(t, rs.Check(map[string]any{"tags": []any{"x", "y"}}))

	errs = rs.Check(map[string]any{"tags": []any{"x", "w"}})
	require.NotNil(t, errs)
	assert.Contains(t, errs.Fields, "tags")
}

func TestInactiveFieldSkipped(t *testing.T) {
	inactive := selectField("shift", true, `["morning"]`)
	inactive.Active = false
	fields := []form.FormField{inactive}

	rs := validation.Compile(fields, validation.CompileOptions{})

	// Neither validated nor rejected, even with an out-of-set value present.
	assert.Nil(t, rs.Check(map[string]any{"shift": "night"}))
}

func TestUnknownFieldCodesIgnored(t *testing.T) {
	fields := []form.FormField{textField("a", false)}

	rs := validation.Compile(fields, validation.CompileOptions{})
	assert.Nil(t, rs.Check(map[string]any{"ghost": "value"}))
}

func TestDateTimeAndNumberConstraints(t *testing.T) {
	fields := []form.FormField{
		{Label: "d", FieldCode: "d", Type: form.FieldTypeDate, Active: true},
		{Label: "t", FieldCode: "t", Type: form.FieldTypeTime, Active: true},
		{Label: "dt", FieldCode: "dt", Type: form.FieldTypeDatetime, Active: true},
		{Label: "n", FieldCode: "n", Type: form.FieldTypeNumber, Active: true},
	}

	rs := validation.Compile(fields, validation.CompileOptions{})

	assert.Nil(t, rs.Check(map[string]any{
		"d":  "2025-03-14",
		"t":  "23:59",
		"dt": "2025-03-14T08:30:00",
		"n":  float64(42),
	}))

	errs := rs.Check(map[string]any{
		"d":  "14/03/2025",
		"t":  "24:00",
		"dt": "now",
		"n":  "forty-two",
	})
	require.NotNil(t, errs)
	assert.Len(t, errs.Fields, 4)
}

func TestCustomTokensEvaluated(t *testing.T) {
	fields := []form.FormField{{
		Label:       "notes",
		FieldCode:   "notes",
		Type:        form.FieldTypeTextarea,
		CustomRules: datatypes.JSON(`["max:5"]`),
		Active:      true,
	}}

	rs := validation.Compile(fields, validation.CompileOptions{})

	assert.Nil(t, rs.Check(map[string]any{"notes": "short"}))
	assert.NotNil(t, rs.Check(map[string]any{"notes": "much too long"}))
}

func TestUnknownCustomTokensPassThrough(t *testing.T) {
	fields := []form.FormField{{
		Label:       "qty",
		FieldCode:   "qty",
		Type:        form.FieldTypeNumber,
		CustomRules: datatypes.JSON(`["stock_threshold:40","gibberish"]`),
		Active:      true,
	}}

	rs := validation.Compile(fields, validation.CompileOptions{})

	// Opaque tokens never raise violations on their own.
	assert.Nil(t, rs.Check(map[string]any{"qty": float64(9000)}))
}

func TestFileFieldRequirements(t *testing.T) {
	fields := []form.FormField{{
		Label:     "photo",
		FieldCode: "photo",
		Type:      form.FieldTypeFile,
		Required:  true,
		Active:    true,
	}}

	t.Run("create enforces when configured", func(t *testing.T) {
		rs := validation.Compile(fields, validation.CompileOptions{RequireFileOnCreate: true})
		errs := rs.Check(map[string]any{})
		require.NotNil(t, errs)
		assert.Contains(t, errs.Fields, "photo")
	})

	t.Run("create waives when not configured", func(t *testing.T) {
		rs := validation.Compile(fields, validation.CompileOptions{RequireFileOnCreate: false})
		assert.Nil(t, rs.Check(map[string]any{}))
	})

	t.Run("update waives when a stored file exists", func(t *testing.T) {
		rs := validation.Compile(fields, validation.CompileOptions{
			Updating:      true,
			HasStoredFile: func(string) bool { return true },
		})
		assert.Nil(t, rs.Check(map[string]any{}))
	})

	t.Run("update enforces when nothing stored", func(t *testing.T) {
		rs := validation.Compile(fields, validation.CompileOptions{
			Updating:      true,
			HasStoredFile: func(string) bool { return false },
		})
		errs := rs.Check(map[string]any{})
		require.NotNil(t, errs)
		assert.Contains(t, errs.Fields, "photo")
	})

	t.Run("upload satisfies the requirement", func(t *testing.T) {
		rs := validation.Compile(fields, validation.CompileOptions{
			RequireFileOnCreate: true,
			Uploads:             map[string]validation.UploadMeta{"photo": {Filename: "shot.png", Size: 1024}},
		})
		assert.Nil(t, rs.Check(map[string]any{}))
	})

	t.Run("plain string value is not a file", func(t *testing.T) {
		rs := validation.Compile(fields, validation.CompileOptions{RequireFileOnCreate: true})
		errs := rs.Check(map[string]any{"photo": "not-a-file.png"})
		require.NotNil(t, errs)
		assert.Contains(t, errs.Fields, "photo")
	})
}

func TestFileUploadConstraints(t *testing.T) {
	fields := []form.FormField{{
		Label:     "doc",
		FieldCode: "doc",
		Type:      form.FieldTypeFile,
		Active:    true,
	}}

	t.Run("oversized upload fails", func(t *testing.T) {
		rs := validation.Compile(fields, validation.CompileOptions{
			Uploads: map[string]validation.UploadMeta{"doc": {Filename: "big.pdf", Size: validation.MaxFileSize + 1}},
		})
		errs := rs.Check(map[string]any{})
		require.NotNil(t, errs)
		assert.Contains(t, errs.Fields, "doc")
	})

	t.Run("disallowed extension fails", func(t *testing.T) {
		rs := validation.Compile(fields, validation.CompileOptions{
			Uploads: map[string]validation.UploadMeta{"doc": {Filename: "tool.exe", Size: 10}},
		})
		errs := rs.Check(map[string]any{})
		require.NotNil(t, errs)
		assert.Contains(t, errs.Fields, "doc")
	})

	t.Run("allowed upload passes", func(t *testing.T) {
		rs := validation.Compile(fields, validation.CompileOptions{
			Uploads: map[string]validation.UploadMeta{"doc": {Filename: "report.PDF", Size: 10}},
		})
		assert.Nil(t, rs.Check(map[string]any{}))
	})
}

func TestSchemaProjection(t *testing.T) {
	inactive := textField("gone", false)
	inactive.Active = false
	fields := []form.FormField{
		textField("operator_name", true),
		selectField("shift", true, `["morning","evening"]`),
		inactive,
	}

	rs := validation.Compile(fields, validation.CompileOptions{RequireFileOnCreate: true})
	schema := rs.Schema()

	require.Len(t, schema, 2)
	assert.NotContains(t, schema, "gone")

	shift := schema["shift"]
	assert.Equal(t, "select", shift.Type)
	assert.True(t, shift.Required)
	assert.Equal(t, []string{"morning", "evening"}, shift.Options)
	assert.Contains(t, shift.Rules, "required")
	assert.Contains(t, shift.Rules, "in:morning,evening")
}
