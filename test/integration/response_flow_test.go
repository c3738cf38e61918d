//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/opstrack/forms-go/internal/domain/form"
	"github.com/opstrack/forms-go/internal/domain/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createForm(t *testing.T, client *HTTPClient, payload map[string]interface{}) form.Form {
	t.Helper()
	resp, err := client.POST("/forms", payload)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	var f form.Form
	require.NoError(t, resp.DecodeJSON(&f))
	return f
}

func TestResponseFlow(t *testing.T) {
	ctx := GetTestContext()
	admin := NewHTTPClient(ctx.Router, ctx.AdminToken)
	user := NewHTTPClient(ctx.Router, ctx.UserToken)

	f := createForm(t, admin, shiftReportPayload("shift_report_flow"))

	var created submission.FormResponse

	t.Run("invalid submission returns field errors", func(t *testing.T) {
		resp, err := user.POST(fmt.Sprintf("/forms/%d/responses", f.ID), map[string]interface{}{
			"values": map[string]interface{}{"shift": "night"},
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(resp.Body))

		var body struct {
			Errors map[string][]string `json:"errors"`
		}
		require.NoError(t, resp.DecodeJSON(&body))
		assert.Contains(t, body.Errors, "operator_name")
		assert.Contains(t, body.Errors, "shift")
	})

	t.Run("valid submission persists", func(t *testing.T) {
		resp, err := user.POST(fmt.Sprintf("/forms/%d/responses", f.ID), map[string]interface{}{
			"values": map[string]interface{}{
				"operator_name": "Ana",
				"shift":         "morning",
				"defects":       3,
			},
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

		require.NoError(t, resp.DecodeJSON(&created))
		assert.NotZero(t, created.ID)
		assert.Equal(t, submission.StatusInProgress, created.Status)
		assert.Len(t, created.Values, 3)
	})

	t.Run("update then complete", func(t *testing.T) {
		resp, err := user.PUT(fmt.Sprintf("/responses/%d", created.ID), map[string]interface{}{
			"values": map[string]interface{}{
				"operator_name": "Ana B",
				"shift":         "evening",
				"defects":       1,
			},
			"status": "completed",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

		var updated submission.FormResponse
		require.NoError(t, resp.DecodeJSON(&updated))
		assert.Equal(t, submission.StatusCompleted, updated.Status)
		assert.NotNil(t, updated.SubmittedAt)
	})

	t.Run("completed response cannot be edited", func(t *testing.T) {
		resp, err := user.PUT(fmt.Sprintf("/responses/%d", created.ID), map[string]interface{}{
			"values": map[string]interface{}{"operator_name": "Eve"},
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("review requires admin", func(t *testing.T) {
		resp, err := user.PUT(fmt.Sprintf("/responses/%d/review", created.ID), map[string]interface{}{
			"status": "approved",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin approves the completed response", func(t *testing.T) {
		resp, err := admin.PUT(fmt.Sprintf("/responses/%d/review", created.ID), map[string]interface{}{
			"status": "approved",
			"notes":  "Looks fine",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

		var reviewed submission.FormResponse
		require.NoError(t, resp.DecodeJSON(&reviewed))
		assert.Equal(t, submission.StatusApproved, reviewed.Status)
		assert.NotNil(t, reviewed.ReviewedAt)
		assert.Equal(t, "Looks fine", reviewed.ReviewNotes)
	})

	t.Run("approved response cannot be reviewed again", func(t *testing.T) {
		resp, err := admin.PUT(fmt.Sprintf("/responses/%d/review", created.ID), map[string]interface{}{
			"status": "rejected",
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestMultiselectRoundTrip(t *testing.T) {
	ctx := GetTestContext()
	admin := NewHTTPClient(ctx.Router, ctx.AdminToken)
	user := NewHTTPClient(ctx.Router, ctx.UserToken)

	f := createForm(t, admin, map[string]interface{}{
		"name": "Defect Survey",
		"code": "defect_survey_roundtrip",
		"fields": []map[string]interface{}{
			{"label": "Defect Types", "field_code": "defect_types", "type": "multiselect", "options": []string{"dent", "scratch", "discoloration"}, "field_order": 1},
		},
	})

	resp, err := user.POST(fmt.Sprintf("/forms/%d/responses", f.ID), map[string]interface{}{
		"values": map[string]interface{}{"defect_types": []string{"dent", "scratch"}},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))

	var created submission.FormResponse
	require.NoError(t, resp.DecodeJSON(&created))
	require.Len(t, created.Values, 1)
	assert.Equal(t, `["dent","scratch"]`, created.Values[0].Value)

	getResp, err := user.GET(fmt.Sprintf("/responses/%d", created.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var fetched submission.FormResponse
	require.NoError(t, getResp.DecodeJSON(&fetched))
	require.Len(t, fetched.Values, 1)
	assert.Equal(t, `["dent","scratch"]`, fetched.Values[0].Value)
}

func TestReportPivot(t *testing.T) {
	ctx := GetTestContext()
	admin := NewHTTPClient(ctx.Router, ctx.AdminToken)
	user := NewHTTPClient(ctx.Router, ctx.UserToken)

	f := createForm(t, admin, shiftReportPayload("shift_report_pivot"))

	submitters := []map[string]interface{}{
		{"operator_name": "Ana", "shift": "morning", "defects": 3},
		{"operator_name": "Ben", "shift": "evening"},
	}
	for _, values := range submitters {
		resp, err := user.POST(fmt.Sprintf("/forms/%d/responses", f.ID), map[string]interface{}{
			"values": values,
			"status": "completed",
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(resp.Body))
	}

	resp, err := user.GET(fmt.Sprintf("/forms/%d/report", f.ID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	var report submission.Report
	require.NoError(t, resp.DecodeJSON(&report))

	require.Equal(t, []string{"Operator Name", "Shift", "Defects Found"}, report.Headings)
	require.Len(t, report.Rows, 2)
	for _, row := range report.Rows {
		assert.Len(t, row, len(report.Headings))
	}
	assert.Equal(t, []string{"Ana", "morning", "3"}, report.Rows[0])
	assert.Equal(t, []string{"Ben", "evening", ""}, report.Rows[1])
}
