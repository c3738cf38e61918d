package submission

type CreateResponseDTO struct {
	Values  map[string]any `json:"values" binding:"required"`
	BatchID *uint          `json:"batch_id"`
	Status  string         `json:"status"` // "" defaults to in_progress; "completed" stamps submitted_at
}

type UpdateResponseDTO struct {
	Values map[string]any `json:"values"`
	Status string         `json:"status"`
}

type ReviewResponseDTO struct {
	Status string `json:"status" binding:"required"` // approved or rejected
	Notes  string `json:"notes"`
}

// Report is one pivoted table for a form: one column per field in field
// order, one row per response.
type Report struct {
	Headings []string   `json:"headings"`
	Rows     [][]string `json:"rows"`
}
