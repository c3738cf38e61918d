package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries the full field_code -> messages map from a
// failed submission, never truncated to the first error.
type ValidationErrorResponse struct {
	Error  string              `json:"error"`
	Errors map[string][]string `json:"errors"`
}
