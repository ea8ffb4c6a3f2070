package dto

// ErrorResponse carries a human-readable reason under "detail".
type ErrorResponse struct {
	Detail string `json:"detail" example:"Please provide either a topic or upload a file."`
}

// FieldError locates one invalid request field.
type FieldError struct {
	Field   string `json:"field" example:"score"`
	Message string `json:"msg" example:"field required"`
}

// ValidationErrorResponse lists every invalid field under "detail".
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
