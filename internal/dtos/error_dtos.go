package dtos

// ValidationErrorDetail is one field failure in a validation error response.
type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}
