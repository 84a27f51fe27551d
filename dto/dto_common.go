package dto

// ErrorResponse is the uniform failure envelope. The HTTP status carries the
// error class; Message carries the business-rule text.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
