package dto

// Response is the standard API envelope. Every endpoint answers with
// status "success" or "error"; data carries the payload, message a
// human-readable note, errors field-level validation details.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// ValidationDetail describes a single invalid request field
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a success envelope around a payload
func NewSuccessResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

// NewSuccessMessage creates a success envelope with only a message
func NewSuccessMessage(message string) Response {
	return Response{
		Status:  "success",
		Message: message,
	}
}

// NewErrorResponse creates an error envelope
func NewErrorResponse(message string) Response {
	return Response{
		Status:  "error",
		Message: message,
	}
}

// NewValidationErrorResponse creates an error envelope with field details
func NewValidationErrorResponse(message string, details []ValidationDetail) Response {
	return Response{
		Status:  "error",
		Message: message,
		Errors:  details,
	}
}

// IDRequest represents a request with an ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
