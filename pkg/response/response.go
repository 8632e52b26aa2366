package response

// Response is the standard API envelope: {status, data} on success,
// {status, message} on error. Status carries the HTTP status code so
// clients can read it without inspecting the transport layer.
type Response struct {
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Success wraps data in the standard envelope
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status: statusCode,
		Data:   data,
	}
}

// Message wraps an informational message (success paths with no payload)
func Message(statusCode int, msg string) Response {
	return Response{
		Status:  statusCode,
		Message: msg,
	}
}

// Error wraps an error message in the standard envelope
func Error(statusCode int, msg string) Response {
	return Response{
		Status:  statusCode,
		Message: msg,
	}
}
