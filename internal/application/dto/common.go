package dto

// ErrorDetail par mensaje + status que viaja dentro del sobre de error.
type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse sobre uniforme de error: {"error":{"message":...,"status":...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewError construye el sobre de error.
func NewError(status int, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Message: message, Status: status}}
}

// StatusResponse acuse simple, p.ej. {"status":"deleted"}.
type StatusResponse struct {
	Status string `json:"status"`
}
