package errors

import "net/http"

const (
	MessageUnauthorized    = "Unauthorized"
	MessageNotFound        = "Not Found"
	MessageTooManyRequests = "Too many requests"
	MessageInvalidJSON     = "Invalid JSON body"
)

// Error codes carried in the response envelope. They mirror the HTTP status
// for transport errors and use 4xx-adjacent values for validation.
const (
	CodeValidation      = http.StatusBadRequest
	CodeUnauthorized    = http.StatusUnauthorized
	CodeNotFound        = http.StatusNotFound
	CodeTooManyRequests = http.StatusTooManyRequests
)
