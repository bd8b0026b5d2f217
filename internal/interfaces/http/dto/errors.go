package dto

import (
	"net/http"
	"strings"
)

// Transport-level error codes produced by middleware
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid = "TOKEN_INVALID"
)

// errorCodeHTTPStatus maps domain and transport error codes to HTTP
// status codes. Codes not listed fall through to the INVALID_ prefix
// rule, then to 500.
var errorCodeHTTPStatus = map[string]int{
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,

	"UNAUTHORIZED":        http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,

	"FORBIDDEN":         http.StatusForbidden,
	"ACCOUNT_SUSPENDED": http.StatusForbidden,

	"BAD_REQUEST":         http.StatusBadRequest,
	"PASSWORD_HASH_ERROR": http.StatusInternalServerError,

	"RATE_LIMIT_EXCEEDED": http.StatusTooManyRequests,
	"INTERNAL_ERROR":      http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code. Validation
// codes all start with INVALID_ and map to 400; anything unknown is a
// 500 so internal codes never leak as client errors.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
