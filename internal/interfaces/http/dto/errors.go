package dto

import (
	"net/http"
	"strings"
)

// Handler-level error codes for failures that never reach the domain layer.
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeRateLimited  = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeStatus maps domain error codes to HTTP status codes.
// Codes not listed here fall through to the suffix/prefix rules in
// GetHTTPStatus.
var errorCodeStatus = map[string]int{
	// resources
	ErrCodeNotFound:        http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	ErrCodeConflict:        http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// authentication
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,
	"TOKEN_MAX_REFRESH":   http.StatusUnauthorized,

	// authorization
	ErrCodeForbidden:   http.StatusForbidden,
	"LAST_ADMIN":       http.StatusForbidden,
	"ACCOUNT_LOCKED":   http.StatusForbidden,
	"ACCOUNT_INACTIVE": http.StatusForbidden,
	"USER_INACTIVE":    http.StatusForbidden,

	// business rules -> 422
	"INVALID_STATE":           http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":      http.StatusUnprocessableEntity,
	"ASSET_LEASED":            http.StatusUnprocessableEntity,
	"ASSET_DISPOSED":          http.StatusUnprocessableEntity,
	"ASSET_NOT_AVAILABLE":     http.StatusUnprocessableEntity,
	"ITEM_INACTIVE":           http.StatusUnprocessableEntity,
	"QUANTITY_EXCEEDED":       http.StatusUnprocessableEntity,
	"DOCUMENT_NOT_ACTIVE":     http.StatusUnprocessableEntity,
	"DOCUMENT_LIMIT_EXCEEDED": http.StatusUnprocessableEntity,
	"NOT_LOCKED":              http.StatusUnprocessableEntity,
	"NOT_EXPIRED":             http.StatusUnprocessableEntity,

	// input
	ErrCodeBadRequest:  http.StatusBadRequest,
	ErrCodeValidation:  http.StatusBadRequest,
	ErrCodeInvalidJSON: http.StatusBadRequest,
	"INVALID_INPUT":    http.StatusBadRequest,
	"FILE_TOO_LARGE":   http.StatusBadRequest,

	// rate limiting
	ErrCodeRateLimited: http.StatusTooManyRequests,

	// internal
	ErrCodeInternal:           http.StatusInternalServerError,
	"PASSWORD_HASH_ERROR":     http.StatusInternalServerError,
	"TOKEN_GENERATION_FAILED": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code.
// Unknown codes are classified by naming convention:
// *_NOT_FOUND -> 404, INVALID_* -> 400, *_IN_USE / DUPLICATE_* -> 409,
// ALREADY_* / CANNOT_* / NO_* -> 422; anything else is a 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeStatus[code]; ok {
		return status
	}

	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	case strings.HasSuffix(code, "_IN_USE"), strings.HasPrefix(code, "DUPLICATE_"):
		return http.StatusConflict
	case strings.HasPrefix(code, "ALREADY_"),
		strings.HasPrefix(code, "CANNOT_"),
		strings.HasPrefix(code, "NO_"),
		strings.HasPrefix(code, "HAS_"):
		return http.StatusUnprocessableEntity
	case strings.HasPrefix(code, "TOKEN_"):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
