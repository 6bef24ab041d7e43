package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrorCodeInvalidJSON      ErrorCode = "INVALID_JSON"
	ErrorCodeInvalidConfig    ErrorCode = "INVALID_CONFIG"
	ErrorCodeDegenerateInput  ErrorCode = "DEGENERATE_INPUT"
	ErrorCodeNoDocument       ErrorCode = "NO_DOCUMENT"

	// Server Error Codes (5xx)
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, APIErrorResponse(code, message))
}

// SendInvalidJSONError sends a standardized malformed request body error
func SendInvalidJSONError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON,
		"Invalid JSON in request body: "+err.Error())
}

// SendInvalidConfigError sends a standardized chunking configuration error
func SendInvalidConfigError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, ErrorCodeInvalidConfig, err.Error())
}

// SendDegenerateInputError sends a standardized degenerate document error
func SendDegenerateInputError(c *gin.Context, err error) {
	SendError(c, http.StatusUnprocessableEntity, ErrorCodeDegenerateInput, err.Error())
}

// SendNoDocumentError reports that no document has been indexed yet
func SendNoDocumentError(c *gin.Context) {
	SendError(c, http.StatusNotFound, ErrorCodeNoDocument, "No document has been indexed")
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string, err error) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation+": "+err.Error())
}
