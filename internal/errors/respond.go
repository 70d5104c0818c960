package errors

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the JSON body returned for every failed request.
type APIError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(status, message string) *APIError {
	return &APIError{
		Status:  status,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Respond maps a domain error to its HTTP status code and writes the
// standard {status, message} body. Infrastructure causes are logged and
// replaced with a generic message; everything else passes its message
// through unchanged.
func Respond(c *gin.Context, err error) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var authzErr *AuthorizationError
	var conflictErr *ConflictError
	var infraErr *InfrastructureError

	switch {
	case errors.As(err, &validationErr):
		RespondWithError(c, http.StatusBadRequest, NewAPIError("validation error", validationErr.Message))
	case errors.As(err, &notFoundErr):
		RespondWithError(c, http.StatusNotFound, NewAPIError("not found", notFoundErr.Message))
	case errors.As(err, &authzErr):
		status := http.StatusForbidden
		if authzErr.Code == CodeCredentialsRequired {
			status = http.StatusUnauthorized
		}
		RespondWithError(c, status, NewAPIError("unauthorized", authzErr.Message))
	case errors.As(err, &conflictErr):
		RespondWithError(c, http.StatusConflict, NewAPIError("conflict", conflictErr.Message))
	case errors.As(err, &infraErr):
		log.Printf("infrastructure error: %v", infraErr)
		RespondWithError(c, http.StatusInternalServerError, NewAPIError("error", "internal server error"))
	default:
		log.Printf("unexpected error: %v", err)
		RespondWithError(c, http.StatusInternalServerError, NewAPIError("error", "internal server error"))
	}
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "credentials required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError("unauthorized", message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError("error", message))
}
