package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgTokenRequired      = "Authorization token required"
	msgInvalidToken       = "Invalid token"
	msgFieldsRequired     = "All fields are required"
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUserNotFound       = "User not found"
	msgTaskNotFound       = "Task not found"
	msgNotAuthorized      = "Not authorized"
	msgTaskFieldsMissing  = "Required fields missing"
	msgTaskDeleted        = "Task deleted successfully"
	msgServerError        = "Server error"
)

type apiError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"message": err.Message})
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, message)
}

func newForbiddenError(message string) apiError {
	return newAPIError(http.StatusForbidden, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newServerError() apiError {
	return newAPIError(http.StatusInternalServerError, msgServerError)
}
