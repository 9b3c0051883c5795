package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends the dispatcher's success acknowledgment: 200 {"success":true}.
// The wire shape is fixed; the storefront's trigger functions depend on it.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Data sends a successful JSON response carrying a payload.
func Data(c *gin.Context, statusCode int, payload any) {
	c.JSON(statusCode, payload)
}

// Error sends an error JSON response: {"error":"<message>"}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// HandleError inspects a domain error and sends the appropriate HTTP response.
// Uses errors.As to traverse the full error chain, supporting wrapped errors.
//
// Every dispatch failure (lookup, malformed input, transport) maps to 500 with
// the failure message. Only the message string leaves the process, never a
// stack trace. Auth failures are the one exception and map to 401.
func HandleError(c *gin.Context, err error) {
	var unauthorized *UnauthorizedError

	switch {
	case errors.As(err, &unauthorized):
		Error(c, http.StatusUnauthorized, unauthorized.Error())
	default:
		Error(c, http.StatusInternalServerError, err.Error())
	}
}
