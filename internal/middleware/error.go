package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler recovers from panics in handlers, logs the cause, and returns
// a generic JSON error. The caller never sees stack traces or internals; the
// detail goes to the diagnostic logs only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Error: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
			}
		}()

		c.Next()

		// Log handler-reported errors; responses were already written
		for _, e := range c.Errors {
			log.Printf("Request error: %s %s: %v", c.Request.Method, c.Request.URL.Path, e.Err)
		}
	}
}
