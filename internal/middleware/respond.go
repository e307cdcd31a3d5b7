package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sgdesh/bank-api/internal/models"
)

const internalErrorMessage = "Internal Server Error"

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"error": message,
	})
}

// RespondWithServiceError maps a domain error to its status code. Anything
// that is not a domain error is logged and answered with a bare 500.
func RespondWithServiceError(c *gin.Context, err error) {
	switch models.KindOf(err) {
	case models.KindNotFound:
		RespondWithError(c, http.StatusNotFound, err.Error())
	case models.KindValidation:
		RespondWithError(c, http.StatusBadRequest, err.Error())
	case models.KindConflict:
		RespondWithError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.String(http.StatusInternalServerError, internalErrorMessage)
	}
}

// NotFoundHandler answers unmatched routes.
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  http.StatusNotFound,
		"message": "Not Found",
	})
}

// Recovery turns a panic into the generic 500 response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.String(http.StatusInternalServerError, internalErrorMessage)
		c.Abort()
	})
}
