package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cykj40/padre-ginos-fem-sub000/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}

// Error maps the taxonomy to a status. Validation and not-found keep their
// message; anything else is a 500 with a generic body.
func Error(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		BadRequest(c, err.Error())
	case apperr.IsNotFound(err):
		NotFound(c, err.Error())
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
