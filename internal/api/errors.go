package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pageza/nutrilog/backend/internal/logging"
	"github.com/pageza/nutrilog/backend/internal/service"
)

// respondError maps service errors onto HTTP responses. Unknown errors are
// logged and hidden behind a 500.
func respondError(c *gin.Context, log logrus.FieldLogger, err error) {
	switch {
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidQuantity), errors.Is(err, service.ErrInvalidMode):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logging.FromContext(c, log).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
