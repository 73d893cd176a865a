package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront/internal/model"
)

func badRequest(c *gin.Context, errs ...model.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

func invalidJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
}

func deleted(c *gin.Context, what string) {
	c.JSON(http.StatusOK, gin.H{"message": what + " deleted successfully"})
}

// parseID reads the :id path parameter. An unparseable id cannot name any
// stored record, so it reports the same not-found as a missing one.
func parseID(c *gin.Context, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		notFound(c, what)
		return uuid.Nil, false
	}
	return id, true
}
