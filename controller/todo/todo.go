package todo

import (
	"errors"
	"log"
	"net/http"

	"todoapi/services"
	"todoapi/storage"
	"todoapi/store"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Storage failures are logged here with their operation context; the
// core never retries them.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	var uerr *storage.UploadError

	switch {
	case errors.Is(err, store.ErrTodoNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.As(err, &uerr):
		log.Printf("upload URL generation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate upload URL"})
	default:
		log.Printf("todo operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
