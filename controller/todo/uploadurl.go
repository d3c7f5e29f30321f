package todo

import (
	"net/http"

	"todoapi/middleware"
	"todoapi/services"

	"github.com/gin-gonic/gin"
)

func UploadURLController(router *gin.Engine, svc *services.TodoService) {
	router.POST("/todos/:todoId/attachment", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GenerateUploadURL(c, svc)
	})
}

// GenerateUploadURL hands the caller a presigned PUT URL for the todo's
// attachment object. The upload itself happens directly against storage.
func GenerateUploadURL(c *gin.Context, svc *services.TodoService) {
	userId := c.MustGet("userId").(string)
	todoId := c.Param("todoId")

	uploadUrl, err := svc.GenerateUploadURL(c.Request.Context(), userId, todoId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"uploadUrl": uploadUrl})
}
