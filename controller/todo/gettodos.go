package todo

import (
	"net/http"

	"todoapi/middleware"
	"todoapi/services"

	"github.com/gin-gonic/gin"
)

func GetTodosController(router *gin.Engine, svc *services.TodoService) {
	router.GET("/todos", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetTodos(c, svc)
	})
}

func GetTodos(c *gin.Context, svc *services.TodoService) {
	userId := c.MustGet("userId").(string)

	items, err := svc.List(c.Request.Context(), userId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
