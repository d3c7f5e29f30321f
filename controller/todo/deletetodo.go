package todo

import (
	"net/http"

	"todoapi/middleware"
	"todoapi/services"

	"github.com/gin-gonic/gin"
)

func DeleteTodoController(router *gin.Engine, svc *services.TodoService) {
	router.DELETE("/todos/:todoId", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteTodo(c, svc)
	})
}

func DeleteTodo(c *gin.Context, svc *services.TodoService) {
	userId := c.MustGet("userId").(string)
	todoId := c.Param("todoId")

	if err := svc.Delete(c.Request.Context(), userId, todoId); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
