package todo

import (
	"net/http"

	"todoapi/dto"
	"todoapi/middleware"
	"todoapi/services"

	"github.com/gin-gonic/gin"
)

func UpdateTodoController(router *gin.Engine, svc *services.TodoService) {
	router.PATCH("/todos/:todoId", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateTodo(c, svc)
	})
}

func UpdateTodo(c *gin.Context, svc *services.TodoService) {
	userId := c.MustGet("userId").(string)
	todoId := c.Param("todoId")

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	patch, err := svc.Update(c.Request.Context(), userId, todoId, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": patch})
}
