package todo

import (
	"net/http"

	"todoapi/dto"
	"todoapi/middleware"
	"todoapi/services"

	"github.com/gin-gonic/gin"
)

func CreateTodoController(router *gin.Engine, svc *services.TodoService) {
	router.POST("/todos", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateTodo(c, svc)
	})
}

func CreateTodo(c *gin.Context, svc *services.TodoService) {
	userId := c.MustGet("userId").(string)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item, err := svc.Create(c.Request.Context(), userId, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}
