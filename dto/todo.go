package dto

type CreateTodoRequest struct {
	Name          string `json:"name" binding:"required"`
	DueDate       string `json:"dueDate" binding:"required,datetime=2006-01-02"`
	PriorityLevel string `json:"priorityLevel" binding:"required,oneof=Critical High Normal Low"`
}

type UpdateTodoRequest struct {
	Name          string `json:"name" binding:"required"`
	DueDate       string `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Done          bool   `json:"done"`
	PriorityLevel string `json:"priorityLevel" binding:"required,oneof=Critical High Normal Low"`
}
