package model

// TodoItem is a single row in the todos DynamoDB table. The table is keyed
// by (userId, todoId); the createdAt index serves the per-user listing.
type TodoItem struct {
	UserID        string `dynamodbav:"userId" json:"userId"`
	TodoID        string `dynamodbav:"todoId" json:"todoId"`
	CreatedAt     string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt     string `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Name          string `dynamodbav:"name" json:"name"`
	DueDate       string `dynamodbav:"dueDate" json:"dueDate"`
	Done          bool   `dynamodbav:"done" json:"done"`
	PriorityLevel string `dynamodbav:"priorityLevel" json:"priorityLevel"`
	AttachmentURL string `dynamodbav:"attachmentUrl,omitempty" json:"attachmentUrl,omitempty"`
}

// TodoUpdate holds the four caller-mutable fields plus the server-set
// updatedAt timestamp. CreatedAt, keys and attachmentUrl are never part
// of a regular update.
type TodoUpdate struct {
	Name          string `dynamodbav:"name" json:"name"`
	DueDate       string `dynamodbav:"dueDate" json:"dueDate"`
	Done          bool   `dynamodbav:"done" json:"done"`
	PriorityLevel string `dynamodbav:"priorityLevel" json:"priorityLevel"`
	UpdatedAt     string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Priority levels for TodoItem.PriorityLevel.
const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
	PriorityNormal   = "Normal"
	PriorityLow      = "Low"
)

func ValidPriority(level string) bool {
	switch level {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}
