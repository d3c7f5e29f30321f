package services

import (
	"context"
	"fmt"
	"time"

	"todoapi/dto"
	"todoapi/model"

	"github.com/google/uuid"
)

// ValidationError reports malformed task input rejected before it
// reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TodosAccess is the durable-table contract the service delegates to.
type TodosAccess interface {
	ListByUser(ctx context.Context, userID string) ([]model.TodoItem, error)
	Create(ctx context.Context, item model.TodoItem) (model.TodoItem, error)
	Update(ctx context.Context, userID, todoID string, patch model.TodoUpdate) error
	LinkAttachment(ctx context.Context, userID, todoID, url, updatedAt string) error
	Delete(ctx context.Context, userID, todoID string) error
}

// AttachmentAccess is the object-storage contract for the upload workflow.
type AttachmentAccess interface {
	SignedUploadURL(ctx context.Context, todoID string) (string, error)
	AttachmentURL(todoID string) string
}

// TodoService is the orchestration façade the request handlers call. It
// assigns identity and defaults on creation and owns input validation;
// persistence and credential issuance are delegated.
type TodoService struct {
	todos       TodosAccess
	attachments AttachmentAccess
	now         func() time.Time
}

func NewTodoService(todos TodosAccess, attachments AttachmentAccess) *TodoService {
	return &TodoService{todos: todos, attachments: attachments, now: time.Now}
}

// Create stores a new todo for userID. The todoId, createdAt, done=false
// and absent attachmentUrl are server-assigned; the caller supplies the
// rest.
func (s *TodoService) Create(ctx context.Context, userID string, req dto.CreateTodoRequest) (model.TodoItem, error) {
	if err := validateFields(req.Name, req.DueDate, req.PriorityLevel); err != nil {
		return model.TodoItem{}, err
	}

	item := model.TodoItem{
		UserID:        userID,
		TodoID:        uuid.NewString(),
		CreatedAt:     s.now().UTC().Format(time.RFC3339),
		Name:          req.Name,
		DueDate:       req.DueDate,
		Done:          false,
		PriorityLevel: req.PriorityLevel,
	}
	return s.todos.Create(ctx, item)
}

// List returns userID's todos ordered by creation time.
func (s *TodoService) List(ctx context.Context, userID string) ([]model.TodoItem, error) {
	return s.todos.ListByUser(ctx, userID)
}

// Update patches the mutable fields of an existing todo and echoes the
// patch as applied. Callers must not expect server-computed fields other
// than updatedAt to be reflected back.
func (s *TodoService) Update(ctx context.Context, userID, todoID string, req dto.UpdateTodoRequest) (model.TodoUpdate, error) {
	if err := validateFields(req.Name, req.DueDate, req.PriorityLevel); err != nil {
		return model.TodoUpdate{}, err
	}

	patch := model.TodoUpdate{
		Name:          req.Name,
		DueDate:       req.DueDate,
		Done:          req.Done,
		PriorityLevel: req.PriorityLevel,
		UpdatedAt:     s.now().UTC().Format(time.RFC3339),
	}
	if err := s.todos.Update(ctx, userID, todoID, patch); err != nil {
		return model.TodoUpdate{}, err
	}
	return patch, nil
}

// Delete removes the todo. Deleting a todo that is already gone succeeds.
func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	return s.todos.Delete(ctx, userID, todoID)
}

// GenerateUploadURL links the attachment's retrieval URL onto the todo,
// then issues the presigned PUT. Linking first means a credential is
// never handed out for a record that does not exist, and a presign
// failure after linkage is healed by re-requesting: the retrieval URL is
// deterministic and the object key equals the todoId.
func (s *TodoService) GenerateUploadURL(ctx context.Context, userID, todoID string) (string, error) {
	url := s.attachments.AttachmentURL(todoID)
	updatedAt := s.now().UTC().Format(time.RFC3339)
	if err := s.todos.LinkAttachment(ctx, userID, todoID, url, updatedAt); err != nil {
		return "", err
	}
	return s.attachments.SignedUploadURL(ctx, todoID)
}

func validateFields(name, dueDate, priorityLevel string) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if _, err := time.Parse("2006-01-02", dueDate); err != nil {
		return &ValidationError{Field: "dueDate", Reason: "must be a YYYY-MM-DD date"}
	}
	if !model.ValidPriority(priorityLevel) {
		return &ValidationError{Field: "priorityLevel", Reason: "must be one of Critical, High, Normal, Low"}
	}
	return nil
}
