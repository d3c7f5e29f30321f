package store

import (
	"context"
	"errors"

	"todoapi/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the slice of the DynamoDB client the store uses.
type DynamoAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// TodosStore owns CRUD and the per-user listing for the todos table.
type TodosStore struct {
	db    DynamoAPI
	table string
	index string
}

func NewTodosStore(db DynamoAPI, table, index string) *TodosStore {
	return &TodosStore{db: db, table: table, index: index}
}

// ListByUser returns every todo owned by userID, ordered by createdAt
// ascending via the createdAt index. An owner with no todos gets an
// empty slice, not an error.
func (s *TodosStore) ListByUser(ctx context.Context, userID string) ([]model.TodoItem, error) {
	out, err := s.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		IndexName:              aws.String(s.index),
		KeyConditionExpression: aws.String("userId = :userId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, &StorageError{Op: "list", UserID: userID, Err: err}
	}

	if len(out.Items) == 0 {
		return []model.TodoItem{}, nil
	}

	items := make([]model.TodoItem, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, &StorageError{Op: "list", UserID: userID, Err: err}
	}
	return items, nil
}

// Create persists the full record unconditionally. Freshness of the
// todoId is the caller's responsibility.
func (s *TodosStore) Create(ctx context.Context, item model.TodoItem) (model.TodoItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return model.TodoItem{}, &StorageError{Op: "create", UserID: item.UserID, TodoID: item.TodoID, Err: err}
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	if err != nil {
		return model.TodoItem{}, &StorageError{Op: "create", UserID: item.UserID, TodoID: item.TodoID, Err: err}
	}
	return item, nil
}

// Update rewrites the four mutable fields plus updatedAt on an existing
// record. The condition keeps an update of a missing key from creating
// a partial record.
func (s *TodosStore) Update(ctx context.Context, userID, todoID string, patch model.TodoUpdate) error {
	_, err := s.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.table),
		Key:                 todoKey(userID, todoID),
		ConditionExpression: aws.String("attribute_exists(userId) AND attribute_exists(todoId)"),
		UpdateExpression: aws.String(
			"SET #name = :name, #dueDate = :dueDate, #done = :done, #priorityLevel = :priorityLevel, #updatedAt = :updatedAt",
		),
		ExpressionAttributeNames: map[string]string{
			"#name":          "name",
			"#dueDate":       "dueDate",
			"#done":          "done",
			"#priorityLevel": "priorityLevel",
			"#updatedAt":     "updatedAt",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":          &types.AttributeValueMemberS{Value: patch.Name},
			":dueDate":       &types.AttributeValueMemberS{Value: patch.DueDate},
			":done":          &types.AttributeValueMemberBOOL{Value: patch.Done},
			":priorityLevel": &types.AttributeValueMemberS{Value: patch.PriorityLevel},
			":updatedAt":     &types.AttributeValueMemberS{Value: patch.UpdatedAt},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrTodoNotFound
		}
		return &StorageError{Op: "update", UserID: userID, TodoID: todoID, Err: err}
	}
	return nil
}

// LinkAttachment records the public retrieval URL on an existing todo,
// touching only attachmentUrl and updatedAt. Re-linking overwrites; the
// object key equals the todoId, so the URL stays correct.
func (s *TodosStore) LinkAttachment(ctx context.Context, userID, todoID, url, updatedAt string) error {
	_, err := s.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.table),
		Key:                 todoKey(userID, todoID),
		ConditionExpression: aws.String("attribute_exists(userId) AND attribute_exists(todoId)"),
		UpdateExpression:    aws.String("SET attachmentUrl = :url, #updatedAt = :updatedAt"),
		ExpressionAttributeNames: map[string]string{
			"#updatedAt": "updatedAt",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":url":       &types.AttributeValueMemberS{Value: url},
			":updatedAt": &types.AttributeValueMemberS{Value: updatedAt},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return ErrTodoNotFound
		}
		return &StorageError{Op: "link attachment", UserID: userID, TodoID: todoID, Err: err}
	}
	return nil
}

// Delete removes the record for (userID, todoID). Deleting a missing key
// is a no-op and reports success.
func (s *TodosStore) Delete(ctx context.Context, userID, todoID string) error {
	_, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.table),
		Key:       todoKey(userID, todoID),
	})
	if err != nil {
		return &StorageError{Op: "delete", UserID: userID, TodoID: todoID, Err: err}
	}
	return nil
}

func todoKey(userID, todoID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
		"todoId": &types.AttributeValueMemberS{Value: todoID},
	}
}
