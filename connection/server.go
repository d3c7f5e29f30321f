package connection

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"todoapi/controller/todo"
	"todoapi/services"
	"todoapi/storage"
	"todoapi/store"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func StartServer() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	router := gin.Default()

	ctx := context.Background()
	db, err := DynamoConnection(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}
	s3Client, err := S3Connection(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize S3 client: %v", err)
	}

	table := mustEnv("TODOS_TABLE")
	index := mustEnv("TODOS_CREATED_AT_INDEX")
	bucket := mustEnv("ATTACHMENT_BUCKET")
	expiry := signedURLExpiration()

	todos := store.NewTodosStore(db, table, index)
	attachments := storage.NewAttachmentStore(s3.NewPresignClient(s3Client), bucket, Region(), expiry)
	svc := services.NewTodoService(todos, attachments)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	todo.GetTodosController(router, svc)
	todo.CreateTodoController(router, svc)
	todo.UpdateTodoController(router, svc)
	todo.DeleteTodoController(router, svc)
	todo.UploadURLController(router, svc)

	router.Run()
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s is required", key)
	}
	return value
}

func signedURLExpiration() time.Duration {
	raw := os.Getenv("SIGNED_URL_EXPIRATION")
	if raw == "" {
		return 5 * time.Minute
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		log.Fatalf("SIGNED_URL_EXPIRATION must be a positive number of seconds, got %q", raw)
	}
	return time.Duration(seconds) * time.Second
}
