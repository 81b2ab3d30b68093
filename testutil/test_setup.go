package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"daily-planner/internal/config"
	"daily-planner/internal/database"
	"daily-planner/internal/models"
	"daily-planner/internal/repositories"
	"daily-planner/internal/routes"
)

// SetupTestRouter はメモリストアを使ったテスト用のGinルーターを返します。
func SetupTestRouter(t *testing.T) (*gin.Engine, *repositories.MemoryTaskRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repositories.NewMemoryTaskRepository()
	r := routes.SetupRouter(repo, []string{"http://localhost:3000"})
	return r, repo
}

// CreateTestTask は POST /plan でタスクを作成します。
func CreateTestTask(t *testing.T, router *gin.Engine, req models.CreateTaskRequest) {
	t.Helper()
	body, _ := json.Marshal(req)

	httpReq, _ := http.NewRequest(http.MethodPost, "/plan", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httpReq)

	require.Equal(t, http.StatusCreated, resp.Code, "タスク作成に失敗しました: %s", resp.Body.String())
}

// ListTasks は GET /plan の結果を返します。
func ListTasks(t *testing.T, router *gin.Engine) []models.Task {
	t.Helper()
	req, _ := http.NewRequest(http.MethodGet, "/plan", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tasks))
	return tasks
}

// loadTestEnv はルート直下の .env を読み込みます。存在しなくても構いません。
func loadTestEnv() {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Warning: Could not load .env file for tests: %v", err)
	}
}

// SetupMySQLTestDB はテスト用のMySQLに接続し、tasks テーブルを空の状態で用意します。
// TEST_DB_* が設定されていない場合はテストをスキップします。
func SetupMySQLTestDB(t *testing.T) *sql.DB {
	t.Helper()
	loadTestEnv()

	cfg := config.MySQLConfig{
		User: os.Getenv("TEST_DB_USER"),
		Pass: os.Getenv("TEST_DB_PASS"),
		Host: os.Getenv("TEST_DB_HOST"),
		Port: os.Getenv("TEST_DB_PORT"),
		Name: os.Getenv("TEST_DB_NAME"),
	}
	if cfg.User == "" || cfg.Host == "" || cfg.Port == "" || cfg.Name == "" {
		t.Skipf("Skipping test: database environment variables are not set. USER: %s, HOST: %s, PORT: %s, NAME: %s", cfg.User, cfg.Host, cfg.Port, cfg.Name)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.OpenMySQL(ctx, cfg)
	if err != nil {
		t.Skipf("Skipping test: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.EnsureTaskSchema(ctx, db))
	if _, err := db.ExecContext(ctx, "TRUNCATE TABLE tasks"); err != nil {
		t.Fatalf("Failed to truncate tasks table: %v", err)
	}
	return db
}

// SetupMongoTestCollection はテスト用のコレクションを空の状態で返します。
// TEST_MONGO_URI が設定されていない場合はテストをスキップします。
func SetupMongoTestCollection(t *testing.T) *mongo.Collection {
	t.Helper()
	loadTestEnv()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("Skipping test: TEST_MONGO_URI is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("Skipping test: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		t.Skipf("Skipping test: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	coll := client.Database("plan_test").Collection(fmt.Sprintf("tasks_%d", time.Now().UnixNano()))
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		t.Fatalf("Failed to clear collection: %v", err)
	}
	t.Cleanup(func() { _ = coll.Drop(context.Background()) })
	return coll
}
