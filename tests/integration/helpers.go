package integration

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lvfrd/lvfrd-api/internal/app"
	"github.com/lvfrd/lvfrd-api/internal/config"
)

const testDatabase = "lvfrd_test"

// TestEnvironment содержит все ресурсы необходимые для интеграционных тестов
type TestEnvironment struct {
	MongoContainer *mongodb.MongoDBContainer
	App            *app.App
	BaseURL        string
	DB             *mongo.Database
	client         *mongo.Client
	ctx            context.Context
}

// SetupTestEnvironment создает и инициализирует полное тестовое окружение
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	ctx := context.Background()

	// Запускаем MongoDB контейнер
	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err, "Failed to start MongoDB container")

	connStr, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "Failed to get connection string")

	// Используем высокий порт для тестов чтобы избежать конфликтов
	testPort := "18000"
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: testPort,
			Host: "127.0.0.1",
		},
		Database: config.DatabaseConfig{
			URL:            connStr,
			Name:           testDatabase,
			ConnectTimeout: 10 * time.Second,
		},
	}

	application, err := app.New(cfg)
	require.NoError(t, err, "Failed to create application")

	err = application.Initialize(ctx)
	require.NoError(t, err, "Failed to initialize application")

	// Запускаем сервер в фоне
	serverStarted := make(chan bool, 1)
	go func() {
		serverStarted <- true
		if err := application.Run(); err != nil && err != http.ErrServerClosed {
			t.Logf("Server error: %v", err)
		}
	}()

	<-serverStarted
	time.Sleep(500 * time.Millisecond)

	// Отдельный клиент для прямых запросов в тестах
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	require.NoError(t, err)

	return &TestEnvironment{
		MongoContainer: mongoContainer,
		App:            application,
		BaseURL:        fmt.Sprintf("http://%s:%s", cfg.Server.Host, testPort),
		DB:             client.Database(testDatabase),
		client:         client,
		ctx:            ctx,
	}
}

// Cleanup очищает все тестовые ресурсы
func (te *TestEnvironment) Cleanup(t *testing.T) {
	t.Helper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if te.App != nil {
		_ = te.App.Shutdown(shutdownCtx)
	}

	if te.client != nil {
		_ = te.client.Disconnect(shutdownCtx)
	}

	if te.MongoContainer != nil {
		_ = te.MongoContainer.Terminate(te.ctx)
	}
}

// Count возвращает число документов в коллекции
func (te *TestEnvironment) Count(t *testing.T, collection string) int64 {
	t.Helper()

	n, err := te.DB.Collection(collection).CountDocuments(te.ctx, bson.D{})
	require.NoError(t, err)
	return n
}

// MakeRequest вспомогательная функция для HTTP запросов в тестах
func (te *TestEnvironment) MakeRequest(t *testing.T, method, path string, body io.Reader) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, te.BaseURL+path, body)
	require.NoError(t, err, "Failed to create request")

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	resp, err := client.Do(req)
	require.NoError(t, err, "Failed to make request")

	return resp
}

// WaitForHealthCheck ждет пока приложение станет доступным
func (te *TestEnvironment) WaitForHealthCheck(t *testing.T) {
	t.Helper()

	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		resp, err := http.Get(te.BaseURL + "/")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(100 * time.Millisecond)
	}

	t.Fatal("Application did not become healthy in time")
}
