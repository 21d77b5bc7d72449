package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/lvfrd/lvfrd-api/internal/config"
	"github.com/lvfrd/lvfrd-api/internal/domain"
	"github.com/lvfrd/lvfrd-api/internal/handler"
	"github.com/lvfrd/lvfrd-api/internal/middleware"
	"github.com/lvfrd/lvfrd-api/internal/repository"
	"github.com/lvfrd/lvfrd-api/internal/repository/mongodb"
	"github.com/lvfrd/lvfrd-api/internal/service"
)

// Store объединяет все, что приложению нужно от хранилища
type Store interface {
	repository.DocumentStore
	repository.StoreDiagnostics
}

// App представляет приложение со всеми зависимостями
type App struct {
	config *config.Config
	store  Store
	closer func(context.Context) error
	server *http.Server
	logger *slog.Logger
}

// Option настраивает App при создании
type Option func(*App)

// WithStore подменяет хранилище (используется в тестах вместо MongoDB)
func WithStore(store Store) Option {
	return func(a *App) {
		a.store = store
	}
}

// WithLogger подменяет логгер
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// New создает новый экземпляр приложения
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	app := &App{
		config: cfg,
	}
	for _, opt := range opts {
		opt(app)
	}

	// Инициализируем структурированный логгер (JSON формат)
	if app.logger == nil {
		app.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
	}
	slog.SetDefault(app.logger)

	return app, nil
}

// Initialize инициализирует все компоненты приложения.
// Недоступность БД не считается ошибкой: сервис стартует, а запросы к хранилищу
// завершаются ошибкой по отдельности.
func (a *App) Initialize(ctx context.Context) error {
	if a.store == nil {
		a.connectStore(ctx)
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully", "store_available", a.store.Available())
	return nil
}

// connectStore создает клиент MongoDB; при ошибке остается недоступное хранилище
func (a *App) connectStore(ctx context.Context) {
	dbCfg := a.config.Database

	if !dbCfg.Configured() {
		a.logger.Warn("Database is not configured, store-backed endpoints will fail",
			"database_url_set", dbCfg.URL != "",
			"database_name_set", dbCfg.Name != "",
		)
		a.store = mongodb.Unavailable()
		return
	}

	store, err := mongodb.New(ctx, dbCfg.URL, dbCfg.Name, dbCfg.ConnectTimeout)
	if err != nil {
		a.logger.Warn("Failed to create database client", "error", err)
		a.store = mongodb.Unavailable()
		return
	}

	// Проверяем подключение, но не прерываем запуск
	pingCtx, cancel := context.WithTimeout(ctx, dbCfg.ConnectTimeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		a.logger.Warn("Database ping failed", "error", err)
	} else {
		a.logger.Info("Connected to database", "database", store.DatabaseName())
	}

	a.store = store
	a.closer = store.Close
}

// Handler возвращает корневой HTTP обработчик
func (a *App) Handler() http.Handler {
	if a.server == nil {
		a.setupServer()
	}
	return a.server.Handler
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer() {
	if a.store == nil {
		a.store = mongodb.Unavailable()
	}
	strict := a.config.API.StrictPayloads

	// Инициализируем слой сервисов
	unitService := service.NewCollectionService(a.store, domain.CollectionUnit, strict)
	memberService := service.NewCollectionService(a.store, domain.CollectionMember, strict)
	contactService := service.NewContactService(a.store, strict)
	diagnosticsService := service.NewDiagnosticsService(
		a.store,
		a.config.Database.URL != "",
		a.config.Database.Name != "",
	)

	// Инициализируем HTTP обработчики
	unitHandler := handler.NewCollectionHandler(unitService)
	memberHandler := handler.NewCollectionHandler(memberService)
	contactHandler := handler.NewContactHandler(contactService)
	systemHandler := handler.NewSystemHandler(diagnosticsService)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.CORS())

	// Служебные эндпоинты (без обращения к хранилищу, кроме /test)
	r.Get("/", systemHandler.Root)
	r.Get("/schema", systemHandler.Schema)
	r.Get("/test", systemHandler.Test)

	// Публичные эндпоинты
	r.Route("/api", func(r chi.Router) {
		r.Get("/units", unitHandler.List)
		r.Post("/units", unitHandler.Create)

		// Сотрудники отдаются под именем hierarchy
		r.Get("/hierarchy", memberHandler.List)
		r.Post("/hierarchy", memberHandler.Create)

		r.Get("/contact", contactHandler.Get)
		r.Post("/contact", contactHandler.Create)
	})

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr, "strict_payloads", strict)
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	// Закрываем подключение к базе данных
	if a.closer != nil {
		if err := a.closer(ctx); err != nil {
			return err
		}
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
