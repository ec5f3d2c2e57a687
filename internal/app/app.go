package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/glimmerhq/storyshowcase/internal/auth"
	"github.com/glimmerhq/storyshowcase/internal/catalog"
	"github.com/glimmerhq/storyshowcase/internal/config"
	"github.com/glimmerhq/storyshowcase/internal/database"
	"github.com/glimmerhq/storyshowcase/internal/frames"
	"github.com/glimmerhq/storyshowcase/internal/httpapi"
	"github.com/glimmerhq/storyshowcase/internal/logging"
	"github.com/glimmerhq/storyshowcase/internal/moderation"
	"github.com/glimmerhq/storyshowcase/internal/ratelimit"
	"github.com/glimmerhq/storyshowcase/internal/stories"
)

// App holds all application dependencies
type App struct {
	Config         *config.Config
	Logger         *logging.Logger
	Catalog        *catalog.Catalog
	StorySvc       *stories.Service
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	HTTPServer     *httpapi.Server
	db             *database.DB
}

// New creates and initializes a new App instance
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	app.Logger = app.initLogger()
	app.Catalog = catalog.New()

	// Moderation backend
	analyzer := app.initAnalyzer()

	// Preview store (memory or Redis)
	previews := app.initPreviewStore()

	// Postgres is optional; without it publishing is disabled and the feed
	// is empty.
	storyStore := app.initDatabase()

	// Auth
	app.AuthService = auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
	app.AuthMiddleware = auth.NewMiddleware(app.AuthService)

	// Story pipeline
	var publisher stories.Publisher
	var feedStore httpapi.FeedStore
	if storyStore != nil {
		publisher = storyStore
		feedStore = storyStore
	}
	app.StorySvc = stories.NewService(analyzer, frames.NewFFmpegExtractor(), app.Catalog,
		previews, publisher, app.Logger, cfg.Moderation.Timeout)

	uploadLimiter := ratelimit.New(cfg.Server.UploadMinGap)
	app.HTTPServer = httpapi.New(app.StorySvc, feedStore, app.Catalog,
		app.AuthMiddleware, uploadLimiter, app.Logger, cfg.Server.MaxUploadSize)

	return app, nil
}

// Run starts the HTTP server and blocks until it stops
func (a *App) Run() error {
	return a.HTTPServer.Start(a.Config.Server.HTTPAddr)
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown(ctx context.Context) error {
	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error("HTTP server shutdown error", logging.WithField("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.Logger.Error("Database close error", logging.WithField("error", err.Error()))
		}
	}

	return nil
}

func (a *App) initLogger() *logging.Logger {
	level := logging.LevelInfo
	switch a.Config.Logging.Level {
	case "debug":
		level = logging.LevelDebug
	case "warn":
		level = logging.LevelWarn
	case "error":
		level = logging.LevelError
	}
	return logging.New(level)
}

func (a *App) initAnalyzer() moderation.Analyzer {
	switch a.Config.Moderation.Backend {
	case "rekognition":
		a.Logger.Info("Using Rekognition moderation backend",
			logging.WithField("region", a.Config.Moderation.AWSRegion))
		analyzer, err := moderation.NewRekognitionAnalyzer(context.Background(), a.Config.Moderation.AWSRegion)
		if err != nil {
			a.Logger.Error("Failed to initialize Rekognition, falling back to Gemini",
				logging.WithField("error", err.Error()))
			return a.geminiAnalyzer()
		}
		return analyzer
	case "mock":
		a.Logger.Warn("Using mock moderation backend, every upload is approved")
		return &moderation.MockAnalyzer{}
	default:
		return a.geminiAnalyzer()
	}
}

func (a *App) geminiAnalyzer() moderation.Analyzer {
	a.Logger.Info("Using Gemini moderation backend",
		logging.WithField("model", a.Config.Moderation.Model))

	names := make([]string, 0, a.Catalog.Len())
	for _, e := range a.Catalog.Entries() {
		names = append(names, e.Name)
	}
	return moderation.NewGeminiAnalyzer(a.Config.Moderation.APIKey, a.Config.Moderation.Model, names)
}

func (a *App) initPreviewStore() stories.PreviewStore {
	switch a.Config.Preview.Backend {
	case "redis":
		a.Logger.Info("Using Redis preview store", logging.WithField("addr", a.Config.Preview.RedisAddr))
		client := redis.NewClient(&redis.Options{Addr: a.Config.Preview.RedisAddr})

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			a.Logger.Error("Failed to connect to Redis, falling back to memory preview store",
				logging.WithField("error", err.Error()))
			return stories.NewInMemoryPreviewStore(a.Config.Preview.TTL)
		}
		return stories.NewRedisPreviewStore(client, a.Config.Preview.TTL)
	default:
		a.Logger.Info("Using in-memory preview store")
		return stories.NewInMemoryPreviewStore(a.Config.Preview.TTL)
	}
}

func (a *App) initDatabase() *database.PublishedStoryStore {
	dbConfig := database.DefaultConfig()
	dbConfig.Host = a.Config.Database.Host
	dbConfig.Port = a.Config.Database.Port
	dbConfig.User = a.Config.Database.User
	dbConfig.Password = a.Config.Database.Password
	dbConfig.Database = a.Config.Database.Database
	dbConfig.SSLMode = a.Config.Database.SSLMode

	db, err := database.New(dbConfig)
	if err != nil {
		a.Logger.Warn("Database unavailable, publishing disabled",
			logging.WithField("error", err.Error()))
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Migrate(ctx); err != nil {
		a.Logger.Error("Database migration failed, publishing disabled",
			logging.WithField("error", err.Error()))
		db.Close()
		return nil
	}

	a.db = db
	return database.NewPublishedStoryStore(db)
}
