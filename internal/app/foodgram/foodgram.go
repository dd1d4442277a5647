package foodgram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/magabrotheeeer/foodgram/internal/config"
	"github.com/magabrotheeeer/foodgram/internal/lib/jwt"
	"github.com/magabrotheeeer/foodgram/internal/media"
	"github.com/magabrotheeeer/foodgram/internal/migrations"
	adminservice "github.com/magabrotheeeer/foodgram/internal/services/admin"
	authservice "github.com/magabrotheeeer/foodgram/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/foodgram/internal/services/catalog"
	recipeservice "github.com/magabrotheeeer/foodgram/internal/services/recipe"
	subservice "github.com/magabrotheeeer/foodgram/internal/services/subscription"
	"github.com/magabrotheeeer/foodgram/internal/storage/repository"
)

// App HTTP-приложение сервиса рецептов.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New подключается к базе, применяет миграции и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.foodgram.New"

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = repository.CheckDatabaseReady(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	images, mediaDir, err := newImageStore(ctx, cfg.Media)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	svc := Services{
		Auth:         authservice.New(db, jwtMaker, logger),
		Subscription: subservice.New(db, logger),
		Recipe:       recipeservice.New(db, images, logger),
		Catalog:      catalogservice.New(db, logger),
		Admin:        adminservice.New(db, logger),
		DB:           db.DB,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, "foodgram"),
	)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, svc, RouterOptions{
		RateLimit:      cfg.RateLimit,
		AuthRateLimit:  cfg.AuthRateLimit,
		AllowedOrigins: cfg.AllowedOrigins,
		MediaDir:       mediaDir,
		MediaURL:       cfg.Media.BaseURL,
		Registry:       registry,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// newImageStore выбирает хранилище изображений. Для файлового хранилища
// возвращается ещё и каталог, который раздаётся по HTTP.
func newImageStore(ctx context.Context, cfg config.Media) (media.Store, string, error) {
	switch cfg.Backend {
	case "s3":
		store, err := media.NewS3Store(ctx, media.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			Bucket:    cfg.S3.Bucket,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			PublicURL: cfg.S3.PublicURL,
		})
		return store, "", err
	default:
		store, err := media.NewFileStore(cfg.Dir, cfg.BaseURL)
		if err != nil {
			return nil, "", err
		}
		return store, store.Dir(), nil
	}
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		_ = a.db.Close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.db.Close(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	}
}
