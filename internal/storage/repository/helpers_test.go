package repository

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/foodgram/internal/migrations"
	"github.com/magabrotheeeer/foodgram/internal/models"
)

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))

	cleanup := func() {
		_ = storage.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}
	return storage, cleanup
}

// TestDataFactory создаёт тестовые данные через методы Storage.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создаёт фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создаёт пользователя с уникальными username и email.
func (f *TestDataFactory) CreateUser(t *testing.T) *models.User {
	t.Helper()
	suffix := uuid.New().String()[:8]
	user := models.User{
		Username:     "user" + suffix,
		Email:        fmt.Sprintf("user%s@example.com", suffix),
		FirstName:    "Иван",
		LastName:     "Петров",
		PasswordHash: "hashedpassword",
		IsActive:     true,
	}
	id, err := f.storage.CreateUser(context.Background(), user)
	require.NoError(t, err)
	user.ID = id
	return &user
}

// CreateIngredient создаёт ингредиент в единицах "г".
func (f *TestDataFactory) CreateIngredient(t *testing.T, name string) int64 {
	t.Helper()
	ctx := context.Background()
	unitID, err := f.storage.CreateMeasurementUnit(ctx, "г")
	require.NoError(t, err)
	id, err := f.storage.CreateIngredient(ctx, name, unitID)
	require.NoError(t, err)
	return id
}

// CreateTag создаёт тег с указанным слагом.
func (f *TestDataFactory) CreateTag(t *testing.T, slug, color string) int64 {
	t.Helper()
	id, err := f.storage.CreateTag(context.Background(), models.Tag{
		Name:  "Тег " + slug,
		Color: color,
		Slug:  slug,
	})
	require.NoError(t, err)
	return id
}

// CreateRecipe создаёт рецепт без ингредиентов и тегов.
func (f *TestDataFactory) CreateRecipe(t *testing.T, authorID int64, name string) int64 {
	t.Helper()
	id, err := f.storage.CreateRecipe(context.Background(), models.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "recipes/images/" + name + ".png",
		Text:        "Описание",
		CookingTime: 15,
	})
	require.NoError(t, err)
	return id
}
