package products

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/vogant/storefront-backend/pkg/db/models"
)

func setupProductsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  price REAL NOT NULL DEFAULT 0,
  category TEXT NOT NULL DEFAULT '',
  stock INTEGER NOT NULL DEFAULT 0,
  image_url TEXT,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_products_name ON products (lower(name));`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, category string, price float64, stock int) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestRepositoryCRUD(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Product{
		ID:       uuid.New(),
		Name:     "banarasi saree",
		Category: "womens",
		Price:    2499,
		Stock:    12,
	})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "banarasi saree", got.Name)

	require.NoError(t, repo.Update(ctx, created.ID, map[string]any{"stock": 4, "price": 1999.0}))
	got, err = repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Stock)
	assert.Equal(t, 1999.0, got.Price)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryUpdateMissingProduct(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)

	err := repo.Update(context.Background(), uuid.New(), map[string]any{"stock": 1})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListFiltersByCategory(t *testing.T) {
	db := setupProductsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "cotton dhoti", "mens", 899, 30)
	seedProduct(t, db, "art silk saree", "womens", 1499, 10)
	seedProduct(t, db, "zari saree", "womens", 3499, 5)

	womens, err := repo.List(ctx, "womens")
	require.NoError(t, err)
	require.Len(t, womens, 2)
	assert.Equal(t, "art silk saree", womens[0].Name)
	assert.Equal(t, "zari saree", womens[1].Name)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
