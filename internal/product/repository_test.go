package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "slug", "inventory", "unit_price", "last_update", "collection_id",
	})
}

func TestRepository_GetProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := productRows().
			AddRow(1, "Kettle", "Stovetop kettle", "kettle", 12, "25.50", time.Now(), 2)

		mock.ExpectQuery("SELECT .* FROM products WHERE id").
			WithArgs(1).
			WillReturnRows(rows)

		p, err := repo.GetProduct(context.Background(), 1)
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Kettle", p.Title)
		assert.True(t, p.UnitPrice.Equal(decimal.RequireFromString("25.50")))
	})

	t.Run("Not found returns nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT .* FROM products WHERE id").
			WithArgs(99).
			WillReturnRows(productRows())

		p, err := repo.GetProduct(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_ListProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success_NoFilter", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products p").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := productRows().
			AddRow(1, "Kettle", "", "kettle", 12, "25.50", time.Now(), 2).
			AddRow(2, "Mug", "", "mug", 40, "4.00", time.Now(), 2)

		mock.ExpectQuery("SELECT .* FROM products p ORDER BY p.last_update DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(int32(20), 0).
			WillReturnRows(rows)

		res, total, err := repo.ListProducts(context.Background(), nil)
		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, int64(2), total)
	})

	t.Run("Success_SearchAndCollection", func(t *testing.T) {
		search := "kettle"
		collectionID := uint(2)
		limit := int32(10)
		page := int32(1)

		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products p WHERE").
			WithArgs("%kettle%", collectionID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := productRows().
			AddRow(1, "Kettle", "", "kettle", 12, "25.50", time.Now(), 2)

		mock.ExpectQuery("SELECT .* FROM products p WHERE .* LIMIT \\$3 OFFSET \\$4").
			WithArgs("%kettle%", collectionID, limit, 0).
			WillReturnRows(rows)

		res, total, err := repo.ListProducts(context.Background(), &ListFilter{
			Search:       &search,
			CollectionID: &collectionID,
			Limit:        &limit,
			Page:         &page,
		})
		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, int64(1), total)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM products p").
			WillReturnError(errors.New("db error"))

		_, _, err := repo.ListProducts(context.Background(), nil)
		assert.Error(t, err)
	})
}

func TestRepository_CreateProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	params := CreateParams{
		Title:        "Kettle",
		Description:  "Stovetop kettle",
		Slug:         "kettle",
		Inventory:    12,
		UnitPrice:    decimal.RequireFromString("25.50"),
		CollectionID: 2,
	}

	rows := productRows().
		AddRow(1, "Kettle", "Stovetop kettle", "kettle", 12, "25.50", time.Now(), 2)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(params.Title, params.Description, params.Slug, params.Inventory, params.UnitPrice, params.CollectionID).
		WillReturnRows(rows)

	p, err := repo.CreateProduct(context.Background(), params)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), p.ID)
}

func TestRepository_DeleteProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec("DELETE FROM products").
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.DeleteProduct(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}
