package catalog

import (
	"context"
	"errors"
	"testing"

	"bazaar-be/internal/money"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPostgres(t *testing.T) {
	ctx := context.Background()
	columns := []string{
		"id", "name", "name_urdu", "description", "price", "category",
		"image_url", "seller_id", "rating", "reviews_count", "stock",
	}

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(columns).
			AddRow("1", "Phone", "فون", "desc", 1000, "Electronics", "img", "s1", "4.5", 10, 3).
			AddRow("2", "Kurta", "کرتا", "desc", 2500, "Fashion", "img", "s2", "4.0", 2, 0)

		mock.ExpectQuery(`(?s)SELECT id, name, name_urdu .* FROM products`).WillReturnRows(rows)

		products, err := LoadFromPostgres(ctx, db)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, money.Amount(1000), products[0].Price)
		assert.Equal(t, "4.5", products[0].Rating.String())
		assert.Equal(t, 0, products[1].Stock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("QueryError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`(?s)SELECT .*`).WillReturnError(errors.New("db error"))

		_, err = LoadFromPostgres(ctx, db)
		assert.ErrorIs(t, err, ErrFailedLoad)
	})

	t.Run("ScanError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(columns).
			AddRow("1", "Phone", "فون", "desc", "not-a-number", "Electronics", "img", "s1", "4.5", 10, 3)
		mock.ExpectQuery(`(?s)SELECT .*`).WillReturnRows(rows)

		_, err = LoadFromPostgres(ctx, db)
		assert.ErrorIs(t, err, ErrFailedLoad)
	})
}
