package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"bazaar-be/internal/logger"

	"go.uber.org/zap"
)

const selectProductsQuery = `
	SELECT id, name, name_urdu, description, price, category,
	       image_url, seller_id, rating, reviews_count, stock
	FROM products
	ORDER BY position, id`

// LoadFromPostgres reads the catalog once from the products table.
// The result seeds a memory repository; nothing is written back.
func LoadFromPostgres(ctx context.Context, db *sql.DB) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "LoadFromPostgres"),
	)

	rows, err := db.QueryContext(ctx, selectProductsQuery)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrFailedLoad, err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.NameUrdu, &p.Description, &p.Price, &p.Category,
			&p.ImageURL, &p.SellerID, &p.Rating, &p.ReviewsCount, &p.Stock,
		); err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("%w: %v", ErrFailedLoad, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedLoad, err)
	}

	log.Info("catalog loaded from postgres", zap.Int("count", len(products)))
	return products, nil
}
