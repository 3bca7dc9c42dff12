package review

import (
	"context"
	"database/sql"
	"errors"
)

var ErrReviewNotFound = errors.New("review not found")

type Repository interface {
	ListByProduct(ctx context.Context, productID uint) ([]*Review, error)
	GetReview(ctx context.Context, productID, id uint) (*Review, error)
	CreateReview(ctx context.Context, params CreateParams) (*Review, error)
	DeleteReview(ctx context.Context, productID, id uint) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByProduct(ctx context.Context, productID uint) ([]*Review, error) {
	query := `
	SELECT id, product_id, date, name, description
	FROM reviews
	WHERE product_id = $1
	ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*Review{}
	for rows.Next() {
		var rev Review
		if err := rows.Scan(&rev.ID, &rev.ProductID, &rev.Date, &rev.Name, &rev.Description); err != nil {
			return nil, err
		}
		result = append(result, &rev)
	}

	return result, rows.Err()
}

func (r *repository) GetReview(ctx context.Context, productID, id uint) (*Review, error) {
	query := `
	SELECT id, product_id, date, name, description
	FROM reviews
	WHERE product_id = $1 AND id = $2
	`

	var rev Review
	err := r.db.QueryRowContext(ctx, query, productID, id).
		Scan(&rev.ID, &rev.ProductID, &rev.Date, &rev.Name, &rev.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &rev, nil
}

func (r *repository) CreateReview(ctx context.Context, params CreateParams) (*Review, error) {
	query := `
	INSERT INTO reviews (product_id, name, description)
	VALUES ($1, $2, $3)
	RETURNING id, product_id, date, name, description
	`

	var rev Review
	err := r.db.QueryRowContext(ctx, query, params.ProductID, params.Name, params.Description).
		Scan(&rev.ID, &rev.ProductID, &rev.Date, &rev.Name, &rev.Description)
	if err != nil {
		return nil, err
	}

	return &rev, nil
}

func (r *repository) DeleteReview(ctx context.Context, productID, id uint) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM reviews WHERE product_id = $1 AND id = $2`, productID, id,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
