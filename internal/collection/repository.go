package collection

import (
	"context"
	"database/sql"
)

type Repository interface {
	GetCollections(ctx context.Context) ([]*Collection, error)
	GetCollection(ctx context.Context, id uint) (*Collection, error)
	CreateCollection(ctx context.Context, title string) (*Collection, error)
	UpdateCollection(ctx context.Context, id uint, title string) (*Collection, error)
	DeleteCollection(ctx context.Context, id uint) (int64, error)
	CountProducts(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCollections(ctx context.Context) ([]*Collection, error) {
	query := `
	SELECT c.id, c.title, COUNT(p.id)
	FROM collections c
	LEFT JOIN products p ON p.collection_id = c.id
	GROUP BY c.id, c.title
	ORDER BY c.title ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Collection
	for rows.Next() {
		var c Collection
		if err := rows.Scan(&c.ID, &c.Title, &c.ProductsCount); err != nil {
			return nil, err
		}
		result = append(result, &c)
	}

	return result, rows.Err()
}

func (r *repository) GetCollection(ctx context.Context, id uint) (*Collection, error) {
	query := `
	SELECT c.id, c.title, COUNT(p.id)
	FROM collections c
	LEFT JOIN products p ON p.collection_id = c.id
	WHERE c.id = $1
	GROUP BY c.id, c.title
	`

	var c Collection
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Title, &c.ProductsCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) CreateCollection(ctx context.Context, title string) (*Collection, error) {
	query := `
	INSERT INTO collections (title)
	VALUES ($1)
	RETURNING id, title
	`

	var c Collection
	err := r.db.QueryRowContext(ctx, query, title).Scan(&c.ID, &c.Title)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) UpdateCollection(ctx context.Context, id uint, title string) (*Collection, error) {
	query := `
	UPDATE collections
	SET title = $2
	WHERE id = $1
	RETURNING id, title
	`

	var c Collection
	err := r.db.QueryRowContext(ctx, query, id, title).Scan(&c.ID, &c.Title)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) DeleteCollection(ctx context.Context, id uint) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) CountProducts(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE collection_id = $1`, id,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
