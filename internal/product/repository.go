package product

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListProducts(ctx context.Context, filter *ListFilter) ([]*Product, int64, error)
	GetProduct(ctx context.Context, id uint) (*Product, error)
	CreateProduct(ctx context.Context, params CreateParams) (*Product, error)
	UpdateProduct(ctx context.Context, id uint, params CreateParams) (*Product, error)
	DeleteProduct(ctx context.Context, id uint) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `id, title, description, slug, inventory, unit_price, last_update, collection_id`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Slug,
		&p.Inventory,
		&p.UnitPrice,
		&p.LastUpdate,
		&p.CollectionID,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListProducts(ctx context.Context, filter *ListFilter) ([]*Product, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	// ---------- pagination ----------
	finalLimit := int32(20)
	finalPage := int32(1)

	if filter != nil {
		if filter.Limit != nil && *filter.Limit > 0 {
			finalLimit = *filter.Limit
		}
		if finalLimit > 100 {
			finalLimit = 100
		}
		if filter.Page != nil && *filter.Page > 0 {
			finalPage = *filter.Page
		}
	}

	offset := int((finalPage - 1) * finalLimit)

	// ---------- where ----------
	where := []string{}
	args := []any{}

	if filter != nil {
		if filter.Search != nil && *filter.Search != "" {
			where = append(where,
				fmt.Sprintf(
					"(p.title ILIKE $%d OR p.description ILIKE $%d)",
					len(args)+1,
					len(args)+1,
				),
			)
			args = append(args, "%"+*filter.Search+"%")
		}

		if filter.CollectionID != nil {
			where = append(where, fmt.Sprintf("p.collection_id = $%d", len(args)+1))
			args = append(args, *filter.CollectionID)
		}
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	// ---------- sort ----------
	orderBy := "p.last_update DESC"
	if filter != nil && filter.Sort != nil {
		field := "p.last_update"
		switch filter.Sort.Field {
		case "unit_price":
			field = "p.unit_price"
		case "title":
			field = "p.title"
		}

		dir := "DESC"
		if strings.EqualFold(filter.Sort.Direction, "asc") {
			dir = "ASC"
		}

		orderBy = field + " " + dir
	}

	// ---------- count ----------
	var total int64
	countQuery := `SELECT COUNT(*) FROM products p` + whereSQL
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("count query failed", zap.Error(err))
		return nil, 0, err
	}

	// ---------- data ----------
	query := `
	SELECT p.id, p.title, p.description, p.slug, p.inventory, p.unit_price, p.last_update, p.collection_id
	FROM products p` + whereSQL + `
	ORDER BY ` + orderBy + `
	LIMIT $` + fmt.Sprint(len(args)+1) + `
	OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, 0, err
	}
	defer rows.Close()

	result := make([]*Product, 0, finalLimit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	log.Debug("query success",
		zap.Int("rows", len(result)),
		zap.Int64("total", total),
		zap.Duration("duration", time.Since(start)),
	)

	return result, total, nil
}

func (r *repository) GetProduct(ctx context.Context, id uint) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) CreateProduct(ctx context.Context, params CreateParams) (*Product, error) {
	query := `
	INSERT INTO products (title, description, slug, inventory, unit_price, collection_id)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + productColumns

	return scanProduct(r.db.QueryRowContext(
		ctx,
		query,
		params.Title,
		params.Description,
		params.Slug,
		params.Inventory,
		params.UnitPrice,
		params.CollectionID,
	))
}

func (r *repository) UpdateProduct(ctx context.Context, id uint, params CreateParams) (*Product, error) {
	query := `
	UPDATE products
	SET title = $2,
	    description = $3,
	    slug = $4,
	    inventory = $5,
	    unit_price = $6,
	    collection_id = $7,
	    last_update = NOW()
	WHERE id = $1
	RETURNING ` + productColumns

	p, err := scanProduct(r.db.QueryRowContext(
		ctx,
		query,
		id,
		params.Title,
		params.Description,
		params.Slug,
		params.Inventory,
		params.UnitPrice,
		params.CollectionID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *repository) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
