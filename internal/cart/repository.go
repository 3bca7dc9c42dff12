package cart

import (
	"context"
	"database/sql"

	"storefront-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository interface {
	CreateCart(ctx context.Context) (*Cart, error)
	GetCart(ctx context.Context, id uuid.UUID) (*Cart, error)
	CartExists(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteCart(ctx context.Context, id uuid.UUID) (int64, error)

	GetItemByProduct(ctx context.Context, cartID uuid.UUID, productID uint) (*CartItem, error)
	CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error)
	UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID uint, quantity int) (*CartItem, error)
	DeleteItem(ctx context.Context, cartID uuid.UUID, itemID uint) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCart(ctx context.Context) (*Cart, error) {
	c := &Cart{ID: uuid.New(), Items: []*CartItem{}}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO carts (id) VALUES ($1) RETURNING created_at`, c.ID,
	).Scan(&c.CreatedAt)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *repository) GetCart(ctx context.Context, id uuid.UUID) (*Cart, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetCart"),
		zap.String("cart_id", id.String()),
	)

	var c Cart
	err := r.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM carts WHERE id = $1`, id,
	).Scan(&c.ID, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get cart", zap.Error(err))
		return nil, err
	}

	query := `
	SELECT
		ci.id,
		ci.cart_id,
		ci.quantity,
		p.id,
		p.title,
		p.unit_price
	FROM cart_items ci
	JOIN products p ON p.id = ci.product_id
	WHERE ci.cart_id = $1
	ORDER BY ci.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		log.Error("failed to get cart items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	c.Items = []*CartItem{}
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.Quantity,
			&item.Product.ID,
			&item.Product.Title,
			&item.Product.UnitPrice,
		); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		c.Items = append(c.Items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) CartExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM carts WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *repository) DeleteCart(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) GetItemByProduct(ctx context.Context, cartID uuid.UUID, productID uint) (*CartItem, error) {
	query := `
	SELECT id, cart_id, product_id, quantity
	FROM cart_items
	WHERE cart_id = $1 AND product_id = $2
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, cartID, productID).
		Scan(&item.ID, &item.CartID, &item.Product.ID, &item.Quantity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) CreateItem(ctx context.Context, params CreateItemParams) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateItem"),
		zap.String("cart_id", params.CartID.String()),
		zap.Uint("product_id", params.ProductID),
	)

	query := `
	INSERT INTO cart_items (cart_id, product_id, quantity)
	VALUES ($1, $2, $3)
	RETURNING id, cart_id, product_id, quantity
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, params.CartID, params.ProductID, params.Quantity).
		Scan(&item.ID, &item.CartID, &item.Product.ID, &item.Quantity)
	if err != nil {
		log.Error("failed to create cart item", zap.Error(err))
		return nil, err
	}

	log.Info("cart item created", zap.Uint("cart_item_id", item.ID))
	return &item, nil
}

func (r *repository) UpdateItemQuantity(ctx context.Context, cartID uuid.UUID, itemID uint, quantity int) (*CartItem, error) {
	query := `
	UPDATE cart_items
	SET quantity = $3
	WHERE cart_id = $1 AND id = $2
	RETURNING id, cart_id, product_id, quantity
	`

	var item CartItem
	err := r.db.QueryRowContext(ctx, query, cartID, itemID, quantity).
		Scan(&item.ID, &item.CartID, &item.Product.ID, &item.Quantity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *repository) DeleteItem(ctx context.Context, cartID uuid.UUID, itemID uint) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND id = $2`, cartID, itemID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
