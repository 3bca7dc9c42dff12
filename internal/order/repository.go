package order

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"storefront-be/internal/logger"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderFromCart(ctx context.Context, userID uint, cartID uuid.UUID) (*Order, error)
	GetOrders(ctx context.Context, customerID *uint, limit, page *int32) ([]*Order, int64, error)
	GetOrder(ctx context.Context, id uint) (*Order, error)
	UpdateStatus(ctx context.Context, id uint, status PaymentStatus) (int64, error)
	DeleteOrder(ctx context.Context, id uint) (int64, error)
	CountByProduct(ctx context.Context, productID uint) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderFromCart materializes an order from the cart's current
// contents in a single transaction: either the order exists and the cart
// is gone, or neither happened. The cart row is locked up front so two
// concurrent checkouts of the same cart cannot both convert it.
func (r *repository) CreateOrderFromCart(ctx context.Context, userID uint, cartID uuid.UUID) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderFromCart"),
		zap.Uint("user_id", userID),
		zap.String("cart_id", cartID.String()),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// 1. Lock the cart. The loser of a concurrent checkout race blocks
	// here and then sees the row gone.
	var lockedID uuid.UUID
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM carts WHERE id = $1 FOR UPDATE`, cartID,
	).Scan(&lockedID)
	if err == sql.ErrNoRows {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	// 2. Read the cart lines with the current product prices. The price
	// read here is the snapshot the order keeps.
	rows, err := tx.QueryContext(ctx, `
		SELECT ci.product_id, ci.quantity, p.title, p.unit_price
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.id ASC
	`, cartID)
	if err != nil {
		return nil, err
	}

	var items []*OrderItem
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.ProductTitle, &item.UnitPrice); err != nil {
			rows.Close()
			return nil, err
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	// 3. Resolve or create the customer for this user.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO customers (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return nil, err
	}

	var customerID uint
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM customers WHERE user_id = $1`, userID,
	).Scan(&customerID)
	if err != nil {
		return nil, err
	}

	// 4. Create the order.
	order := &Order{CustomerID: customerID, PaymentStatus: StatusPending, Items: items}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, payment_status)
		VALUES ($1, $2)
		RETURNING id, placed_at
	`, customerID, StatusPending).Scan(&order.ID, &order.PlacedAt)
	if err != nil {
		return nil, err
	}

	// 5. Bulk-insert the order lines.
	values := make([]string, 0, len(items))
	args := make([]any, 0, len(items)*4)
	for i, item := range items {
		item.OrderID = order.ID
		base := i * 4
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, order.ID, item.ProductID, item.Quantity, item.UnitPrice)
	}

	itemRows, err := tx.QueryContext(ctx, `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES `+strings.Join(values, ", ")+`
		RETURNING id
	`, args...)
	if err != nil {
		return nil, err
	}
	for i := 0; itemRows.Next(); i++ {
		if err := itemRows.Scan(&items[i].ID); err != nil {
			itemRows.Close()
			return nil, err
		}
	}
	if err := itemRows.Err(); err != nil {
		itemRows.Close()
		return nil, err
	}
	itemRows.Close()

	// 6. Destroy the cart; cart_items go with it.
	if _, err := tx.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, cartID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("customer_id", customerID),
		zap.Int("items", len(items)),
	)

	return order, nil
}

func (r *repository) GetOrders(ctx context.Context, customerID *uint, limit, page *int32) ([]*Order, int64, error) {
	finalLimit := int32(20)
	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	finalPage := int32(1)
	if page != nil && *page > 0 {
		finalPage = *page
	}
	offset := int((finalPage - 1) * finalLimit)

	where := ""
	args := []any{}
	if customerID != nil {
		where = " WHERE o.customer_id = $1"
		args = append(args, *customerID)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM orders o` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
	SELECT o.id, o.customer_id, o.placed_at, o.payment_status
	FROM orders o` + where + `
	ORDER BY o.placed_at DESC
	LIMIT $` + fmt.Sprint(len(args)+1) + `
	OFFSET $` + fmt.Sprint(len(args)+2)

	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]*Order, 0, finalLimit)
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.PlacedAt, &o.PaymentStatus); err != nil {
			return nil, 0, err
		}
		o.Items = []*OrderItem{}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// attachItems fetches the lines for a page of orders in one query.
func (r *repository) attachItems(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[uint]*Order, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, int64(o.ID))
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, p.title
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id ASC
	`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.ProductTitle); err != nil {
			return err
		}
		if o, ok := byID[item.OrderID]; ok {
			o.Items = append(o.Items, &item)
		}
	}

	return rows.Err()
}

func (r *repository) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, placed_at, payment_status
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.CustomerID, &o.PlacedAt, &o.PaymentStatus)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	o.Items = []*OrderItem{}
	if err := r.attachItems(ctx, []*Order{&o}); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status PaymentStatus) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET payment_status = $2 WHERE id = $1`, id, status,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) DeleteOrder(ctx context.Context, id uint) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM order_items WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
