package customer

import (
	"context"
	"database/sql"
	"strings"
)

const customerColumns = `id, user_id, phone, birth_date, membership`

type Repository interface {
	FindOrCreateByUser(ctx context.Context, userID uint) (*Customer, error)
	Create(ctx context.Context, userID uint, params UpdateParams) (*Customer, error)
	GetByUserID(ctx context.Context, userID uint) (*Customer, error)
	GetByID(ctx context.Context, id uint) (*Customer, error)
	UpdateByID(ctx context.Context, id uint, params UpdateParams) (*Customer, error)
	UpdateByUserID(ctx context.Context, userID uint, params UpdateParams) (*Customer, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func scanCustomer(row interface{ Scan(...any) error }) (*Customer, error) {
	var c Customer
	var phone sql.NullString
	err := row.Scan(&c.ID, &c.UserID, &phone, &c.BirthDate, &c.Membership)
	if err != nil {
		return nil, err
	}
	c.Phone = phone.String
	return &c, nil
}

// FindOrCreateByUser resolves the customer for a user, creating the row
// on first reference. The insert-then-select pair is race-safe: two
// concurrent first-time callers both end up reading the single row the
// unique constraint admits.
func (r *repository) FindOrCreateByUser(ctx context.Context, userID uint) (*Customer, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	if err != nil {
		return nil, err
	}

	return r.GetByUserID(ctx, userID)
}

func (r *repository) Create(ctx context.Context, userID uint, params UpdateParams) (*Customer, error) {
	query := `
	INSERT INTO customers (user_id, phone, birth_date, membership)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + customerColumns

	c, err := scanCustomer(r.db.QueryRowContext(
		ctx, query, userID, params.Phone, params.BirthDate, params.Membership,
	))
	if err != nil {
		if strings.Contains(err.Error(), "customers_user_id_key") {
			return nil, ErrCustomerExists
		}
		return nil, err
	}

	return c, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uint) (*Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE user_id = $1`

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *repository) UpdateByID(ctx context.Context, id uint, params UpdateParams) (*Customer, error) {
	query := `
	UPDATE customers
	SET phone = $2,
	    birth_date = $3,
	    membership = $4
	WHERE id = $1
	RETURNING ` + customerColumns

	c, err := scanCustomer(r.db.QueryRowContext(
		ctx, query, id, params.Phone, params.BirthDate, params.Membership,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (r *repository) UpdateByUserID(ctx context.Context, userID uint, params UpdateParams) (*Customer, error) {
	query := `
	UPDATE customers
	SET phone = $2,
	    birth_date = $3,
	    membership = $4
	WHERE user_id = $1
	RETURNING ` + customerColumns

	c, err := scanCustomer(r.db.QueryRowContext(
		ctx, query, userID, params.Phone, params.BirthDate, params.Membership,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}
