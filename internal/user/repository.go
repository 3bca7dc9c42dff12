package user

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
)

type Repository interface {
	Create(ctx context.Context, email, hashedPassword, role string) (User, error)
	FindByEmail(email string) (User, error)
	FindByID(ctx context.Context, id int) (User, error)
	GrantPermission(ctx context.Context, userID int, perm string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, hashedPassword, role string) (User, error) {
	query := `
	INSERT INTO users (email, password, role)
	VALUES ($1, $2, $3)
	RETURNING id, email, role, permissions
	`

	var u User
	err := r.db.QueryRowContext(ctx, query, email, hashedPassword, role).
		Scan(&u.ID, &u.Email, &u.Role, pq.Array(&u.Permissions))
	if err != nil {
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByEmail(email string) (User, error) {
	query := `
	SELECT id, email, password, role, permissions
	FROM users
	WHERE email = $1
	`

	var u User
	err := r.db.QueryRow(query, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.Role, pq.Array(&u.Permissions))
	if err != nil {
		return User{}, err
	}

	return u, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (User, error) {
	query := `
	SELECT id, email, role, permissions
	FROM users
	WHERE id = $1
	`

	var u User
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&u.ID, &u.Email, &u.Role, pq.Array(&u.Permissions))
	if err != nil {
		return User{}, err
	}

	return u, nil
}

func (r *repository) GrantPermission(ctx context.Context, userID int, perm string) error {
	// array_append only when the permission is not already present
	query := `
	UPDATE users
	SET permissions = array_append(permissions, $2)
	WHERE id = $1 AND NOT ($2 = ANY(permissions))
	`

	_, err := r.db.ExecContext(ctx, query, userID, perm)
	return err
}
