package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type sqliteUserRepository struct {
	db *sqlx.DB
}

func NewSqliteUserRepository(db *sqlx.DB) UserRepository {
	return &sqliteUserRepository{db: db}
}

func (r *sqliteUserRepository) Create(ctx context.Context, user *model.User) (int64, error) {
	query := `INSERT INTO users (firstname, lastname, email) VALUES (?, ?, ?) RETURNING id`
	var newID int64
	err := r.db.QueryRowxContext(ctx, query, user.Firstname, user.Lastname, user.Email).Scan(&newID)

	if err != nil {
		return 0, err
	}

	return newID, nil
}

func (r *sqliteUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	query := `SELECT id, firstname, lastname, email FROM users WHERE id = ?`
	err := r.db.GetContext(ctx, &user, query, id)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *sqliteUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT id, firstname, lastname, email FROM users WHERE email = ?`
	err := r.db.GetContext(ctx, &user, query, email)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update replaces every mutable field of the row with the given id. A
// missing id is a no-op, not an error.
func (r *sqliteUserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users SET firstname = ?, lastname = ?, email = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, user.Firstname, user.Lastname, user.Email, user.ID)
	return err
}

// Delete removes the row with the given id. Deleting an id that does not
// exist is not an error at this layer.
func (r *sqliteUserRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
