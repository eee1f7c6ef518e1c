package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
)

type ProseRepository interface {
	Create(ctx context.Context, prose *model.GuerillaProse) (int64, error)
	FindByID(ctx context.Context, id int64) (*model.GuerillaProse, error)
	List(ctx context.Context) ([]model.GuerillaProse, error)
	ListByLabel(ctx context.Context, label string) ([]model.GuerillaProse, error)
	ListByUser(ctx context.Context, userID int64) ([]model.GuerillaProse, error)
}

type sqliteProseRepository struct {
	db *sqlx.DB
}

func NewSqliteProseRepository(db *sqlx.DB) ProseRepository {
	return &sqliteProseRepository{db: db}
}

// Create inserts the prose with a store-assigned creation timestamp. The
// submitted Date field is ignored; the stored value is written back onto
// prose before returning.
func (r *sqliteProseRepository) Create(ctx context.Context, prose *model.GuerillaProse) (int64, error) {
	date := time.Now().UnixMilli()
	query := `INSERT INTO guerilla_prose (text, image_url, label, user_id, date) VALUES (?, ?, ?, ?, ?) RETURNING id`
	var newID int64
	err := r.db.QueryRowxContext(ctx, query, prose.Text, prose.ImageURL, prose.Label, prose.UserID, date).Scan(&newID)

	if err != nil {
		return 0, err
	}

	prose.Date = date
	return newID, nil
}

func (r *sqliteProseRepository) FindByID(ctx context.Context, id int64) (*model.GuerillaProse, error) {
	var prose model.GuerillaProse
	query := `SELECT id, text, image_url, label, user_id, date FROM guerilla_prose WHERE id = ?`
	err := r.db.GetContext(ctx, &prose, query, id)

	if err != nil {
		return nil, err
	}

	return &prose, nil
}

func (r *sqliteProseRepository) List(ctx context.Context) ([]model.GuerillaProse, error) {
	proses := []model.GuerillaProse{}
	query := `SELECT id, text, image_url, label, user_id, date FROM guerilla_prose ORDER BY date ASC`
	err := r.db.SelectContext(ctx, &proses, query)

	if err != nil {
		return nil, err
	}

	return proses, nil
}

func (r *sqliteProseRepository) ListByLabel(ctx context.Context, label string) ([]model.GuerillaProse, error) {
	proses := []model.GuerillaProse{}
	query := `SELECT id, text, image_url, label, user_id, date FROM guerilla_prose WHERE label = ? ORDER BY date ASC`
	err := r.db.SelectContext(ctx, &proses, query, label)

	if err != nil {
		return nil, err
	}

	return proses, nil
}

func (r *sqliteProseRepository) ListByUser(ctx context.Context, userID int64) ([]model.GuerillaProse, error) {
	proses := []model.GuerillaProse{}
	query := `SELECT id, text, image_url, label, user_id, date FROM guerilla_prose WHERE user_id = ? ORDER BY date ASC`
	err := r.db.SelectContext(ctx, &proses, query, userID)

	if err != nil {
		return nil, err
	}

	return proses, nil
}
