package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/itsmortoncornelius/guerilla-prose-backend/internal/model"
	repo "github.com/itsmortoncornelius/guerilla-prose-backend/internal/repository"
)

func TestSqliteUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewSqliteUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (firstname, lastname, email) VALUES (?, ?, ?) RETURNING id`)).
		WithArgs("Ada", "Lovelace", "ada@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := r.Create(context.Background(), &model.User{Firstname: "Ada", Lastname: "Lovelace", Email: "ada@example.com"})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSqliteUserRepository_FindByEmail_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewSqliteUserRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"id", "firstname", "lastname", "email"}).
		AddRow(int64(7), "Ada", "Lovelace", "ada@example.com")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, firstname, lastname, email FROM users WHERE email = ?`)).
		WithArgs("ada@example.com").WillReturnRows(rows)

	u, err := r.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(7), u.ID)
	require.Equal(t, "ada@example.com", u.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSqliteUserRepository_FindByID_NoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewSqliteUserRepository(sqlxDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, firstname, lastname, email FROM users WHERE id = ?`)).
		WithArgs(int64(42)).WillReturnError(sql.ErrNoRows)

	_, err = r.FindByID(context.Background(), 42)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSqliteUserRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewSqliteUserRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET firstname = ?, lastname = ?, email = ? WHERE id = ?`)).
		WithArgs("Ada", "King", "ada@example.com", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = r.Update(context.Background(), &model.User{ID: 7, Firstname: "Ada", Lastname: "King", Email: "ada@example.com"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSqliteUserRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	r := repo.NewSqliteUserRepository(sqlxDB)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = ?`)).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, r.Delete(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
