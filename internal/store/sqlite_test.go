package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demo-bank/internal/models"
)

func setupSQLiteMock(t *testing.T) (*SQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLite(db, nil), mock
}

func TestSQLiteFindUser(t *testing.T) {
	s, mock := setupSQLiteMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash, name, account_type, balance, is_admin FROM users WHERE username = ?`)).
		WithArgs("Salon454@yahoo.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "name", "account_type", "balance", "is_admin"}).
			AddRow(2, "Salon454@yahoo.com", "$2a$10$hash", "Salon User", "Savings", 126000.0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT description, amount FROM transactions WHERE user_id = ? ORDER BY created_at DESC`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"description", "amount"}).
			AddRow("Payment Received", 1500.0).
			AddRow("Withdrawal", -500.0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT card_number, brand, note, expiry, cvv FROM cards WHERE user_id = ?`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"card_number", "brand", "note", "expiry", "cvv"}).
			AddRow("4532 1890 7765 4432", "Visa", "Savings Account Card", "12/28", "247"))

	user, err := s.FindUser(context.Background(), "Salon454@yahoo.com")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, user.Role)
	require.Len(t, user.Accounts, 1)
	account := user.Accounts[0]
	assert.Equal(t, int64(2), account.ID)
	assert.Equal(t, "Savings", account.Type)
	assert.Equal(t, "Visa", account.CardBrand)
	assert.Equal(t, "**** **** **** 4432", account.MaskedNumber)
	assert.Len(t, user.Transactions[account.ID], 2)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteFindUserAdminHasNoAccount(t *testing.T) {
	s, mock := setupSQLiteMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash, name, account_type, balance, is_admin FROM users WHERE username = ?`)).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "name", "account_type", "balance", "is_admin"}).
			AddRow(1, "admin", "$2a$10$hash", "Admin", "Savings", 0.0, 1))

	user, err := s.FindUser(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
	assert.Empty(t, user.Accounts)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteFindUserAbsent(t *testing.T) {
	s, mock := setupSQLiteMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password_hash, name, account_type, balance, is_admin FROM users WHERE username = ?`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := s.FindUser(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCreateUserIfAbsentIsIdempotent(t *testing.T) {
	s, mock := setupSQLiteMock(t)

	// The pre-check select finds the user, so nothing is inserted.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM users WHERE username = ?`)).
		WithArgs("Salon454@yahoo.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

	err := s.CreateUserIfAbsent(context.Background(), NewUser{
		Username: "Salon454@yahoo.com",
		Password: "Michele123@",
		Name:     "Salon User",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCreateUserIfAbsentInsertsUserAndCard(t *testing.T) {
	s, mock := setupSQLiteMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM users WHERE username = ?`)).
		WithArgs("pat").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (username, password_hash, name, account_type, balance, is_admin) VALUES (?, ?, ?, ?, ?, ?)`)).
		WithArgs("pat", sqlmock.AnyArg(), "Pat Doe", "Checking", 500.0, 0).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO cards (user_id, card_number, brand, note, expiry, cvv) VALUES (?, ?, ?, ?, ?, ?)`)).
		WithArgs(int64(7), "4000 1234 5678 9010", "Visa", "Checking Account Card", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := s.CreateUserIfAbsent(context.Background(), NewUser{
		Username:    "pat",
		Password:    "pat123",
		Name:        "Pat Doe",
		AccountType: "Checking",
		Balance:     500,
		CardBrand:   "Visa",
		CardNumber:  "4000 1234 5678 9010",
		CardNote:    "Checking Account Card",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteCreateUserIfAbsentPropagatesCheckError(t *testing.T) {
	s, mock := setupSQLiteMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM users WHERE username = ?`)).
		WithArgs("pat").
		WillReturnError(errors.New("disk I/O error"))

	err := s.CreateUserIfAbsent(context.Background(), NewUser{Username: "pat", Password: "x"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
