package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"demo-bank/internal/cards"
	"demo-bank/internal/models"
)

// SQLite is the relational identity store. Each user row doubles as that
// user's single account (account_type, balance); transactions and cards
// hang off it by user_id.
type SQLite struct {
	db  *sql.DB
	log *zap.Logger
}

// NewSQLite wraps an already opened database handle. Table creation and
// seeding are the caller's concern; OpenSQLite does both.
func NewSQLite(db *sql.DB, log *zap.Logger) *SQLite {
	return &SQLite{db: db, log: log}
}

// OpenSQLite opens (or creates) the database at dsn, creates the schema
// and idempotently seeds the admin and demo records.
func OpenSQLite(dsn string, log *zap.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	s := NewSQLite(db, log)
	if err := s.createTables(); err != nil {
		return nil, fmt.Errorf("create tables: %w", err)
	}
	if err := s.seed(context.Background()); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return s, nil
}

// Close closes the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			name TEXT NOT NULL,
			account_type TEXT DEFAULT 'Savings',
			balance REAL DEFAULT 0,
			is_admin INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			amount REAL,
			type TEXT,
			description TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS cards (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER,
			card_number TEXT,
			brand TEXT,
			note TEXT,
			expiry TEXT,
			cvv TEXT,
			FOREIGN KEY(user_id) REFERENCES users(id)
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLite) seed(ctx context.Context) error {
	if err := s.CreateUserIfAbsent(ctx, NewUser{
		Username: "admin",
		Password: "admin123",
		Name:     "Admin",
		IsAdmin:  true,
	}); err != nil {
		return err
	}

	return s.CreateUserIfAbsent(ctx, NewUser{
		Username:    "Salon454@yahoo.com",
		Password:    "Michele123@",
		Name:        "Salon User",
		AccountType: "Savings",
		Balance:     126000,
		CardBrand:   "Visa",
		CardNumber:  "4532 1890 7765 4432",
		CardNote:    "Savings Account Card",
	})
}

// NewUser is the onboarding payload for CreateUserIfAbsent.
type NewUser struct {
	Username    string
	Password    string
	Name        string
	AccountType string
	Balance     float64
	IsAdmin     bool
	CardBrand   string
	CardNumber  string
	CardNote    string
}

// CreateUserIfAbsent inserts the user and, for non-admins with a card
// number, a card row. A second call with the same username is a no-op,
// detected via a pre-check select. Expiry and CVV are generated here;
// everything else comes from the caller.
func (s *SQLite) CreateUserIfAbsent(ctx context.Context, u NewUser) error {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE username = ?`, u.Username).Scan(&id)
	if err == nil {
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("check user %q: %w", u.Username, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	isAdmin := 0
	if u.IsAdmin {
		isAdmin = 1
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, name, account_type, balance, is_admin) VALUES (?, ?, ?, ?, ?, ?)`,
		u.Username, string(hash), u.Name, u.AccountType, u.Balance, isAdmin)
	if err != nil {
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}

	if !u.IsAdmin && u.CardNumber != "" {
		userID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("user id for %q: %w", u.Username, err)
		}
		material := cards.Generate(time.Now())
		_, err = s.db.ExecContext(ctx,
			`INSERT INTO cards (user_id, card_number, brand, note, expiry, cvv) VALUES (?, ?, ?, ?, ?, ?)`,
			userID, u.CardNumber, u.CardBrand, u.CardNote, material.Expiry, material.CVV)
		if err != nil {
			return fmt.Errorf("insert card for %q: %w", u.Username, err)
		}
	}

	if s.log != nil {
		s.log.Info("user created", zap.String("username", u.Username), zap.Bool("admin", u.IsAdmin))
	}
	return nil
}

// FindUser loads the user row plus its transactions and card. The user
// row itself is the single account: account id equals user id.
func (s *SQLite) FindUser(ctx context.Context, username string) (*models.User, error) {
	var (
		user        models.User
		accountType string
		balance     float64
		isAdmin     int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, name, account_type, balance, is_admin FROM users WHERE username = ?`,
		username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Name, &accountType, &balance, &isAdmin)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}

	user.Role = models.RoleUser
	if isAdmin != 0 {
		user.Role = models.RoleAdmin
	}
	user.Transactions = map[int64][]models.Transaction{}
	if user.Role == models.RoleAdmin {
		return &user, nil
	}

	account := models.Account{
		ID:      user.ID,
		Type:    accountType,
		Balance: balance,
	}

	txns, err := s.loadTransactions(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Transactions[account.ID] = txns

	if err := s.attachCard(ctx, &account); err != nil {
		return nil, err
	}
	user.Accounts = []models.Account{account}
	return &user, nil
}

func (s *SQLite) loadTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT description, amount FROM transactions WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.Description, &t.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (s *SQLite) attachCard(ctx context.Context, account *models.Account) error {
	err := s.db.QueryRowContext(ctx,
		`SELECT card_number, brand, note, expiry, cvv FROM cards WHERE user_id = ?`, account.ID).
		Scan(&account.CardNumber, &account.CardBrand, &account.CardNote, &account.CardExpiry, &account.CardCVV)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("select card: %w", err)
	}
	if len(account.CardNumber) >= 4 {
		account.MaskedNumber = "**** **** **** " + account.CardNumber[len(account.CardNumber)-4:]
	}
	return nil
}
