package store

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"demo-bank/internal/cards"
	"demo-bank/internal/models"
)

// Memory is the fixture-backed identity store. All records are built in
// NewMemory and never mutated afterwards, so concurrent reads need no
// locking. Card material is generated once per account at seed time.
type Memory struct {
	admin *models.User
	users []*models.User
}

// NewMemory seeds the demo fixtures: one admin, the demo user with
// Checking and Savings accounts, and a second regular user holding the
// Deposits account. Passwords are stored bcrypt-hashed.
func NewMemory() *Memory {
	now := time.Now()

	demo := &models.User{
		ID:           1,
		Username:     "demo",
		PasswordHash: mustHash("demo123"),
		Name:         "Wide Mind User",
		Role:         models.RoleUser,
		Accounts: []models.Account{
			seedAccount(1, "Checking", 15240.75, now),
			seedAccount(2, "Savings", 8240.50, now),
		},
		Transactions: map[int64][]models.Transaction{
			1: {
				{Description: "POS Purchase - AMAZON", Amount: -250.00},
				{Description: "Payment Received", Amount: 1500.00},
			},
			2: {
				{Description: "Interest Credited", Amount: 12.50},
				{Description: "Deposit via Mobile", Amount: 500.00},
			},
		},
	}

	sasha := &models.User{
		ID:           2,
		Username:     "sasha",
		PasswordHash: mustHash("sasha123"),
		Name:         "Sasha Reyes",
		Role:         models.RoleUser,
		Accounts: []models.Account{
			seedAccount(3, "Deposits", 5020.00, now),
		},
		Transactions: map[int64][]models.Transaction{
			3: {
				{Description: "Deposit Matured", Amount: 2000.00},
				{Description: "Withdrawal", Amount: -500.00},
			},
		},
	}

	admin := &models.User{
		ID:           100,
		Username:     "admin",
		PasswordHash: mustHash("admin123"),
		Name:         "Admin",
		Role:         models.RoleAdmin,
		Transactions: map[int64][]models.Transaction{},
	}

	return &Memory{
		admin: admin,
		users: []*models.User{demo, sasha},
	}
}

// FindUser checks the admin record first, then scans the user list.
// Usernames are unique, so the admin precedence only matters as a
// tie-break and never changes which record wins.
func (m *Memory) FindUser(_ context.Context, username string) (*models.User, error) {
	if m.admin.Username == username {
		return m.admin, nil
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func seedAccount(id int64, accountType string, balance float64, now time.Time) models.Account {
	material := cards.Generate(now)
	return models.Account{
		ID:           id,
		Type:         accountType,
		Balance:      balance,
		MaskedNumber: material.Masked,
		CardNumber:   material.Number,
		CardBrand:    cards.Brand(id),
		CardNote:     accountType + " Account Card",
		CardExpiry:   material.Expiry,
		CardCVV:      material.CVV,
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on oversized input; the fixture passwords
		// are short constants.
		panic(err)
	}
	return string(hash)
}
