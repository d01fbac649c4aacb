package models

// Role is a session role fixed at login time. There is no hierarchy and
// no escalation path.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is a credential record together with its financial fixtures.
// Every account and transaction belongs to exactly one user.
type User struct {
	ID           int64                   `json:"id"`
	Username     string                  `json:"username"`
	PasswordHash string                  `json:"-"` // bcrypt, never serialized
	Name         string                  `json:"name"`
	Role         Role                    `json:"role"`
	Accounts     []Account               `json:"accounts"`
	Transactions map[int64][]Transaction `json:"transactions"`
}

// Account is a read-only fixture. Balance is never modified by any
// operation; the card fields are generated once and held for the
// account's lifetime.
type Account struct {
	ID           int64   `json:"id"`
	Type         string  `json:"type"` // Checking, Savings or Deposits
	Balance      float64 `json:"balance"`
	MaskedNumber string  `json:"number"`
	CardNumber   string  `json:"card_number"`
	CardBrand    string  `json:"card_brand"`
	CardNote     string  `json:"card_note"`
	CardExpiry   string  `json:"card_expiry"` // MM/YY
	CardCVV      string  `json:"-"`
}

// Transaction is an immutable pre-seeded ledger line. Amount is signed.
type Transaction struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Card is the per-request view of an account's card material.
type Card struct {
	Brand  string `json:"brand"`
	Number string `json:"number"`
	Note   string `json:"note"`
	Expiry string `json:"expiry"`
}

// Identity is the session payload: who is logged in and as what.
type Identity struct {
	Username string
	Name     string
	Role     Role
}
