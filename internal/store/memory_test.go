package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"demo-bank/internal/models"
)

var cardNumberPattern = regexp.MustCompile(`^\d{4} \d{4} \d{4} \d{4}$`)

func TestMemoryFindUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	t.Run("demo user", func(t *testing.T) {
		u, err := m.FindUser(ctx, "demo")
		require.NoError(t, err)
		assert.Equal(t, "Wide Mind User", u.Name)
		assert.Equal(t, models.RoleUser, u.Role)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("demo123")))
	})

	t.Run("admin precedes user scan", func(t *testing.T) {
		u, err := m.FindUser(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, u.Role)
		assert.Empty(t, u.Accounts)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := m.FindUser(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lookup is case-sensitive", func(t *testing.T) {
		_, err := m.FindUser(ctx, "Demo")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = m.FindUser(ctx, "ADMIN")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryAccountsAreScopedPerUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	demo, err := m.FindUser(ctx, "demo")
	require.NoError(t, err)
	sasha, err := m.FindUser(ctx, "sasha")
	require.NoError(t, err)

	require.Len(t, demo.Accounts, 2)
	assert.Equal(t, "Checking", demo.Accounts[0].Type)
	assert.Equal(t, "Savings", demo.Accounts[1].Type)

	require.Len(t, sasha.Accounts, 1)
	assert.Equal(t, "Deposits", sasha.Accounts[0].Type)

	demoIDs := map[int64]bool{}
	for _, a := range demo.Accounts {
		demoIDs[a.ID] = true
	}
	for _, a := range sasha.Accounts {
		assert.False(t, demoIDs[a.ID], "account %d must belong to exactly one user", a.ID)
	}

	// Transactions only reference the owner's accounts.
	for id := range demo.Transactions {
		assert.True(t, demoIDs[id])
	}
}

func TestMemoryCardMaterial(t *testing.T) {
	m := NewMemory()

	demo, err := m.FindUser(context.Background(), "demo")
	require.NoError(t, err)

	for _, a := range demo.Accounts {
		assert.Regexp(t, cardNumberPattern, a.CardNumber)
		assert.Regexp(t, `^\*\*\*\* \*\*\*\* \*\*\*\* \d{4}$`, a.MaskedNumber)
		assert.Equal(t, a.CardNumber[15:], a.MaskedNumber[15:])
		assert.Regexp(t, `^\d{2}/\d{2}$`, a.CardExpiry)
		assert.Regexp(t, `^\d{3}$`, a.CardCVV)
		assert.Equal(t, a.Type+" Account Card", a.CardNote)
	}

	// Brand alternates by account id parity.
	assert.Equal(t, "Visa", demo.Accounts[0].CardBrand)
	assert.Equal(t, "MasterCard", demo.Accounts[1].CardBrand)
}

func TestMemoryFixturesAreStable(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	first, err := m.FindUser(ctx, "demo")
	require.NoError(t, err)
	second, err := m.FindUser(ctx, "demo")
	require.NoError(t, err)

	// Card material is generated once at seed time, not per lookup.
	assert.Same(t, first, second)
	assert.Equal(t, first.Accounts[0].CardNumber, second.Accounts[0].CardNumber)
}
