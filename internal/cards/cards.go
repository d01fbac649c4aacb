// Package cards generates the demo card material attached to accounts.
// Numbers, expiry dates and CVVs are random strings produced once when a
// store is seeded; nothing here resembles real card issuance.
package cards

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Material is the card data generated for an account's lifetime.
type Material struct {
	Number string // NNNN NNNN NNNN NNNN
	Masked string // **** **** **** NNNN
	Expiry string // MM/YY, always a future year
	CVV    string // three digits
}

// Generate returns fresh card material. The expiry year is strictly
// greater than the year of now.
func Generate(now time.Time) Material {
	groups := make([]string, 4)
	for i := range groups {
		groups[i] = fmt.Sprintf("%04d", rand.IntN(10000))
	}
	number := fmt.Sprintf("%s %s %s %s", groups[0], groups[1], groups[2], groups[3])

	month := 1 + rand.IntN(12)
	year := now.Year() + 2 + rand.IntN(3)

	return Material{
		Number: number,
		Masked: "**** **** **** " + groups[3],
		Expiry: fmt.Sprintf("%02d/%02d", month, year%100),
		CVV:    fmt.Sprintf("%03d", rand.IntN(1000)),
	}
}

// Brand derives a card brand from the account id: odd ids carry Visa,
// even ids MasterCard.
func Brand(accountID int64) string {
	if accountID%2 != 0 {
		return "Visa"
	}
	return "MasterCard"
}
