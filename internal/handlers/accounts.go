package handlers

import (
	"github.com/gofiber/fiber/v2"

	"demo-bank/internal/models"
)

// ShowAccounts lists the current user's accounts.
func (h *Handler) ShowAccounts(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.Render("accounts", fiber.Map{
		"Title":    "Accounts",
		"Name":     user.Name,
		"Accounts": user.Accounts,
	}, "layout")
}

// ShowAccountDetail renders one account with its transactions. An id
// outside the current user's account list yields a plain 404; other
// users' accounts are unreachable by construction.
func (h *Handler) ShowAccountDetail(c *fiber.Ctx) error {
	user := currentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Account not found")
	}

	var account *models.Account
	for i := range user.Accounts {
		if user.Accounts[i].ID == int64(id) {
			account = &user.Accounts[i]
			break
		}
	}
	if account == nil {
		return c.Status(fiber.StatusNotFound).SendString("Account not found")
	}

	return c.Render("account_details", fiber.Map{
		"Title":        account.Type + " Account",
		"Account":      account,
		"Transactions": user.Transactions[account.ID],
	}, "layout")
}

// ShowCards renders the card view derived from the current user's
// accounts. The material itself was fixed when the account was seeded.
func (h *Handler) ShowCards(c *fiber.Ctx) error {
	user := currentUser(c)

	var views []models.Card
	for _, account := range user.Accounts {
		if account.CardNumber == "" {
			continue
		}
		views = append(views, models.Card{
			Brand:  account.CardBrand,
			Number: account.CardNumber,
			Note:   account.CardNote,
			Expiry: account.CardExpiry,
		})
	}

	return c.Render("cards", fiber.Map{
		"Title": "Cards",
		"Cards": views,
	}, "layout")
}

// ShowProfile displays the session display name.
func (h *Handler) ShowProfile(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.Render("profile", fiber.Map{
		"Title": "Profile",
		"Name":  user.Name,
	}, "layout")
}
