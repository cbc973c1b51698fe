package account

import "rosterly/models"

// AuthResponse carries a signed token and the authenticated account.
type AuthResponse struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"account"`
}

// AccountService manages sign-in identities and their admin/suspension flags.
type AccountService interface {
	Register(acct *models.Account, password string) (*models.Account, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetAccount(id string) (*models.Account, error)
	SetAdmin(email string, isAdmin bool) error
	SetSuspended(email string, suspended bool) error
}
