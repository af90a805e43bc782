package domain

import "time"

// Account is the durable record created by a successful activation. Email and
// phone number are unique across accounts.
type Account struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	PhoneNumber  int64     `json:"phone_number"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the account projection carried inside session tokens.
type Identity struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// IdentityOf builds the token-safe projection of an account.
func IdentityOf(account *Account) Identity {
	return Identity{
		AccountID: account.ID,
		Name:      account.Name,
		Email:     account.Email,
	}
}
