package models

import "time"

// Account is the merchant account owning the API key. It is fetched to
// validate a credential during login and is not persisted beyond that check.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	APIKey    string    `json:"api_key"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateAccountInput is the payload for POST /accounts.
type CreateAccountInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
