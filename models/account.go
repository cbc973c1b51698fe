package models

import "time"

// Account is a sign-in identity. Accounts are distinct from Worker records:
// a worker need not have an account, and admins need not be workers.
type Account struct {
	ID           string    `json:"id" bson:"id"`
	FirstName    string    `json:"firstName" bson:"first_name"`
	LastName     string    `json:"lastName" bson:"last_name"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	IsAdmin      bool      `json:"isAdmin" bson:"is_admin"`
	Suspended    bool      `json:"suspended" bson:"suspended"`
	LoginTime    time.Time `json:"loginTime" bson:"login_time"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updated_at"`
}
