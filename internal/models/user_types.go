package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is the model for a registered customer or admin.
// The password hash is never serialized.
type User struct {
	ID           string    `json:"id" db:"id" bson:"_id"`
	Name         string    `json:"name" db:"name" bson:"name"`
	Email        string    `json:"email" db:"email" bson:"email"`
	PasswordHash string    `json:"-" db:"password_hash" bson:"passwordHash"`
	Phone        string    `json:"phone,omitempty" db:"phone" bson:"phone,omitempty"`
	IsAdmin      bool      `json:"isAdmin" db:"is_admin" bson:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" bson:"createdAt"`
}

// Summary returns the subset of user fields that may be embedded in
// responses and order snapshots.
func (u *User) Summary() OrderUser {
	return OrderUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
