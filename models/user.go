// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// PasswordHash is never serialized; responses expose only the public profile.
type User struct {
	// UserID is the opaque identifier generated by the store.
	UserID string `json:"id" db:"id"`

	// Name is the display name of the user, stored trimmed.
	Name string `json:"name" db:"name"`

	// Email is the unique login key, stored trimmed and lower-cased.
	Email string `json:"email" db:"email"`

	// PasswordHash holds the bcrypt hash of the user's password.
	// It MUST never hold plaintext.
	PasswordHash string `json:"-" db:"password_hash"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Identity returns the authenticated view of the user.
func (u User) Identity() Identity {
	return Identity{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

// UserUpdate carries a partial profile update. Nil fields are left unchanged.
// PasswordHash must already be hashed when set.
type UserUpdate struct {
	UserID       string
	Name         *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update carries no changes.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil
}
