// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued to authenticated users.
// ID duplicates the subject so clients can read the user id without
// knowing registered claim names.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	Claims

	SignedString string `json:"-"`
}

// GetUserID extracts the user identifier from the token claims.
// The "id" claim wins; the "sub" claim is used when "id" is absent.
func (t *Token) GetUserID() (string, error) {
	if t.Claims.ID != "" {
		return t.Claims.ID, nil
	}

	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
