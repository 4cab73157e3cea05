// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope every API endpoint answers with.
//
// Data is omitted when nil; handlers that must answer with an explicit
// "data": null (task deletion) set it to a null [encoding/json.RawMessage].
type Response struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// AuthResponse is returned by register, login and profile update.
type AuthResponse struct {
	UserID string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// NewAuthResponse builds an [AuthResponse] from a user and a signed token.
func NewAuthResponse(user User, token *Token) AuthResponse {
	return AuthResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
		Token:  token.String(),
	}
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Mode    string `json:"mode"`
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
}
