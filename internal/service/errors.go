// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrMissingCredentials is returned by Login when email or password is empty.
	ErrMissingCredentials = errors.New("email and password are required")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserAlreadyExists is returned when the email belongs to another account.
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrUnauthenticated is returned when a call carries no acting user.
	ErrUnauthenticated = errors.New("no authenticated user")

	// ErrTaskNotFound hides whether a task is missing or owned by someone else.
	ErrTaskNotFound = errors.New("task not found or not authorized")

	ErrStorageUnavailable = errors.New("storage is unavailable")
)
