// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// task manager server handlers and the Go API client.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of the response envelope. Keeping them in one place lets
// the client map a message back to a typed error.
package app

// Error messages.
const (
	// MsgInvalidJSON is returned when the request body is not valid JSON for
	// the endpoint.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgValidationFailed accompanies an itemized "errors" list.
	MsgValidationFailed = "Validation failed"

	// MsgMissingCredentials is returned by login when email or password is empty.
	MsgMissingCredentials = "Please provide email and password"

	// MsgUserAlreadyExists is returned when the email belongs to another account.
	MsgUserAlreadyExists = "User already exists"

	// MsgInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgNoToken is returned when the Authorization header carries no bearer token.
	MsgNoToken = "Not authorized, no token"

	// MsgTokenFailed is returned when the token cannot be verified or its
	// user no longer exists.
	MsgTokenFailed = "Not authorized, token failed"

	// MsgTaskNotFound is returned for missing tasks and for tasks owned by
	// another user.
	MsgTaskNotFound = "Task not found or not authorized"

	// MsgRouteNotFound is returned for unknown paths and unsupported methods.
	MsgRouteNotFound = "Route not found"

	// MsgServerError replaces internal error details in production mode.
	MsgServerError = "Server error"

	// MsgServiceUnavailable is returned by the health check when the
	// persistence backend does not answer.
	MsgServiceUnavailable = "Service unavailable"
)

// Success messages.
const (
	MsgUserRegistered = "User registered successfully"
	MsgLoggedIn       = "Login successful"
	MsgProfileFetched = "Profile retrieved successfully"
	MsgProfileUpdated = "Profile updated successfully"
	MsgTasksFetched   = "Tasks retrieved successfully"
	MsgTaskFetched    = "Task retrieved successfully"
	MsgTaskCreated    = "Task created successfully"
	MsgTaskUpdated    = "Task updated successfully"
	MsgTaskDeleted    = "Task deleted successfully"
	MsgHealthy        = "Service is healthy"
)
