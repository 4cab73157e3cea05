// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrEmailAlreadyExists is returned when a user is created or updated
	// with an email that belongs to another user.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrTaskNotFound is returned when the task does not exist or belongs
	// to another user. The two cases are intentionally indistinguishable.
	ErrTaskNotFound = errors.New("task not found")

	// ErrUnsupportedDSN is returned by [NewStorages] for an unknown scheme.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

var (
	// ErrBuildingSQLQuery indicates a failure when constructing an SQL query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery indicates a failure during SQL query execution.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows indicates a failure while scanning result rows.
	ErrScanningRows = errors.New("failed to scan rows")
)
