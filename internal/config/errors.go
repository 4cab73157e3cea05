// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// configured. There is deliberately no fallback value.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidStorageConfigs indicates an empty DSN or invalid pool settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an unusable listen address or timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates an unknown run mode, a non-positive
	// token duration or an out-of-range bcrypt cost.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
