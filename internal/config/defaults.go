// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultEnvFile         = ".env"
	envFileVariable        = "ENV_FILE"
	defaultTokenIssuer     = "task-manager"
	defaultTokenDuration   = 30 * 24 * time.Hour
	defaultBcryptCost      = 10
	defaultPort            = 5000
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultDBName          = "task_manager"
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultMaxIdleTime     = 15 * time.Minute
)

// defaults returns the lowest-priority configuration layer. The token sign
// key and the DSN intentionally have no default.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode:          ModeDevelopment,
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			BcryptCost:    defaultBcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Name:         defaultDBName,
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
				MaxIdleTime:  defaultMaxIdleTime,
			},
		},
		Server: Server{
			Port:            defaultPort,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			CORSOrigins:     []string{"*"},
		},
	}
}
