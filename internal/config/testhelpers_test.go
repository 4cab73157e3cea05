// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

var knownEnvVars = []string{
	"CONFIG", envFileVariable,
	"APP_MODE", "APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER", "APP_TOKEN_DURATION", "APP_BCRYPT_COST",
	"SERVER_ADDRESS", "SERVER_PORT", "SERVER_REQUEST_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_CORS_ORIGINS",
	"STORAGE_DB_DATABASE_URI", "STORAGE_DB_NAME",
	"STORAGE_DB_MAX_OPEN_CONNS", "STORAGE_DB_MAX_IDLE_CONNS", "STORAGE_DB_MAX_IDLE_TIME",
}

// clearEnvVars unsets every variable the config reads and restores the
// original values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "sqlite://tasks.db"
	return cfg
}
