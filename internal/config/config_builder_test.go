// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without sign key and DSN
// fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingTokenSignKey)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that later non-zero fields win and
// zero fields keep earlier values.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "env-secret", TokenIssuer: "env-issuer"}},
		&StructuredConfig{App: App{TokenIssuer: "flag-issuer"}, Storage: Storage{DB: DB{DSN: "sqlite://x.db"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "sqlite://x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, ModeDevelopment, cfg.App.Mode)
	assert.Equal(t, ":5000", cfg.Server.Address())
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "secret",
		"STORAGE_DB_DATABASE_URI": "sqlite://tasks.db",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "secret", b.configs[0].App.TokenSignKey)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFile(t *testing.T) {
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_SIGN_KEY=from-dotenv\nSERVER_PORT=7000\n"), 0o600))
	require.NoError(t, os.Setenv(envFileVariable, p))

	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags([]string{"-d", "sqlite://tasks.db"}).
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.App.TokenSignKey)
	assert.Equal(t, 7000, cfg.Server.Port)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	clearEnvVars(t)
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("APP_TOKEN_ISSUER=dotenv\n"), 0o600))
	require.NoError(t, os.Setenv(envFileVariable, p))
	require.NoError(t, os.Setenv("APP_TOKEN_ISSUER", "environment"))

	b := newConfigBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "environment", b.configs[0].App.TokenIssuer)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	clearEnvVars(t)
	require.NoError(t, os.Setenv(envFileVariable, filepath.Join(t.TempDir(), "absent.env")))

	b := newConfigBuilder().withDotEnv()
	assert.NoError(t, b.err)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_issuer": "json-issuer", "token_duration": "2h"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, b.configs[1].App.TokenDuration)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/non/existent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesLastPath verifies that the path from the highest-priority
// layer is used.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"token_issuer": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	assert.Equal(t, "second", b.configs[len(b.configs)-1].App.TokenIssuer)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	setEnvVars(t, map[string]string{
		envFileVariable:           filepath.Join(t.TempDir(), "none.env"),
		"APP_TOKEN_SIGN_KEY":      "env-secret",
		"APP_TOKEN_ISSUER":        "env-issuer",
		"STORAGE_DB_DATABASE_URI": "sqlite://env.db",
	})
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"storage": map[string]any{"db": map[string]any{"dsn": "sqlite://json.db"}},
	})

	cfg, err := GetStructuredConfig([]string{"-token-issuer", "flag-issuer", "-c", jsonPath})

	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "sqlite://json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*24*time.Hour, cfg.App.TokenDuration)
}

func TestGetStructuredConfig_RequiresSignKey(t *testing.T) {
	setEnvVars(t, map[string]string{
		envFileVariable:           filepath.Join(t.TempDir(), "none.env"),
		"STORAGE_DB_DATABASE_URI": "sqlite://env.db",
	})

	cfg, err := GetStructuredConfig(nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingTokenSignKey)
}
