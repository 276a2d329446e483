package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig_Defaults(t *testing.T) {
	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		logLevel, jwtSecret, jwtExp,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "localhost", appHost)
	assert.Equal(t, "8080", appPort)
	assert.Equal(t, "localhost", pgHost)
	assert.Equal(t, 5432, pgPort)
	assert.Equal(t, "user", pgUser)
	assert.Equal(t, "password", pgPassword)
	assert.Equal(t, "flashcards", pgDB)
	assert.Equal(t, 16, pgMaxOpenConns)
	assert.Equal(t, 8, pgMaxIdleConns)
	assert.Equal(t, "info", logLevel)
	assert.Equal(t, "my_super_secret_key", jwtSecret)
	assert.Equal(t, 3600, jwtExp)
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_DB", "decks_test")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("JWT_EXP_SECOND", "120")

	_, appPort, _, pgPort, _, _, pgDB,
		_, _,
		logLevel, _, jwtExp,
		err := parseConfig("nonexistent.env")

	assert.NoError(t, err)
	assert.Equal(t, "9090", appPort)
	assert.Equal(t, 5433, pgPort)
	assert.Equal(t, "decks_test", pgDB)
	assert.Equal(t, "debug", logLevel)
	assert.Equal(t, 120, jwtExp)
}

func TestParseConfig_InvalidNumbers(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, _, _, _, _, _, _,
		_, _,
		_, _, _,
		err := parseConfig("nonexistent.env")

	assert.Error(t, err)
}
