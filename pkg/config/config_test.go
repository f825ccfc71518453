package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/retail-shop/pkg/config"
)

func TestApplyArgs_LosArgumentosMandanSobreElEntorno(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.DatabaseURL = "postgres://otro@otrohost:5432/otradb"

	require.NoError(t, cfg.ApplyArgs("retail", "9117", "amitava"))

	assert.Equal(t, "retail", cfg.DB.DBName)
	assert.Equal(t, 9117, cfg.DB.Port)
	assert.Equal(t, "amitava", cfg.DB.User)
	assert.Empty(t, cfg.DB.DatabaseURL, "los args anulan DATABASE_URL")
}

func TestApplyArgs_PuertoNoNumericoEsErrorDeUso(t *testing.T) {
	cfg := &config.Config{}
	assert.Error(t, cfg.ApplyArgs("retail", "puerto", "amitava"))
}

func TestDSN_ConstruyeConnectionString(t *testing.T) {
	db := config.DBConfig{
		Host:    "localhost",
		Port:    9117,
		User:    "amitava",
		DBName:  "retail",
		SSLMode: "disable",
	}

	dsn := db.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:9117")
	assert.Contains(t, dsn, "/retail")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgres://x@y:1/z",
		Host:        "localhost",
	}
	assert.Equal(t, "postgres://x@y:1/z", db.ConnectionString())
}
