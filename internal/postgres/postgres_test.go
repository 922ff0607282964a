package postgres

import (
	"net/url"
	"testing"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.Postgres{
		Host:     "db.internal",
		Port:     5433,
		DBName:   "storefront",
		User:     "shop",
		Password: "p@ss word/#1",
		SSLMode:  "require",
	})

	u, err := url.Parse(dsn)
	require.NoError(t, err)

	password, _ := u.User.Password()
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "shop", u.User.Username())
	assert.Equal(t, "p@ss word/#1", password)
	assert.Equal(t, "db.internal:5433", u.Host)
	assert.Equal(t, "/storefront", u.Path)
	assert.Equal(t, "require", u.Query().Get("sslmode"))
}
