package endpoints

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Complete(t *testing.T) {
	t.Parallel()
	c := Catalog()
	require.Len(t, c, 24)
	for name, path := range c {
		assert.True(t, strings.HasPrefix(path, "/api/"), "%s has unexpected path %q", name, path)
	}
	assert.Equal(t, "/api/auth/login", c["LOGIN"])
	assert.Equal(t, "/api/market/prices", c["MARKET_PRICES"])
	assert.Equal(t, c["USER_PROFILE"], c["UPDATE_PROFILE"])
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	t.Parallel()
	c := Catalog()
	c["LOGIN"] = "/tampered"
	delete(c, "REPORTS")

	p, ok := Lookup("LOGIN")
	require.True(t, ok)
	assert.Equal(t, Login, p)
	_, ok = Lookup("REPORTS")
	assert.True(t, ok)
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()
	_, ok := Lookup("NOPE")
	assert.False(t, ok)
}
