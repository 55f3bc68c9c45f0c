package gravatar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	url := URL("ada@x.com")

	assert.True(t, strings.HasPrefix(url, "https://www.gravatar.com/avatar/"))
	assert.Contains(t, url, "s=200")
	assert.Contains(t, url, "r=pg")
	assert.Contains(t, url, "d=mm")
}

func TestURL_Deterministic(t *testing.T) {
	assert.Equal(t, URL("ada@x.com"), URL("ada@x.com"))
	assert.NotEqual(t, URL("ada@x.com"), URL("bob@x.com"))
}

func TestURL_NormalizesEmail(t *testing.T) {
	assert.Equal(t, URL("ada@x.com"), URL("  ADA@X.COM  "))
}
