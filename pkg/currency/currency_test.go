package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize("eur")
	require.NoError(t, err)
	assert.Equal(t, "EUR", got)

	got, err = Normalize(" gbp ")
	require.NoError(t, err)
	assert.Equal(t, "GBP", got)
}

func TestNormalizeRejects(t *testing.T) {
	for _, code := range []string{"", "EU", "EURO", "XXX", "ZZZ"} {
		_, err := Normalize(code)
		assert.Error(t, err, "code %q", code)
	}
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("PLN"))
	assert.False(t, IsSupported("BTC"))
}
