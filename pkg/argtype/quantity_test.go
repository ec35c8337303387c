package argtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity_WithUnit(t *testing.T) {
	q, err := ParseQuantity("3.5 kW")
	require.NoError(t, err)
	assert.Equal(t, "3.5", q.Value.String())
	assert.Equal(t, "kW", q.Unit)
}

func TestParseQuantity_NoSpaceBeforeUnit(t *testing.T) {
	q, err := ParseQuantity("3.5kW")
	require.NoError(t, err)
	assert.Equal(t, "3.5", q.Value.String())
	assert.Equal(t, "kW", q.Unit)
}

func TestParseQuantity_Dimensionless(t *testing.T) {
	q, err := ParseQuantity("42")
	require.NoError(t, err)
	assert.Equal(t, "42", q.Value.String())
	assert.Empty(t, q.Unit)
}

func TestParseQuantity_NegativeAndUnicodeUnit(t *testing.T) {
	q, err := ParseQuantity("-0.5 °C")
	require.NoError(t, err)
	assert.Equal(t, "-0.5", q.Value.String())
	assert.Equal(t, "°C", q.Unit)
}

func TestParseQuantity_Exponent(t *testing.T) {
	q, err := ParseQuantity("1.5e3 W")
	require.NoError(t, err)
	assert.Equal(t, "W", q.Unit)
	assert.Equal(t, "1500", q.Value.String())
}

func TestParseQuantity_Invalid(t *testing.T) {
	for _, s := range []string{"", "   ", "kW", "abc 42", "."} {
		_, err := ParseQuantity(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestQuantity_StringRoundTrip(t *testing.T) {
	for _, s := range []string{"3.5 kW", "42", "-0.5 °C"} {
		q, err := ParseQuantity(s)
		require.NoError(t, err)
		assert.Equal(t, s, q.String())

		again, err := ParseQuantity(q.String())
		require.NoError(t, err)
		assert.True(t, q.Value.Equal(again.Value))
		assert.Equal(t, q.Unit, again.Unit)
	}
}
