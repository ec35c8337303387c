package argtype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseZoned_OffsetOnly(t *testing.T) {
	got, err := ParseZoned("2007-12-03T10:15:30+01:00")
	require.NoError(t, err)
	assert.Equal(t, 2007, got.Year())
	assert.Equal(t, time.December, got.Month())
	assert.Equal(t, 3, got.Day())
	assert.Equal(t, 10, got.Hour())
	_, offset := got.Zone()
	assert.Equal(t, 3600, offset)
}

func TestParseZoned_UTC(t *testing.T) {
	got, err := ParseZoned("2007-12-03T10:15:30Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2007, 12, 3, 10, 15, 30, 0, time.UTC)))
}

func TestParseZoned_NamedZone(t *testing.T) {
	got, err := ParseZoned("2007-12-03T10:15:30+01:00[Europe/Paris]")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", got.Location().String())
	assert.True(t, got.Equal(time.Date(2007, 12, 3, 9, 15, 30, 0, time.UTC)))
}

func TestParseZoned_Malformed(t *testing.T) {
	cases := []string{
		"2007-12-03T10:15:30",                     // no offset
		"2007-12-03 10:15:30+01:00",               // space separator
		"2007-12-03T10:15:30+01:00[Europe/Paris",  // missing bracket
		"2007-12-03T10:15:30+01:00[Mars/Olympus]", // unknown zone
		"03/12/2007T10:15:30+01:00",               // wrong date grammar
	}
	for _, s := range cases {
		_, err := ParseZoned(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestFormatZoned_RoundTrip(t *testing.T) {
	for _, s := range []string{
		"2007-12-03T10:15:30Z",
		"2007-12-03T10:15:30+01:00",
		"2007-12-03T10:15:30+01:00[Europe/Paris]",
	} {
		parsed, err := ParseZoned(s)
		require.NoError(t, err)

		again, err := ParseZoned(FormatZoned(parsed))
		require.NoError(t, err)
		assert.True(t, parsed.Equal(again), "input %q", s)
		assert.Equal(t, parsed.Location().String(), again.Location().String(), "input %q", s)
	}
}
