package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1990-01-01", "01011990"},
		{"2024-12-31", "31122024"},
		{"01/01/1990", "01011990"},
		{"31/12/2024", "31122024"},
		// Bare digits with a century prefix are YYYYMMDD and get reordered.
		{"19900101", "01011990"},
		{"20241231", "31122024"},
		// Eight digits without a 19/20 prefix are taken as already DDMMYYYY.
		{"31122150", "31122150"},
		// Noise around digits is stripped before the heuristics run.
		{"fecha: 1990.01.01", "01011990"},
		{"", "00000000"},
		{"hoy", "00000000"},
		{"12/31", "00000000"},
		{"123456789", "00000000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "input %q", c.in)
	}
}

func TestToDisplayRoundTrip(t *testing.T) {
	// For every valid ISO or localized input, normalize→display yields the
	// same DD/MM/YYYY rendering.
	assert.Equal(t, "01/01/1990", ToDisplay("1990-01-01"))
	assert.Equal(t, "01/01/1990", ToDisplay("01/01/1990"))
	assert.Equal(t, "05/09/2023", ToDisplay("2023-09-05"))
}

func TestToDisplayUnparseableIsVerbatim(t *testing.T) {
	assert.Equal(t, "mañana", ToDisplay("mañana"))
	assert.Equal(t, "", ToDisplay(""))
}

func TestAge(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	age, ok := Age("1990-01-01", now)
	assert.True(t, ok)
	assert.Equal(t, 36, age)

	// Birthday later in the year: one less.
	age, ok = Age("1990-12-31", now)
	assert.True(t, ok)
	assert.Equal(t, 35, age)

	// Birthday today counts the full year.
	age, ok = Age("1990-08-28", now)
	assert.True(t, ok)
	assert.Equal(t, 36, age)

	_, ok = Age("garbage", now)
	assert.False(t, ok)

	// Future birth dates produce no age rather than a negative one.
	_, ok = Age("2030-01-01", now)
	assert.False(t, ok)
}
