package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayAV(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "—"},
		{"   ", "—"},
		{"40", "20/40"},
		{"20/40", "20/40"},
		{" 20 / 40 ", "20/40"},
		{"cuenta dedos", "20/cuenta dedos"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DisplayAV(tc.in), "input %q", tc.in)
	}
}
