package tournamentdomain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status  Status
		valid   bool
		accepts bool
	}{
		{StatusUpcoming, true, false},
		{StatusActive, true, true},
		{StatusEnded, true, false},
		{StatusCancelled, true, false},
		{Status("paused"), false, false},
		{Status(""), false, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
			assert.Equal(t, tt.accepts, tt.status.AcceptsSubmissions())
		})
	}
}

func TestNormalizeName(t *testing.T) {
	got, err := NormalizeName("  Summer Clash  ")
	assert.NoError(t, err)
	assert.Equal(t, "Summer Clash", got)

	_, err = NormalizeName("   ")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NormalizeName(strings.Repeat("x", MaxNameLength+1))
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NormalizeName(strings.Repeat("é", MaxNameLength))
	assert.NoError(t, err)
}
