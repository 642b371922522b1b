package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"quiet", "quiet"},
		{"keep-seeding", "keepSeeding"},
		{"not-on-top", "notOnTop"},
		{"torrent-ids", "torrentIds"},
		{"no-quit", "noQuit"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, CamelCase(tc.in))
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("out"))
	assert.True(t, Valid("o"))
	assert.True(t, Valid("P"))
	assert.True(t, Valid("keep-seeding"))
	assert.True(t, Valid("dht-port"))

	assert.False(t, Valid(""))
	assert.False(t, Valid("-out"))
	assert.False(t, Valid("out-"))
	assert.False(t, Valid("a--b"))
	assert.False(t, Valid("has space"))
	assert.False(t, Valid("x=y"))
}
