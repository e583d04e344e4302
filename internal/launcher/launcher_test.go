package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miguel.build/cfurl/internal/errors"
)

func TestNewTrimsCommand(t *testing.T) {
	assert.Empty(t, New("   ").Command)
	assert.Equal(t, "firefox --new-tab", New(" firefox --new-tab ").Command)
}

func TestOpenWithOverrideCommand(t *testing.T) {
	// "true" ignores its arguments and exits cleanly, standing in for
	// a real browser command.
	b := New("true")

	err := b.Open("https://dash.cloudflare.com")
	assert.NoError(t, err)
}

func TestOpenWithMissingBinary(t *testing.T) {
	b := New("definitely-not-a-browser-6f1c2")

	err := b.Open("https://dash.cloudflare.com")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeLauncher))
	assert.Equal(t, errors.ExitFailure, errors.ExitCode(err))
}
