package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirphl/futures-trader/internal/config"
	"github.com/amirphl/futures-trader/internal/notifier"
)

func TestNewExchange_DryRun(t *testing.T) {
	// Dry run needs no credentials.
	ex, err := newExchange(config.Config{}, true)
	require.NoError(t, err)
	assert.Equal(t, "mock-binance-futures", ex.Name())
}

func TestNewExchange_RequiresCredentials(t *testing.T) {
	_, err := newExchange(config.Config{}, false)
	assert.Error(t, err)
}

func TestNewNotifier(t *testing.T) {
	n := newNotifier(config.Config{})
	_, ok := n.(notifier.Nop)
	assert.True(t, ok)

	n = newNotifier(config.Config{
		TelegramToken:       "token",
		TelegramChatID:      "chat",
		NotificationRetries: 3,
		NotificationDelay:   time.Second,
	})
	_, ok = n.(*notifier.TelegramNotifier)
	assert.True(t, ok)
}
