package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flowtel/admin-backend/internal/config"
	"github.com/flowtel/admin-backend/internal/model"
)

func TestNewDisabledWithoutHost(t *testing.T) {
	m, err := New(&config.Config{}, zap.NewNop())
	require.NoError(t, err)

	// Disabled mailer sends are no-ops, not errors.
	err = m.SendRescheduleNotice(context.Background(), model.UpdateEmailRequest{
		Email: "asha@example.com", Name: "Asha Rao",
	})
	assert.NoError(t, err)
}

func TestClientOptionsSkipAuthWithoutUser(t *testing.T) {
	opts := clientOptions(&config.Config{SMTPHost: "relay.local", SMTPPort: 25})
	assert.Len(t, opts, 1, "port only, no auth against an auth-less relay")

	opts = clientOptions(&config.Config{
		SMTPHost: "smtp.example.com", SMTPPort: 587,
		SMTPUser: "mailer", SMTPPass: "secret",
	})
	assert.Len(t, opts, 4, "port plus auth mechanism, username, and password")
}
