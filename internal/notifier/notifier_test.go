package notifier

import (
	"context"
	"testing"

	"github.com/akarpov/go-music-library/internal/config"
	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSMTPNotifier_RequiredFields(t *testing.T) {
	_, err := NewSMTPNotifier(config.SMTP{From: "noreply@example.com"}, logger.Nop())
	assert.Error(t, err)

	_, err = NewSMTPNotifier(config.SMTP{Host: "smtp.example.com"}, logger.Nop())
	assert.Error(t, err)

	n, err := NewSMTPNotifier(config.SMTP{Host: "smtp.example.com", From: "noreply@example.com"}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, n)
}

func TestBuildMessage(t *testing.T) {
	n, err := NewSMTPNotifier(config.SMTP{Host: "smtp.example.com", From: "noreply@example.com"}, logger.Nop())
	require.NoError(t, err)

	msg, err := n.buildMessage("ada@example.com", "ada", "042137")
	require.NoError(t, err)
	require.NotNil(t, msg)
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	n, err := NewSMTPNotifier(config.SMTP{Host: "smtp.example.com", From: "noreply@example.com"}, logger.Nop())
	require.NoError(t, err)

	_, err = n.buildMessage("not an address", "ada", "042137")
	assert.Error(t, err)
}

func TestBuildMessage_InvalidSender(t *testing.T) {
	n := &SMTPNotifier{cfg: config.SMTP{Host: "smtp.example.com", From: "broken sender"}, logger: logger.Nop()}

	_, err := n.buildMessage("ada@example.com", "ada", "042137")
	assert.Error(t, err)
}

func TestNopNotifier(t *testing.T) {
	n := NewNopNotifier(logger.Nop())

	assert.NoError(t, n.SendVerificationCode(context.Background(), "ada@example.com", "ada", "042137"))
}
