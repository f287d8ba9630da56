package mailer

import (
	"bytes"
	"context"
	"testing"

	"campshop/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		SMTPHost:  "127.0.0.1",
		SMTPPort:  1,
		FromName:  "Campshop",
		FromEmail: "noreply@campshop.io",
	}
}

func TestBuild(t *testing.T) {
	m := NewSMTPMailer(testConfig())

	var buf bytes.Buffer
	_, err := m.build(Message{To: "a@x.com", Subject: "Password reset token", Text: "reset here"}).WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "From: Campshop <noreply@campshop.io>")
	assert.Contains(t, raw, "To: a@x.com")
	assert.Contains(t, raw, "Subject: Password reset token")
	assert.Contains(t, raw, "reset here")
}

func TestSend_Unreachable(t *testing.T) {
	err := NewSMTPMailer(testConfig()).Send(context.Background(), Message{To: "a@x.com"})
	assert.Error(t, err)
}

func TestSend_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSMTPMailer(testConfig()).Send(ctx, Message{To: "a@x.com"})
	assert.ErrorIs(t, err, context.Canceled)
}
