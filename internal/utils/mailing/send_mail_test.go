package mailing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	cfg := MailConfig{SMTPEmail: "alerts@foodguard.test", SMTPSender: "FoodGuard"}

	msg := NewMessage(cfg, "user@example.com", "Risk alert", "<p>Avoid</p>")

	assert.Equal(t, []string{"user@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Risk alert"}, msg.GetHeader("Subject"))
	assert.Contains(t, msg.GetHeader("From")[0], "alerts@foodguard.test")

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<p>Avoid</p>")
}

func TestSendMail_InvalidPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPHost: "localhost", SMTPPort: "not-a-port"})

	assert.Error(t, m.SendMail("user@example.com", "s", "b"))
}
