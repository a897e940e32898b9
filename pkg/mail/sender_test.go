package mail

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type mockDialer struct {
	SentMessage *mail.Message
	ShouldError bool
}

func (d *mockDialer) DialAndSend(m ...*mail.Message) error {
	if d.ShouldError {
		return errors.New("error")
	}
	if len(m) > 0 {
		d.SentMessage = m[0]
	}
	return nil
}

func TestSendMail(t *testing.T) {
	t.Run("sends report with both bodies and an attachment", func(t *testing.T) {
		dialer := &mockDialer{}
		s := &sender{
			email:  "noreply@example.com",
			dialer: dialer,
		}

		to := []string{"admin@example.com"}
		err := s.SendMail(to, "Servers Status Report", "<td>Up:</td>", "Up: 3", []Attachment{
			{Name: "servers.xlsx", Content: strings.NewReader("sheet")},
			{Name: "", Content: strings.NewReader("ignored")},
		})
		require.NoError(t, err)
		require.NotNil(t, dialer.SentMessage)
		assert.Equal(t, s.email, dialer.SentMessage.GetHeader("From")[0])
		assert.Equal(t, to[0], dialer.SentMessage.GetHeader("To")[0])
		assert.Equal(t, "Servers Status Report", dialer.SentMessage.GetHeader("Subject")[0])

		var body bytes.Buffer
		_, err = dialer.SentMessage.WriteTo(&body)
		require.NoError(t, err)
		assert.Contains(t, body.String(), "Content-Type: text/plain")
		assert.Contains(t, body.String(), "Content-Type: text/html")
		assert.Contains(t, body.String(), "Up: 3")
		assert.Contains(t, body.String(), "Content-Disposition: attachment; filename=\"servers.xlsx\"")
	})

	t.Run("returns an error without recipients", func(t *testing.T) {
		dialer := &mockDialer{}
		s := &sender{email: "noreply@example.com", dialer: dialer}
		err := s.SendMail(nil, "Subject", "", "Body", nil)
		assert.ErrorIs(t, err, ErrNoRecipients)
		assert.Nil(t, dialer.SentMessage)
	})

	t.Run("returns an error when dialer fails", func(t *testing.T) {
		s := &sender{
			email:  "noreply@example.com",
			dialer: &mockDialer{ShouldError: true},
		}
		err := s.SendMail([]string{"admin@example.com"}, "Subject", "Body", "", nil)
		assert.Error(t, err)
	})
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, Config{}.Enabled())
	assert.False(t, Config{Email: "a@example.com", Host: "smtp.example.com"}.Enabled())
	assert.True(t, Config{Email: "a@example.com", Host: "smtp.example.com", Port: 587}.Enabled())
}
