package mailer

import (
	"testing"

	"github.com/nextgeneev/nextgen-ev/config"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"
)

type fakeSender struct {
	sent []*gomail.Message
	fail bool
}

func (f *fakeSender) Send(m *gomail.Message) error {
	if f.fail {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, m)
	return nil
}

func newTestMailer() (*Mailer, *fakeSender) {
	m := NewMailer(config.SmtpConfig{
		Host:       "smtp.example.com",
		Port:       587,
		Username:   "noreply@example.com",
		Password:   "secret",
		From:       "noreply@example.com",
		AdminEmail: "owner@example.com",
	})
	sender := &fakeSender{}
	m.OverrideSender(sender)
	return m, sender
}

func contactFixture() domain.ContactForm {
	return domain.ContactForm{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9876543210",
		Subject: "Test ride",
		Message: "I would like to book a test ride.",
	}
}

func TestSendContactDeliversTwoMessages(t *testing.T) {
	m, sender := newTestMailer()

	require.NoError(t, m.SendContact(contactFixture()))
	require.Len(t, sender.sent, 2)

	operator := sender.sent[0]
	assert.Equal(t, []string{"owner@example.com"}, operator.GetHeader("To"))
	assert.Equal(t, []string{"asha@example.com"}, operator.GetHeader("Reply-To"))
	assert.Equal(t, []string{"[NextGen EV] New Contact: Test ride"}, operator.GetHeader("Subject"))

	confirmation := sender.sent[1]
	assert.Equal(t, []string{"asha@example.com"}, confirmation.GetHeader("To"))
	assert.Equal(t, []string{"Message Received - NextGen EV"}, confirmation.GetHeader("Subject"))
}

func TestSendDealershipDeliversTwoMessages(t *testing.T) {
	m, sender := newTestMailer()

	form := domain.DealershipForm{
		Name:     "Ravi",
		Phone:    "9876500000",
		Email:    "ravi@example.com",
		Location: "Pune",
	}
	require.NoError(t, m.SendDealership(form))
	require.Len(t, sender.sent, 2)

	operator := sender.sent[0]
	assert.Equal(t, []string{"owner@example.com"}, operator.GetHeader("To"))
	assert.Equal(t, []string{"[NextGen EV] New Dealership Request from Ravi"}, operator.GetHeader("Subject"))

	confirmation := sender.sent[1]
	assert.Equal(t, []string{"ravi@example.com"}, confirmation.GetHeader("To"))
}

func TestSendContactWithoutCredentials(t *testing.T) {
	m := NewMailer(config.SmtpConfig{Host: "smtp.example.com", Port: 587})
	m.OverrideSender(&fakeSender{})

	err := m.SendContact(contactFixture())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendContactTransportFailure(t *testing.T) {
	m, sender := newTestMailer()
	sender.fail = true

	err := m.SendContact(contactFixture())
	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}
