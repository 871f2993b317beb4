// Package mailer delivers the contact and dealership notification mails: one
// operator-facing message and one confirmation back to the sender per
// submission.
package mailer

import (
	"bytes"
	"html/template"

	"github.com/nextgeneev/nextgen-ev/config"
	"github.com/nextgeneev/nextgen-ev/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when SMTP credentials are absent; handlers map
// it to a 500 without attempting delivery.
var ErrNotConfigured = errors.New("email service not configured")

// Sender delivers a single prepared message. The SMTP dialer implements it in
// production; tests substitute a recorder.
type Sender interface {
	Send(m *gomail.Message) error
}

type smtpSender struct {
	dialer *gomail.Dialer
}

func (s *smtpSender) Send(m *gomail.Message) error {
	return s.dialer.DialAndSend(m)
}

type Mailer struct {
	cfg    config.SmtpConfig
	sender Sender
}

func NewMailer(cfg config.SmtpConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		sender: &smtpSender{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)},
	}
}

// OverrideSender replaces the transport (used in tests).
func (m *Mailer) OverrideSender(s Sender) {
	m.sender = s
}

func (m *Mailer) configured() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

// SendContact delivers the operator notification and the sender confirmation
// for a contact form submission. The form is assumed validated.
func (m *Mailer) SendContact(form domain.ContactForm) error {
	if !m.configured() {
		return ErrNotConfigured
	}

	adminBody, err := render(contactAdminTmpl, form)
	if err != nil {
		return err
	}
	admin := gomail.NewMessage()
	admin.SetHeader("From", m.cfg.From)
	admin.SetHeader("To", m.cfg.AdminEmail)
	admin.SetHeader("Reply-To", form.Email)
	admin.SetHeader("Subject", "[NextGen EV] New Contact: "+form.Subject)
	admin.SetBody("text/html", adminBody)
	if err := m.sender.Send(admin); err != nil {
		return errors.Wrap(err, "send operator mail")
	}

	userBody, err := render(contactUserTmpl, form)
	if err != nil {
		return err
	}
	user := gomail.NewMessage()
	user.SetHeader("From", m.cfg.From)
	user.SetHeader("To", form.Email)
	user.SetHeader("Subject", "Message Received - NextGen EV")
	user.SetBody("text/html", userBody)
	if err := m.sender.Send(user); err != nil {
		return errors.Wrap(err, "send confirmation mail")
	}

	zap.L().Info("contact mails sent", zap.String("email", form.Email))
	return nil
}

// SendDealership delivers both messages for a dealership enquiry. The form is
// assumed validated.
func (m *Mailer) SendDealership(form domain.DealershipForm) error {
	if !m.configured() {
		return ErrNotConfigured
	}

	adminBody, err := render(dealershipAdminTmpl, form)
	if err != nil {
		return err
	}
	admin := gomail.NewMessage()
	admin.SetHeader("From", m.cfg.From)
	admin.SetHeader("To", m.cfg.AdminEmail)
	admin.SetHeader("Reply-To", form.Email)
	admin.SetHeader("Subject", "[NextGen EV] New Dealership Request from "+form.Name)
	admin.SetBody("text/html", adminBody)
	if err := m.sender.Send(admin); err != nil {
		return errors.Wrap(err, "send operator mail")
	}

	userBody, err := render(dealershipUserTmpl, form)
	if err != nil {
		return err
	}
	user := gomail.NewMessage()
	user.SetHeader("From", m.cfg.From)
	user.SetHeader("To", form.Email)
	user.SetHeader("Subject", "Dealership Request Received - NextGen EV")
	user.SetBody("text/html", userBody)
	if err := m.sender.Send(user); err != nil {
		return errors.Wrap(err, "send confirmation mail")
	}

	zap.L().Info("dealership mails sent", zap.String("email", form.Email))
	return nil
}

func render(t *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "render mail template")
	}
	return buf.String(), nil
}
