package services

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer forwards contact-form submissions. With no SMTP host configured it
// becomes a no-op: the message is still stored, only the forward is skipped.
type Mailer struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	Recipient string
}

func (m Mailer) Enabled() bool {
	return strings.TrimSpace(m.Host) != "" && strings.TrimSpace(m.Recipient) != ""
}

// SendContactMessage delivers one submission to the configured recipient.
func (m Mailer) SendContactMessage(fromName, fromEmail, message string) error {
	if !m.Enabled() {
		return nil
	}
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Portfolio contact from %s\r\n\r\n%s <%s> wrote:\r\n\r\n%s\r\n",
		m.From, m.Recipient, fromName, fromName, fromEmail, message)
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	if err := smtp.SendMail(addr, auth, m.From, []string{m.Recipient}, []byte(body)); err != nil {
		return WrapError(err, "send contact mail")
	}
	return nil
}
