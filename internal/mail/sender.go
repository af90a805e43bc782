package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"

	"github.com/spec-kit/account-service/internal/config"
)

// Template names understood by the sender. They map to files under templatesDir.
const (
	TemplateActivation     = "activation-mail"
	TemplateForgotPassword = "forgot-password"
)

const templatesDir = "templates"

var templateFiles = map[string]string{
	TemplateActivation:     "activation_mail.html",
	TemplateForgotPassword: "forgot_password.html",
}

var templateSubjects = map[string]string{
	TemplateActivation:     "Activate your account",
	TemplateForgotPassword: "Reset your password",
}

// Sender delivers templated mail. Callers treat delivery as best-effort;
// failures are reported but the flows above never surface them to clients.
type Sender interface {
	Send(ctx context.Context, toEmail, templateName string, vars map[string]string) error
}

// SMTPSender delivers mail through a gomail dialer.
type SMTPSender struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

// NewSMTPSender builds a sender from mail configuration.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPSender{
		dialer:   dialer,
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

// Send renders the named template and delivers it.
func (s *SMTPSender) Send(_ context.Context, toEmail, templateName string, vars map[string]string) error {
	body, err := renderTemplate(templateName, vars)
	if err != nil {
		return err
	}
	subject, ok := templateSubjects[templateName]
	if !ok {
		return fmt.Errorf("unknown mail template %q", templateName)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

func renderTemplate(templateName string, vars map[string]string) (string, error) {
	fileName, ok := templateFiles[templateName]
	if !ok {
		return "", fmt.Errorf("unknown mail template %q", templateName)
	}
	t, err := template.ParseFiles(filepath.Join(templatesDir, fileName))
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", fileName, err)
	}
	buf := new(bytes.Buffer)
	if err := t.Execute(buf, vars); err != nil {
		return "", fmt.Errorf("execute template %s: %w", fileName, err)
	}
	return buf.String(), nil
}

type disabledSender struct{}

// NewDisabledSender returns a sender used when SMTP is not configured.
func NewDisabledSender() Sender {
	return disabledSender{}
}

func (disabledSender) Send(context.Context, string, string, map[string]string) error {
	return errors.New("mail sender disabled: SMTP_HOST not configured")
}
