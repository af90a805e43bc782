package mail

import (
	"context"
	"testing"

	"github.com/spec-kit/account-service/internal/config"
)

func TestSendRejectsUnknownTemplate(t *testing.T) {
	sender := NewSMTPSender(config.MailConfig{Host: "localhost", Port: 2525, From: "noreply@example.com"})

	err := sender.Send(context.Background(), "a@x.com", "no-such-template", nil)
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestDisabledSender(t *testing.T) {
	sender := NewDisabledSender()
	if err := sender.Send(context.Background(), "a@x.com", TemplateActivation, nil); err == nil {
		t.Fatal("expected disabled sender to fail")
	}
}
