package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered      EventType = "account_registered"
	EventAccountActivated       EventType = "account_activated"
	EventPasswordResetRequested EventType = "password_reset_requested"
	EventPasswordReset          EventType = "password_reset"
)

// Event represents an account lifecycle event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Email     string      `json:"email"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload carries what the activation mail needs. The
// activation code travels here; the signed token goes back to the caller only.
type AccountRegisteredPayload struct {
	Name           string `json:"name"`
	ActivationCode string `json:"activation_code"`
}

// AccountActivatedPayload payload.
type AccountActivatedPayload struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

// PasswordResetRequestedPayload carries the reset link for the mail.
type PasswordResetRequestedPayload struct {
	Name     string `json:"name"`
	ResetURL string `json:"reset_url"`
}

// PasswordResetPayload payload.
type PasswordResetPayload struct {
	AccountID string `json:"account_id"`
}
