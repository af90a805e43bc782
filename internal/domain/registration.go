package domain

// PendingRegistration holds the not-yet-activated account fields. It lives
// only inside a signed activation token and is never persisted directly.
type PendingRegistration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	PhoneNumber  int64  `json:"phone_number"`
}

// ActivationTicket pairs a pending registration with the numeric code mailed
// to the registrant. Both travel together inside the activation token; the
// code is re-entered by the user and compared at redemption.
type ActivationTicket struct {
	Registration PendingRegistration `json:"user"`
	Code         string              `json:"activation_code"`
}

// ResetTicket snapshots an existing account for a password reset link.
type ResetTicket struct {
	Account Account `json:"user"`
}
