package email

// Email is one outgoing message.
type Email struct {
	To      []string
	Subject string
	Body    string
	HTML    string
}

// Provider sends account emails.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// SendConfirmationCode delivers the email-confirmation message for a
	// pending account.
	SendConfirmationCode(to, userID, code string) error

	// Validate checks the provider configuration.
	Validate() error
}
