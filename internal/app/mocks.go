package app

import "vpms_backend/internal/email"

// MockEmailProvider is used for tests and local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(email *email.Email) error { return nil }

func (m *MockEmailProvider) SendConfirmationCode(to, userID, code string) error { return nil }

func (m *MockEmailProvider) Validate() error { return nil }
