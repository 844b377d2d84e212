// Package push is the delivery boundary for mobile push notifications.
// The dispatch orchestrator's contract ends at handing a token list to a
// Sender; everything behind the Sender is an external collaborator.
package push

import "context"

// Notification is the visible payload of a push message.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body,omitempty"`
	Data  map[string]string `json:"data,omitempty"`
}

// Report summarizes one delivery attempt.
type Report struct {
	Requested int `json:"requested"`
	Success   int `json:"success"`
	Failure   int `json:"failure"`
}

// Sender submits a notification to a list of device tokens.
type Sender interface {
	Send(ctx context.Context, tokens []string, notification Notification) (*Report, error)
}
