package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// FCMSender delivers notifications through the Firebase Cloud Messaging
// HTTP endpoint.
type FCMSender struct {
	endpoint  string
	serverKey string
	client    *http.Client
}

func NewFCMSender(endpoint, serverKey string) *FCMSender {
	return &FCMSender{
		endpoint:  endpoint,
		serverKey: serverKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type fcmRequest struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    Notification      `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

func (s *FCMSender) Send(ctx context.Context, tokens []string, notification Notification) (*Report, error) {
	if len(tokens) == 0 {
		return &Report{}, nil
	}

	payload := fcmRequest{
		RegistrationIDs: tokens,
		Notification:    notification,
		Data:            notification.Data,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+s.serverKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fcm send failed with status %d", resp.StatusCode)
	}

	var decoded fcmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	return &Report{
		Requested: len(tokens),
		Success:   decoded.Success,
		Failure:   decoded.Failure,
	}, nil
}
