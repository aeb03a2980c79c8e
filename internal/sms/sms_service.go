package sms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Provider sends SMS notifications to tenants.
type Provider interface {
	SendSMS(phone, message string) error
}

// HTTPService posts messages to an SMS gateway's JSON API. The endpoint
// and API key come from the environment, so any gateway with a simple
// to/message contract works.
type HTTPService struct {
	Endpoint string
	APIKey   string
	client   *http.Client
}

func NewHTTPService(endpoint, apiKey string) *HTTPService {
	return &HTTPService{
		Endpoint: endpoint,
		APIKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPService) SendSMS(phone, message string) error {
	payload, err := json.Marshal(map[string]string{
		"to":      phone,
		"message": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode, body)
	}

	log.Printf("[SMS] Sent to %s (%d chars)", phone, len(message))
	return nil
}

// MockService logs messages instead of sending them. Used when no gateway
// is configured.
type MockService struct{}

func NewMockService() *MockService {
	return &MockService{}
}

func (s *MockService) SendSMS(phone, message string) error {
	log.Printf("[SMS Mock] To %s: %s", phone, message)
	return nil
}
