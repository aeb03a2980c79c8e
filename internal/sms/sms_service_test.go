package sms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServiceSendsPayload(t *testing.T) {
	var got map[string]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL, "test-key")
	err := svc.SendSMS("+254712345678", "Payment of KSh 5000 received")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "+254712345678", got["to"])
	assert.Equal(t, "Payment of KSh 5000 received", got["message"])
}

func TestHTTPServiceGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid recipient", http.StatusBadRequest)
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL, "test-key")
	err := svc.SendSMS("bad", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestMockServiceNeverFails(t *testing.T) {
	assert.NoError(t, NewMockService().SendSMS("+254700000000", "hi"))
}
