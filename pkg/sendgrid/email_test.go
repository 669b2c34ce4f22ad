package sendgrid_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/vendor-marketplace/internal/models"
	sendgrid_client "github.com/aaravmahajanofficial/vendor-marketplace/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
	CustomArgs map[string]string `json:"custom_args"`
}

func TestNewEmailService(t *testing.T) {
	service := sendgrid_client.NewEmailService("key", "from@example.com", "Sender")
	assert.NotNil(t, service)
	assert.NotNil(t, service.GetSendGridClient())
}

func TestEmailService_Send(t *testing.T) {
	apiKey := "SG.test-api-key"
	fromEmail := "orders@example.com"
	fromName := "Marketplace"

	tests := []struct {
		name          string
		req           *models.EmailNotificationRequest
		status        int
		expectedError string
		checkPayload  func(t *testing.T, p sendgridV3Payload)
	}{
		{
			name: "Success - Text and HTML",
			req: &models.EmailNotificationRequest{
				Recipient:   "buyer@example.com",
				Subject:     "Your order",
				Content:     "Thanks",
				HTMLContent: "<p>Thanks</p>",
				Metadata:    map[string]string{"order_id": "o-1"},
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Personalizations, 1)
				assert.Equal(t, "buyer@example.com", p.Personalizations[0].To[0]["email"])
				assert.Equal(t, "Your order", p.Personalizations[0].Subject)
				assert.Equal(t, fromEmail, p.From["email"])
				assert.Equal(t, fromName, p.From["name"])
				require.Len(t, p.Content, 2)
				assert.Equal(t, "text/plain", p.Content[0].Type)
				assert.Equal(t, "text/html", p.Content[1].Type)
				assert.Equal(t, "o-1", p.CustomArgs["order_id"])
			},
		},
		{
			name: "Success - Text only",
			req: &models.EmailNotificationRequest{
				Recipient: "buyer@example.com",
				Subject:   "Plain",
				Content:   "Body",
			},
			status: http.StatusAccepted,
			checkPayload: func(t *testing.T, p sendgridV3Payload) {
				require.Len(t, p.Content, 1)
				assert.Equal(t, "Body", p.Content[0].Value)
			},
		},
		{
			name:          "Failure - 4xx",
			req:           &models.EmailNotificationRequest{Recipient: "bad@example.com", Subject: "s", Content: "c"},
			status:        http.StatusBadRequest,
			expectedError: "failed to send email, status code: 400",
		},
		{
			name:          "Failure - 5xx",
			req:           &models.EmailNotificationRequest{Recipient: "x@example.com", Subject: "s", Content: "c"},
			status:        http.StatusInternalServerError,
			expectedError: "failed to send email, status code: 500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var payload sendgridV3Payload

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer "+apiKey, r.Header.Get("Authorization"))

				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(body, &payload))

				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			service := sendgrid_client.NewEmailService(apiKey, fromEmail, fromName)
			service.GetSendGridClient().Request.BaseURL = server.URL

			err := service.Send(t.Context(), tc.req)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				require.NoError(t, err)
			}

			if tc.checkPayload != nil {
				tc.checkPayload(t, payload)
			}
		})
	}
}
