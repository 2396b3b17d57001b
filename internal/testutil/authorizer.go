package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"orderflow/internal/dto"
)

// StubAuthorizer starts an in-process payment authorizer that answers every
// /process call with the given status. The server is torn down with the test.
func StubAuthorizer(t *testing.T, status dto.PaymentStatus) *httptest.Server {
	return StubAuthorizerWithDelay(t, status, 0)
}

// StubAuthorizerWithDelay behaves like StubAuthorizer but waits before
// answering, for exercising client timeouts.
func StubAuthorizerWithDelay(t *testing.T, status dto.PaymentStatus, delay time.Duration) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/process" {
			http.NotFound(w, r)
			return
		}

		var req dto.PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.PaymentResponse{
			PaymentID:   uuid.New(),
			OrderID:     req.OrderID,
			Status:      status,
			ProcessedAt: time.Now().UTC(),
		})
	}))

	t.Cleanup(srv.Close)
	return srv
}
