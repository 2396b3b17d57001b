package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"orderflow/internal/dto"
	"orderflow/internal/errors"
)

const DefaultTimeout = 5 * time.Second

// Client calls the payment authorizer over HTTP. It performs no retries;
// any transport failure, timeout or non-2xx answer is translated into an
// UnavailableError for the orchestrator to absorb.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

func (c *Client) Authorize(ctx context.Context, req dto.PaymentRequest) (*dto.PaymentResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.NewInternalError("encoding payment request", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+"/process", bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewInternalError("building payment request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn("payment authorizer unreachable",
			zap.String("orderId", req.OrderID.String()),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err))
		return nil, errors.NewUnavailableError("payment authorizer unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("payment authorizer returned unexpected status",
			zap.String("orderId", req.OrderID.String()),
			zap.Int("status", resp.StatusCode))
		return nil, errors.NewUnavailableError(
			fmt.Sprintf("payment authorizer returned status %d", resp.StatusCode), nil)
	}

	var paymentResp dto.PaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&paymentResp); err != nil {
		return nil, errors.NewUnavailableError("decoding payment response", err)
	}

	switch paymentResp.Status {
	case dto.PaymentApproved, dto.PaymentDeclined:
		return &paymentResp, nil
	case dto.PaymentError:
		// The collaborator answered but could not process the payment.
		return nil, errors.NewUnavailableError("payment authorizer reported an error", nil)
	default:
		return nil, errors.NewUnavailableError(
			fmt.Sprintf("payment authorizer returned unknown status %q", paymentResp.Status), nil)
	}
}
