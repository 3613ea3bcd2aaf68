package erapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-kit/log"

	converter "go-currency-converter"
)

// DefaultURL endpoint template base; the uppercased base code is
// appended as the final path segment.
const DefaultURL = "https://open.er-api.com/v6/latest"

// DefaultTimeout for one rate request, network included
const DefaultTimeout = 10 * time.Second

// resultSuccess the provider's top-level success marker
const resultSuccess = "success"

// Service wraps the open.er-api.com REST API
type Service interface {
	LatestRate(ctx context.Context, base, target converter.Currency) (converter.Quote, error)
}

// service open.er-api.com API
type service struct {
	// url base API url
	url string

	// logger for the diagnostic log
	logger log.Logger

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid erapi Service.
func NewService(url string, timeout time.Duration, logger log.Logger) Service {
	return &service{
		url:    url,
		logger: logger,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// LatestRate loads the current rate from base to target. Both codes
// are uppercased before use. Every attempt and every failure branch
// is logged; the log never changes the returned values.
func (s *service) LatestRate(ctx context.Context, base, target converter.Currency) (converter.Quote, error) {
	type response struct {
		Result            string                                 `json:"result"`
		TimeLastUpdateUTC string                                 `json:"time_last_update_utc"`
		BaseCode          string                                 `json:"base_code"`
		Rates             map[converter.Currency]converter.Rate `json:"rates"`
	}

	base, target = base.Upper(), target.Upper()
	url := fmt.Sprintf("%v/%v", s.url, base)

	s.logger.Log("msg", "requesting rate", "base", base, "target", target, "url", url)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		s.logger.Log("msg", "building request failed", "base", base, "target", target, "url", url, "err", err)
		return converter.Quote{}, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		s.logger.Log("msg", "rate request failed", "base", base, "target", target, "url", url, "err", err)
		return converter.Quote{}, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		s.logger.Log("msg", "reading response failed", "base", base, "target", target, "url", url, "err", err)
		return converter.Quote{}, fmt.Errorf("reading body: %w", err)
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		s.logger.Log("msg", "provider returned bad status", "base", base, "target", target, "url", url,
			"status", httpResponse.StatusCode, "body", string(body))
		return converter.Quote{}, fmt.Errorf("provider status: %d", httpResponse.StatusCode)
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		s.logger.Log("msg", "decoding response failed", "base", base, "target", target, "url", url,
			"body", string(body), "err", err)
		return converter.Quote{}, fmt.Errorf("decoding json: %w", err)
	}

	if parsed.Result != resultSuccess {
		s.logger.Log("msg", "provider result not success", "base", base, "target", target, "url", url,
			"body", string(body))
		return converter.Quote{}, fmt.Errorf("provider result: %q", parsed.Result)
	}

	rate, ok := parsed.Rates[target]
	if !ok {
		s.logger.Log("msg", "target currency not in response", "base", base, "target", target, "url", url,
			"body", string(body))
		return converter.Quote{}, fmt.Errorf("rate not found for currency: %v", target)
	}

	updatedAt := parsed.TimeLastUpdateUTC
	if updatedAt == "" {
		updatedAt = "Unknown"
	}

	s.logger.Log("msg", "rate received", "base", base, "target", target, "rate", rate, "updated_at", updatedAt)

	return converter.Quote{Rate: rate, UpdatedAt: updatedAt}, nil
}
