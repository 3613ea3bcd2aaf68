package erapi

import (
	"context"

	converter "go-currency-converter"
	"go-currency-converter/metrics"
)

// instrumentingService decorates an erapi.Service with fetch counters
type instrumentingService struct {
	next    Service
	metrics *metrics.Metrics
}

// NewInstrumentingService returns a Service counting fetch outcomes
func NewInstrumentingService(m *metrics.Metrics, s Service) Service {
	return &instrumentingService{
		next:    s,
		metrics: m,
	}
}

func (s *instrumentingService) LatestRate(ctx context.Context, base, target converter.Currency) (converter.Quote, error) {
	quote, err := s.next.LatestRate(ctx, base, target)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	s.metrics.RateFetchTotal.WithLabelValues(outcome).Inc()

	return quote, err
}
