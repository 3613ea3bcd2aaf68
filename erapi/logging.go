package erapi

import (
	"context"
	"time"

	"github.com/go-kit/log"

	converter "go-currency-converter"
)

// loggingService decorates an erapi.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService returns a new logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) LatestRate(ctx context.Context, base, target converter.Currency) (quote converter.Quote, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "latest_rate",
			"base", base,
			"target", target,
			"rate", quote.Rate,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LatestRate(ctx, base, target)
}
