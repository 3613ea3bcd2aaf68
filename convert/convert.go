package convert

import (
	"context"
	"fmt"
	"time"

	converter "go-currency-converter"
	"go-currency-converter/erapi"
)

// Service interface for converting an amount from one currency to another
type Service interface {
	Convert(ctx context.Context, amount converter.Amount, from, to converter.Currency) (converter.Exchanged, error)
}

type service struct {
	// rates to look up the current rate for a pair
	rates erapi.Service
}

// NewService constructs a valid Service
func NewService(rates erapi.Service) Service {
	return &service{
		rates: rates,
	}
}

// Convert computes a conversion with the current exchange rate.
// Preconditions on the inputs (distinct currencies, positive amount)
// belong to the caller.
func (s *service) Convert(ctx context.Context, amount converter.Amount, from, to converter.Currency) (converter.Exchanged, error) {
	quote, err := s.rates.LatestRate(ctx, from, to)
	if err != nil {
		return converter.Exchanged{}, fmt.Errorf("convert [%v -> %v]: %w", from, to, err)
	}

	result := converter.Exchanged{
		Rate:      quote.Rate,
		Amount:    converter.Amount(float64(quote.Rate) * float64(amount)),
		UpdatedAt: quote.UpdatedAt,
		FetchedAt: time.Now(),
	}

	return result, nil
}
