package converter

import (
	"strings"
	"time"
)

// Currency a 3-letter currency code
type Currency string

// Amount a monetary amount... which should be a float...
type Amount float64

// Rate an exchange rate
type Rate float64

// Quote a rate for one currency pair plus the provider's
// human-readable "last updated" string, passed through unparsed.
type Quote struct {
	Rate      Rate
	UpdatedAt string
}

// Exchanged the outcome of one conversion
type Exchanged struct {
	Rate      Rate
	Amount    Amount
	UpdatedAt string
	FetchedAt time.Time
}

// Currencies the fixed set of selectable currency codes
var Currencies = []Currency{
	"GBP", "USD", "EUR", "INR", "AUD", "CAD", "JPY", "CHF", "CNY",
}

// Upper normalizes a code for use at the provider boundary
func (c Currency) Upper() Currency {
	return Currency(strings.ToUpper(string(c)))
}

// Supported reports whether c is one of the selectable codes
func (c Currency) Supported() bool {
	for _, currency := range Currencies {
		if c == currency {
			return true
		}
	}
	return false
}

func (c Currency) String() string {
	return string(c)
}
