package web

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	converter "go-currency-converter"
)

func postJSON(server *Server, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/convert", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	server.ServeHTTP(w, r)
	return w
}

func TestServer_ConvertJSON(t *testing.T) {
	mock := &mockConverter{
		result: converter.Exchanged{
			Rate:      2.0,
			Amount:    6.0,
			UpdatedAt: "Fri, 02 Apr 2020 00:06:37 +0000",
			FetchedAt: time.Now(),
		},
	}
	server := newTestServer(mock)

	w := postJSON(server, `{"fromCurrency":"GBP","toCurrency":"USD","amount":3.0}`)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, converter.Amount(3), mock.amount)
	assert.Equal(t,
		`{"exchange":2,"amount":6,"original":3,"updated_at":"Fri, 02 Apr 2020 00:06:37 +0000"}`,
		strings.TrimSpace(w.Body.String()))
}

func TestServer_ConvertJSONInvalidBody(t *testing.T) {
	mock := &mockConverter{}
	server := newTestServer(mock)

	w := postJSON(server, `{not json`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, mock.calls)
}

func TestServer_ConvertJSONSameCurrency(t *testing.T) {
	mock := &mockConverter{}
	server := newTestServer(mock)

	w := postJSON(server, `{"fromCurrency":"usd","toCurrency":"USD","amount":3.0}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, mock.calls)
	assert.Contains(t, w.Body.String(), "currencies must differ")
}

func TestServer_ConvertJSONNonPositiveAmount(t *testing.T) {
	mock := &mockConverter{}
	server := newTestServer(mock)

	w := postJSON(server, `{"fromCurrency":"GBP","toCurrency":"USD","amount":0}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, mock.calls)
	assert.Contains(t, w.Body.String(), "amount must be greater than zero")
}

func TestServer_ConvertJSONFetchFailure(t *testing.T) {
	mock := &mockConverter{err: assert.AnError}
	server := newTestServer(mock)

	w := postJSON(server, `{"fromCurrency":"GBP","toCurrency":"USD","amount":3.0}`)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 1, mock.calls)
	assert.Contains(t, w.Body.String(), "failed conversion")
}
