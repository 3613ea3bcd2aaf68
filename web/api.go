package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	converter "go-currency-converter"
)

// convertJSON serves programmatic conversions with the same
// validation rules as the form
func (s *Server) convertJSON(c *gin.Context) {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency converter.Currency `json:"fromCurrency"`
		ToCurrency   converter.Currency `json:"toCurrency"`
		Amount       converter.Amount   `json:"amount"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange  converter.Rate   `json:"exchange"`
		Amount    converter.Amount `json:"amount"`
		Original  converter.Amount `json:"original"`
		UpdatedAt string           `json:"updated_at"`
	}

	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	from, to := req.FromCurrency.Upper(), req.ToCurrency.Upper()

	if from == to {
		c.JSON(http.StatusBadRequest, gin.H{"error": "currencies must differ"})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than zero"})
		return
	}

	s.metrics.ConversionRequestsTotal.Inc()
	result, err := s.service.Convert(c.Request.Context(), req.Amount, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed conversion"})
		return
	}

	c.JSON(http.StatusOK, response{
		Exchange:  result.Rate,
		Amount:    result.Amount,
		Original:  req.Amount,
		UpdatedAt: result.UpdatedAt,
	})
}
