package web

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log"
	"github.com/shopspring/decimal"

	converter "go-currency-converter"
	"go-currency-converter/convert"
	"go-currency-converter/metrics"
)

//go:embed templates/index.html
var templates embed.FS

// Cookie names for the session's last-chosen currencies.
const (
	fromCookie = "from_currency"
	toCookie   = "to_currency"
)

// User-facing messages. Validation warnings never reach the
// diagnostic log; every fetch failure collapses to errorFetch.
const (
	warnSameCurrency = "Please choose two different currencies."
	warnBadAmount    = "Please enter an amount greater than zero."
	errorFetch       = "Unable to fetch exchange rate. Please try again later."
)

// Server dependencies for the web UI
type Server struct {
	service convert.Service
	logger  log.Logger
	metrics *metrics.Metrics
	engine  *gin.Engine
}

// NewServer builds the gin engine, middleware and routes
func NewServer(s convert.Service, logger log.Logger, m *metrics.Metrics, mode string) *Server {
	gin.SetMode(mode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestID())
	engine.Use(Logger(logger))
	engine.Use(Instrument(m))

	server := &Server{
		service: s,
		logger:  logger,
		metrics: m,
		engine:  engine,
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.engine.SetHTMLTemplate(template.Must(template.ParseFS(templates, "templates/index.html")))

	s.engine.GET("/", s.index)
	s.engine.POST("/", s.convert)
	s.engine.POST("/api/convert", s.convertJSON)

	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(rw, r)
}

// viewState the session's currency selections, read from cookies per
// request and threaded through render calls.
type viewState struct {
	From converter.Currency
	To   converter.Currency
}

func stateFromRequest(c *gin.Context) viewState {
	state := viewState{From: converter.DefaultBase, To: converter.DefaultTarget}

	if value, err := c.Cookie(fromCookie); err == nil {
		if code := converter.Currency(value).Upper(); code.Supported() {
			state.From = code
		}
	}
	if value, err := c.Cookie(toCookie); err == nil {
		if code := converter.Currency(value).Upper(); code.Supported() {
			state.To = code
		}
	}
	return state
}

func (st viewState) save(c *gin.Context) {
	c.SetCookie(fromCookie, string(st.From), 0, "/", "", false, true)
	c.SetCookie(toCookie, string(st.To), 0, "/", "", false, true)
}

// page the data rendered into the form template
type page struct {
	Currencies []converter.Currency
	Presets    []converter.Preset
	Preset     string
	From       converter.Currency
	To         converter.Currency
	Amount     string
	Warning    string
	Error      string
	Result     *resultView
}

// resultView one rendered conversion outcome
type resultView struct {
	Label     string
	Value     string
	UnitRate  string
	UpdatedAt string
	FetchedAt string
}

func newPage(state viewState) page {
	return page{
		Currencies: converter.Currencies,
		Presets:    converter.Presets,
		Preset:     converter.DefaultPresetLabel,
		From:       state.From,
		To:         state.To,
		Amount:     "1",
	}
}

func newResultView(amount float64, from, to converter.Currency, ex converter.Exchanged) *resultView {
	amt := decimal.NewFromFloat(amount)
	rate := decimal.NewFromFloat(float64(ex.Rate))
	converted := amt.Mul(rate)

	return &resultView{
		Label:     fmt.Sprintf("%s %s in %s", amt.StringFixed(2), from, to),
		Value:     fmt.Sprintf("%s %s", groupThousands(converted.StringFixed(4)), to),
		UnitRate:  fmt.Sprintf("1 %s = %s %s", from, rate.StringFixed(4), to),
		UpdatedAt: ex.UpdatedAt,
		FetchedAt: ex.FetchedAt.Format("2006-01-02 15:04:05"),
	}
}

// groupThousands inserts comma separators into the integer part of a
// fixed-point decimal string.
func groupThousands(s string) string {
	intPart, rest := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, rest = s[:i], s[i:]
	}
	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}
	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}
	return sign + intPart + rest
}

// index renders the idle form with the session's selections
func (s *Server) index(c *gin.Context) {
	state := stateFromRequest(c)
	c.HTML(http.StatusOK, "index.html", newPage(state))
}

// convert handles one Convert click: apply a preset if one was
// chosen, validate, then perform a single blocking fetch.
func (s *Server) convert(c *gin.Context) {
	state := stateFromRequest(c)

	from := converter.Currency(c.PostForm("from")).Upper()
	to := converter.Currency(c.PostForm("to")).Upper()
	if !from.Supported() {
		from = state.From
	}
	if !to.Supported() {
		to = state.To
	}

	presetLabel := c.PostForm("preset")
	if preset, ok := converter.PresetByLabel(presetLabel); ok && preset.Label != converter.CustomPreset {
		from, to = preset.Base, preset.Target
	}

	state.From, state.To = from, to
	state.save(c)

	data := newPage(state)
	if presetLabel != "" {
		data.Preset = presetLabel
	}

	amountStr := c.PostForm("amount")
	data.Amount = amountStr
	amount, err := strconv.ParseFloat(amountStr, 64)

	switch {
	case from == to:
		data.Warning = warnSameCurrency
	case err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0:
		data.Warning = warnBadAmount
	default:
		s.metrics.ConversionRequestsTotal.Inc()
		result, err := s.service.Convert(c.Request.Context(), converter.Amount(amount), from, to)
		if err != nil {
			data.Error = errorFetch
		} else {
			data.Result = newResultView(amount, from, to, result)
		}
	}

	c.HTML(http.StatusOK, "index.html", data)
}
