package wsj

import (
	"context"
	"fmt"
	"github.com/androx6/wsj-fx-api/internal/entities"
	"github.com/androx6/wsj-fx-api/internal/fx_api/metrics"
	"github.com/go-resty/resty/v2"
	"log/slog"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const defaultRows = 50

var symbolPattern = regexp.MustCompile(`^[A-Z]{6}$`)

type Config struct {
	BaseURL   string
	Cookie    string
	UserAgent string
	Rows      int
	Timeout   time.Duration
}

// HTTPClient fetches daily closes from the WSJ historical-prices download.
type HTTPClient struct {
	client  *resty.Client
	baseURL string
	rows    int
}

func NewHTTPClient(cfg Config) *HTTPClient {
	if cfg.Rows <= 0 {
		cfg.Rows = defaultRows
	}

	client := resty.New()
	client.SetTimeout(cfg.Timeout)
	client.SetLogger(restyLogger{})
	client.SetHeader("Accept", "text/csv,*/*")
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Cookie != "" {
		client.SetHeader("Cookie", cfg.Cookie)
	}

	return &HTTPClient{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		rows:    cfg.Rows,
	}
}

// FetchClose never returns an error: every failure is folded into the result.
func (c *HTTPClient) FetchClose(ctx context.Context, symbol string, day entities.TradingDay) entities.SymbolResult {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	if err := ValidateSymbol(symbol); err != nil {
		metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeRejected).Inc()
		return entities.NewErrorResult(symbol, err, "")
	}

	sourceURL := c.SourceURL(symbol, day)

	metrics.UpstreamInFlight.Inc()
	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Referer", c.refererURL(symbol)).
		Get(sourceURL)
	metrics.UpstreamDuration.Observe(time.Since(start).Seconds())
	metrics.UpstreamInFlight.Dec()

	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeTransport).Inc()
		slog.Warn("upstream request failed", "symbol", symbol, "url", sourceURL, "error", err)
		return entities.NewErrorResult(symbol, err, sourceURL)
	}

	if !resp.IsSuccess() {
		metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeHTTPError).Inc()
		slog.Warn("upstream returned bad status", "symbol", symbol, "url", sourceURL, "status", resp.StatusCode())
		return entities.NewErrorResult(symbol, fmt.Errorf("HTTP %d", resp.StatusCode()), sourceURL)
	}

	row, err := MatchClose(resp.String(), day.ISO())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeRowNotFound).Inc()
		slog.Debug("no close for trading day", "symbol", symbol, "date", day.ISO())
		return entities.NewErrorResult(symbol, err, sourceURL)
	}

	metrics.UpstreamRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	slog.Debug("close fetched", "symbol", symbol, "date", row.Date, "close", row.Close, "took", time.Since(start))

	return entities.NewOKResult(symbol, row.Date, row.Close, sourceURL)
}

// ValidateSymbol accepts direct quotes only: six letters ending in USD.
func ValidateSymbol(symbol string) error {
	if !symbolPattern.MatchString(symbol) {
		return entities.ErrInvalidSymbol
	}
	if !strings.HasSuffix(symbol, "USD") {
		return entities.ErrReciprocalDisabled
	}
	return nil
}

func (c *HTTPClient) SourceURL(symbol string, day entities.TradingDay) string {
	rows := strconv.Itoa(c.rows)

	q := url.Values{}
	q.Set("MOD_VIEW", "page")
	q.Set("num_rows", rows)
	q.Set("range_days", rows)
	q.Set("startDate", day.Upstream())
	q.Set("endDate", day.Upstream())

	return c.baseURL + "/" + url.PathEscape(symbol) + "/historical-prices/download?" + q.Encode()
}

func (c *HTTPClient) refererURL(symbol string) string {
	return c.baseURL + "/" + url.PathEscape(symbol) + "/historical-prices"
}

// restyLogger routes resty's internal messages through slog.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "component", "resty")
}

func (restyLogger) Warnf(format string, v ...interface{}) {
	slog.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (restyLogger) Debugf(format string, v ...interface{}) {
	slog.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
