package service

import (
	"context"
	"github.com/androx6/wsj-fx-api/internal/entities"
	"github.com/androx6/wsj-fx-api/internal/fx_api/metrics"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"log/slog"
	"time"
)

// DefaultConcurrency is also the ceiling, configuration can only lower it.
const DefaultConcurrency = 6

type Service struct {
	fetcher     QuoteFetcher
	notifier    Notifier
	concurrency int
}

type Option func(s *Service)

// WithNotifier announces every finished batch.
func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		s.notifier = n
	}
}

// WithConcurrency caps simultaneous upstream fetches per request.
// Values outside 1..DefaultConcurrency are clamped.
func WithConcurrency(limit int) Option {
	return func(s *Service) {
		s.concurrency = ClampConcurrency(limit)
	}
}

func ClampConcurrency(limit int) int {
	if limit <= 0 || limit > DefaultConcurrency {
		return DefaultConcurrency
	}
	return limit
}

// Concurrency reports the effective fan-out cap.
func (s *Service) Concurrency() int {
	return s.concurrency
}

func NewService(fetcher QuoteFetcher, opts ...Option) (*Service, error) {
	const op = "service.NewService"

	if fetcher == nil {
		return nil, errors.Wrap(errors.New("nil quote fetcher"), op)
	}

	s := &Service{
		fetcher:     fetcher,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// FetchCloses resolves the trading day and fetches a close for every
// requested symbol. Per-symbol failures end up in the items, only an
// invalid date fails the whole call.
func (s *Service) FetchCloses(ctx context.Context, req entities.ClosesRequest) (*entities.ClosesResponse, error) {
	const op = "service.FetchCloses"

	day, err := entities.ResolveTradingDay(req.Date)
	if err != nil {
		return nil, err
	}

	symbols := req.NormalizedSymbols()
	metrics.BatchSymbols.Observe(float64(len(symbols)))

	start := time.Now()
	items, err := s.fetchAll(ctx, symbols, day)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	resp := entities.NewClosesResponse(day, items)

	slog.Info("closes fetched",
		"resolved_date", resp.ResolvedDate,
		"total", resp.Total,
		"ok", resp.OK,
		"fail", resp.Fail,
		"took", time.Since(start),
	)

	if s.notifier != nil {
		if err := s.notifier.PublishBatch(context.WithoutCancel(ctx), resp); err != nil {
			slog.Error("failed to publish batch", "op", op, "error", err)
		}
	}

	return resp, nil
}

// fetchAll fans out with at most s.concurrency fetches in flight. Started
// fetches are not cancelled when the caller goes away.
func (s *Service) fetchAll(ctx context.Context, symbols []string, day entities.TradingDay) ([]entities.SymbolResult, error) {
	fetchCtx := context.WithoutCancel(ctx)
	results := make([]entities.SymbolResult, len(symbols))

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for i, symbol := range symbols {
		g.Go(func() error {
			results[i] = s.fetcher.FetchClose(fetchCtx, symbol, day)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
