package service

import (
	"context"
	"github.com/androx6/wsj-fx-api/internal/entities"
)

//go:generate mockgen -package=service -destination=mock_fetcher_test.go -source=client.go QuoteFetcher
type QuoteFetcher interface {
	FetchClose(ctx context.Context, symbol string, day entities.TradingDay) entities.SymbolResult
}
