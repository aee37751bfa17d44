package entities

import "sort"

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// SymbolResult is the outcome of one upstream lookup. Close keeps the
// upstream text untouched so no precision is lost.
type SymbolResult struct {
	Symbol    string `json:"symbol"`
	Status    string `json:"status"`
	Close     string `json:"close,omitempty"`
	Date      string `json:"date,omitempty"`
	Error     string `json:"error,omitempty"`
	SourceURL string `json:"source_url,omitempty"`
}

type ClosesResponse struct {
	ResolvedDate string         `json:"resolvedDate"`
	Total        int            `json:"total"`
	OK           int            `json:"ok"`
	Fail         int            `json:"fail"`
	Items        []SymbolResult `json:"items"`
}

func NewOKResult(symbol, date, close, sourceURL string) SymbolResult {
	return SymbolResult{
		Symbol:    symbol,
		Status:    StatusOK,
		Close:     close,
		Date:      date,
		SourceURL: sourceURL,
	}
}

func NewErrorResult(symbol string, err error, sourceURL string) SymbolResult {
	return SymbolResult{
		Symbol:    symbol,
		Status:    StatusError,
		Error:     err.Error(),
		SourceURL: sourceURL,
	}
}

// NewClosesResponse counts outcomes and orders items by symbol.
func NewClosesResponse(day TradingDay, items []SymbolResult) *ClosesResponse {
	sorted := make([]SymbolResult, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Symbol < sorted[j].Symbol
	})

	resp := &ClosesResponse{
		ResolvedDate: day.ISO(),
		Total:        len(sorted),
		Items:        sorted,
	}
	for _, item := range sorted {
		if item.Status == StatusOK {
			resp.OK++
		} else {
			resp.Fail++
		}
	}

	return resp
}
