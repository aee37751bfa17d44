package entities

import "strings"

type ClosesRequest struct {
	Date     string   `json:"date"`
	Coverage string   `json:"coverage"`
	Symbols  []string `json:"symbols"`
}

// NormalizedSymbols trims and upper-cases the requested symbols, keeping
// duplicates. Without explicit symbols the coverage preset is used.
func (r ClosesRequest) NormalizedSymbols() []string {
	out := make([]string, 0, len(r.Symbols))
	for _, s := range r.Symbols {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}

	if len(out) == 0 {
		return CoverageSymbols(strings.ToLower(strings.TrimSpace(r.Coverage)))
	}

	return out
}
