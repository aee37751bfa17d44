package entities

import (
	"regexp"
	"time"
)

const (
	isoLayout      = "2006-01-02"
	upstreamLayout = "01/02/2006"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// marketZone approximates US Eastern time with a fixed offset, DST is ignored.
var marketZone = time.FixedZone("UTC-4", -4*60*60)

// TradingDay is the business day actually queried upstream.
type TradingDay struct {
	t time.Time
}

// ResolveTradingDay validates an ISO date and rolls weekends back to Friday.
func ResolveTradingDay(date string) (TradingDay, error) {
	if date == "" {
		return TradingDay{}, ErrDateRequired
	}
	if !isoDatePattern.MatchString(date) {
		return TradingDay{}, ErrInvalidDate
	}

	t, err := time.ParseInLocation(isoLayout, date, marketZone)
	if err != nil {
		return TradingDay{}, ErrInvalidDate
	}

	switch t.Weekday() {
	case time.Saturday:
		t = t.AddDate(0, 0, -1)
	case time.Sunday:
		t = t.AddDate(0, 0, -2)
	}

	return TradingDay{t: t}, nil
}

func (d TradingDay) ISO() string {
	return d.t.Format(isoLayout)
}

// Upstream is the MM/DD/YYYY form the CSV endpoint expects.
func (d TradingDay) Upstream() string {
	return d.t.Format(upstreamLayout)
}

func (d TradingDay) IsZero() bool {
	return d.t.IsZero()
}
