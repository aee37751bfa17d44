package wsj

import (
	"fmt"
	"github.com/androx6/wsj-fx-api/internal/entities"
	"github.com/shopspring/decimal"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// twoDigitYearPivot maps YY > pivot to 19YY, anything else to 20YY.
const twoDigitYearPivot = 50

var upstreamDatePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/(\d{2}|\d{4})$`)

type Row struct {
	Date  string
	Close string
}

// MatchClose scans a historical-prices CSV for the row dated isoDate.
// Columns are located by header name. Fields are split on commas only,
// quoted fields are not supported. A matching row whose close is not a
// number is skipped, so the caller sees ErrRowNotFound.
func MatchClose(body, isoDate string) (Row, error) {
	lines := strings.Split(body, "\n")

	dateIdx, closeIdx := -1, -1
	headerSeen := false

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		cells := strings.Split(line, ",")

		if !headerSeen {
			headerSeen = true
			dateIdx, closeIdx = headerColumns(cells)
			if dateIdx < 0 || closeIdx < 0 {
				return Row{}, entities.ErrRowNotFound
			}
			continue
		}

		if dateIdx >= len(cells) || closeIdx >= len(cells) {
			continue
		}

		rowDate, ok := normalizeDate(strings.TrimSpace(cells[dateIdx]))
		if !ok || rowDate != isoDate {
			continue
		}

		closeText := strings.TrimSpace(cells[closeIdx])
		if closeText == "" {
			continue
		}
		if _, err := decimal.NewFromString(closeText); err != nil {
			continue
		}

		return Row{Date: rowDate, Close: closeText}, nil
	}

	return Row{}, entities.ErrRowNotFound
}

func headerColumns(cells []string) (dateIdx, closeIdx int) {
	dateIdx, closeIdx = -1, -1
	for i, cell := range cells {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(cell, "\ufeff")))
		switch name {
		case "date":
			if dateIdx < 0 {
				dateIdx = i
			}
		case "close":
			if closeIdx < 0 {
				closeIdx = i
			}
		}
	}
	return dateIdx, closeIdx
}

// normalizeDate turns MM/DD/YY or MM/DD/YYYY into YYYY-MM-DD.
func normalizeDate(s string) (string, bool) {
	if !upstreamDatePattern.MatchString(s) {
		return "", false
	}

	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", false
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", false
	}
	switch len(parts[2]) {
	case 2:
		if year > twoDigitYearPivot {
			year += 1900
		} else {
			year += 2000
		}
	case 4:
	default:
		return "", false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}

	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}
