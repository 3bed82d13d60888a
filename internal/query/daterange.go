package query

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/mapstl_api/internal/models"
)

// LegacyOpenEnd - значение end в /legacy/range, означающее "тот же день, что и start"
const LegacyOpenEnd = "NA"

// DateRange - диапазон дат. Start всегда включается, End включается только при EndInclusive.
type DateRange struct {
	Start        time.Time
	End          time.Time
	EndInclusive bool
}

// Until возвращает исключающую верхнюю границу диапазона
func (r DateRange) Until() time.Time {
	if r.EndInclusive {
		return r.End.AddDate(0, 0, 1)
	}
	return r.End
}

func (r DateRange) String() string {
	closing := ")"
	if r.EndInclusive {
		closing = "]"
	}
	return "[" + r.Start.Format(time.DateOnly) + "," + r.End.Format(time.DateOnly) + closing
}

var monthsByName = func() map[string]time.Month {
	months := make(map[string]time.Month, 12)
	for m := time.January; m <= time.December; m++ {
		months[m.String()] = m
	}
	return months
}()

// MonthYear строит диапазон [start, end) длиной ровно в один календарный месяц.
// Название месяца сравнивается с учетом регистра ("December", но не "december").
func MonthYear(year int, month string) (DateRange, error) {
	m, ok := monthsByName[month]
	if !ok {
		return DateRange{}, fmt.Errorf("%w: month must be an English month name, got %q", models.ErrInvalidParameter, month)
	}
	if year < 1 || year > 9999 {
		return DateRange{}, fmt.Errorf("%w: year %d is out of range", models.ErrInvalidParameter, year)
	}

	start := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}, nil
}

// Inclusive строит диапазон [start, end] для маршрутов v2
func Inclusive(start, end string) (DateRange, error) {
	from, err := ParseDate("start", start)
	if err != nil {
		return DateRange{}, err
	}
	to, err := ParseDate("end", end)
	if err != nil {
		return DateRange{}, err
	}
	if to.Before(from) {
		return DateRange{}, fmt.Errorf("%w: end %s is before start %s", models.ErrInvalidParameter,
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	return DateRange{Start: from, End: to, EndInclusive: true}, nil
}

// LegacyRange работает как Inclusive, но end == "NA" означает однодневный диапазон
func LegacyRange(start, end string) (DateRange, error) {
	if strings.TrimSpace(end) == LegacyOpenEnd {
		end = start
	}
	return Inclusive(start, end)
}

// ParseDate разбирает дату ISO-8601 (YYYY-MM-DD или RFC 3339, от которого берется только дата)
func ParseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", models.ErrInvalidParameter, field)
	}

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("%w: %s must be an ISO-8601 date (YYYY-MM-DD), got %q", models.ErrInvalidParameter, field, raw)
}
