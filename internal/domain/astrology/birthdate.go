package astrology

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid calendar date")
)

// DateError identifica el campo inválido (year, month o day).
type DateError struct {
	Field string
	Value int
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid %s: %d", e.Field, e.Value)
}

func (e *DateError) Unwrap() error { return ErrInvalidDate }

// BirthDate es una fecha de calendario sin zona horaria ni hora.
type BirthDate struct {
	Year  int
	Month time.Month
	Day   int
}

func NewBirthDate(year int, month time.Month, day int) (BirthDate, error) {
	if year < 1 {
		return BirthDate{}, &DateError{Field: "year", Value: year}
	}
	if month < time.January || month > time.December {
		return BirthDate{}, &DateError{Field: "month", Value: int(month)}
	}
	if day < 1 || day > daysIn(month, year) {
		return BirthDate{}, &DateError{Field: "day", Value: day}
	}
	return BirthDate{Year: year, Month: month, Day: day}, nil
}

// ParseBirthDate acepta YYYY-MM-DD.
func ParseBirthDate(s string) (BirthDate, error) {
	s = strings.TrimSpace(s)

	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return BirthDate{}, fmt.Errorf("%w: %q must be YYYY-MM-DD", ErrInvalidDate, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return BirthDate{}, fmt.Errorf("%w: %q must be YYYY-MM-DD", ErrInvalidDate, s)
		}
		nums[i] = n
	}
	return NewBirthDate(nums[0], time.Month(nums[1]), nums[2])
}

func BirthDateFromTime(t time.Time) BirthDate {
	y, m, d := t.Date()
	return BirthDate{Year: y, Month: m, Day: d}
}

func (b BirthDate) Time() time.Time {
	return time.Date(b.Year, b.Month, b.Day, 0, 0, 0, 0, time.UTC)
}

func (b BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", b.Year, int(b.Month), b.Day)
}

func (b BirthDate) IsZero() bool {
	return b.Year == 0 && b.Month == 0 && b.Day == 0
}

func daysIn(m time.Month, year int) int {
	// día 0 del mes siguiente = último día del mes
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
