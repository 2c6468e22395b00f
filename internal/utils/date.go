package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day without a time-of-day component. Food entries and
// progress windows key on whole days, so the zone and clock are normalized
// away on every construction path.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func FromTime(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d *Date) Scan(value interface{}) error {
	if value == nil {
		d.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		d.Time = FromTime(v.UTC()).Time
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan type %T into Date", value)
	}
}

func (d *Date) scanString(s string) error {
	// Drivers return either a bare date or a full timestamp.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
