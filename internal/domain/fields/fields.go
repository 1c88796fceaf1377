package fields

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

const (
	isoLayout          = "2006-01-02"
	dayMonthYearLayout = "02-01-2006"
)

// Date is a calendar date with no time component, rendered as YYYY-MM-DD.
type Date time.Time

func (d Date) Time() time.Time { return time.Time(d) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(d).Format(isoLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	t, err := parseDate(data)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

func (d *Date) Scan(src any) error {
	t, err := scanDate(src)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// DayMonthDate is the same calendar date rendered as DD-MM-YYYY. The journal
// read schemas and the detailed film listing keep this format.
type DayMonthDate time.Time

func (d DayMonthDate) Time() time.Time { return time.Time(d) }

func (d DayMonthDate) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(d).Format(dayMonthYearLayout))), nil
}

func (d *DayMonthDate) UnmarshalJSON(data []byte) error {
	t, err := parseDate(data)
	if err != nil {
		return err
	}
	*d = DayMonthDate(t)
	return nil
}

func (d *DayMonthDate) Scan(src any) error {
	t, err := scanDate(src)
	if err != nil {
		return err
	}
	*d = DayMonthDate(t)
	return nil
}

func (d DayMonthDate) Value() (driver.Value, error) {
	return time.Time(d), nil
}

func parseDate(data []byte) (time.Time, error) {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be a JSON string: %w", err)
	}
	for _, layout := range []string{isoLayout, dayMonthYearLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or DD-MM-YYYY", s)
}

func scanDate(src any) (time.Time, error) {
	switch v := src.(type) {
	case time.Time:
		return v, nil
	case string:
		return time.Parse(isoLayout, v)
	case nil:
		return time.Time{}, nil
	}
	return time.Time{}, fmt.Errorf("cannot scan %T into a calendar date", src)
}
