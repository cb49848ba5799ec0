package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	// DateFormat is the wire format for calendar dates
	DateFormat = "2006-01-02"
	// TimeOfDayFormat is the wire format for times of day
	TimeOfDayFormat = "15:04:05"
	// TimeOfDayShortFormat is accepted on input when seconds are omitted
	TimeOfDayShortFormat = "15:04"
)

// Date represents a calendar date without a time-of-day component. It is
// stored in a DATE column and rendered as "2006-01-02" in JSON.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" string into a Date.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected format %s", value, DateFormat)
	}
	return Date{Time: t}, nil
}

// String renders the date as "2006-01-02"
func (d Date) String() string {
	return d.Format(DateFormat)
}

// MarshalJSON renders the date as a "2006-01-02" JSON string
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateFormat))
}

// UnmarshalJSON parses a "2006-01-02" JSON string
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid date: expected a %q string", DateFormat)
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer so the date can be written to a DATE column
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateFormat), nil
}

// Scan implements sql.Scanner so the date can be read back from a DATE column
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)}
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
}

// GormDataType tells the migrator to create a DATE column
func (Date) GormDataType() string {
	return "date"
}

// TimeOfDay represents a wall-clock time without a date component. It is
// stored in a TIME column and rendered as "15:04:05" in JSON. Input without
// seconds ("15:04") is accepted.
type TimeOfDay struct {
	time.Time
}

// NewTimeOfDay builds a TimeOfDay from hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Time: time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC)}
}

// ParseTimeOfDay parses a "15:04:05" or "15:04" string into a TimeOfDay.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayFormat, value)
	if err != nil {
		t, err = time.Parse(TimeOfDayShortFormat, value)
	}
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q: expected format %s", value, TimeOfDayFormat)
	}
	return TimeOfDay{Time: t}, nil
}

// String renders the time as "15:04:05"
func (t TimeOfDay) String() string {
	return t.Format(TimeOfDayFormat)
}

// MarshalJSON renders the time as a "15:04:05" JSON string
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeOfDayFormat))
}

// UnmarshalJSON parses a "15:04:05" or "15:04" JSON string
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid time: expected a %q string", TimeOfDayFormat)
	}
	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer so the time can be written to a TIME column
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Format(TimeOfDayFormat), nil
}

// Scan implements sql.Scanner so the time can be read back from a TIME column
func (t *TimeOfDay) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = TimeOfDay{Time: time.Date(0, time.January, 1, v.Hour(), v.Minute(), v.Second(), 0, time.UTC)}
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", value)
	}
}

// GormDataType tells the migrator to create a TIME column
func (TimeOfDay) GormDataType() string {
	return "time"
}
