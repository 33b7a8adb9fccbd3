package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeLayout     = "15:04"
	minutesPerDay  = 24 * 60
	minutesPerHour = 60
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// EndOfDay граница конца суток, допустима только как конец интервала
const EndOfDay TimeString = "24:00"

// TimeString время суток в формате "HH:MM" (без даты и часового пояса)
// Хранится в колонках TIME; при чтении из Postgres секунды отбрасываются
type TimeString string

// NewTimeString создает TimeString из времени суток t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := normalize(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут от начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero true, если время не указано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM"
// "24:00" допустимо как EndOfDay
func (t TimeString) Validate() error {
	if t == EndOfDay {
		return nil
	}
	if _, err := time.Parse(timeLayout, string(t)); err != nil || len(t) != len(timeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*minutesPerHour + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на n минут
// Результат "24:00" допустим как граница конца рабочего дня
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total := m + n
	if total == minutesPerDay {
		return EndOfDay, nil
	}
	return NewTimeStringFromMinutes(total)
}

// IsBefore true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.compare(other) < 0
}

// IsAfter true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.compare(other) > 0
}

// IsWholeHour true, если время выровнено по началу часа ("10:00")
func (t TimeString) IsWholeHour() bool {
	m, err := t.Minutes()
	if err != nil {
		return false
	}
	return m%minutesPerHour == 0
}

// OnDate возвращает момент времени t в дату date (в её часовом поясе)
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	m, err := t.minutesAllowingMidnight()
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(m) * time.Minute), nil
}

// Scan реализует sql.Scanner для колонок TIME
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case []byte:
		*t = normalize(string(v))
	case string:
		*t = normalize(v)
	case time.Time:
		*t = fromClock(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	return t.Validate()
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// compare сравнивает по минутам; "24:00" считается концом суток
func (t TimeString) compare(other TimeString) int {
	a, errA := t.minutesAllowingMidnight()
	b, errB := other.minutesAllowingMidnight()
	if errA != nil || errB != nil {
		return strings.Compare(string(t), string(other))
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t TimeString) minutesAllowingMidnight() (int, error) {
	if t == EndOfDay {
		return minutesPerDay, nil
	}
	return t.Minutes()
}

// fromClock переводит значение колонки TIME из lib/pq в TimeString
// lib/pq отдает TIME как дату 0000-01-01, а '24:00:00' как полночь 0000-01-02
func fromClock(v time.Time) TimeString {
	nextDay := time.Date(0, time.January, 2, 0, 0, 0, 0, v.Location())
	if !v.Before(nextDay) {
		return EndOfDay
	}
	return NewTimeString(v)
}

// normalize отрезает секунды: "09:00:00" -> "09:00"
func normalize(s string) TimeString {
	s = strings.TrimSpace(s)
	if len(s) >= 8 && s[5] == ':' {
		s = s[:5]
	}
	return TimeString(s)
}
