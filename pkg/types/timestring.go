package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("types: invalid time string")

// MinutesInDay количество минут в сутках
const MinutesInDay = 24 * 60

// TimeString время дня в формате HH:MM (без даты)
type TimeString struct {
	hour   int
	minute int
}

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString{hour: t.Hour(), minute: t.Minute()}
}

// NewTimeStringFromParts создает TimeString из часа и минуты
func NewTimeStringFromParts(hour, minute int) (TimeString, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeString{}, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidTimeString, hour, minute)
	}
	return TimeString{hour: hour, minute: minute}, nil
}

// NewTimeStringFromString парсит строку HH:MM или HH:MM:SS
func NewTimeStringFromString(s string) (TimeString, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeString{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: invalid hour in %q", ErrInvalidTimeString, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeString{}, fmt.Errorf("%w: invalid minute in %q", ErrInvalidTimeString, s)
	}

	return NewTimeStringFromParts(hour, minute)
}

// MustTimeString как NewTimeStringFromString, но паникует на ошибке. Только для констант и тестов.
func MustTimeString(s string) TimeString {
	t, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Hour возвращает час
func (t TimeString) Hour() int {
	return t.hour
}

// Minute возвращает минуту
func (t TimeString) Minute() int {
	return t.minute
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() int {
	return t.hour*60 + t.minute
}

// String возвращает время в формате HH:MM
func (t TimeString) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// AddMinutes возвращает время, сдвинутое на minutes
// Ошибка, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if total < 0 || total >= MinutesInDay {
		return TimeString{}, fmt.Errorf("%w: %s%+d min crosses day boundary", ErrInvalidTimeString, t, minutes)
	}
	return TimeString{hour: total / 60, minute: total % 60}, nil
}

// IsBefore сравнивает по часу, затем по минуте
func (t TimeString) IsBefore(other TimeString) bool {
	if t.hour != other.hour {
		return t.hour < other.hour
	}
	return t.minute < other.minute
}

// IsAfter сравнивает по часу, затем по минуте
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Equal проверяет равенство
func (t TimeString) Equal(other TimeString) bool {
	return t.hour == other.hour && t.minute == other.minute
}

// MarshalText реализует encoding.TextMarshaler
func (t TimeString) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler
func (t *TimeString) UnmarshalText(data []byte) error {
	parsed, err := NewTimeStringFromString(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer (колонка типа time)
func (t TimeString) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.UnmarshalText([]byte(v))
	case []byte:
		return t.UnmarshalText(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}
