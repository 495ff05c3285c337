package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты (YYYY-MM-DD)
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat возвращается при некорректном формате даты
	ErrInvalidDateFormat = errors.New("invalid date string format, expected YYYY-MM-DD")
)

// DateString календарная дата без компонента времени в формате "YYYY-MM-DD".
// Используется для дат мероприятий: бронирование занимает целый день,
// поэтому сравнение всегда идёт по календарному дню, а не по моменту времени.
type DateString string

// NewDateString создает DateString из time.Time (компонент времени отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateLayout))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate проверяет корректность формата даты
func (d DateString) Validate() error {
	if _, err := time.Parse(DateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return nil
}

// IsZero возвращает true для пустой даты
func (d DateString) IsZero() bool {
	return d == ""
}

// Time конвертирует дату в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	return t, nil
}

// Before возвращает true, если дата строго раньше other.
// Лексикографическое сравнение корректно для формата YYYY-MM-DD.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// Equal возвращает true, если даты совпадают (точное совпадение календарного дня)
func (d DateString) Equal(other DateString) bool {
	return string(d) == string(other)
}

// InPast возвращает true, если дата строго раньше календарного дня момента now
func (d DateString) InPast(now time.Time) bool {
	return d.Before(NewDateString(now))
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}

// Value реализует driver.Valuer для записи в БД
func (d DateString) Value() (driver.Value, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

// Scan реализует sql.Scanner для чтения из БД (колонки DATE приходят как time.Time)
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		*d = DateString(v)
		return d.Validate()
	case []byte:
		*d = DateString(v)
		return d.Validate()
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidDateFormat, src)
	}
}
