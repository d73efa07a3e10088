// Package validation checks and parses text entered by the user.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/ukydev/car-maintenance/internal/models"
)

// DateLayout is the MM/DD/YY layout accepted for dates.
const DateLayout = "01/02/06"

// ErrInvalidInput is matched by every *ValidationError.
var ErrInvalidInput = errors.New("invalid input")

var datePattern = regexp.MustCompile(`^[0-9]{2}/[0-9]{2}/[0-9]{2}$`)

// Days per month. February never has 29.
var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidInput) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid returns a *ValidationError for field.
func Invalid(field, value, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}

// IsValidNonNegInteger reports whether text is an integer >= 0.
func IsValidNonNegInteger(text string) bool {
	n, err := strconv.Atoi(text)
	return err == nil && n >= 0
}

// IsValidNonNegIntegerOrBlank reports whether text is blank or an integer >= 0.
func IsValidNonNegIntegerOrBlank(text string) bool {
	return text == "" || IsValidNonNegInteger(text)
}

// IsValidDay reports whether day exists in month, ignoring leap years.
func IsValidDay(month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth[month]
}

// IsValidDate reports whether text is blank or a MM/DD/YY date.
// The year is not checked.
func IsValidDate(text string) bool {
	if text == "" {
		return true
	}
	if !datePattern.MatchString(text) {
		return false
	}
	month, _ := strconv.Atoi(text[0:2])
	day, _ := strconv.Atoi(text[3:5])
	return IsValidDay(month, day)
}

// ParseMileage parses a required non-negative integer.
func ParseMileage(field, text string) (int, error) {
	if text == "" {
		return 0, Invalid(field, text, "is required")
	}
	if !IsValidNonNegInteger(text) {
		return 0, Invalid(field, text, "must be a non-negative whole number")
	}
	n, _ := strconv.Atoi(text)
	return n, nil
}

// ParseOptionalInt parses a non-negative integer. Blank text yields nil.
func ParseOptionalInt(field, text string) (*int, error) {
	if text == "" {
		return nil, nil
	}
	if !IsValidNonNegInteger(text) {
		return nil, Invalid(field, text, "must be a non-negative whole number or blank")
	}
	n, _ := strconv.Atoi(text)
	return &n, nil
}

// ParseDate parses a MM/DD/YY date. Blank text yields nil.
func ParseDate(field, text string) (*time.Time, error) {
	if text == "" {
		return nil, nil
	}
	if !IsValidDate(text) {
		return nil, Invalid(field, text, "must be a date as MM/DD/YY")
	}
	t, err := time.Parse(DateLayout, text)
	if err != nil {
		return nil, Invalid(field, text, err.Error())
	}
	d := models.DateOf(t)
	return &d, nil
}

// FormatDate formats d as MM/DD/YY, or returns "" for nil.
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}

// FormatOptionalInt formats p, or returns "" for nil.
func FormatOptionalInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
