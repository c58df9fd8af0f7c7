// Package coerce converts single loosely typed wire values (as decoded from
// JSON, YAML or form posts) into canonical Go values. Every function is pure
// and safe for concurrent use.
package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cast"
)

const (
	uuidLen = 36

	// Outer bound of a JavaScript Date, in milliseconds from the epoch.
	maxEpochMillis = 8.64e15
)

var (
	reSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

	urlValidator = validator.New()
)

// Bounds limits a string's length in runes. Max 0 means unbounded.
// Trim strips surrounding whitespace before measuring.
type Bounds struct {
	Min  int
	Max  int
	Trim bool
}

// unwrap turns jsonvalue scalars into the plain Go values encoding/json
// would have produced, so every coercion accepts both shapes.
func unwrap(v any) any {
	switch t := v.(type) {
	case jsonvalue.Value:
		return t.Interface()
	case *jsonvalue.Value:
		if t == nil {
			return nil
		}
		return t.Interface()
	}
	return v
}

// TypeName describes the JSON type of a raw value for error messages.
func TypeName(v any) string {
	switch unwrap(v).(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []any, []string, []map[string]any:
		return "array"
	case map[string]any:
		return "object"
	case time.Time, *time.Time:
		return "date"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// String accepts only strings.
func String(v any) (string, error) {
	s, ok := unwrap(v).(string)
	if !ok {
		return "", fmt.Errorf("%w: expected string, got %s", ErrInvalidType, TypeName(v))
	}
	return s, nil
}

// BoundedString accepts a string whose rune length lies within b.
func BoundedString(v any, b Bounds) (string, error) {
	s, err := String(v)
	if err != nil {
		return "", err
	}
	if b.Trim {
		s = strings.TrimSpace(s)
	}
	n := utf8.RuneCountInString(s)
	if n < b.Min {
		if b.Min == 1 {
			return "", fmt.Errorf("%w: must not be empty", ErrStringLength)
		}
		return "", fmt.Errorf("%w: must be at least %d characters, got %d", ErrStringLength, b.Min, n)
	}
	if b.Max > 0 && n > b.Max {
		return "", fmt.Errorf("%w: must be at most %d characters, got %d", ErrStringLength, b.Max, n)
	}
	return s, nil
}

// Bool accepts booleans and the strings "true" and "false" sent by HTML forms.
func Bool(v any) (bool, error) {
	switch t := unwrap(v).(type) {
	case bool:
		return t, nil
	case string:
		switch t {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: expected bool, got %s", ErrInvalidType, TypeName(v))
}

// UUID accepts the canonical 8-4-4-4-12 hex form (either case) or a
// uuid.UUID. The nil UUID is rejected since no stored entity carries it.
func UUID(v any) (uuid.UUID, error) {
	var id uuid.UUID
	switch t := unwrap(v).(type) {
	case uuid.UUID:
		id = t
	case string:
		if len(t) != uuidLen {
			return uuid.Nil, fmt.Errorf("%w: %q is not a UUID", ErrInvalidIdentifier, t)
		}
		parsed, err := uuid.Parse(t)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %q is not a UUID", ErrInvalidIdentifier, t)
		}
		id = parsed
	default:
		return uuid.Nil, fmt.Errorf("%w: expected UUID string, got %s", ErrInvalidIdentifier, TypeName(v))
	}
	if id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: nil UUID", ErrInvalidIdentifier)
	}
	return id, nil
}

// Enum accepts a string equal to one member of allowed. Matching is exact;
// no case folding or trimming is applied.
func Enum[T ~string](v any, allowed []T) (T, error) {
	s, ok := unwrap(v).(string)
	if ok {
		for _, a := range allowed {
			if string(a) == s {
				return a, nil
			}
		}
	}

	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = strconv.Quote(string(a))
	}
	if !ok {
		return "", fmt.Errorf("%w: expected one of %s, got %s", ErrInvalidEnumValue, strings.Join(names, ", "), TypeName(v))
	}
	return "", fmt.Errorf("%w: expected one of %s, got %q", ErrInvalidEnumValue, strings.Join(names, ", "), s)
}

// URL accepts a well-formed absolute URL.
func URL(v any) (string, error) {
	s, ok := unwrap(v).(string)
	if !ok {
		return "", fmt.Errorf("%w: expected URL string, got %s", ErrInvalidURL, TypeName(v))
	}
	if err := urlValidator.Var(s, "required,url"); err != nil {
		return "", fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidURL, s)
	}
	return s, nil
}

// NonNegativeInt accepts integers, integral floats and numeric strings that
// are zero or greater.
func NonNegativeInt(v any) (int, error) {
	var n int64
	switch t := unwrap(v).(type) {
	case int:
		n = int64(t)
	case int8:
		n = int64(t)
	case int16:
		n = int64(t)
	case int32:
		n = int64(t)
	case int64:
		n = t
	case uint8:
		n = int64(t)
	case uint16:
		n = int64(t)
	case uint32:
		n = int64(t)
	case uint:
		if uint64(t) > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidNumber, t)
		}
		n = int64(t)
	case uint64:
		if t > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidNumber, t)
		}
		n = int64(t)
	case float32:
		i, err := integral(float64(t))
		if err != nil {
			return 0, err
		}
		n = i
	case float64:
		i, err := integral(t)
		if err != nil {
			return 0, err
		}
		n = i
	case json.Number:
		i, err := parseIntegral(string(t))
		if err != nil {
			return 0, err
		}
		n = i
	case string:
		i, err := parseIntegral(strings.TrimSpace(t))
		if err != nil {
			return 0, err
		}
		n = i
	default:
		return 0, fmt.Errorf("%w: expected number, got %s", ErrInvalidNumber, TypeName(v))
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: must not be negative, got %d", ErrInvalidNumber, n)
	}
	if n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d is out of range", ErrInvalidNumber, n)
	}
	return int(n), nil
}

func parseIntegral(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidNumber)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidNumber, s)
	}
	return integral(f)
}

func integral(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidNumber, f)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrInvalidNumber, f)
	}
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: %v is out of range", ErrInvalidNumber, f)
	}
	return int64(f), nil
}

// Date accepts ISO-8601 and other common date strings, epoch timestamps in
// milliseconds, and time.Time values. The result is always UTC.
func Date(v any) (time.Time, error) {
	switch t := unwrap(v).(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return t.UTC(), nil
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, fmt.Errorf("%w: zero time", ErrInvalidDate)
		}
		return t.UTC(), nil
	case string:
		return parseDate(strings.TrimSpace(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q is not a timestamp", ErrInvalidDate, t)
		}
		return fromEpochMillis(f)
	case float64:
		return fromEpochMillis(t)
	case int:
		return fromEpochMillis(float64(t))
	case int64:
		return fromEpochMillis(float64(t))
	case int32:
		return fromEpochMillis(float64(t))
	}
	return time.Time{}, fmt.Errorf("%w: expected date, got %s", ErrInvalidDate, TypeName(v))
}

// isoLayouts are tried before cast's list, which has no minute-precision
// forms. Browsers send "2006-01-02T15:04" from datetime-local inputs.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	"2006-01-02T15:04Z07:00",
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	t, err := cast.StringToDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t.UTC(), nil
}

func fromEpochMillis(ms float64) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > maxEpochMillis {
		return time.Time{}, fmt.Errorf("%w: timestamp %v out of range", ErrInvalidDate, ms)
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// Slug accepts lowercase alphanumeric words joined by single hyphens.
func Slug(v any) (string, error) {
	s, err := BoundedString(v, Bounds{Min: 1, Max: 255})
	if err != nil {
		return "", err
	}
	if !reSlug.MatchString(s) {
		return "", fmt.Errorf("%w: %q must be lowercase letters, digits and single hyphens", ErrInvalidSlug, s)
	}
	return s, nil
}
