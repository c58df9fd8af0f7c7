package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/coerce"
)

// Code classifies a validation issue. Values are stable and safe to expose
// to API clients.
type Code string

const (
	CodeMissingRequired     Code = "MISSING_REQUIRED_FIELD"
	CodeInvalidEnum         Code = "INVALID_ENUM_VALUE"
	CodeInvalidDate         Code = "INVALID_DATE"
	CodeInvalidIdentifier   Code = "INVALID_IDENTIFIER"
	CodeInvalidURL          Code = "INVALID_URL"
	CodeInvalidNumber       Code = "INVALID_NUMBER"
	CodeStringLength        Code = "STRING_LENGTH_VIOLATION"
	CodeUnknownField        Code = "UNKNOWN_FIELD"
	CodeInvalidDynamicShape Code = "INVALID_DYNAMIC_FIELD_SHAPE"
	CodeInvalidType         Code = "INVALID_TYPE"
	CodeInvalidSlug         Code = "INVALID_SLUG"
	CodeInvalidRange        Code = "INVALID_RANGE"
)

// Path addresses a field inside a record using dot/bracket notation,
// e.g. examShifts[0].gateClosingTime. The empty Path is the record itself.
type Path string

func (p Path) Key(name string) Path {
	if p == "" {
		return Path(name)
	}
	return p + "." + Path(name)
}

func (p Path) Index(i int) Path {
	return Path(fmt.Sprintf("%s[%d]", p, i))
}

// Issue is one failed field.
type Issue struct {
	Path    string `json:"path"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Report collects every issue found while validating one record. A non-empty
// Report is the error returned by ValidateJob and ValidateAdmitCard.
type Report struct {
	Entity string
	Issues []Issue
}

func (r *Report) Error() string {
	if len(r.Issues) == 1 {
		return fmt.Sprintf("%s: %s", r.Entity, r.Issues[0])
	}
	parts := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %d validation issues: %s", r.Entity, len(r.Issues), strings.Join(parts, "; "))
}

// Has reports whether an issue with the given path and code was recorded.
func (r *Report) Has(path string, code Code) bool {
	for _, issue := range r.Issues {
		if issue.Path == path && issue.Code == code {
			return true
		}
	}
	return false
}

// ByPath groups issue messages by field path, the shape UI forms render.
func (r *Report) ByPath() map[string][]string {
	out := make(map[string][]string, len(r.Issues))
	for _, issue := range r.Issues {
		out[issue.Path] = append(out[issue.Path], issue.Message)
	}
	return out
}

// AsReport extracts a *Report from err.
func AsReport(err error) (*Report, bool) {
	var r *Report
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

func (r *Report) len() int { return len(r.Issues) }

func (r *Report) add(p Path, code Code, msg string) {
	r.Issues = append(r.Issues, Issue{Path: string(p), Code: code, Message: msg})
}

// addErr records a coercion failure, classifying it by its sentinel.
func (r *Report) addErr(p Path, err error) {
	r.add(p, codeFor(err), err.Error())
}

func codeFor(err error) Code {
	switch {
	case errors.Is(err, coerce.ErrInvalidDate):
		return CodeInvalidDate
	case errors.Is(err, coerce.ErrInvalidIdentifier):
		return CodeInvalidIdentifier
	case errors.Is(err, coerce.ErrInvalidEnumValue):
		return CodeInvalidEnum
	case errors.Is(err, coerce.ErrStringLength):
		return CodeStringLength
	case errors.Is(err, coerce.ErrInvalidURL):
		return CodeInvalidURL
	case errors.Is(err, coerce.ErrInvalidNumber):
		return CodeInvalidNumber
	case errors.Is(err, coerce.ErrInvalidSlug):
		return CodeInvalidSlug
	default:
		return CodeInvalidType
	}
}
