package errmsg

import (
	"fmt"
	"strings"

	"github.com/avreline/boundary/pkg/validate"
)

// Severity grades a user-facing message.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Formatted is the UI-safe projection of a validation failure. Message is
// one of a small set of canned, non-technical phrasings; the original
// diagnostic goes into TechnicalDetails and is for logs only.
type Formatted struct {
	Message          string
	Field            string
	Severity         Severity
	TechnicalDetails string
}

// Canned user-facing phrasings. Raw diagnostics (field paths, received
// values, stack traces) must never reach an end user.
const (
	msgBadStatus    = "We received an unrecognized status from the server. The page may be out of date."
	msgBadTier      = "Your plan information could not be verified. Please refresh the page."
	msgBadShape     = "The server response was malformed. Please try again."
	msgMissingField = "Some required information is missing from the server response."
	msgBadList      = "The server returned an unexpected list format."
	msgGeneric      = "Something went wrong. Please try again."
)

// Format derives the user-facing projection of a validation error. The
// phrasing is selected by the error's kind (and, for enum failures, whether
// the offending field is a status or a tier); severity is a function of the
// kind via SeverityFor.
func Format(verr *validate.Error) Formatted {
	out := Formatted{
		Field:            verr.Field,
		Severity:         SeverityFor(verr.Kind),
		TechnicalDetails: verr.Message,
	}

	switch verr.Kind {
	case validate.KindShape:
		out.Message = msgBadShape
	case validate.KindMissingField:
		out.Message = msgMissingField
	case validate.KindInvalidArray:
		out.Message = msgBadList
	case validate.KindInvalidEnum:
		if strings.Contains(verr.Field, "tier") {
			out.Message = msgBadTier
		} else {
			out.Message = msgBadStatus
		}
	default:
		field := verr.Field
		if field == "" {
			field = "data"
		}
		out.Message = fmt.Sprintf("Invalid %s received from server.", field)
	}
	return out
}

// SeverityFor maps an error kind to the severity shown to users. Enum
// failures grade as warnings: the entity is rejected on the strict path
// either way, but for the user the situation reads as stale data rather
// than a broken page.
func SeverityFor(kind validate.Kind) Severity {
	switch kind {
	case validate.KindInvalidEnum:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// Summary condenses a batch of validation errors into a single user-facing
// line: empty for no errors, the formatted message for one, a count for
// more.
func Summary(errs []*validate.Error) string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return Format(errs[0]).Message
	default:
		return fmt.Sprintf("%d validation errors occurred. Please refresh and try again.", len(errs))
	}
}
