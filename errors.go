package gonml

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Codec/parse errors.
	CodeFormat = "format_error"
	CodeParse  = "parse_error"
	// Per-parameter validation.
	CodeInvalidType     = "invalid_type"
	CodeTooSmall        = "too_small"
	CodeTooBig          = "too_big"
	CodeInvalidEnum     = "invalid_enum"
	CodeInvalidDatetime = "invalid_datetime"
	// Cross-parameter and document validation.
	CodeLengthMismatch    = "length_mismatch"
	CodeIncompatibleValue = "incompatible_value"
	CodeRequired          = "required"
	CodeMissingBlock      = "missing_block"
	// Schema lookup.
	CodeUnknownParam          = "unknown_param"
	CodeUnknownSchema         = "unknown_schema"
	CodeDuplicateRegistration = "duplicate_registration"
)

// Issue represents a single engine error entry.
type Issue struct {
	Code    string // One of the codes listed above.
	Block   string // Block name, when known.
	Param   string // Parameter name, when known.
	Message string
	Hint    string // Optional: remediation hint from the i18n dictionary.
	Value   any    // The offending value, when known.
	Rule    string // Rule name that produced this issue (gt, gte, switch, ...).
	Cause   error  // Optional: underlying error.
}

// Path renders the issue location as /block/param, omitting unknown segments.
func (it Issue) Path() string {
	switch {
	case it.Block != "" && it.Param != "":
		return "/" + it.Block + "/" + it.Param
	case it.Block != "":
		return "/" + it.Block
	case it.Param != "":
		return "/" + it.Param
	}
	return "/"
}

// Issues is a collection of engine errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path())
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries at least one issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
