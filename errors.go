package docser

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = "invalid_type"
	CodeRequired             = "required"
	CodeTooShort             = "too_short"
	CodeTooLong              = "too_long"
	CodeParseError           = "parse_error"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"
	CodeUnsupportedKind      = "unsupported_kind"
	// CodeDataIntegrity marks a fault in stored data (for example an embedded
	// value whose runtime tag no longer resolves). Unlike the validation codes
	// above it is not caused by caller input and should be treated as fatal
	// for the affected field.
	CodeDataIntegrity = "data_integrity"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /embedded_list/2/name).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: offending tag, constraint values, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
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
		// e.g. required at /embedded/name
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
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

// Rebase rewrites issue paths to live under base ("/field" or "/3"). Child
// paths of "" or "/" collapse onto base itself.
func Rebase(base string, iss Issues) Issues {
	var out Issues
	for _, it := range iss {
		p := it.Path
		if p == "" || p == "/" {
			p = base
		} else if p[0] == '/' {
			p = base + p
		} else {
			p = base + "/" + p
		}
		out = AppendIssues(out, Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause})
	}
	return out
}

// RebaseErr rebases err when it carries Issues, wrapping anything else as a
// parse_error at base.
func RebaseErr(base string, err error) Issues {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return Rebase(base, iss)
	}
	return Issues{Issue{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
}
