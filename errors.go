package vocabind

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Schema compilation errors; fatal, abort binding generation.
	CodeUnknownSupertype = "unknown_supertype"
	CodeKindMismatch     = "kind_mismatch"
	CodeUnknownValueType = "unknown_value_type"
	// Decode errors; terminal for the call, no partial value is returned.
	CodeMissingRequired     = "missing_required"
	CodeDuplicateField      = "duplicate_field"
	CodeTypeMismatch        = "type_mismatch"
	CodeUnknownDiscriminant = "unknown_discriminant"
	CodeMalformedScalar     = "malformed_scalar"
	CodeInvalidType         = "invalid_type"
	CodeParseError          = "parse_error"
)

// Issue represents a single schema or decode error entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /attachment/2/name).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected sets, offending tags, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of errors that implements error.
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
		// e.g. duplicate_field at /id
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, " (%s)", it.Hint)
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

// HasCode reports whether any issue carries the given code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// issuesFromErr converts an error into Issues, wrapping non-Issues with
// CodeParseError.
func issuesFromErr(path string, err error) Issues {
	if err == nil {
		return nil
	}
	if i2, ok := AsIssues(err); ok {
		return i2
	}
	return Issues{Issue{Path: path, Code: CodeParseError, Message: err.Error(), Cause: err}}
}

// rebaseIssues prefixes child issue paths with base so nested decode errors
// keep full JSON Pointers.
func rebaseIssues(base string, err error) Issues {
	child, ok := AsIssues(err)
	if !ok {
		return issuesFromErr(base, err)
	}
	var out Issues
	for _, it := range child {
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
