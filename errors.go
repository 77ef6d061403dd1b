package zodresolve

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeUnsupportedKind reports a node outside the recognized kinds.
	// Traversal fails fast at the point of encounter rather than degrading
	// the unknown node to a leaf.
	CodeUnsupportedKind = "unsupported_kind"
	// CodeCyclicSchema reports a schema graph in which a node is reachable
	// from itself through composite children.
	CodeCyclicSchema = "cyclic_schema"
	// CodePathNotFound reports a Resolve lookup for a path absent from the
	// flattened map.
	CodePathNotFound = "path_not_found"
)

// Issue represents a single traversal or lookup failure.
type Issue struct {
	Path    string // flattened path prefix at which the issue arose ("" for the root)
	Code    string // one of the codes listed above
	Message string
	Hint    string // optional: remediation hints, offending kind names, etc.
	Cause   error  // optional: underlying error
}

// Issues is a collection of failures that implements error.
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
		p := it.Path
		if p == "" {
			p = "<root>"
		}
		// e.g. cyclic_schema at posts[]
		fmt.Fprintf(b, "%s at %s", it.Code, p)
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
